package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/conneroisu/groq-go"

	"reelimages/pkg/prompts"
)

type GroqClient struct {
	client      *groq.Client
	model       groq.ChatModel
	temperature float32
	maxTokens   int
	prompts     *prompts.Prompts
}

type GroqOptions struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

func NewGroqClient(apiKey string, opts GroqOptions, p *prompts.Prompts) (*GroqClient, error) {
	client, err := groq.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("create groq client: %w", err)
	}

	return &GroqClient{
		client:      client,
		model:       groq.ChatModel(opts.Model),
		temperature: float32(opts.Temperature),
		maxTokens:   opts.MaxTokens,
		prompts:     p,
	}, nil
}

func (c *GroqClient) ExtractSearchTerms(ctx context.Context, script string) ([]string, error) {
	prompt, err := c.prompts.RenderTerms(prompts.TermsParams{Script: script})
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	resp, err := c.client.ChatCompletion(ctx, groq.ChatCompletionRequest{
		Model: c.model,
		Messages: []groq.ChatCompletionMessage{
			{Role: groq.RoleSystem, Content: c.prompts.System.Terms},
			{Role: groq.RoleUser, Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("extract search terms: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response")
	}

	return ParseTerms(resp.Choices[0].Message.Content), nil
}

// ParseTerms splits a completion into search terms, one per line, in the
// model's order. Blank lines are dropped; a completion with nothing usable
// yields an empty list, which the caller treats as fatal.
func ParseTerms(content string) []string {
	var terms []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			terms = append(terms, line)
		}
	}
	return terms
}
