package app

import (
	"reelimages/internal/llm"
	"reelimages/internal/stock"
	"reelimages/internal/stock/pexels"
	"reelimages/internal/stock/unsplash"
	"reelimages/pkg/config"
	"reelimages/pkg/prompts"
)

// Service holds the pipeline's dependencies.
type Service struct {
	cfg        *config.Config
	llm        llm.Client
	searchers  []stock.Searcher
	downloader *stock.Downloader
}

type ServiceOptions struct {
	Config     *config.Config
	LLM        llm.Client
	Searchers  []stock.Searcher
	Downloader *stock.Downloader
}

func NewService(opts ServiceOptions) *Service {
	return &Service{
		cfg:        opts.Config,
		llm:        opts.LLM,
		searchers:  opts.Searchers,
		downloader: opts.Downloader,
	}
}

func (s *Service) Config() *config.Config        { return s.cfg }
func (s *Service) LLM() llm.Client               { return s.llm }
func (s *Service) Searchers() []stock.Searcher   { return s.searchers }
func (s *Service) Downloader() *stock.Downloader { return s.downloader }

// BuildService wires the production dependencies. Searcher order fixes
// the interleave order: Pexels first, then Unsplash.
func BuildService(cfg *config.Config) (*Service, error) {
	p, err := prompts.Load()
	if err != nil {
		return nil, err
	}

	llmClient, err := llm.NewGroqClient(cfg.GroqAPIKey, llm.GroqOptions{
		Model:       cfg.Groq.Model,
		Temperature: cfg.Groq.Temperature,
		MaxTokens:   cfg.Groq.MaxTokens,
	}, p)
	if err != nil {
		return nil, err
	}

	return NewService(ServiceOptions{
		Config: cfg,
		LLM:    llmClient,
		Searchers: []stock.Searcher{
			pexels.NewClient(cfg.PexelsAPIKey),
			unsplash.NewClient(cfg.UnsplashAccessKey),
		},
		Downloader: stock.NewDownloader(),
	}), nil
}
