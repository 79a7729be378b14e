package llm

import "context"

// Client proposes image search terms for a script. The returned order is
// the model's output order and is significant downstream: earlier terms
// are searched first and dominate the final selection.
type Client interface {
	ExtractSearchTerms(ctx context.Context, script string) ([]string, error)
}
