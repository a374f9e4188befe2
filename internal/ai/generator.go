package ai

import "context"

// Generator produces a free-form text completion for a single prompt.
// Implementations are expected to be safe for concurrent use.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}
