package providers

import "context"

// Embedder turns text into fixed-width vectors. Implementations must be
// deterministic for identical input and always emit Dimension()-wide vectors;
// vectors from embedders of different widths are not interchangeable in one
// store.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Dimension() int
	Name() string
}

// Generator answers a question from caller-assembled context under a strict
// context-only instruction contract. A failed call surfaces as an error,
// never as a fabricated answer.
type Generator interface {
	Generate(ctx context.Context, question, contextText string) (string, error)
	Name() string
}
