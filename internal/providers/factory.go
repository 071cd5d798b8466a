package providers

import (
	"fmt"

	"letterqa/internal/config"
)

// NewEmbedder builds the configured embedding strategy and fails fast when
// its output width disagrees with the store's configured vector width.
// Mixing widths in one store corrupts similarity search.
func NewEmbedder(cfg config.Config) (Embedder, error) {
	var e Embedder
	switch cfg.EmbedProvider {
	case "local":
		e = NewLocalEmbedder()
	case "openai":
		e = NewOpenAIClient(cfg.OpenAIKey)
	default:
		return nil, fmt.Errorf("unknown embed provider %q", cfg.EmbedProvider)
	}
	if e.Dimension() != cfg.EmbedDim {
		return nil, fmt.Errorf("embedder %s emits %d-dim vectors, store configured for %d", e.Name(), e.Dimension(), cfg.EmbedDim)
	}
	return e, nil
}

func NewGenerator(cfg config.Config) (Generator, error) {
	switch cfg.LLMProvider {
	case "openai":
		return NewOpenAIClient(cfg.OpenAIKey), nil
	case "mock":
		return NewMockGenerator(), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLMProvider)
	}
}
