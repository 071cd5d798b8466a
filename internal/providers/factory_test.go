package providers

import (
	"testing"

	"letterqa/internal/config"

	"github.com/stretchr/testify/require"
)

func TestNewEmbedderDimensionMismatchFailsFast(t *testing.T) {
	cfg := config.Config{EmbedProvider: "local", EmbedDim: 1536}
	_, err := NewEmbedder(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "384")
}

func TestNewEmbedderLocal(t *testing.T) {
	cfg := config.Config{EmbedProvider: "local", EmbedDim: 384}
	e, err := NewEmbedder(cfg)
	require.NoError(t, err)
	require.Equal(t, "local", e.Name())
}

func TestNewEmbedderUnknown(t *testing.T) {
	_, err := NewEmbedder(config.Config{EmbedProvider: "qdrant"})
	require.Error(t, err)
}

func TestNewGenerator(t *testing.T) {
	g, err := NewGenerator(config.Config{LLMProvider: "mock"})
	require.NoError(t, err)
	require.Equal(t, "mock", g.Name())

	_, err = NewGenerator(config.Config{LLMProvider: "nope"})
	require.Error(t, err)
}
