package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	LocalEmbedDim  = 384
	OpenAIEmbedDim = 1536
)

type Config struct {
	APIAddr           string
	TemporalAddress   string
	TemporalTaskQueue string
	PostgresURL       string
	DataDir           string
	ChunkSize         int
	ChunkOverlap      int
	MinChunkChars     int
	EmbedProvider     string
	LLMProvider       string
	EmbedDim          int
	OpenAIKey         string
	RetrieveLimit     int
}

func Load() Config {
	provider := getenv("LETTERQA_EMBED_PROVIDER", "local")
	defaultDim := LocalEmbedDim
	if provider == "openai" {
		defaultDim = OpenAIEmbedDim
	}
	return Config{
		APIAddr:           getenv("LETTERQA_API_ADDR", ":8080"),
		TemporalAddress:   getenv("LETTERQA_TEMPORAL_ADDRESS", "localhost:7233"),
		TemporalTaskQueue: getenv("LETTERQA_TEMPORAL_TASK_QUEUE", "letterqa"),
		PostgresURL:       getenv("DATABASE_URL", ""),
		DataDir:           getenv("LETTERQA_DATA_DIR", "./data/letters"),
		ChunkSize:         getenvInt("LETTERQA_CHUNK_SIZE", 800),
		ChunkOverlap:      getenvInt("LETTERQA_CHUNK_OVERLAP", 100),
		MinChunkChars:     getenvInt("LETTERQA_MIN_CHUNK_CHARS", 20),
		EmbedProvider:     provider,
		LLMProvider:       getenv("LETTERQA_LLM_PROVIDER", "openai"),
		EmbedDim:          getenvInt("LETTERQA_EMBED_DIM", defaultDim),
		OpenAIKey:         getenv("OPENAI_API_KEY", ""),
		RetrieveLimit:     getenvInt("LETTERQA_RETRIEVE_LIMIT", 5),
	}
}

// Validate rejects configurations that would corrupt the store or hang the
// chunker. Must run before any component touches Postgres.
func (c Config) Validate() error {
	if c.PostgresURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("chunk overlap %d must be in [0, %d)", c.ChunkOverlap, c.ChunkSize)
	}
	switch c.EmbedProvider {
	case "local":
		if c.EmbedDim != LocalEmbedDim {
			return fmt.Errorf("local embedder produces %d-dim vectors, store configured for %d", LocalEmbedDim, c.EmbedDim)
		}
	case "openai":
		if c.EmbedDim != OpenAIEmbedDim {
			return fmt.Errorf("openai embedder produces %d-dim vectors, store configured for %d", OpenAIEmbedDim, c.EmbedDim)
		}
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai embed provider")
		}
	default:
		return fmt.Errorf("unknown embed provider %q", c.EmbedProvider)
	}
	if c.LLMProvider == "openai" && c.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for the openai llm provider")
	}
	return nil
}

func getenv(k, fallback string) string {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	return v
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
