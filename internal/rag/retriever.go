package rag

import (
	"context"
	"fmt"

	"letterqa/internal/models"
	"letterqa/internal/providers"
)

const DefaultRetrieveLimit = 5

// ChunkSearcher is the slice of the vector store the retriever needs.
type ChunkSearcher interface {
	SearchChunks(ctx context.Context, queryVec []float32, limit int) ([]models.RetrievedChunk, error)
}

// Retriever embeds a query with the same embedder that populated the store
// and returns the nearest chunks, best match first. An empty result is a
// valid outcome; a failed query embedding fails the whole retrieval since no
// chunk embedding can substitute for it.
type Retriever struct {
	embedder providers.Embedder
	searcher ChunkSearcher
}

func NewRetriever(embedder providers.Embedder, searcher ChunkSearcher) *Retriever {
	return &Retriever{embedder: embedder, searcher: searcher}
}

func (r *Retriever) Retrieve(ctx context.Context, query string, limit int) ([]models.RetrievedChunk, error) {
	if limit <= 0 {
		limit = DefaultRetrieveLimit
	}
	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embedder returned no vector for query")
	}
	results, err := r.searcher.SearchChunks(ctx, vectors[0], limit)
	if err != nil {
		return nil, fmt.Errorf("search chunks: %w", err)
	}
	return results, nil
}

// SourceLabel and YearLabel are presentation defaults, not stored values:
// missing provenance is reported as "Unknown".
func SourceLabel(c models.RetrievedChunk) string {
	if c.Source == "" {
		return "Unknown"
	}
	return c.Source
}

func YearLabel(c models.RetrievedChunk) string {
	if c.Year == 0 {
		return "Unknown"
	}
	return fmt.Sprintf("%d", c.Year)
}
