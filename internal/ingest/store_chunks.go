package ingest

import (
	"context"
	"log"
	"strings"

	"letterqa/internal/providers"
)

// ChunkInserter is the slice of the chunk repository the pipeline needs.
type ChunkInserter interface {
	InsertChunk(ctx context.Context, documentID int64, chunkIndex int, content string, embedding []float32) error
}

type StoreResult struct {
	Stored  int `json:"stored"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// StoreChunks embeds and persists each chunk of one document in order. Each
// chunk is independent: one below the minimum length is skipped, one whose
// embedding or insert fails is logged and skipped, and neither aborts the
// document. chunk_index always carries the chunk's original position, so the
// indices of skipped chunks stay observable as gaps rather than being
// compacted away.
func StoreChunks(ctx context.Context, documentID int64, chunks []string, minChars int, embedder providers.Embedder, inserter ChunkInserter) StoreResult {
	var res StoreResult
	for i, chunk := range chunks {
		if len(strings.TrimSpace(chunk)) < minChars {
			res.Skipped++
			continue
		}
		vectors, err := embedder.Embed(ctx, []string{chunk})
		if err != nil || len(vectors) == 0 {
			log.Printf("embed chunk %d of document %d failed: %v", i, documentID, err)
			res.Failed++
			continue
		}
		if err := inserter.InsertChunk(ctx, documentID, i, chunk, vectors[0]); err != nil {
			log.Printf("insert chunk %d of document %d failed: %v", i, documentID, err)
			res.Failed++
			continue
		}
		res.Stored++
	}
	return res
}
