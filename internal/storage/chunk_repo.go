package storage

import (
	"context"
	"fmt"
	"strings"

	"letterqa/internal/util"
	"letterqa/internal/vector"
)

type ChunkRepo struct {
	db            *DB
	embedDim      int
	minChunkChars int
}

func NewChunkRepo(db *DB, embedDim, minChunkChars int) *ChunkRepo {
	return &ChunkRepo{db: db, embedDim: embedDim, minChunkChars: minChunkChars}
}

// InsertChunk persists one chunk with its embedding. Content below the
// minimum length and vectors of the wrong width are rejected here rather
// than silently truncated or padded; callers skip short chunks before
// embedding, so tripping the length check indicates a caller bug.
func (r *ChunkRepo) InsertChunk(ctx context.Context, documentID int64, chunkIndex int, content string, embedding []float32) error {
	if len(strings.TrimSpace(content)) < r.minChunkChars {
		return fmt.Errorf("chunk %d of document %d: %w", chunkIndex, documentID, util.ErrChunkTooShort)
	}
	if len(embedding) != r.embedDim {
		return fmt.Errorf("chunk %d of document %d has %d-dim embedding, store expects %d: %w",
			chunkIndex, documentID, len(embedding), r.embedDim, util.ErrDimensionMismatch)
	}
	_, err := r.db.Pool.Exec(ctx, `
INSERT INTO document_chunks (document_id, chunk_index, content, embedding)
VALUES ($1, $2, $3, $4::vector)`,
		documentID, chunkIndex, content, vector.ToLiteral(embedding))
	if err != nil {
		return fmt.Errorf("insert chunk %d of document %d: %w", chunkIndex, documentID, err)
	}
	return nil
}

func (r *ChunkRepo) CountChunks(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM document_chunks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count chunks: %w", err)
	}
	return n, nil
}
