package storage

import (
	"context"
	"errors"
	"fmt"

	"letterqa/internal/util"

	"github.com/jackc/pgx/v5"
)

// EnsureSchema idempotently creates the pgvector extension, the documents
// table and the document_chunks table with an embedding column of the
// configured width. Safe to call on every startup. If the chunks table
// already exists with a different vector width the call fails instead of
// letting two embedding spaces mix in one store.
func EnsureSchema(ctx context.Context, db *DB, embedDim int) error {
	if embedDim <= 0 {
		return fmt.Errorf("embedding dimension must be positive, got %d", embedDim)
	}
	if _, err := db.Pool.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS vector`); err != nil {
		return fmt.Errorf("create vector extension: %w", err)
	}
	if _, err := db.Pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS documents (
  id BIGSERIAL PRIMARY KEY,
  source TEXT NOT NULL,
  year INT NOT NULL,
  page_count INT NOT NULL DEFAULT 0,
  file_size BIGINT NOT NULL DEFAULT 0,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`); err != nil {
		return fmt.Errorf("create documents table: %w", err)
	}
	if _, err := db.Pool.Exec(ctx, fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS document_chunks (
  id BIGSERIAL PRIMARY KEY,
  document_id BIGINT NOT NULL REFERENCES documents(id),
  chunk_index INT NOT NULL,
  content TEXT NOT NULL,
  embedding VECTOR(%d) NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`, embedDim)); err != nil {
		return fmt.Errorf("create document_chunks table: %w", err)
	}
	stored, err := storedEmbeddingDim(ctx, db)
	if err != nil {
		return err
	}
	if stored != embedDim {
		return fmt.Errorf("store holds %d-dim embeddings but %d configured: %w", stored, embedDim, util.ErrDimensionMismatch)
	}
	return nil
}

// storedEmbeddingDim reads the vector typmod of the embedding column, which
// pgvector stores as the declared dimension.
func storedEmbeddingDim(ctx context.Context, db *DB) (int, error) {
	var dim int
	err := db.Pool.QueryRow(ctx, `
SELECT a.atttypmod
FROM pg_attribute a
JOIN pg_class c ON c.oid = a.attrelid
WHERE c.relname = 'document_chunks' AND a.attname = 'embedding'`).Scan(&dim)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("document_chunks.embedding column not found")
		}
		return 0, fmt.Errorf("read embedding column width: %w", err)
	}
	return dim, nil
}
