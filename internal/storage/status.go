package storage

import "context"

// Status bundles the read-only probes the API's readiness endpoint needs.
type Status struct {
	db     *DB
	docs   *DocumentRepo
	chunks *ChunkRepo
}

func NewStatus(db *DB, docs *DocumentRepo, chunks *ChunkRepo) *Status {
	return &Status{db: db, docs: docs, chunks: chunks}
}

func (s *Status) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Status) CountDocuments(ctx context.Context) (int64, error) {
	return s.docs.CountDocuments(ctx)
}

func (s *Status) CountChunks(ctx context.Context) (int64, error) {
	return s.chunks.CountChunks(ctx)
}
