package workflows

import "letterqa/internal/ingest"

type IngestInput struct {
	InputDir     string `json:"input_dir"`
	ChunkSize    int    `json:"chunk_size,omitempty"`
	ChunkOverlap int    `json:"chunk_overlap,omitempty"`
}

type DocumentIngestInput struct {
	File         ingest.PDFFile `json:"file"`
	ChunkSize    int            `json:"chunk_size,omitempty"`
	ChunkOverlap int            `json:"chunk_overlap,omitempty"`
}

type DocumentIngestOutput struct {
	DocumentID int64              `json:"document_id"`
	Chunks     ingest.StoreResult `json:"chunks"`
}

type IngestSummary struct {
	Documents     int `json:"documents"`
	ChunksStored  int `json:"chunks_stored"`
	ChunksSkipped int `json:"chunks_skipped"`
	ChunksFailed  int `json:"chunks_failed"`
}

type IngestProgress struct {
	Total       int               `json:"total"`
	Done        int               `json:"done"`
	PerDocument map[string]string `json:"per_document_status"`
	Summary     IngestSummary     `json:"summary"`
}
