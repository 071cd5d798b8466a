package activities

import "letterqa/internal/ingest"

type ListPDFsInput struct {
	InputDir string `json:"input_dir"`
}

type ListPDFsOutput struct {
	Files []ingest.PDFFile `json:"files"`
}

type ExtractTextInput struct {
	Path string `json:"path"`
}

type ExtractTextOutput struct {
	Text      string `json:"text"`
	PageCount int    `json:"page_count"`
	FileSize  int64  `json:"file_size"`
}

type InsertDocumentInput struct {
	Source    string `json:"source"`
	Year      int    `json:"year"`
	PageCount int    `json:"page_count"`
	FileSize  int64  `json:"file_size"`
}

type InsertDocumentOutput struct {
	DocumentID int64 `json:"document_id"`
}

type ChunkTextInput struct {
	Text         string `json:"text"`
	ChunkSize    int    `json:"chunk_size"`
	ChunkOverlap int    `json:"chunk_overlap"`
}

type ChunkTextOutput struct {
	Chunks []string `json:"chunks"`
}

type StoreChunksInput struct {
	DocumentID int64    `json:"document_id"`
	Chunks     []string `json:"chunks"`
}

type StoreChunksOutput struct {
	Result ingest.StoreResult `json:"result"`
}
