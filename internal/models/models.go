package models

import "time"

type Document struct {
	ID        int64     `json:"id"`
	Source    string    `json:"source"`
	Year      int       `json:"year"`
	PageCount int       `json:"page_count"`
	FileSize  int64     `json:"file_size"`
	CreatedAt time.Time `json:"created_at"`
}

type Chunk struct {
	ID         int64     `json:"id"`
	DocumentID int64     `json:"document_id"`
	ChunkIndex int       `json:"chunk_index"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// RetrievedChunk is produced fresh per query and never persisted.
// Score is 1 - cosine distance, so identical vectors score 1.0.
type RetrievedChunk struct {
	Content string  `json:"content"`
	Score   float64 `json:"score"`
	Source  string  `json:"source,omitempty"`
	Year    int     `json:"year,omitempty"`
}

type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
