package rag

import (
	"context"
	"fmt"

	"letterqa/internal/models"
	"letterqa/internal/providers"
)

// NoContextAnswer is returned without spending a generation call when
// retrieval comes back empty; generating from empty context only invites
// hallucination.
const NoContextAnswer = "I couldn't find any relevant information in the ingested letters to answer this question."

type ChunkRetriever interface {
	Retrieve(ctx context.Context, query string, limit int) ([]models.RetrievedChunk, error)
}

// Verification echoes retrieval metadata back to the caller so answers can
// be audited against the store. It does not independently confirm the model
// honored the context-only instructions; that trust boundary is documented,
// not enforced.
type Verification struct {
	ChunksRetrieved      int        `json:"chunksRetrieved"`
	ChunksUsed           []ChunkUse `json:"chunksUsed"`
	ContextLength        int        `json:"contextLength"`
	VerifiedFromDatabase bool       `json:"verifiedFromDatabase"`
}

type ChunkUse struct {
	ChunkNumber    int    `json:"chunkNumber"`
	Source         string `json:"source"`
	Year           string `json:"year"`
	RelevanceScore string `json:"relevanceScore"`
	Preview        string `json:"preview"`
}

type Result struct {
	Question     string                  `json:"question"`
	Answer       string                  `json:"answer"`
	Chunks       []models.RetrievedChunk `json:"chunks"`
	Verification Verification            `json:"ragVerification"`
}

type Service struct {
	retriever ChunkRetriever
	generator providers.Generator
}

func NewService(retriever ChunkRetriever, generator providers.Generator) *Service {
	return &Service{retriever: retriever, generator: generator}
}

// Answer retrieves context for the question and generates a grounded answer.
// Retrieval and generation failures surface as errors; the service never
// fabricates an answer on a failed generation call.
func (s *Service) Answer(ctx context.Context, question string, limit int) (Result, error) {
	chunks, err := s.retriever.Retrieve(ctx, question, limit)
	if err != nil {
		return Result{}, err
	}
	if len(chunks) == 0 {
		return Result{
			Question: question,
			Answer:   NoContextAnswer,
			Chunks:   []models.RetrievedChunk{},
			Verification: Verification{
				ChunksUsed:           []ChunkUse{},
				VerifiedFromDatabase: true,
			},
		}, nil
	}

	contextText := BuildContext(chunks)
	answer, err := s.generator.Generate(ctx, question, contextText)
	if err != nil {
		return Result{}, fmt.Errorf("generation failed: %w", err)
	}

	used := make([]ChunkUse, 0, len(chunks))
	for i, c := range chunks {
		used = append(used, ChunkUse{
			ChunkNumber:    i + 1,
			Source:         SourceLabel(c),
			Year:           YearLabel(c),
			RelevanceScore: fmt.Sprintf("%.4f", c.Score),
			Preview:        preview(c.Content, 100),
		})
	}
	return Result{
		Question: question,
		Answer:   answer,
		Chunks:   chunks,
		Verification: Verification{
			ChunksRetrieved:      len(chunks),
			ChunksUsed:           used,
			ContextLength:        len(contextText),
			VerifiedFromDatabase: true,
		},
	}, nil
}

func preview(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
