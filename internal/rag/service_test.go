package rag

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"letterqa/internal/models"

	"github.com/stretchr/testify/require"
)

type stubRetriever struct {
	chunks []models.RetrievedChunk
	err    error
	limit  int
}

func (s *stubRetriever) Retrieve(ctx context.Context, query string, limit int) ([]models.RetrievedChunk, error) {
	s.limit = limit
	return s.chunks, s.err
}

type countingGenerator struct {
	calls  int
	answer string
	err    error
	gotCtx string
}

func (g *countingGenerator) Name() string { return "counting" }

func (g *countingGenerator) Generate(ctx context.Context, question, contextText string) (string, error) {
	g.calls++
	g.gotCtx = contextText
	return g.answer, g.err
}

func TestAnswerEmptyRetrievalShortCircuits(t *testing.T) {
	gen := &countingGenerator{answer: "should never be used"}
	svc := NewService(&stubRetriever{}, gen)

	res, err := svc.Answer(context.Background(), "anything", 5)
	require.NoError(t, err)
	require.Equal(t, NoContextAnswer, res.Answer)
	require.Zero(t, gen.calls, "generator must not be invoked on empty retrieval")
	require.Zero(t, res.Verification.ChunksRetrieved)
	require.Zero(t, res.Verification.ContextLength)
	require.Empty(t, res.Verification.ChunksUsed)
	require.True(t, res.Verification.VerifiedFromDatabase)
}

func TestAnswerBuildsVerification(t *testing.T) {
	chunks := []models.RetrievedChunk{
		{Content: strings.Repeat("a", 150), Source: "letter-2019.pdf", Year: 2019, Score: 0.8765432},
		{Content: "short body", Score: 0.25},
	}
	gen := &countingGenerator{answer: "Grounded [Chunk 1]."}
	svc := NewService(&stubRetriever{chunks: chunks}, gen)

	res, err := svc.Answer(context.Background(), "what about float?", 5)
	require.NoError(t, err)
	require.Equal(t, "Grounded [Chunk 1].", res.Answer)
	require.Equal(t, 1, gen.calls)
	require.Equal(t, len(gen.gotCtx), res.Verification.ContextLength)
	require.Equal(t, 2, res.Verification.ChunksRetrieved)

	first := res.Verification.ChunksUsed[0]
	require.Equal(t, 1, first.ChunkNumber)
	require.Equal(t, "letter-2019.pdf", first.Source)
	require.Equal(t, "2019", first.Year)
	require.Equal(t, "0.8765", first.RelevanceScore)
	require.Equal(t, strings.Repeat("a", 100)+"...", first.Preview)

	second := res.Verification.ChunksUsed[1]
	require.Equal(t, "Unknown", second.Source)
	require.Equal(t, "Unknown", second.Year)
	require.Equal(t, "short body", second.Preview)
}

func TestAnswerGenerationFailureSurfaces(t *testing.T) {
	gen := &countingGenerator{err: fmt.Errorf("model unavailable")}
	svc := NewService(&stubRetriever{chunks: []models.RetrievedChunk{{Content: "ctx chunk"}}}, gen)

	_, err := svc.Answer(context.Background(), "q", 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "generation failed")
}

func TestAnswerRetrievalFailureSurfaces(t *testing.T) {
	svc := NewService(&stubRetriever{err: fmt.Errorf("store unavailable")}, &countingGenerator{})
	_, err := svc.Answer(context.Background(), "q", 5)
	require.Error(t, err)
}
