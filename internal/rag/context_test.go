package rag

import (
	"strings"
	"testing"

	"letterqa/internal/models"

	"github.com/stretchr/testify/require"
)

func TestBuildContextMarkersAndSeparator(t *testing.T) {
	chunks := []models.RetrievedChunk{
		{Content: "first chunk", Source: "letter-1998.pdf", Year: 1998, Score: 0.91},
		{Content: "second chunk", Score: 0.42},
	}
	ctx := BuildContext(chunks)

	require.Contains(t, ctx, "[Chunk 1 (Source: letter-1998.pdf, Year: 1998)]\nfirst chunk")
	require.Contains(t, ctx, "[Chunk 2]\nsecond chunk")
	require.Equal(t, 1, strings.Count(ctx, "\n\n---\n\n"))
	// Retrieval order is preserved: best match first.
	require.Less(t, strings.Index(ctx, "first chunk"), strings.Index(ctx, "second chunk"))
}

func TestBuildContextYearOnlyAnnotation(t *testing.T) {
	ctx := BuildContext([]models.RetrievedChunk{{Content: "c", Year: 2001}})
	require.Contains(t, ctx, "[Chunk 1 (Source: , Year: 2001)]")
}

func TestBuildContextEmpty(t *testing.T) {
	require.Equal(t, "", BuildContext(nil))
}

func TestProvenanceLabels(t *testing.T) {
	require.Equal(t, "Unknown", SourceLabel(models.RetrievedChunk{}))
	require.Equal(t, "Unknown", YearLabel(models.RetrievedChunk{}))
	require.Equal(t, "a.pdf", SourceLabel(models.RetrievedChunk{Source: "a.pdf"}))
	require.Equal(t, "1998", YearLabel(models.RetrievedChunk{Year: 1998}))
}
