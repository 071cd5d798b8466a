package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeEmbedder struct {
	failOn map[string]bool
	calls  int
}

func (f *fakeEmbedder) Name() string   { return "fake" }
func (f *fakeEmbedder) Dimension() int { return 3 }

func (f *fakeEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.failOn[texts[0]] {
		return nil, fmt.Errorf("embedding backend unavailable")
	}
	return [][]float32{{1, 0, 0}}, nil
}

type recordingInserter struct {
	indices  []int
	contents []string
	failOn   map[int]bool
}

func (r *recordingInserter) InsertChunk(ctx context.Context, documentID int64, chunkIndex int, content string, embedding []float32) error {
	if r.failOn[chunkIndex] {
		return fmt.Errorf("insert rejected")
	}
	r.indices = append(r.indices, chunkIndex)
	r.contents = append(r.contents, content)
	return nil
}

func tenChunks() []string {
	chunks := make([]string, 10)
	for i := range chunks {
		chunks[i] = fmt.Sprintf("chunk number %d with enough content to pass", i)
	}
	return chunks
}

func TestStoreChunksPartialFailureTolerance(t *testing.T) {
	chunks := tenChunks()
	chunks[4] = "tiny" // below minimum length, silently skipped
	emb := &fakeEmbedder{failOn: map[string]bool{chunks[6]: true}}
	ins := &recordingInserter{}

	res := StoreChunks(context.Background(), 42, chunks, 20, emb, ins)

	require.Equal(t, 8, res.Stored)
	require.Equal(t, 1, res.Skipped)
	require.Equal(t, 1, res.Failed)
	// Indices of skipped chunks remain observable as gaps, not compacted.
	require.Equal(t, []int{0, 1, 2, 3, 5, 7, 8, 9}, ins.indices)
}

func TestStoreChunksInsertFailureDoesNotAbort(t *testing.T) {
	chunks := tenChunks()
	emb := &fakeEmbedder{}
	ins := &recordingInserter{failOn: map[int]bool{2: true}}

	res := StoreChunks(context.Background(), 1, chunks, 20, emb, ins)

	require.Equal(t, 9, res.Stored)
	require.Equal(t, 1, res.Failed)
	require.NotContains(t, ins.indices, 2)
}

func TestStoreChunksSkipsWithoutEmbedding(t *testing.T) {
	emb := &fakeEmbedder{}
	ins := &recordingInserter{}
	res := StoreChunks(context.Background(), 1, []string{"  short  "}, 20, emb, ins)
	require.Equal(t, StoreResult{Skipped: 1}, res)
	require.Zero(t, emb.calls, "short chunks must not spend an embedding call")
}

func TestStoreChunksEmpty(t *testing.T) {
	res := StoreChunks(context.Background(), 1, nil, 20, &fakeEmbedder{}, &recordingInserter{})
	require.Equal(t, StoreResult{}, res)
}

func TestListPDFsFiltersYearlessFiles(t *testing.T) {
	dir := t.TempDir()
	// report_2021.pdf stays out: the underscore fuses onto the digits, so
	// no year parses from the name.
	for _, name := range []string{"letter-1998.pdf", "letter-2020.pdf", "no-year.pdf", "2019.txt", "report-2021.PDF", "report_2021.pdf"} {
		require.NoError(t, writeEmptyFile(dir, name))
	}
	files, err := ListPDFs(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	years := make([]int, 0, len(files))
	for _, f := range files {
		years = append(years, f.Year)
		require.True(t, strings.HasSuffix(strings.ToLower(f.Path), ".pdf"))
	}
	require.ElementsMatch(t, []int{1998, 2020, 2021}, years)
}

func writeEmptyFile(dir, name string) error {
	return os.WriteFile(filepath.Join(dir, name), nil, 0o644)
}
