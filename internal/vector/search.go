package vector

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"letterqa/internal/models"

	"github.com/jackc/pgx/v5"
)

// Queryer is the slice of pgx the searcher needs; the pool satisfies it and
// tests can substitute a stub store.
type Queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Searcher struct {
	q Queryer
}

func NewSearcher(q Queryer) *Searcher {
	return &Searcher{q: q}
}

// SearchChunks returns the chunks nearest to queryVec under cosine distance,
// best match first, joined back to their document for source and year
// provenance. Score is 1 - cosine distance: 1.0 for an identical vector,
// trending toward 0 or below for dissimilar ones. An empty store yields an
// empty, non-error result.
func (s *Searcher) SearchChunks(ctx context.Context, queryVec []float32, limit int) ([]models.RetrievedChunk, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := s.q.Query(ctx, `
SELECT dc.content,
       d.source,
       d.year,
       1 - (dc.embedding <=> $1::vector) AS score
FROM document_chunks dc
JOIN documents d ON d.id = dc.document_id
ORDER BY dc.embedding <=> $1::vector
LIMIT $2`, ToLiteral(queryVec), limit)
	if err != nil {
		return nil, fmt.Errorf("query vector search: %w", err)
	}
	defer rows.Close()

	results := make([]models.RetrievedChunk, 0, limit)
	for rows.Next() {
		var r models.RetrievedChunk
		if err := rows.Scan(&r.Content, &r.Source, &r.Year, &r.Score); err != nil {
			return nil, fmt.Errorf("scan search row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate search rows: %w", err)
	}
	return results, nil
}

// ToLiteral encodes a vector in pgvector's bracketed literal syntax,
// e.g. [0.12,-0.98,0].
func ToLiteral(v []float32) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(float64(x), 'g', -1, 32))
	}
	b.WriteByte(']')
	return b.String()
}
