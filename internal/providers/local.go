package providers

import (
	"context"
	"math"
	"strings"
	"unicode"
)

const (
	localDim       = 384
	localMaxTokens = 100
	hashBase       = 31
)

// LocalEmbedder is a bag-of-hashed-tokens model: each of the first 100
// tokens increments the bucket at hash(token) mod 384, then the vector is
// L2-normalized. Hash collisions are the accepted price for having no
// external dependency; it captures lexical overlap, not semantics.
type LocalEmbedder struct{}

func NewLocalEmbedder() *LocalEmbedder {
	return &LocalEmbedder{}
}

func (e *LocalEmbedder) Name() string { return "local" }

func (e *LocalEmbedder) Dimension() int { return localDim }

func (e *LocalEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	_ = ctx
	out := make([][]float32, 0, len(texts))
	for _, t := range texts {
		out = append(out, hashEmbedding(t))
	}
	return out, nil
}

func hashEmbedding(text string) []float32 {
	vec := make([]float32, localDim)
	tokens := tokenize(text)
	if len(tokens) > localMaxTokens {
		tokens = tokens[:localMaxTokens]
	}
	for _, tok := range tokens {
		var h uint32
		for _, c := range tok {
			h = h*hashBase + uint32(c)
		}
		vec[h%localDim]++
	}
	return l2Normalize(vec)
}

// tokenize lower-cases, drops every non-alphanumeric rune (without inserting
// a separator, so "don't" becomes "dont"), and splits on whitespace.
func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case unicode.IsSpace(r):
			return r
		default:
			return -1
		}
	}, strings.ToLower(text))
	return strings.Fields(cleaned)
}

// l2Normalize divides every component by the Euclidean norm. A zero norm is
// replaced by 1 so an all-zero vector stays all-zero instead of dividing by
// zero.
func l2Normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		norm = 1
	}
	for i := range v {
		v[i] = float32(float64(v[i]) / norm)
	}
	return v
}
