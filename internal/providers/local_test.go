package providers

import (
	"context"
	"math"
	"strings"
	"testing"
)

func TestLocalEmbedderDeterministic(t *testing.T) {
	e := NewLocalEmbedder()
	a, err := e.Embed(context.Background(), []string{"Buffett believes in long-term value investing."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := e.Embed(context.Background(), []string{"Buffett believes in long-term value investing."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range a[0] {
		if a[0][i] != b[0][i] {
			t.Fatalf("component %d differs between identical calls: %v vs %v", i, a[0][i], b[0][i])
		}
	}
}

func TestLocalEmbedderDimensionAndNorm(t *testing.T) {
	e := NewLocalEmbedder()
	vecs, err := e.Embed(context.Background(), []string{"the quick brown fox jumps over the lazy dog"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v := vecs[0]
	if len(v) != 384 {
		t.Fatalf("expected 384 components, got %d", len(v))
	}
	if e.Dimension() != 384 {
		t.Fatalf("Dimension() = %d", e.Dimension())
	}
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if math.Abs(math.Sqrt(sum)-1.0) > 1e-5 {
		t.Fatalf("expected unit norm, got %v", math.Sqrt(sum))
	}
}

func TestLocalEmbedderEmptyAndPunctuationOnly(t *testing.T) {
	e := NewLocalEmbedder()
	for _, text := range []string{"", "?!...,;:", "   \t\n"} {
		vecs, err := e.Embed(context.Background(), []string{text})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, x := range vecs[0] {
			if x != 0 {
				t.Fatalf("input %q: expected all-zero vector, component %d = %v", text, i, x)
			}
		}
	}
}

func TestLocalEmbedderCapsTokens(t *testing.T) {
	e := NewLocalEmbedder()
	// 150 distinct tokens; only the first 100 may contribute mass.
	words := make([]string, 0, 150)
	for i := 0; i < 150; i++ {
		words = append(words, strings.Repeat("ab", i+1))
	}
	full, _ := e.Embed(context.Background(), []string{strings.Join(words, " ")})
	capped, _ := e.Embed(context.Background(), []string{strings.Join(words[:100], " ")})
	for i := range full[0] {
		if full[0][i] != capped[0][i] {
			t.Fatalf("tokens past the 100th changed the embedding at component %d", i)
		}
	}
}

func TestLocalEmbedderSharedTokensOverlap(t *testing.T) {
	e := NewLocalEmbedder()
	vecs, err := e.Embed(context.Background(), []string{
		"long-term value investing",
		"Buffett believes in long-term value investing.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var dot float64
	for i := range vecs[0] {
		dot += float64(vecs[0][i]) * float64(vecs[1][i])
	}
	if dot <= 0 {
		t.Fatalf("expected positive cosine similarity for overlapping vocabulary, got %v", dot)
	}
}

func TestTokenizeStripsPunctuationWithoutSplitting(t *testing.T) {
	toks := tokenize("Don't STOP #1's run!")
	want := []string{"dont", "stop", "1s", "run"}
	if len(toks) != len(want) {
		t.Fatalf("expected %v, got %v", want, toks)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Fatalf("token %d: expected %q, got %q", i, want[i], toks[i])
		}
	}
}
