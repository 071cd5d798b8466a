package providers

import (
	"context"
	"fmt"
	"strings"
)

// MockGenerator produces a deterministic answer that cites every chunk
// marker present in the context. Useful where no LLM key is configured.
type MockGenerator struct{}

func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

func (m *MockGenerator) Name() string { return "mock" }

func (m *MockGenerator) Generate(ctx context.Context, question, contextText string) (string, error) {
	_ = ctx
	n := strings.Count(contextText, "[Chunk ")
	if n == 0 {
		return "The provided context does not contain sufficient information to answer this question.", nil
	}
	var b strings.Builder
	b.WriteString("Deterministic answer based solely on the retrieved context.")
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, " [Chunk %d]", i)
	}
	return b.String(), nil
}
