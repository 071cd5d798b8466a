package util

import (
	"fmt"
	"strings"
)

// ChunkText splits text into fixed-width overlapping windows of size runes,
// advancing by size-overlap each step. Windows are trimmed and empty ones
// dropped, so returned chunks are always non-empty. An overlap that is not
// strictly smaller than size would never terminate the scan and is rejected.
func ChunkText(text string, size, overlap int) ([]string, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("chunk overlap %d must be in [0, %d)", overlap, size)
	}
	runes := []rune(text)
	step := size - overlap
	out := make([]string, 0, (len(runes)+step-1)/step)
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		part := strings.TrimSpace(string(runes[start:end]))
		if part != "" {
			out = append(out, part)
		}
	}
	return out, nil
}
