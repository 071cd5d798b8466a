package rag

import (
	"fmt"
	"strings"

	"letterqa/internal/models"
)

const chunkSeparator = "\n\n---\n\n"

// BuildContext assembles retrieved chunks into the context string handed to
// the generator: each chunk labeled with an ordinal [Chunk N] marker plus
// source/year annotation when known, in retrieval order (best match first),
// joined by a clear separator. The markers are what the generator cites.
func BuildContext(chunks []models.RetrievedChunk) string {
	parts := make([]string, 0, len(chunks))
	for i, c := range chunks {
		annotation := ""
		if c.Source != "" || c.Year != 0 {
			annotation = " (Source: " + c.Source
			if c.Year != 0 {
				annotation += fmt.Sprintf(", Year: %d", c.Year)
			}
			annotation += ")"
		}
		parts = append(parts, fmt.Sprintf("[Chunk %d%s]\n%s", i+1, annotation, c.Content))
	}
	return strings.Join(parts, chunkSeparator)
}
