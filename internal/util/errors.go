package util

import "errors"

var (
	ErrNoExtractableText = errors.New("no extractable text found in PDF")
	ErrChunkTooShort     = errors.New("chunk content below minimum length")
	ErrDimensionMismatch = errors.New("embedding dimension does not match store")
)
