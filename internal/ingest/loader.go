package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"letterqa/internal/util"

	"github.com/ledongthuc/pdf"
)

// PDFFile is one ingestable file: a .pdf whose name carries a parsable
// publication year. Files without one are excluded here, upstream of
// chunking, as a data-quality filter rather than a failure.
type PDFFile struct {
	Path string
	Year int
}

func ListPDFs(dir string) ([]PDFFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}
	files := make([]PDFFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
			continue
		}
		year, ok := util.YearFromFilename(name)
		if !ok {
			continue
		}
		files = append(files, PDFFile{Path: filepath.Join(dir, name), Year: year})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

type ExtractedDocument struct {
	Text      string
	PageCount int
	FileSize  int64
}

// ExtractText pulls plain text plus page count and byte size out of a PDF.
// The extraction library is treated as a black box: bytes in, text out.
func ExtractText(path string) (ExtractedDocument, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ExtractedDocument{}, fmt.Errorf("stat pdf: %w", err)
	}
	f, r, err := pdf.Open(path)
	if err != nil {
		return ExtractedDocument{}, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return ExtractedDocument{}, fmt.Errorf("extract pdf text: %w", err)
	}
	buf := new(strings.Builder)
	if _, err := io.Copy(buf, reader); err != nil {
		return ExtractedDocument{}, fmt.Errorf("read extracted text: %w", err)
	}
	text := util.SanitizeText(buf.String())
	if text == "" {
		return ExtractedDocument{}, util.ErrNoExtractableText
	}
	return ExtractedDocument{
		Text:      text,
		PageCount: r.NumPage(),
		FileSize:  info.Size(),
	}, nil
}
