// Package ingestion converts uploaded resume documents into plain text
// suitable for LLM parsing.
package ingestion

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"
)

// Extractor converts a document into plain text.
type Extractor interface {
	// ExtractText reads the document and returns its cleaned text content
	ExtractText(r io.ReaderAt, size int64) (string, error)
}

// PDFExtractor extracts text from PDF resumes.
type PDFExtractor struct{}

// NewPDFExtractor creates a PDFExtractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractText returns the cleaned plain text of a PDF document. The pdf
// library panics on some malformed inputs, so parsing is isolated behind
// a recover.
func (e *PDFExtractor) ExtractText(r io.ReaderAt, size int64) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("failed to parse PDF: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}

	cleaned := CleanText(buf.String())
	if cleaned == "" {
		return "", fmt.Errorf("PDF contains no extractable text")
	}
	return cleaned, nil
}

// ExtractFile extracts text from a PDF file on disk.
func (e *PDFExtractor) ExtractFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat file: %w", err)
	}

	return e.ExtractText(f, info.Size())
}
