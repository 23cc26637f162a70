// Package pdf turns uploaded PDF bytes into plain text.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	lpdf "github.com/ledongthuc/pdf"
)

// ErrEmptyContent is returned when a PDF parses but has no extractable text.
var ErrEmptyContent = errors.New("No text could be extracted from the PDF. It might be scanned or protected.")

// ExtractionError wraps a failure of the underlying PDF parser.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("Error reading PDF: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// IsPDF reports whether filename has a .pdf extension (case-insensitive).
func IsPDF(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".pdf")
}

// Extractor is the default text extractor. The zero value is ready to use.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract implements the extractor used by the HTTP handlers.
func (Extractor) Extract(data []byte) (string, error) {
	return Extract(data)
}

// Extract returns the text of every page that has any, each followed by a newline.
// Pages without text contribute nothing.
func Extract(data []byte) (text string, err error) {
	// The parser panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Err: fmt.Errorf("%v", r)}
		}
	}()

	reader, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Err: err}
	}

	var buf strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Err: fmt.Errorf("page %d: %w", i, err)}
		}
		if pageText == "" {
			continue
		}
		buf.WriteString(pageText)
		buf.WriteString("\n")
	}

	text = buf.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyContent
	}
	return text, nil
}
