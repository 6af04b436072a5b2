// Extract provides text extraction utilities for the wordstat CLI tool.
// It turns PDF and DOCX documents into one plain-text string for analysis.
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chriscorrea/wordstat/internal/source"
)

// Error reports a document that could not be parsed. It is fatal to the run
// and is never retried.
type Error struct {
	Path   string
	Format source.Format
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to extract text from %s %q: %v", e.Format, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Text extracts the plain text of doc.
//
// PDF text is page text concatenated in page order, one line per text row.
// DOCX text is the text of every paragraph, each followed by a single space.
//
// Parse failures are returned as *Error; a cancelled ctx is returned unwrapped.
func Text(ctx context.Context, doc source.Document) (string, error) {
	var (
		text string
		err  error
	)

	switch doc.Format {
	case source.PDF:
		text, err = pdfText(ctx, doc.Path)
	case source.DOCX:
		text, err = docxText(ctx, doc.Path)
	default:
		return "", fmt.Errorf("%w: %s", source.ErrUnsupportedFormat, doc.Format)
	}

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", &Error{Path: doc.Path, Format: doc.Format, Err: err}
	}

	slog.Debug("Text extracted", "path", doc.Path, "format", doc.Format, "textLength", len(text))
	return text, nil
}
