package extract

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfText reads every page of the PDF at path in order.
func pdfText(ctx context.Context, path string) (text string, err error) {
	// the parser panics on some malformed streams
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	pageCount := r.NumPage()
	slog.Debug("Reading PDF", "path", path, "pages", pageCount)

	var buf strings.Builder
	for i := 1; i <= pageCount; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		p := r.Page(i)
		if p.V.IsNull() {
			slog.Debug("Skipping null page", "page", i)
			continue
		}

		pageText, err := pageTextByRow(p)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}

		if buf.Len() > 0 && !strings.HasSuffix(buf.String(), "\n") {
			buf.WriteString("\n")
		}
		buf.WriteString(pageText)
	}

	return buf.String(), nil
}

// pageTextByRow rebuilds one line per text row, falling back to the
// library's plain text when rows cannot be computed.
func pageTextByRow(p pdf.Page) (string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		return p.GetPlainText(nil)
	}

	var buf strings.Builder
	for _, row := range rows {
		if row == nil || len(row.Content) == 0 {
			continue
		}
		line := joinRow(row.Content)
		if strings.TrimSpace(line) == "" {
			continue
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}

// joinRow orders a row's fragments left to right and inserts a space where
// the horizontal gap between fragments is wider than a fifth of the font size.
func joinRow(fragments []pdf.Text) string {
	sorted := make([]pdf.Text, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var buf strings.Builder
	for i, frag := range sorted {
		buf.WriteString(frag.S)
		if i == len(sorted)-1 {
			break
		}

		fontSize := frag.FontSize
		if fontSize <= 0 {
			fontSize = 12
		}
		gap := sorted[i+1].X - (frag.X + frag.W)
		if gap > fontSize*0.2 {
			buf.WriteString(" ")
		}
	}
	return buf.String()
}
