package extract

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriscorrea/wordstat/internal/source"
)

const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// writeDocx builds a minimal DOCX archive holding the given document.xml body.
func writeDocx(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`))
	require.NoError(t, err)

	if body != "" {
		w, err = zw.Create("word/document.xml")
		require.NoError(t, err)
		doc := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<w:document xmlns:w="` + wordNS + `"><w:body>` + body + `</w:body></w:document>`
		_, err = w.Write([]byte(doc))
		require.NoError(t, err)
	}

	require.NoError(t, zw.Close())
	return path
}

func TestTextDocx(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "paragraphs joined by spaces",
			body:     `<w:p><w:r><w:t>Hello world.</w:t></w:r></w:p><w:p><w:r><w:t>Second one!</w:t></w:r></w:p>`,
			expected: "Hello world. Second one! ",
		},
		{
			name:     "runs within a paragraph concatenate",
			body:     `<w:p><w:r><w:t xml:space="preserve">Split </w:t></w:r><w:r><w:t>run</w:t></w:r></w:p>`,
			expected: "Split run ",
		},
		{
			name:     "tabs and breaks",
			body:     `<w:p><w:r><w:t>a</w:t><w:tab/><w:t>b</w:t><w:br/><w:t>c</w:t></w:r></w:p>`,
			expected: "a\tb\nc ",
		},
		{
			name:     "empty paragraph still separated",
			body:     `<w:p/><w:p><w:r><w:t>x</w:t></w:r></w:p>`,
			expected: " x ",
		},
		{
			name:     "table cell paragraphs included",
			body:     `<w:tbl><w:tr><w:tc><w:p><w:r><w:t>cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`,
			expected: "cell ",
		},
		{
			name:     "entities decoded",
			body:     `<w:p><w:r><w:t>Fish &amp; chips</w:t></w:r></w:p>`,
			expected: "Fish & chips ",
		},
		{
			name:     "text outside w:t ignored",
			body:     `<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Title</w:t></w:r></w:p>`,
			expected: "Title ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDocx(t, "doc.docx", tt.body)

			text, err := Text(context.Background(), source.Document{Path: path, Format: source.DOCX})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestTextDocxMissingDocumentPart(t *testing.T) {
	path := writeDocx(t, "hollow.docx", "")

	_, err := Text(context.Background(), source.Document{Path: path, Format: source.DOCX})
	require.Error(t, err)

	var extractErr *Error
	require.True(t, errors.As(err, &extractErr), "expected *extract.Error, got %T", err)
	assert.Equal(t, source.DOCX, extractErr.Format)
	assert.Contains(t, err.Error(), "word/document.xml not found")
}

func TestTextDocxMalformedXML(t *testing.T) {
	path := writeDocx(t, "broken.docx", `<w:p><w:r><w:t>unterminated`)

	_, err := Text(context.Background(), source.Document{Path: path, Format: source.DOCX})

	var extractErr *Error
	require.True(t, errors.As(err, &extractErr), "expected *extract.Error, got %T", err)
	assert.Contains(t, err.Error(), "malformed document XML")
}

func TestTextCorruptFiles(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		file   string
		format source.Format
	}{
		{"corrupt pdf", "corrupt.pdf", source.PDF},
		{"corrupt docx", "corrupt.docx", source.DOCX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("not a document ", 20)), 0o600))

			_, err := Text(context.Background(), source.Document{Path: path, Format: tt.format})

			var extractErr *Error
			require.True(t, errors.As(err, &extractErr), "expected *extract.Error, got %v", err)
			assert.Equal(t, path, extractErr.Path)
			assert.Equal(t, tt.format, extractErr.Format)
			assert.NotNil(t, errors.Unwrap(err))
		})
	}
}

func TestTextCancelled(t *testing.T) {
	path := writeDocx(t, "doc.docx", `<w:p><w:r><w:t>never read</w:t></w:r></w:p>`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Text(ctx, source.Document{Path: path, Format: source.DOCX})
	assert.ErrorIs(t, err, context.Canceled)

	var extractErr *Error
	assert.False(t, errors.As(err, &extractErr), "cancellation should not be reported as an extraction failure")
}

func TestTextUnknownFormat(t *testing.T) {
	_, err := Text(context.Background(), source.Document{Path: "x", Format: source.Format(99)})
	assert.ErrorIs(t, err, source.ErrUnsupportedFormat)
}

func TestJoinRow(t *testing.T) {
	// fragments are deliberately out of order
	fragments := []pdf.Text{
		{S: "there", X: 60, W: 20, FontSize: 10},
		{S: "hi", X: 0, W: 30, FontSize: 10},
		{S: "you", X: 30.5, W: 25, FontSize: 10},
	}

	// gap hi->you is 0.5 (< 2), gap you->there is 4.5 (> 2)
	assert.Equal(t, "hiyou there", joinRow(fragments))
	assert.Equal(t, "there", fragments[0].S, "input order must not change")
}
