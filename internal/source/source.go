// Package source resolves the document a user selected for analysis;
// it checks that a selection was made, that the file can be read, and that
// its format is one the extractors understand.
package source

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// MaxFileSizeBytes limits the files accepted, to prevent memory overload
const MaxFileSizeBytes = 50 * 1024 * 1024 // 50MB

var (
	// ErrNoSelection is returned when no file was chosen.
	ErrNoSelection = errors.New("no file selected")
	// ErrUnsupportedFormat is returned for anything other than PDF or DOCX.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Format identifies how a document's text is extracted.
type Format int

const (
	// PDF documents (.pdf)
	PDF Format = iota
	// DOCX is an Office Open XML word processing document (.docx)
	DOCX
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case PDF:
		return "pdf"
	case DOCX:
		return "docx"
	default:
		return "unknown"
	}
}

// extensions maps lower-cased file extensions to formats
var extensions = map[string]Format{
	".pdf":  PDF,
	".docx": DOCX,
}

// Document is a validated, readable file ready for text extraction.
type Document struct {
	Path   string // absolute path
	Format Format
	Size   int64
}

// Resolve validates path and returns the Document it names.
//
// Errors:
//   - ErrNoSelection if path is empty or only whitespace
//   - ErrUnsupportedFormat (wrapped) if the extension is not .pdf or .docx
//   - a descriptive error if the file is missing, a directory, or too large
//
// The extension check runs first so an unsupported choice is reported as such
// even when the file does not exist.
func Resolve(path string) (Document, error) {
	if strings.TrimSpace(path) == "" {
		return Document{}, ErrNoSelection
	}

	format, err := DetectFormat(path)
	if err != nil {
		return Document{}, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to resolve path %q: %w", path, err)
	}

	// check if file exists and get size
	fileInfo, err := os.Stat(absPath)
	if os.IsNotExist(err) {
		return Document{}, fmt.Errorf("file %q does not exist", path)
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to access file %q: %w", path, err)
	}
	if fileInfo.IsDir() {
		return Document{}, fmt.Errorf("%q is a directory, not a file", path)
	}

	// check file size before extraction to prevent memory overload
	if fileInfo.Size() > MaxFileSizeBytes {
		return Document{}, fmt.Errorf("file %q is too large (%d bytes > %d bytes limit)",
			path, fileInfo.Size(), MaxFileSizeBytes)
	}

	slog.Debug("Source resolved", "path", absPath, "format", format, "size", fileInfo.Size())

	return Document{
		Path:   absPath,
		Format: format,
		Size:   fileInfo.Size(),
	}, nil
}

// DetectFormat maps the file extension of path to a Format. Matching ignores case.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := extensions[ext]
	if !ok {
		if ext == "" {
			return 0, fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, filepath.Base(path))
		}
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	return format, nil
}
