package extract

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const documentPart = "word/document.xml"

// wordprocessingML namespaces, transitional and strict
var wordNamespaces = map[string]struct{}{
	"http://schemas.openxmlformats.org/wordprocessingml/2006/main": {},
	"http://purl.oclc.org/ooxml/wordprocessingml/main":             {},
}

// docxText opens the DOCX archive at path and reads its main document part.
func docxText(ctx context.Context, path string) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("error opening archive: %w", err)
	}
	defer reader.Close()

	var documentFile *zip.File
	for _, file := range reader.File {
		if file.Name == documentPart {
			documentFile = file
			break
		}
	}
	if documentFile == nil {
		return "", fmt.Errorf("%s not found in the archive", documentPart)
	}

	rc, err := documentFile.Open()
	if err != nil {
		return "", fmt.Errorf("error opening %s: %w", documentPart, err)
	}
	defer rc.Close()

	return paragraphText(ctx, rc)
}

// paragraphText streams document XML and returns the text of each paragraph
// followed by a space. Paragraphs nested in tables or text boxes are included
// in the order their closing tags appear.
func paragraphText(ctx context.Context, r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var (
		out    strings.Builder
		open   []*strings.Builder // paragraphs currently open, innermost last
		inText bool               // inside <w:t>
	)

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("malformed document XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if !isWordElement(t.Name) {
				continue
			}
			switch t.Name.Local {
			case "p":
				open = append(open, &strings.Builder{})
			case "t":
				inText = true
			case "tab":
				writeOpen(open, "\t")
			case "br", "cr":
				writeOpen(open, "\n")
			}
		case xml.EndElement:
			if !isWordElement(t.Name) {
				continue
			}
			switch t.Name.Local {
			case "p":
				if len(open) == 0 {
					continue
				}
				para := open[len(open)-1]
				open = open[:len(open)-1]
				out.WriteString(para.String())
				out.WriteString(" ")
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				writeOpen(open, string(t))
			}
		}
	}

	return out.String(), nil
}

func isWordElement(name xml.Name) bool {
	_, ok := wordNamespaces[name.Space]
	return ok
}

// writeOpen appends s to the innermost open paragraph, if any.
func writeOpen(open []*strings.Builder, s string) {
	if len(open) == 0 {
		return
	}
	open[len(open)-1].WriteString(s)
}
