// Package report renders analysis results for the wordstat CLI tool.
//
// Three formats are supported: a labeled plain-text listing (with optional
// color), JSON, and YAML. Averages whose denominator was zero are written as
// "undefined" in text and null in JSON and YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chriscorrea/wordstat/internal/analysis"
	"github.com/chriscorrea/wordstat/internal/counter"
	"github.com/chriscorrea/wordstat/internal/stem"
)

// Format defines the output format for results
type Format int

const (
	// labeled plaintext output format (default)
	Text Format = iota
	// JSON output format
	JSON
	// YAML output format
	YAML
)

// String returns the string representation of the output
func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat converts a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return Text, fmt.Errorf("unknown output format %q", name)
	}
}

// Options controls rendering.
type Options struct {
	Format  Format
	NoColor bool // text format only
}

// Report is everything presented for one document.
type Report struct {
	File       string               `json:"file" yaml:"file"`
	Statistics analysis.Result      `json:"statistics" yaml:"statistics"`
	TopWords   []analysis.WordCount `json:"top_words,omitempty" yaml:"top_words,omitempty"`
	Counts     []counter.Tally      `json:"counts,omitempty" yaml:"counts,omitempty"`
	Stem       *stem.Group          `json:"most_frequent_stem,omitempty" yaml:"most_frequent_stem,omitempty"`
}

// Render writes r to w in the format chosen by opts.
func Render(w io.Writer, r Report, opts Options) error {
	switch opts.Format {
	case Text:
		return renderText(w, r, opts.NoColor)
	case JSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(r); err != nil {
			return fmt.Errorf("failed to encode JSON report: %w", err)
		}
		return nil
	case YAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(r); err != nil {
			return fmt.Errorf("failed to encode YAML report: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}

// YesNo renders a flag as the two-valued label used in text output.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
