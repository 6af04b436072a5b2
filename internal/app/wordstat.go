// Package app contains the core application logic for the wordstat CLI tool.
// It handles the main business logic separated from CLI concerns.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chriscorrea/wordstat/internal/analysis"
	"github.com/chriscorrea/wordstat/internal/counter"
	"github.com/chriscorrea/wordstat/internal/extract"
	"github.com/chriscorrea/wordstat/internal/report"
	"github.com/chriscorrea/wordstat/internal/source"
	"github.com/chriscorrea/wordstat/internal/spinner"
	"github.com/chriscorrea/wordstat/internal/stem"
)

// Config holds all configuration options for the wordstat application.
type Config struct {
	Source   string                   // path of the PDF or DOCX file to analyze
	Format   report.Format            // output format (text/json/yaml)
	NoColor  bool                     // disable colored labels in text output
	TopWords int                      // number of most frequent words to list (0 = none)
	Counts   []counter.CountingMethod // supplementary counts to include
	Stem     bool                     // include the most frequent word stem
	Quiet    bool                     // suppress progress output
	Debug    bool
}

// Run executes the main wordstat application logic with the given configuration
// and returns the rendered report.
//
// Processing Pipeline:
// 1. Resolve the selected file (source.Resolve)
// 2. Extract its plain text (extract.Text)
// 3. Analyze the text (analysis.Analyze)
// 4. Add optional sections and render (buildReport, report.Render)
//
// ctx allows for cancellation of long-running extraction.
func Run(ctx context.Context, cfg Config) (string, error) {
	// step 1: validate the selection before touching its contents
	doc, err := source.Resolve(cfg.Source)
	if err != nil {
		return "", err
	}

	// step 2: extract text, with a spinner for large documents
	text, err := extractText(ctx, doc, cfg.Quiet)
	if err != nil {
		return "", err
	}

	// step 3: analyze
	result := analysis.Analyze(text)

	// step 4: assemble and render
	rep, err := buildReport(filepath.Base(doc.Path), text, result, cfg)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := report.Render(&out, rep, report.Options{Format: cfg.Format, NoColor: cfg.NoColor}); err != nil {
		return "", err
	}
	return out.String(), nil
}

// extractText pulls the document's text, showing a spinner on stderr unless quiet.
func extractText(ctx context.Context, doc source.Document, quiet bool) (string, error) {
	var text string
	extractFn := func() error {
		var err error
		text, err = extract.Text(ctx, doc)
		return err
	}

	var err error
	if quiet {
		err = extractFn()
	} else {
		err = spinner.Run(ctx, os.Stderr, fmt.Sprintf("Extracting text from %s...", filepath.Base(doc.Path)), extractFn)
	}
	if err != nil {
		return "", err
	}
	return text, nil
}

// buildReport combines the analysis result with the optional report sections.
func buildReport(file, text string, result analysis.Result, cfg Config) (report.Report, error) {
	rep := report.Report{
		File:       file,
		Statistics: result,
	}

	if cfg.TopWords > 0 {
		rep.TopWords = result.TopWords(cfg.TopWords)
	}

	if len(cfg.Counts) > 0 {
		tallies, err := counter.CountAll(text, cfg.Counts)
		if err != nil {
			return report.Report{}, fmt.Errorf("failed to compute additional counts: %w", err)
		}
		rep.Counts = tallies
	}

	if cfg.Stem {
		if group, ok := stem.NewStemmer().MostFrequent(result.Frequencies()); ok {
			rep.Stem = &group
		}
	}

	slog.Debug("Report built", "file", file, "topWords", len(rep.TopWords), "counts", len(rep.Counts), "stem", rep.Stem != nil)
	return rep, nil
}
