package counter

import (
	"log/slog"

	"github.com/chriscorrea/wordstat/internal/analysis"
)

// WordCounter counts words with the analysis tokenizer, so its totals always
// agree with the main report.
type WordCounter struct{}

// NewWordCounter creates a new WordCounter instance.
func NewWordCounter() Counter {
	return &WordCounter{}
}

// Count returns the number of non-empty tokens in text.
func (wc *WordCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	wordCount := len(analysis.Tokenize(text))

	slog.Debug("Word count calculated", "textLength", len(text), "wordCount", wordCount)
	return wordCount
}

// Name returns the name of this counting method for labels and debugging.
func (wc *WordCounter) Name() string {
	return "words"
}
