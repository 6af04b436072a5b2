package counter

import (
	"log/slog"
	"unicode/utf8"
)

// CharCounter counts Unicode code points, whitespace and punctuation included.
type CharCounter struct{}

// NewCharCounter creates a new CharCounter instance.
func NewCharCounter() Counter {
	return &CharCounter{}
}

// Count returns the number of runes in text. Invalid UTF-8 bytes count as one rune each.
func (cc *CharCounter) Count(text string) int {
	charCount := utf8.RuneCountInString(text)
	slog.Debug("Character count calculated", "bytes", len(text), "charCount", charCount)
	return charCount
}

// Name returns the name of this counting method for labels and debugging.
func (cc *CharCounter) Name() string {
	return "characters"
}
