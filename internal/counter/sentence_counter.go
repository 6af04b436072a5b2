package counter

import (
	"log/slog"

	"github.com/jdkato/prose/v2"
)

// SentenceCounter segments text into sentences with prose's punkt-based
// segmenter. Unlike the engine's terminator count, it understands
// abbreviations and decimals ("Dr. Smith paid 3.50.").
type SentenceCounter struct{}

// NewSentenceCounter creates a new SentenceCounter instance.
func NewSentenceCounter() Counter {
	return &SentenceCounter{}
}

// Count returns the number of sentences prose finds in text. It returns 0 if
// segmentation fails.
func (sc *SentenceCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	// only segmentation is needed; tagging and entity extraction load models
	doc, err := prose.NewDocument(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		slog.Debug("Sentence segmentation failed", "error", err)
		return 0
	}

	sentenceCount := len(doc.Sentences())

	slog.Debug("Sentence count calculated", "textLength", len(text), "sentenceCount", sentenceCount)
	return sentenceCount
}

// Name returns the name of this counting method for labels and debugging.
func (sc *SentenceCounter) Name() string {
	return "sentences (nlp)"
}
