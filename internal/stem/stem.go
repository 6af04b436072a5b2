// Package stem groups a word frequency table by English word stem.
//
// "run", "runs" and "running" are separate words to the analysis engine. This
// package folds them together with the Snowball (Porter2) stemmer so a report
// can show which root dominates a document. Tokens that are not purely
// alphabetic, such as "42" or "well-known", keep their own form as the stem.
package stem

import (
	"log/slog"
	"regexp"

	"github.com/kljensen/snowball"

	"github.com/chriscorrea/wordstat/internal/analysis"
)

// Group is one stem with the total count and the distinct words folded into it.
type Group struct {
	Stem  string   `json:"stem" yaml:"stem"`
	Count int      `json:"count" yaml:"count"`
	Words []string `json:"words" yaml:"words"`
}

// Stemmer folds words into their Snowball stems.
type Stemmer struct {
	// wordRegex matches tokens the English stemmer can handle
	wordRegex *regexp.Regexp
	// stemStopWords controls whether stop words like "being" are stemmed too
	stemStopWords bool
}

// NewStemmer creates and initializes a new Stemmer for English.
func NewStemmer() *Stemmer {
	return &Stemmer{
		wordRegex:     regexp.MustCompile(`^[a-z]+$`),
		stemStopWords: true,
	}
}

// Stem returns the stem of a lower-cased word. Words that are not purely
// alphabetic, or that fail to stem, are returned unchanged.
func (s *Stemmer) Stem(word string) string {
	if !s.wordRegex.MatchString(word) {
		return word
	}

	stemmed, err := snowball.Stem(word, "english", s.stemStopWords)
	if err != nil || stemmed == "" {
		// if stemming fails, use the original token
		return word
	}
	return stemmed
}

// Groups folds frequencies into stem groups, in the order each stem is first
// seen. Words within a group keep their first-seen order.
func (s *Stemmer) Groups(frequencies []analysis.WordCount) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, wc := range frequencies {
		root := s.Stem(wc.Word)
		pos, ok := index[root]
		if !ok {
			pos = len(groups)
			index[root] = pos
			groups = append(groups, Group{Stem: root})
		}
		groups[pos].Count += wc.Count
		groups[pos].Words = append(groups[pos].Words, wc.Word)
	}

	slog.Debug("Stem groups built", "words", len(frequencies), "stems", len(groups))
	return groups
}

// MostFrequent returns the group with the highest count. As with the most
// frequent word, the earliest group wins a tie. ok is false when frequencies is empty.
func (s *Stemmer) MostFrequent(frequencies []analysis.WordCount) (group Group, ok bool) {
	for _, g := range s.Groups(frequencies) {
		if g.Count > group.Count {
			group = g
			ok = true
		}
	}
	return group, ok
}
