// Package analysis implements the text analysis engine for the wordstat CLI tool.
//
// The engine is a pure function from document text to an immutable Result. It runs
// four passes over the text: sentence counting, paragraph counting, a single
// tokenization and aggregation pass, and syllable estimation per token.
//
// Usage Example:
//
//	result := analysis.Analyze("Cat. Dog! Bird? Cat runs.")
//	fmt.Println(result.TotalWords, result.MostFrequentWord)
//	// 5 cat
//
// Averages are reported as Average values; an Average whose denominator was zero
// is undefined rather than Inf or NaN.
package analysis

import (
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"
)

// delimiters separate tokens. The set is fixed and not locale aware.
const delimiters = " \t\n\r\f,.:;?![]'"

// WordCount pairs a normalized token with its number of occurrences.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Result holds the statistics computed for one document text.
type Result struct {
	TotalWords            int     `json:"total_words" yaml:"total_words"`
	UniqueWords           int     `json:"unique_words" yaml:"unique_words"`
	AverageWordLength     Average `json:"average_word_length" yaml:"average_word_length"`
	TotalSentences        int     `json:"total_sentences" yaml:"total_sentences"`
	AverageSentenceLength Average `json:"average_sentence_length" yaml:"average_sentence_length"`
	TotalParagraphs       int     `json:"total_paragraphs" yaml:"total_paragraphs"`
	TotalSyllables        int     `json:"total_syllables" yaml:"total_syllables"`
	AverageSyllables      Average `json:"average_syllables_per_word" yaml:"average_syllables_per_word"`
	MostFrequentWord      string  `json:"most_frequent_word" yaml:"most_frequent_word"`
	MostFrequentCount     int     `json:"most_frequent_count" yaml:"most_frequent_count"`
	LongestWord           string  `json:"longest_word" yaml:"longest_word"`
	ShortestWord          string  `json:"shortest_word" yaml:"shortest_word"`
	ContainsInteger       bool    `json:"contains_integer" yaml:"contains_integer"`

	// frequencies in first-seen order
	frequencies []WordCount
}

// accumulator carries the running totals of the tokenization pass.
type accumulator struct {
	totalWords     int
	totalLength    int
	totalSyllables int

	index       map[string]int // token -> position in frequencies
	frequencies []WordCount

	mostFrequent string
	maxFrequency int

	longest     string
	shortest    string
	hasShortest bool

	hasInteger bool
}

func newAccumulator() *accumulator {
	return &accumulator{index: make(map[string]int)}
}

// add folds one lower-cased token into the running totals.
func (a *accumulator) add(word string) {
	length := utf8.RuneCountInString(word)

	a.totalWords++
	a.totalLength += length
	a.totalSyllables += CountSyllables(word)

	pos, seen := a.index[word]
	if !seen {
		pos = len(a.frequencies)
		a.index[word] = pos
		a.frequencies = append(a.frequencies, WordCount{Word: word})
	}
	a.frequencies[pos].Count++

	// strict comparison: the first word to reach a new maximum keeps it
	if count := a.frequencies[pos].Count; count > a.maxFrequency {
		a.mostFrequent = word
		a.maxFrequency = count
	}

	if length > utf8.RuneCountInString(a.longest) {
		a.longest = word
	}
	if !a.hasShortest || length < utf8.RuneCountInString(a.shortest) {
		a.shortest = word
		a.hasShortest = true
	}

	if !a.hasInteger && isInteger(word) {
		a.hasInteger = true
	}
}

// Analyze computes the statistics for text. Empty text is valid and yields a
// Result with zero counts and undefined averages.
func Analyze(text string) Result {
	totalSentences := CountSentences(text)
	totalParagraphs := CountParagraphs(text)

	acc := newAccumulator()
	for _, word := range Tokenize(text) {
		acc.add(word)
	}

	result := Result{
		TotalWords:            acc.totalWords,
		UniqueWords:           len(acc.frequencies),
		AverageWordLength:     Ratio(acc.totalLength, acc.totalWords),
		TotalSentences:        totalSentences,
		AverageSentenceLength: Ratio(acc.totalWords, totalSentences),
		TotalParagraphs:       totalParagraphs,
		TotalSyllables:        acc.totalSyllables,
		AverageSyllables:      Ratio(acc.totalSyllables, acc.totalWords),
		MostFrequentWord:      acc.mostFrequent,
		MostFrequentCount:     acc.maxFrequency,
		LongestWord:           acc.longest,
		ShortestWord:          acc.shortest,
		ContainsInteger:       acc.hasInteger,
		frequencies:           acc.frequencies,
	}

	slog.Debug("Text analyzed",
		"textLength", len(text),
		"words", result.TotalWords,
		"uniqueWords", result.UniqueWords,
		"sentences", result.TotalSentences,
		"paragraphs", result.TotalParagraphs)

	return result
}

// Tokenize splits text on the delimiter set and lower-cases each token.
// Empty tokens are never returned.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, isDelimiter)
	for i, field := range fields {
		fields[i] = strings.ToLower(field)
	}
	return fields
}

// CountSentences counts maximal runs of '.', '!' and '?'.
func CountSentences(text string) int {
	return len(getRegexPatterns().sentenceRegex.FindAllStringIndex(text, -1))
}

// CountParagraphs counts lines that contain at least one ASCII letter.
func CountParagraphs(text string) int {
	return len(getRegexPatterns().paragraphRegex.FindAllStringIndex(text, -1))
}

// Empty reports whether the analyzed text produced no tokens.
func (r Result) Empty() bool {
	return r.TotalWords == 0
}

// Frequencies returns a copy of the word frequency table in first-seen order.
func (r Result) Frequencies() []WordCount {
	out := make([]WordCount, len(r.frequencies))
	copy(out, r.frequencies)
	return out
}

// TopWords returns up to n words ordered by count, highest first. Words with
// equal counts keep their first-seen order.
func (r Result) TopWords(n int) []WordCount {
	if n <= 0 || len(r.frequencies) == 0 {
		return []WordCount{}
	}

	ranked := r.Frequencies()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

func isDelimiter(r rune) bool {
	return strings.ContainsRune(delimiters, r)
}

// isInteger reports whether word is one or more ASCII digits.
func isInteger(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < '0' || word[i] > '9' {
			return false
		}
	}
	return true
}
