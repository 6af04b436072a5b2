// Package counter provides supplementary text counts for the wordstat CLI tool.
//
// The analysis engine owns the core statistics; this package adds counts that
// answer different questions about the same text: raw characters, LLM tokens
// (using OpenAI's tiktoken with the cl100k_base encoding), and sentences as
// segmented by an NLP model rather than by terminator punctuation.
//
// Usage Example:
//
//	c, err := counter.NewCounter(counter.Tokens)
//	count := c.Count("Hello, world!")
//	// Returns the number of cl100k_base tokens in the text
//
// Each method sits behind the Counter interface so the report can list any
// combination of them.
package counter

import (
	"fmt"
	"strings"
)

// Counter defines the interface for different text counting strategies.
type Counter interface {
	// Count returns the number of units (tokens, words, sentences, or characters) in given text.
	Count(text string) int

	// Name returns a human-readable name for this counting method (for labels and logging)
	Name() string
}

// CountingMethod represents the different available counting strategies.
type CountingMethod int

const (
	// Words counts tokens exactly as the analysis engine does
	Words CountingMethod = iota
	// Characters counts individual characters including whitespace
	Characters
	// Tokens uses tiktoken with cl100k_base encoding
	Tokens
	// Sentences uses prose's sentence segmenter
	Sentences
)

// String returns the string representation of the counting method.
func (cm CountingMethod) String() string {
	switch cm {
	case Words:
		return "words"
	case Characters:
		return "characters"
	case Tokens:
		return "tokens"
	case Sentences:
		return "sentences"
	default:
		return "unknown"
	}
}

// ParseMethod converts a method name (as accepted by --count) to a CountingMethod.
func ParseMethod(name string) (CountingMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "words":
		return Words, nil
	case "characters", "chars":
		return Characters, nil
	case "tokens":
		return Tokens, nil
	case "sentences":
		return Sentences, nil
	default:
		return 0, fmt.Errorf("unknown counting method %q (want words, characters, tokens, or sentences)", name)
	}
}

// NewCounter creates a new Counter instance based on the specified method.
// Returns an error if the counter cannot be initialized (e.g., tiktoken encoding fails)
// or the method is unknown.
func NewCounter(method CountingMethod) (Counter, error) {
	switch method {
	case Words:
		return NewWordCounter(), nil
	case Characters:
		return NewCharCounter(), nil
	case Tokens:
		return NewTokenCounter()
	case Sentences:
		return NewSentenceCounter(), nil
	default:
		return nil, fmt.Errorf("unknown counting method %d", int(method))
	}
}

// Tally is one named count produced by a Counter.
type Tally struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// CountAll runs each requested method over text, in the order given.
// Duplicate methods are counted once.
func CountAll(text string, methods []CountingMethod) ([]Tally, error) {
	tallies := make([]Tally, 0, len(methods))
	seen := make(map[CountingMethod]bool, len(methods))

	for _, method := range methods {
		if seen[method] {
			continue
		}
		seen[method] = true

		c, err := NewCounter(method)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s counter: %w", method, err)
		}
		tallies = append(tallies, Tally{Name: c.Name(), Count: c.Count(text)})
	}

	return tallies, nil
}
