package analysis

import (
	"regexp"
	"sync"
)

// regexPatterns holds compiled regex patterns for sentence and paragraph detection
type regexPatterns struct {
	sentenceRegex  *regexp.Regexp
	paragraphRegex *regexp.Regexp
}

var (
	patterns     *regexPatterns
	patternsOnce sync.Once
)

// getRegexPatterns returns the singleton instance of compiled regex patterns
func getRegexPatterns() *regexPatterns {
	patternsOnce.Do(func() {
		patterns = &regexPatterns{
			// a run of terminators ("...", "?!") ends one sentence
			sentenceRegex: regexp.MustCompile(`[.!?]+`),
			// any line holding at least one ASCII letter
			paragraphRegex: regexp.MustCompile(`(?m)^.*[a-zA-Z].*$`),
		}
	})
	return patterns
}
