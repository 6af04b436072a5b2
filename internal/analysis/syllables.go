package analysis

import "strings"

const vowels = "aeiouy"

// CountSyllables estimates the syllables in a lower-cased word by counting
// transitions into vowel runs, dropping one for a trailing 'e'. The result is
// never less than 1, even for "" or a word without vowels.
func CountSyllables(word string) int {
	count := 0
	lastWasVowel := false

	for _, r := range word {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !lastWasVowel {
			count++
		}
		lastWasVowel = isVowel
	}

	if strings.HasSuffix(word, "e") {
		count--
	}

	return max(count, 1)
}
