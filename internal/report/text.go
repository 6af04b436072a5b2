package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const none = "(none)"

// textWriter accumulates labeled lines and remembers the first write error.
type textWriter struct {
	w       io.Writer
	label   *color.Color
	heading *color.Color
	err     error
}

func newTextWriter(w io.Writer, noColor bool) *textWriter {
	tw := &textWriter{
		w:       w,
		label:   color.New(color.FgCyan),
		heading: color.New(color.FgWhite, color.Bold),
	}
	if noColor {
		tw.label.DisableColor()
		tw.heading.DisableColor()
	}
	return tw
}

func (tw *textWriter) printf(format string, args ...interface{}) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

func (tw *textWriter) section(title string) {
	tw.printf("\n%s\n", tw.heading.Sprint(title))
}

func (tw *textWriter) line(label string, value interface{}) {
	tw.printf("%s %v\n", tw.label.Sprint(label+":"), value)
}

func renderText(w io.Writer, r Report, noColor bool) error {
	tw := newTextWriter(w, noColor)
	s := r.Statistics

	title := "Word Count Analysis Results"
	if r.File != "" {
		title += " for " + r.File
	}
	tw.printf("%s\n", tw.heading.Sprint(title))

	tw.line("Total Words", s.TotalWords)
	tw.line("Unique Words", s.UniqueWords)
	tw.line("Average Word Length", s.AverageWordLength)
	tw.line("Total Sentences", s.TotalSentences)
	tw.line("Average Sentence Length (in words)", s.AverageSentenceLength)
	tw.line("Total Paragraphs", s.TotalParagraphs)
	tw.line("Average Syllables Per Word", s.AverageSyllables)
	if s.MostFrequentWord == "" {
		tw.line("Most Frequent Word", none)
	} else {
		tw.line("Most Frequent Word", fmt.Sprintf("'%s' occurred %d %s", s.MostFrequentWord, s.MostFrequentCount, plural(s.MostFrequentCount, "time")))
	}
	tw.line("Longest Word", orNone(s.LongestWord))
	tw.line("Shortest Word", orNone(s.ShortestWord))
	tw.line("Contains Integer Value", YesNo(s.ContainsInteger))

	if len(r.TopWords) > 0 {
		tw.section(fmt.Sprintf("Top %d Words", len(r.TopWords)))
		width := 0
		for _, wc := range r.TopWords {
			width = max(width, len(wc.Word))
		}
		for i, wc := range r.TopWords {
			tw.printf("%3d. %-*s %d\n", i+1, width, wc.Word, wc.Count)
		}
	}

	if r.Stem != nil {
		tw.section("Word Stems")
		tw.line("Most Frequent Stem", fmt.Sprintf("'%s' occurred %d %s (%s)", r.Stem.Stem, r.Stem.Count, plural(r.Stem.Count, "time"), strings.Join(r.Stem.Words, ", ")))
	}

	if len(r.Counts) > 0 {
		tw.section("Additional Counts")
		for _, tally := range r.Counts {
			tw.line(capitalize(tally.Name), tally.Count)
		}
	}

	return tw.err
}

func orNone(word string) string {
	if word == "" {
		return none
	}
	return word
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
