package formatters

import (
	"iter"
	"regexp"
	"slices"
	"strings"
)

var (
	lineBreaks   = regexp.MustCompile(`\n+`)
	bulletMarker = regexp.MustCompile(`^[-•]\s*`)
)

// Lines yields the display lines of a free-text block: the block is split on
// runs of newlines, one leading "-" or "•" marker is stripped from each line,
// surrounding whitespace is trimmed and empty lines are skipped.
// The sequence can be ranged over any number of times.
func Lines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if text == "" {
			return
		}
		for _, raw := range lineBreaks.Split(text, -1) {
			line := strings.TrimSpace(bulletMarker.ReplaceAllString(raw, ""))
			if line == "" {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}

// SplitLines collects Lines into a slice.
func SplitLines(text string) []string {
	out := slices.Collect(Lines(text))
	if out == nil {
		return []string{}
	}
	return out
}
