package fortune

import (
	"strings"

	"gitfortune/internal/textutil"
)

// Highlight rewrites text with every whole word found in words passed
// through mark. Matching ignores case even when scoring does not, so a word
// is marked wherever it appears in the fortune.
func Highlight(text string, words KeySet, mark func(string) string) string {
	if len(words) == 0 || mark == nil {
		return text
	}
	tok := textutil.NewTokenizer(true)
	folded := make(KeySet, len(words))
	for word := range words {
		for t := range tok.Tokens(word) {
			folded[t] = struct{}{}
		}
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for span := range tok.Spans(text) {
		if !folded.Has(span.Text) {
			continue
		}
		b.WriteString(text[last:span.Start])
		b.WriteString(mark(text[span.Start:span.End]))
		last = span.End
	}
	b.WriteString(text[last:])
	return b.String()
}
