package fortune

import (
	"slices"

	"gitfortune/internal/textutil"
)

// DefaultNoiseWords is the number of most frequent corpus tokens ignored
// when scoring.
const DefaultNoiseWords = 40

// KeySet is an immutable set of tokens.
type KeySet map[string]struct{}

// NewKeySet builds a set from words.
func NewKeySet(words ...string) KeySet {
	set := make(KeySet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Has reports membership.
func (k KeySet) Has(word string) bool {
	_, ok := k[word]
	return ok
}

// Len returns the set size.
func (k KeySet) Len() int {
	return len(k)
}

// Sorted returns the members in lexical order.
func (k KeySet) Sorted() []string {
	out := make([]string, 0, len(k))
	for w := range k {
		out = append(out, w)
	}
	slices.Sort(out)
	return out
}

// WordCount pairs a token with its corpus-wide count.
type WordCount struct {
	Word  string
	Count int
}

// TopWords ranks the n most frequent tokens of table. Equal counts keep
// first-encounter order. n <= 0 returns nil.
func TopWords(table *textutil.FrequencyTable, n int) []WordCount {
	if n <= 0 || table.Len() == 0 {
		return nil
	}
	ranked := make([]WordCount, 0, table.Len())
	for word := range table.Keys() {
		ranked = append(ranked, WordCount{Word: word, Count: table.Count(word)})
	}
	slices.SortStableFunc(ranked, func(a, b WordCount) int {
		return b.Count - a.Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// NoiseWords returns the n most frequent tokens of table.
func NoiseWords(table *textutil.FrequencyTable, n int) KeySet {
	top := TopWords(table, n)
	set := make(KeySet, len(top))
	for _, wc := range top {
		set[wc.Word] = struct{}{}
	}
	return set
}

// RelevantKeys returns the input vocabulary minus the noise words.
func RelevantKeys(input *textutil.FrequencyTable, noise KeySet) KeySet {
	set := make(KeySet, input.Len())
	for word := range input.Keys() {
		if noise.Has(word) {
			continue
		}
		set[word] = struct{}{}
	}
	return set
}
