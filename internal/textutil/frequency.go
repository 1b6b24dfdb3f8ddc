package textutil

import "iter"

// FrequencyTable maps tokens to occurrence counts. It is immutable once
// built; lookups of absent tokens return zero.
type FrequencyTable struct {
	counts map[string]int
	order  []string
	total  int
}

// Count builds a FrequencyTable from a token sequence.
func Count(tokens iter.Seq[string]) *FrequencyTable {
	ft := &FrequencyTable{counts: make(map[string]int)}
	for token := range tokens {
		if _, seen := ft.counts[token]; !seen {
			ft.order = append(ft.order, token)
		}
		ft.counts[token]++
		ft.total++
	}
	return ft
}

// Count returns the number of occurrences of token, or zero.
func (f *FrequencyTable) Count(token string) int {
	if f == nil {
		return 0
	}
	return f.counts[token]
}

// Has reports whether token occurred at least once.
func (f *FrequencyTable) Has(token string) bool {
	return f.Count(token) > 0
}

// Len returns the number of distinct tokens.
func (f *FrequencyTable) Len() int {
	if f == nil {
		return 0
	}
	return len(f.order)
}

// Total returns the number of tokens counted, duplicates included.
func (f *FrequencyTable) Total() int {
	if f == nil {
		return 0
	}
	return f.total
}

// Keys yields distinct tokens in first-encounter order.
func (f *FrequencyTable) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		if f == nil {
			return
		}
		for _, token := range f.order {
			if !yield(token) {
				return
			}
		}
	}
}
