// Package textutil turns text into word tokens and word-frequency tables.
//
// The primary use cases are:
//   - Splitting text into word tokens, optionally case-folded
//   - Counting token occurrences into an immutable FrequencyTable
//
// A token is a maximal run of Unicode letters, combining marks, digits, and
// underscores. Tokens are produced lazily through iter.Seq so callers can
// count or filter without materializing intermediate slices.
package textutil
