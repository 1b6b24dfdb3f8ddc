// Package fortune picks the corpus entry whose vocabulary best matches a
// piece of input text.
//
// A corpus is one or more flat files in the classic fortune(6) format, with
// entries separated by lines starting with '%'. Loading produces an ordered
// list of entry texts; NewMatcher turns them into per-entry frequency tables
// plus a corpus-wide table used to find noise words (the N most frequent
// tokens, ignored when scoring).
//
// Matching scores each entry by the L1 distance between its word counts and
// the input's, restricted to the input words that are not noise. Scores
// compare absolute counts, not relative frequencies, so entries whose raw
// counts happen to line up with the input win regardless of their length.
// The optional vocabulary metric breaks ties by vocabulary-size difference.
//
// A Matcher is read-only once built and may serve any number of Match calls.
package fortune
