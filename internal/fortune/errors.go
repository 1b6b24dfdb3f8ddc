package fortune

import "errors"

var (
	// ErrCorpusLoad marks failures opening or reading a corpus source.
	ErrCorpusLoad = errors.New("corpus load error")
	// ErrEmptyCorpus marks a corpus that was read but produced no entries.
	ErrEmptyCorpus = errors.New("no fortunes available")
)
