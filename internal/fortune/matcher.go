package fortune

import (
	"fmt"

	"gitfortune/internal/textutil"
)

// Entry is one fortune and its word counts.
type Entry struct {
	Index int
	Text  string
	Words *textutil.FrequencyTable
}

// Candidate is an entry with the score it got for one input.
type Candidate struct {
	Entry Entry
	Score Score
}

// Options configures a Matcher.
type Options struct {
	// Fold lower-cases corpus and input tokens alike.
	Fold bool
	// NoiseWords is how many of the most frequent corpus tokens to ignore.
	NoiseWords int
	// Metric defaults to CountMetric.
	Metric  Metric
	Chooser Chooser
}

// Matcher scores input text against a fixed corpus.
type Matcher struct {
	tokenizer textutil.Tokenizer
	entries   []Entry
	global    *textutil.FrequencyTable
	noise     KeySet
	metric    Metric
	chooser   Chooser
}

// NewMatcher builds frequency tables for every entry and the corpus as a
// whole. It fails with ErrEmptyCorpus when texts is empty.
func NewMatcher(texts []string, opts Options) (*Matcher, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: corpus contains no entries", ErrEmptyCorpus)
	}
	tok := textutil.NewTokenizer(opts.Fold)
	entries := make([]Entry, len(texts))
	for i, text := range texts {
		entries[i] = Entry{Index: i, Text: text, Words: tok.Frequencies(text)}
	}
	global := textutil.Count(func(yield func(string) bool) {
		for _, text := range texts {
			for word := range tok.Tokens(text) {
				if !yield(word) {
					return
				}
			}
		}
	})
	metric := opts.Metric
	if metric == nil {
		metric = CountMetric{}
	}
	return &Matcher{
		tokenizer: tok,
		entries:   entries,
		global:    global,
		noise:     NoiseWords(global, opts.NoiseWords),
		metric:    metric,
		chooser:   opts.Chooser,
	}, nil
}

// Entries returns the loaded entries in corpus order. Callers must not
// modify them.
func (m *Matcher) Entries() []Entry {
	return m.entries
}

// Noise returns the words excluded from scoring.
func (m *Matcher) Noise() KeySet {
	return m.noise
}

// TopWords ranks the n most frequent corpus tokens.
func (m *Matcher) TopWords(n int) []WordCount {
	return TopWords(m.global, n)
}

// Result describes one Match call.
type Result struct {
	Input    *textutil.FrequencyTable
	Relevant KeySet
	// Best holds every candidate sharing the minimum score.
	Best   []Candidate
	Chosen Candidate
}

// Match scores every entry against input and picks one of the best.
func (m *Matcher) Match(input string) (Result, error) {
	inputWords := m.tokenizer.Frequencies(input)
	relevant := RelevantKeys(inputWords, m.noise)

	candidates := make([]Candidate, len(m.entries))
	for i, entry := range m.entries {
		candidates[i] = Candidate{
			Entry: entry,
			Score: m.metric.Score(entry.Words, inputWords, relevant),
		}
	}
	best := MinSet(candidates, func(c Candidate) Score { return c.Score })

	idx, err := m.chooser.Pick(len(best))
	if err != nil {
		return Result{}, err
	}
	return Result{
		Input:    inputWords,
		Relevant: relevant,
		Best:     best,
		Chosen:   best[idx],
	}, nil
}
