package fortune

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// MinSet returns every item whose score equals the minimum, in input order.
// It makes a single pass: a strictly smaller score restarts the set, an
// equal one joins it, a larger one is skipped.
func MinSet[T any](items []T, score func(T) Score) []T {
	var (
		best Score
		mins []T
	)
	for i, item := range items {
		s := score(item)
		if i == 0 {
			best, mins = s, []T{item}
			continue
		}
		switch c := s.Compare(best); {
		case c > 0:
			continue
		case c == 0:
			mins = append(mins, item)
		default:
			best, mins = s, []T{item}
		}
	}
	return mins
}

// TieBreak selects how Chooser resolves several equally good entries.
type TieBreak string

const (
	TieRandom TieBreak = "random"
	TieFirst  TieBreak = "first"
)

// ParseTieBreak validates a tie-break name. Empty selects TieRandom.
func ParseTieBreak(value string) (TieBreak, error) {
	switch mode := TieBreak(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return TieRandom, nil
	case TieRandom, TieFirst:
		return mode, nil
	default:
		return "", fmt.Errorf("unsupported tie break %q", value)
	}
}

// Chooser picks one index out of a minimal set.
type Chooser struct {
	mode TieBreak
	rng  *rand.Rand
}

// NewChooser builds a chooser. A nil rng uses the package-level source.
func NewChooser(mode TieBreak, rng *rand.Rand) Chooser {
	return Chooser{mode: mode, rng: rng}
}

// Pick returns an index in [0, n). It fails with ErrEmptyCorpus when n is 0.
func (c Chooser) Pick(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyCorpus
	}
	if c.mode == TieFirst || n == 1 {
		return 0, nil
	}
	if c.rng != nil {
		return c.rng.IntN(n), nil
	}
	return rand.IntN(n), nil
}
