package fortune

import (
	"cmp"
	"fmt"
	"strings"

	"gitfortune/internal/textutil"
)

// Score orders candidates; lower is better. Scores compare
// lexicographically on (Primary, Secondary).
type Score struct {
	Primary   int
	Secondary int
}

// Compare returns -1, 0, or +1 as s sorts before, equal to, or after other.
func (s Score) Compare(other Score) int {
	if c := cmp.Compare(s.Primary, other.Primary); c != 0 {
		return c
	}
	return cmp.Compare(s.Secondary, other.Secondary)
}

func (s Score) String() string {
	return fmt.Sprintf("(%d, %d)", s.Primary, s.Secondary)
}

// Metric scores an entry's word counts against the input's, looking only at
// the relevant words. Tokens absent from either table count as zero.
type Metric interface {
	Score(entry, input *textutil.FrequencyTable, relevant KeySet) Score
}

// CountMetric is the L1 distance between word counts over the relevant
// words. It compares absolute occurrence counts rather than relative
// frequencies, so it is blind to text length.
type CountMetric struct{}

// Score implements Metric.
func (CountMetric) Score(entry, input *textutil.FrequencyTable, relevant KeySet) Score {
	return Score{Primary: countDistance(entry, input, relevant)}
}

// VocabularyMetric extends CountMetric with the difference in vocabulary
// size, which only matters between entries with equal count distance.
type VocabularyMetric struct{}

// Score implements Metric.
func (VocabularyMetric) Score(entry, input *textutil.FrequencyTable, relevant KeySet) Score {
	return Score{
		Primary:   countDistance(entry, input, relevant),
		Secondary: abs(entry.Len() - input.Len()),
	}
}

func countDistance(entry, input *textutil.FrequencyTable, relevant KeySet) int {
	total := 0
	for word := range relevant {
		total += abs(entry.Count(word) - input.Count(word))
	}
	return total
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Scoring names a metric in configuration.
type Scoring string

const (
	ScoringCounts Scoring = "counts"
	ScoringWords  Scoring = "words"
)

// MetricFor resolves a scoring name. Empty selects ScoringCounts.
func MetricFor(scoring string) (Metric, error) {
	switch Scoring(strings.ToLower(strings.TrimSpace(scoring))) {
	case "", ScoringCounts:
		return CountMetric{}, nil
	case ScoringWords:
		return VocabularyMetric{}, nil
	default:
		return nil, fmt.Errorf("unsupported scoring %q", scoring)
	}
}
