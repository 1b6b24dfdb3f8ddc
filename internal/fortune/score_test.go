package fortune

import (
	"testing"

	"gitfortune/internal/textutil"
)

func freq(text string) *textutil.FrequencyTable {
	return textutil.NewTokenizer(true).Frequencies(text)
}

func TestCountMetric(t *testing.T) {
	tests := []struct {
		name     string
		entry    string
		input    string
		relevant KeySet
		want     int
	}{
		{
			name:     "l1 distance",
			entry:    "fix fix bug",
			input:    "fix bug bug crash",
			relevant: NewKeySet("fix", "bug", "crash"),
			want:     3,
		},
		{
			name:     "absent from both tables contributes zero",
			entry:    "alpha beta",
			input:    "alpha",
			relevant: NewKeySet("alpha", "zeta"),
			want:     0,
		},
		{
			name:     "only relevant words count",
			entry:    "noise noise noise signal",
			input:    "signal",
			relevant: NewKeySet("signal"),
			want:     0,
		},
		{
			name:     "empty relevant set",
			entry:    "anything",
			input:    "else",
			relevant: NewKeySet(),
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountMetric{}.Score(freq(tt.entry), freq(tt.input), tt.relevant)
			if got.Primary != tt.want || got.Secondary != 0 {
				t.Fatalf("Score() = %v, want (%d, 0)", got, tt.want)
			}
		})
	}
}

func TestVocabularyMetric(t *testing.T) {
	got := VocabularyMetric{}.Score(freq("fix fix bug"), freq("fix bug bug crash"), NewKeySet("fix", "bug", "crash"))
	want := Score{Primary: 3, Secondary: 1}
	if got != want {
		t.Fatalf("Score() = %v, want %v", got, want)
	}
}

func TestScoreCompare(t *testing.T) {
	tests := []struct {
		a, b Score
		want int
	}{
		{Score{1, 5}, Score{2, 0}, -1},
		{Score{1, 2}, Score{1, 3}, -1},
		{Score{4, 0}, Score{4, 0}, 0},
		{Score{3, 0}, Score{2, 9}, 1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMetricFor(t *testing.T) {
	if m, err := MetricFor(""); err != nil || m != (CountMetric{}) {
		t.Fatalf("MetricFor(\"\") = %v, %v", m, err)
	}
	if m, err := MetricFor("words"); err != nil || m != (VocabularyMetric{}) {
		t.Fatalf("MetricFor(words) = %v, %v", m, err)
	}
	if _, err := MetricFor("tfidf"); err == nil {
		t.Fatal("expected error for unknown scoring")
	}
}
