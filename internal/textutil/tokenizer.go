package textutil

import (
	"iter"
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// wordPattern matches a maximal run of word characters.
var wordPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)

// Token is one word match with its byte offsets in the source text.
// Text is the normalized form; the raw form is source[Start:End].
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokenizer extracts word tokens from text. The zero value preserves case.
type Tokenizer struct {
	fold bool
}

// NewTokenizer returns a tokenizer that lower-cases tokens when fold is true.
func NewTokenizer(fold bool) Tokenizer {
	return Tokenizer{fold: fold}
}

// Folds reports whether the tokenizer lower-cases tokens.
func (t Tokenizer) Folds() bool {
	return t.fold
}

// Spans yields every word in text along with its byte offsets.
func (t Tokenizer) Spans(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		var caser cases.Caser
		if t.fold {
			caser = cases.Lower(language.Und)
		}
		offset := 0
		for offset < len(text) {
			loc := wordPattern.FindStringIndex(text[offset:])
			if loc == nil {
				return
			}
			start, end := offset+loc[0], offset+loc[1]
			word := text[start:end]
			if t.fold {
				word = caser.String(word)
			}
			if !yield(Token{Text: word, Start: start, End: end}) {
				return
			}
			offset = end
		}
	}
}

// Tokens yields the normalized word tokens of text in order.
func (t Tokenizer) Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for tok := range t.Spans(text) {
			if !yield(tok.Text) {
				return
			}
		}
	}
}

// Frequencies counts the tokens of text.
func (t Tokenizer) Frequencies(text string) *FrequencyTable {
	return Count(t.Tokens(text))
}
