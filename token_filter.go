package goanalyzer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kotaroooo0/gojaconv/jaconv"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TokenFilter maps one token to zero or more tokens. A filter drops a token
// by returning an empty slice; expansion filters return several tokens, all
// carrying the input token's position and start offset.
type TokenFilter interface {
	Filter(Token) ([]Token, error)
}

type LowerCaseFilter struct{}

func NewLowerCaseFilter() LowerCaseFilter {
	return LowerCaseFilter{}
}

func (f LowerCaseFilter) Filter(token Token) ([]Token, error) {
	lower := strings.ToLower(token.Term)
	return []Token{NewToken(lower, token.Position, token.StartOffset)}, nil
}

// DiacriticFilter decomposes the term and removes combining marks, so "café"
// indexes as "cafe". Lossy for scripts whose canonical decomposition is not a
// base letter plus accents; changing that would change every indexed term, so
// the behavior stays as documented.
type DiacriticFilter struct{}

func NewDiacriticFilter() DiacriticFilter {
	return DiacriticFilter{}
}

func (f DiacriticFilter) Filter(token Token) ([]Token, error) {
	// The transformer chain carries per-call state, so it is built here
	// rather than shared across concurrent Filter calls.
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripper, token.Term)
	if err != nil {
		return nil, fmt.Errorf("strip diacritics from %q: %w", token.Term, err)
	}
	return []Token{NewToken(stripped, token.Position, token.StartOffset)}, nil
}

// StopWordFilter drops every token whose term the predicate reports as a stop
// word and passes all others through unchanged.
type StopWordFilter struct {
	isStopWord func(string) bool
}

func NewStopWordFilter(isStopWord func(string) bool) StopWordFilter {
	return StopWordFilter{isStopWord: isStopWord}
}

var englishStopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"but": {}, "by": {}, "for": {}, "if": {}, "in": {}, "into": {}, "is": {},
	"it": {}, "no": {}, "not": {}, "of": {}, "on": {}, "or": {}, "such": {},
	"that": {}, "the": {}, "their": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "to": {}, "was": {}, "will": {}, "with": {},
}

func NewEnglishStopWordFilter() StopWordFilter {
	return NewStopWordFilter(func(term string) bool {
		_, ok := englishStopWords[term]
		return ok
	})
}

func (f StopWordFilter) Filter(token Token) ([]Token, error) {
	if f.isStopWord(token.Term) {
		return nil, nil
	}
	return []Token{token}, nil
}

// MinLengthFilter drops tokens whose term is shorter than length runes.
type MinLengthFilter struct {
	length int
}

func NewMinLengthFilter(length int) MinLengthFilter {
	return MinLengthFilter{length: length}
}

func (f MinLengthFilter) Filter(token Token) ([]Token, error) {
	if utf8.RuneCountInString(token.Term) < f.length {
		return nil, nil
	}
	return []Token{token}, nil
}

// MaxLengthFilter drops tokens whose term is longer than length runes.
type MaxLengthFilter struct {
	length int
}

func NewMaxLengthFilter(length int) MaxLengthFilter {
	return MaxLengthFilter{length: length}
}

func (f MaxLengthFilter) Filter(token Token) ([]Token, error) {
	if utf8.RuneCountInString(token.Term) > f.length {
		return nil, nil
	}
	return []Token{token}, nil
}

// KanaToRomajiFilter rewrites kana terms to their Hepburn romaji reading
// (ex. "カタカナ" → "katakana"). Terms without kana pass through unchanged.
type KanaToRomajiFilter struct{}

func NewKanaToRomajiFilter() KanaToRomajiFilter {
	return KanaToRomajiFilter{}
}

func (f KanaToRomajiFilter) Filter(token Token) ([]Token, error) {
	romaji := jaconv.ToHebon(jaconv.KatakanaToHiragana(token.Term))
	return []Token{NewToken(romaji, token.Position, token.StartOffset)}, nil
}
