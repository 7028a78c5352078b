package goanalyzer

import (
	"fmt"
	"sync"

	"github.com/kljensen/snowball/english"
	"github.com/kljensen/snowball/french"
	"github.com/kljensen/snowball/hungarian"
	"github.com/kljensen/snowball/norwegian"
	"github.com/kljensen/snowball/russian"
	"github.com/kljensen/snowball/spanish"
	"github.com/kljensen/snowball/swedish"
)

// UnknownLanguageError reports a language with no registered stemmer.
type UnknownLanguageError struct {
	Language string
}

func (e UnknownLanguageError) Error() string {
	return fmt.Sprintf("no stemmer registered for language %q", e.Language)
}

// Stemmer reduces a word to its root form. Implementations keep the working
// word as mutable state between SetInput and StemmedResult, so one instance
// must never be shared by concurrently running analysis calls; resolve a
// fresh instance per invocation instead.
type Stemmer interface {
	SetInput(word string)
	StemmedResult() string
}

// StemmerFactory produces a fresh Stemmer instance per call.
type StemmerFactory func() Stemmer

type stemmerRegistry struct {
	factories map[string]StemmerFactory
	mu        sync.RWMutex
}

func (r *stemmerRegistry) register(language string, factory StemmerFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[language] = factory
}

func (r *stemmerRegistry) resolve(language string) (Stemmer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[language]
	if !ok {
		return nil, UnknownLanguageError{Language: language}
	}
	return factory(), nil
}

var defaultStemmers = &stemmerRegistry{factories: map[string]StemmerFactory{
	"english":   snowballFactory(english.Stem),
	"french":    snowballFactory(french.Stem),
	"hungarian": snowballFactory(hungarian.Stem),
	"norwegian": snowballFactory(norwegian.Stem),
	"russian":   snowballFactory(russian.Stem),
	"spanish":   snowballFactory(spanish.Stem),
	"swedish":   snowballFactory(swedish.Stem),
}}

// RegisterStemmer makes a stemmer available to StemmerFilter under the given
// language name, replacing any previous registration for that name.
func RegisterStemmer(language string, factory StemmerFactory) {
	defaultStemmers.register(language, factory)
}

// snowballStemmer adapts a snowball stemming function to the stateful
// Stemmer contract.
type snowballStemmer struct {
	word string
	stem func(string, bool) string
}

func snowballFactory(stem func(string, bool) string) StemmerFactory {
	return func() Stemmer {
		return &snowballStemmer{stem: stem}
	}
}

func (s *snowballStemmer) SetInput(word string) {
	s.word = word
}

func (s *snowballStemmer) StemmedResult() string {
	return s.stem(s.word, true)
}

// StemmerFilter replaces each term with its stemmed form. The language is
// resolved when a token reaches the filter, not when the filter is built, so
// an unregistered language surfaces as an error from Analyze rather than at
// configuration time.
type StemmerFilter struct {
	language string
}

func NewStemmerFilter(language string) StemmerFilter {
	return StemmerFilter{language: language}
}

func (f StemmerFilter) Filter(token Token) ([]Token, error) {
	stemmer, err := defaultStemmers.resolve(f.language)
	if err != nil {
		return nil, err
	}
	stemmer.SetInput(token.Term)
	return []Token{NewToken(stemmer.StemmedResult(), token.Position, token.StartOffset)}, nil
}
