package goanalyzer

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/masamichhhhi/go-analyzer/morphology"
)

type Tokenizer interface {
	Tokenize(string) TokenStream
}

// DefaultSeparatorPattern matches the separator runs the default tokenizer
// splits on: whitespace together with common punctuation.
const DefaultSeparatorPattern = `[\s:/.;,!=?"'()\[\]{}@&#^*|\\~+<>` + "`" + `-]+`

// RegexTokenizer splits text on matches of a separator pattern. The text
// between separators becomes tokens; the separators themselves are discarded.
type RegexTokenizer struct {
	separator *regexp.Regexp
}

func NewRegexTokenizer(pattern string) (RegexTokenizer, error) {
	separator, err := regexp.Compile(pattern)
	if err != nil {
		return RegexTokenizer{}, fmt.Errorf("compile separator pattern: %w", err)
	}
	return RegexTokenizer{separator: separator}, nil
}

func NewDefaultTokenizer() RegexTokenizer {
	return RegexTokenizer{separator: regexp.MustCompile(DefaultSeparatorPattern)}
}

// Tokenize scans s left to right for non-overlapping separator matches and
// emits the span since the previous separator before each one, then the span
// after the last separator unless it is empty. Positions count up from zero,
// start offsets are rune offsets into s.
func (t RegexTokenizer) Tokenize(s string) TokenStream {
	if s == "" {
		return NewTokenStream([]Token{})
	}

	tokens := []Token{}
	last := 0      // byte offset just past the previous separator
	lastRunes := 0 // the same point as a rune offset
	for _, m := range t.separator.FindAllStringIndex(s, -1) {
		tokens = append(tokens, NewToken(s[last:m[0]], len(tokens), lastRunes))
		lastRunes += utf8.RuneCountInString(s[last:m[1]])
		last = m[1]
	}
	if last != len(s) {
		tokens = append(tokens, NewToken(s[last:], len(tokens), lastRunes))
	}
	return NewTokenStream(tokens)
}

// MorphologicalTokenizer tokenizes by dictionary-based morphological analysis
// instead of separator matching, for languages that do not delimit words.
type MorphologicalTokenizer struct {
	morphology morphology.Morphology
}

func NewMorphologicalTokenizer(morphology morphology.Morphology) MorphologicalTokenizer {
	return MorphologicalTokenizer{
		morphology: morphology,
	}
}

func (t MorphologicalTokenizer) Tokenize(s string) TokenStream {
	mTokens := t.morphology.Analyze(s)
	tokens := make([]Token, len(mTokens))
	for i, mt := range mTokens {
		tokens[i] = NewToken(mt.Term, i, mt.Start)
	}
	return NewTokenStream(tokens)
}
