package goanalyzer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAnalyzerDefault(t *testing.T) {
	// No filters: the tokenizer's raw output is the analysis result.
	analyzer := NewAnalyzer(nil)
	actual, err := analyzer.Analyze("the quick fox")
	if err != nil {
		t.Fatal(err)
	}
	expected := NewTokenStream([]Token{
		NewToken("the", 0, 0),
		NewToken("quick", 1, 4),
		NewToken("fox", 2, 10),
	})
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzerEnglishChain(t *testing.T) {
	analyzer := NewAnalyzer(
		nil,
		NewLowerCaseFilter(),
		NewEnglishStopWordFilter(),
		NewStemmerFilter("english"),
	)
	actual, err := analyzer.Analyze("The Quick Foxes")
	if err != nil {
		t.Fatal(err)
	}
	// "the" is gone but the surviving tokens keep the positions the
	// tokenizer assigned.
	expected := NewTokenStream([]Token{
		NewToken("quick", 1, 4),
		NewToken("fox", 2, 10),
	})
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzerExpansionKeepsDerivedTokensContiguous(t *testing.T) {
	analyzer := NewAnalyzer(nil, NewNgramFilter(1, 2))
	actual, err := analyzer.Analyze("ab cd")
	if err != nil {
		t.Fatal(err)
	}
	expected := NewTokenStream([]Token{
		NewToken("a", 0, 0),
		NewToken("ab", 0, 0),
		NewToken("b", 0, 0),
		NewToken("c", 1, 3),
		NewToken("cd", 1, 3),
		NewToken("d", 1, 3),
	})
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzerFilterOrderMatters(t *testing.T) {
	text := "The Fox"

	// Stop-word elimination sees "The" before lower-casing and "the" after,
	// so swapping the stages changes the result.
	stopFirst := NewAnalyzer(nil, NewEnglishStopWordFilter(), NewLowerCaseFilter())
	lowerFirst := NewAnalyzer(nil, NewLowerCaseFilter(), NewEnglishStopWordFilter())

	fromStopFirst, err := stopFirst.Analyze(text)
	if err != nil {
		t.Fatal(err)
	}
	fromLowerFirst, err := lowerFirst.Analyze(text)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"the", "fox"}, fromStopFirst.Terms()); diff != "" {
		t.Errorf("stop-then-lower terms mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"fox"}, fromLowerFirst.Terms()); diff != "" {
		t.Errorf("lower-then-stop terms mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzerCharFilter(t *testing.T) {
	analyzer := Analyzer{
		CharFilters: []CharFilter{
			NewMappingCharFilter(map[string]string{":(": "sad"}),
		},
		Tokenizer: NewDefaultTokenizer(),
	}
	actual, err := analyzer.Analyze("i am :(")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"i", "am", "sad"}, actual.Terms()); diff != "" {
		t.Errorf("terms mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzerPrefixIndexChain(t *testing.T) {
	analyzer := NewAnalyzer(
		nil,
		NewLowerCaseFilter(),
		NewMinLengthFilter(2),
		NewPrefixFilter(),
	)
	actual, err := analyzer.Analyze("Go Fox")
	if err != nil {
		t.Fatal(err)
	}
	expected := NewTokenStream([]Token{
		NewToken("g", 0, 0),
		NewToken("go", 0, 0),
		NewToken("f", 1, 3),
		NewToken("fo", 1, 3),
		NewToken("fox", 1, 3),
	})
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzerUnknownLanguageFailsWholeCall(t *testing.T) {
	analyzer := NewAnalyzer(nil, NewStemmerFilter("klingon"))

	// Construction already succeeded; the failure surfaces from Analyze.
	_, err := analyzer.Analyze("hello world")
	if err == nil {
		t.Fatal("expected Analyze to fail for an unregistered language")
	}
	var unknownErr UnknownLanguageError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownLanguageError, got %T: %v", err, err)
	}
}

func TestAnalyzerEmptyInput(t *testing.T) {
	analyzer := NewAnalyzer(nil, NewLowerCaseFilter(), NewNgramFilter(2, 3))
	actual, err := analyzer.Analyze("")
	if err != nil {
		t.Fatal(err)
	}
	if actual.Size() != 0 {
		t.Errorf("expected an empty stream, got %v", actual.Tokens)
	}
}
