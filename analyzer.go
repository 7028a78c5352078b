package goanalyzer

// Analyzer composes char filters, a tokenizer and an ordered token filter
// chain into a single text-to-tokens function. Indexing and query processing
// must analyze with one and the same configuration for their terms to match.
type Analyzer struct {
	CharFilters  []CharFilter
	Tokenizer    Tokenizer
	TokenFilters []TokenFilter
}

// NewAnalyzer builds an analyzer over the given tokenizer; nil selects the
// default regex tokenizer. With no filters, Analyze returns the tokenizer's
// raw output.
func NewAnalyzer(tokenizer Tokenizer, tokenFilters ...TokenFilter) Analyzer {
	if tokenizer == nil {
		tokenizer = NewDefaultTokenizer()
	}
	return Analyzer{
		Tokenizer:    tokenizer,
		TokenFilters: tokenFilters,
	}
}

// Analyze runs s through the pipeline. Filter order is significant:
// lower-casing before stemming and after it are different analyzers. Each
// filter is applied as a flat map over the previous stage's stream, so the
// tokens derived from one input token stay contiguous and in the order the
// filter produced them. The only failure is an unresolvable stemming
// language; there is no partial result in that case.
func (a Analyzer) Analyze(s string) (TokenStream, error) {
	for _, c := range a.CharFilters {
		s = c.Filter(s)
	}

	tokenStream := a.Tokenizer.Tokenize(s)
	for _, f := range a.TokenFilters {
		filtered := make([]Token, 0, tokenStream.Size())
		for _, token := range tokenStream.Tokens {
			derived, err := f.Filter(token)
			if err != nil {
				return TokenStream{}, err
			}
			filtered = append(filtered, derived...)
		}
		tokenStream = NewTokenStream(filtered)
	}

	return tokenStream, nil
}
