package goanalyzer

// NgramFilter expands a token into its character n-grams between a minimum
// and maximum size. Every derived token keeps the parent's position and start
// offset, so downstream consumers map any gram back to the term it came from
// rather than to the gram's own span.
type NgramFilter struct {
	minSize int
	maxSize int
}

func NewNgramFilter(minSize, maxSize int) NgramFilter {
	return NgramFilter{
		minSize: minSize,
		maxSize: maxSize,
	}
}

func NewNgramFilterOfSize(size int) NgramFilter {
	return NewNgramFilter(size, size)
}

// Filter grows the gram size before advancing the start index: "cat" with
// sizes 2..3 yields "ca", "cat", "at" in that order.
func (f NgramFilter) Filter(token Token) ([]Token, error) {
	term := []rune(token.Term)
	grams := []Token{}
	idx, size := 0, f.minSize
	for idx != len(term) && idx+size <= len(term) {
		grams = append(grams, NewToken(string(term[idx:idx+size]), token.Position, token.StartOffset))
		if size < f.maxSize {
			size++
		} else {
			idx++
			size = f.minSize
		}
	}
	return grams, nil
}

// PrefixFilter expands a token into all prefixes of its term, shortest first,
// each keeping the parent's position and start offset. Meant for index time
// to build prefix/autocomplete indices; applied at query time a term would
// match itself as a prefix of everything, so callers must keep it out of
// query-side chains.
type PrefixFilter struct{}

func NewPrefixFilter() PrefixFilter {
	return PrefixFilter{}
}

func (f PrefixFilter) Filter(token Token) ([]Token, error) {
	term := []rune(token.Term)
	prefixes := make([]Token, 0, len(term))
	for i := 1; i <= len(term); i++ {
		prefixes = append(prefixes, NewToken(string(term[:i]), token.Position, token.StartOffset))
	}
	return prefixes, nil
}
