package goanalyzer

// Token is the atomic unit flowing through an analysis pipeline.
// Position is the ordinal the tokenizer assigned to the originating term,
// StartOffset is the rune offset of that term in the analyzed text. Filters
// that expand one token into several keep both values on every derived token,
// so phrase and proximity matching can always recover the parent term's span.
type Token struct {
	Term        string
	Position    int
	StartOffset int
}

func NewToken(term string, position, startOffset int) Token {
	return Token{
		Term:        term,
		Position:    position,
		StartOffset: startOffset,
	}
}

type TokenStream struct {
	Tokens []Token
}

func NewTokenStream(tokens []Token) TokenStream {
	return TokenStream{
		Tokens: tokens,
	}
}

func (ts TokenStream) Size() int {
	return len(ts.Tokens)
}

// Terms returns the term of every token in stream order.
func (ts TokenStream) Terms() []string {
	terms := make([]string, ts.Size())
	for i, token := range ts.Tokens {
		terms[i] = token.Term
	}
	return terms
}
