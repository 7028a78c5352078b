package morphology

import (
	ipaneologd "github.com/ikawaha/kagome-dict-ipa-neologd"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

type Morphology interface {
	Analyze(string) []MorphologyToken
}

// MorphologyToken is one morpheme: its surface form, its katakana reading,
// and the rune offset of the surface form in the analyzed text.
type MorphologyToken struct {
	Term  string
	Kana  string
	Start int
}

func NewMorphologyToken(term, kana string, start int) MorphologyToken {
	return MorphologyToken{
		Term:  term,
		Kana:  kana,
		Start: start,
	}
}

// Kagome analyzes text with the IPA NEologd dictionary.
type Kagome struct {
	tokenizer *tokenizer.Tokenizer
}

func NewKagome() (*Kagome, error) {
	t, err := tokenizer.New(ipaneologd.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Kagome{tokenizer: t}, nil
}

func (k *Kagome) Analyze(s string) []MorphologyToken {
	tokens := k.tokenizer.Tokenize(s)
	r := make([]MorphologyToken, 0, len(tokens))
	for _, t := range tokens {
		kana, ok := t.Reading()
		if !ok {
			kana = t.Surface
		}
		r = append(r, NewMorphologyToken(t.Surface, kana, t.Start))
	}
	return r
}
