package transcript

import (
	"medscribe.com/mre/types"
	"medscribe.com/mre/utils"
	"unicode"
)

// Tokenize splits one utterance into word/number/punctuation tokens with
// global rune offsets. Token text is interned lower-cased; the Shape string
// keeps enough information to restore the original casing.
func Tokenize(utt *types.Utterance) []*types.Token {
	runes := []rune(*utt.Text)
	tokens := make([]*types.Token, 0, len(runes)/4)

	i := 0
	for i < len(runes) {
		r := runes[i]

		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsLetter(r):
			begin := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || runes[i] == '\'') {
				i++
			}
			tokens = append(tokens, newToken(utt, runes, begin, i, wordKind))
		case unicode.IsDigit(r):
			begin := i
			for i < len(runes) && unicode.IsDigit(runes[i]) {
				i++
			}
			tokens = append(tokens, newToken(utt, runes, begin, i, numberKind))
		default:
			tokens = append(tokens, newToken(utt, runes, i, i+1, punctKind))
			i++
		}
	}

	return tokens
}

type tokenKind byte

const (
	wordKind tokenKind = iota
	numberKind
	punctKind
)

func newToken(utt *types.Utterance, runes []rune, begin int, end int, kind tokenKind) *types.Token {
	text := string(runes[begin:end])
	token := types.Token{
		Span: types.Span{
			Begin: utt.Begin + int32(begin),
			End:   utt.Begin + int32(end),
			Text:  utils.GlobalStringStore().GetPointer(text),
		},
		Utterance: utt,
		IsWord:    kind == wordKind,
		IsNumber:  kind == numberKind,
		IsPunct:   kind == punctKind,
		Shape:     types.GetShape(text),
	}
	return &token
}
