package types

import (
	"strings"
	"unicode"
)

type Token struct {
	Span
	Utterance *Utterance
	IsPunct  bool
	IsWord   bool
	IsNumber bool
	Shape    string
}

func (token *Token) GetSpan() *Span {
	return &token.Span
}

func (token *Token) GetShapedText() string {
	var sb strings.Builder
	runes := []rune(*token.Text)
	if len(runes) > len(token.Shape) {
		return *token.Text
	}
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if token.Shape[i] == 'X' {
			sb.WriteRune(unicode.ToUpper(ch))
		} else {
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

func GetShape(txt string) string {
	var sb strings.Builder
	for _, r := range txt {
		switch {
		case unicode.IsDigit(r):
			sb.WriteRune('d')
		case unicode.IsUpper(r):
			sb.WriteRune('X')
		default:
			sb.WriteRune('x')
		}
	}

	return sb.String()
}
