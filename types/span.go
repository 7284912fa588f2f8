package types

type HasSpan interface {
	GetSpan() *Span
}

type Span struct {
	Begin int32
	End   int32
	Text  *string
}

func (span Span) GetTextFromUtterance(utt *Utterance) (string, bool) {
	if span.Begin < utt.Begin || span.End > utt.End {
		return "", false
	}

	localBegin := span.Begin - utt.Begin
	localEnd := span.End - utt.Begin

	runes := []rune(*utt.Text)
	return string(runes[localBegin:localEnd]), true
}

// SpanSortFunction orders spans positionally. Utterance offsets are
// monotonic, so positional order is also turn order.
func SpanSortFunction(spanA *Span, spanB *Span) bool {
	if spanA.Begin == spanB.Begin {
		return spanA.End < spanB.End
	}
	return spanA.Begin < spanB.Begin
}
