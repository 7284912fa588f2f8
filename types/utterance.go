package types

type Speaker byte

const (
	SpeakerUnknown Speaker = 0
	SpeakerDoctor  Speaker = 1
	SpeakerPatient Speaker = 2
)

func (s Speaker) Name() string {
	switch s {
	case SpeakerDoctor:
		return "doctor"
	case SpeakerPatient:
		return "patient"
	}
	return "unknown"
}

// Utterance is one turn of dialogue. Begin/End are offsets into the full
// transcript text, Index is the ordinal position of the turn.
type Utterance struct {
	Span
	Speaker Speaker
	Index   int
	Tokens  []*Token
}

func (utt *Utterance) GetSpan() *Span {
	return &utt.Span
}
