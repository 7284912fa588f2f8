package transcript

import (
	"errors"
	"medscribe.com/mre/types"
	"strings"
)

// ErrEmptyTranscript is returned for empty or unparseable input. It is the
// only failure the engine surfaces to the caller; everything downstream
// treats missing evidence as a valid outcome.
var ErrEmptyTranscript = errors.New("transcript is empty or contains no dialogue")

var speakerMarkers = map[string]types.Speaker{
	"doctor":    types.SpeakerDoctor,
	"dr":        types.SpeakerDoctor,
	"physician": types.SpeakerDoctor,
	"gp":        types.SpeakerDoctor,
	"patient":   types.SpeakerPatient,
	"pt":        types.SpeakerPatient,
}

// Segment splits a raw transcript into speaker turns. A turn starts at a
// line of the form "<Speaker>: text"; lines without a marker continue the
// previous turn. Offsets are rune offsets into the full transcript text so
// that model spans and pattern spans land in one coordinate space.
func Segment(text string) ([]types.Utterance, error) {
	if len(strings.TrimSpace(text)) == 0 {
		return nil, ErrEmptyTranscript
	}

	runes := []rune(text)
	utterances := make([]types.Utterance, 0, 8)

	lineStart := 0
	for lineStart <= len(runes) {
		lineEnd := lineStart
		for lineEnd < len(runes) && runes[lineEnd] != '\n' {
			lineEnd++
		}

		line := string(runes[lineStart:lineEnd])
		if len(strings.TrimSpace(line)) > 0 {
			speaker, textOffset := detectSpeaker(line)

			begin := lineStart + textOffset
			end := lineEnd
			// trim surrounding whitespace, offsets must stay exact
			for begin < end && isSpace(runes[begin]) {
				begin++
			}
			for end > begin && isSpace(runes[end-1]) {
				end--
			}

			if begin < end {
				if speaker == types.SpeakerUnknown && len(utterances) > 0 && textOffset == 0 {
					// continuation line, extend the previous turn
					last := &utterances[len(utterances)-1]
					joined := string(runes[last.Begin:int32(end)])
					last.End = int32(end)
					last.Text = &joined
				} else {
					uttText := string(runes[begin:end])
					utterances = append(utterances, types.Utterance{
						Span: types.Span{
							Begin: int32(begin),
							End:   int32(end),
							Text:  &uttText,
						},
						Speaker: speaker,
						Index:   len(utterances),
					})
				}
			}
		}
		lineStart = lineEnd + 1
	}

	if len(utterances) == 0 {
		return nil, ErrEmptyTranscript
	}

	for i := range utterances {
		utterances[i].Tokens = Tokenize(&utterances[i])
	}
	return utterances, nil
}

// detectSpeaker reports the speaker of a line and the rune offset where the
// spoken text starts (0 when the line carries no marker).
func detectSpeaker(line string) (types.Speaker, int) {
	colon := strings.IndexRune(line, ':')
	if colon <= 0 {
		return types.SpeakerUnknown, 0
	}

	marker := strings.TrimSpace(line[:colon])
	marker = strings.TrimSuffix(marker, ".")
	speaker, ok := speakerMarkers[strings.ToLower(marker)]
	if !ok {
		return types.SpeakerUnknown, 0
	}

	return speaker, len([]rune(line[:colon])) + 1
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
