package sentiment

import (
	"medscribe.com/mre/types"
	"strings"
	"unicode"
)

const (
	LabelAnxious   = "Anxious"
	LabelNeutral   = "Neutral"
	LabelReassured = "Reassured"

	IntentSeekingReassurance = "Seeking reassurance"
	IntentReportingSymptoms  = "Reporting symptoms"
	IntentExpressingConcern  = "Expressing concern"
	IntentOther              = "Other"
)

// Classifier maps a transcript's patient turns to one emotional label and
// one intent label. Doctor turns never contribute.
type Classifier func(utterances []types.Utterance) types.SentimentResult

// UtteranceScore is the per-turn classification, exposed for the detail
// endpoint and for the transcript-level recency aggregation.
type UtteranceScore struct {
	Label  string
	Intent string
	Hits   int
}

func NewClassifier(params Params) Classifier {
	return func(utterances []types.Utterance) types.SentimentResult {
		result := types.SentimentResult{
			Label:  LabelNeutral,
			Intent: IntentOther,
		}

		// the last scored turn wins; emotional state is reported as of now
		for u := range utterances {
			utt := &utterances[u]
			if utt.Speaker != types.SpeakerPatient {
				continue
			}

			score := ScoreUtterance(utt, params)
			if score.Hits > 0 {
				result.Label = score.Label
			}
			if score.Intent != IntentOther {
				result.Intent = score.Intent
			}
		}

		return result
	}
}

// ScoreUtterance classifies one turn in isolation. Ties between lexicons
// resolve by precedence: Anxious over Reassured over Neutral.
func ScoreUtterance(utt *types.Utterance, params Params) UtteranceScore {
	anxious, reassured := 0, 0
	for _, token := range utt.Tokens {
		if !token.IsWord {
			continue
		}
		switch {
		case params.Anxious[*token.Text]:
			anxious++
		case params.Reassured[*token.Text]:
			reassured++
		case params.Neutral[*token.Text]:
			// explicit hedge words carry no weight
		}
	}

	score := UtteranceScore{
		Label:  LabelNeutral,
		Intent: classifyIntent(utt, params, anxious),
		Hits:   anxious + reassured,
	}
	if anxious >= reassured && anxious > 0 {
		score.Label = LabelAnxious
	} else if reassured > 0 {
		score.Label = LabelReassured
	}
	return score
}

// classifyIntent checks the phrase lexicons in precedence order, then
// falls back to discourse shape: a worried question reads as seeking
// reassurance, a worried statement as expressing concern.
func classifyIntent(utt *types.Utterance, params Params, anxiousHits int) string {
	text := lowerText(utt)

	switch {
	case containsAnyPhrase(text, params.SeekingReassurance):
		return IntentSeekingReassurance
	case containsAnyPhrase(text, params.ReportingSymptoms):
		return IntentReportingSymptoms
	case containsAnyPhrase(text, params.ExpressingConcern):
		return IntentExpressingConcern
	}

	if anxiousHits > 0 {
		if isQuestion(utt) {
			return IntentSeekingReassurance
		}
		return IntentExpressingConcern
	}
	return IntentOther
}

func containsAnyPhrase(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

func isQuestion(utt *types.Utterance) bool {
	for i := len(utt.Tokens) - 1; i >= 0; i-- {
		token := utt.Tokens[i]
		if token.IsPunct {
			if *token.Text == "?" {
				return true
			}
			continue
		}
		return false
	}
	return false
}

// lowerText squashes the turn onto lowercase single-spaced text so that
// phrase entries match regardless of the transcript's casing and spacing.
func lowerText(utt *types.Utterance) string {
	if utt.Text == nil {
		return ""
	}
	lowered := strings.ToLower(*utt.Text)
	return strings.Join(strings.FieldsFunc(lowered, unicode.IsSpace), " ")
}
