package sentiment

import (
	"github.com/stretchr/testify/assert"
	"medscribe.com/mre/transcript"
	"medscribe.com/mre/types"
	"testing"
)

func testParams() Params {
	return Params{
		Anxious: map[string]bool{
			"worried":   true,
			"scared":    true,
			"afraid":    true,
			"anxious":   true,
			"permanent": true,
		},
		Reassured: map[string]bool{
			"relieved": true,
			"grateful": true,
			"better":   true,
			"thank":    true,
		},
		Neutral: map[string]bool{
			"okay": true,
			"fine": true,
		},
		SeekingReassurance: []string{
			"is that normal",
			"will it get worse",
			"should i be worried",
		},
		ReportingSymptoms: []string{
			"i have been having",
			"i've been having",
			"it hurts when",
		},
		ExpressingConcern: []string{
			"i am worried that",
			"i'm worried that",
		},
	}
}

func segment(t *testing.T, text string) []types.Utterance {
	utterances, err := transcript.Segment(text)
	assert.Nil(t, err)
	return utterances
}

func TestClassifierNeutralWithoutLexiconHits(t *testing.T) {
	classify := NewClassifier(testParams())
	utterances := segment(t, "Doctor: How are you?\nPatient: The appointment is at noon.")

	result := classify(utterances)

	assert.Equal(t, LabelNeutral, result.Label)
	assert.Equal(t, IntentOther, result.Intent)
}

func TestClassifierAnxiousFromWorryTerms(t *testing.T) {
	classify := NewClassifier(testParams())
	utterances := segment(t, "Doctor: How are you?\nPatient: I am really worried about the pain.")

	result := classify(utterances)

	assert.Equal(t, LabelAnxious, result.Label)
}

func TestClassifierRecencyLastNonZeroWins(t *testing.T) {
	classify := NewClassifier(testParams())
	utterances := segment(t,
		"Patient: I was so worried after the crash.\n"+
			"Doctor: The scans look clean.\n"+
			"Patient: That makes me feel much better, thank you.")

	result := classify(utterances)

	assert.Equal(t, LabelReassured, result.Label)
}

func TestClassifierIgnoresDoctorTurns(t *testing.T) {
	classify := NewClassifier(testParams())
	utterances := segment(t,
		"Doctor: No need to be worried or scared.\n"+
			"Patient: The pain comes and goes.")

	result := classify(utterances)

	assert.Equal(t, LabelNeutral, result.Label)
}

func TestClassifierAnxiousBeatsReassuredOnTie(t *testing.T) {
	params := testParams()
	utt := segment(t, "Patient: I feel better but I am still worried.")[0]

	score := ScoreUtterance(&utt, params)

	assert.Equal(t, LabelAnxious, score.Label)
	assert.Equal(t, 2, score.Hits)
}

func TestIntentSeekingReassuranceFromPhrase(t *testing.T) {
	classify := NewClassifier(testParams())
	utterances := segment(t, "Patient: The headaches faded. Is that normal?")

	result := classify(utterances)

	assert.Equal(t, IntentSeekingReassurance, result.Intent)
}

func TestIntentSeekingReassuranceFromWorriedQuestion(t *testing.T) {
	classify := NewClassifier(testParams())
	utterances := segment(t, "Patient: Could the damage be permanent?")

	result := classify(utterances)

	assert.Equal(t, IntentSeekingReassurance, result.Intent)
}

func TestIntentExpressingConcernFromWorriedStatement(t *testing.T) {
	classify := NewClassifier(testParams())
	utterances := segment(t, "Patient: I am still scared about driving again.")

	result := classify(utterances)

	assert.Equal(t, IntentExpressingConcern, result.Intent)
}

func TestIntentReportingSymptoms(t *testing.T) {
	classify := NewClassifier(testParams())
	utterances := segment(t, "Patient: I've been having neck pain since the accident.")

	result := classify(utterances)

	assert.Equal(t, IntentReportingSymptoms, result.Intent)
}

func TestIntentRecencyRule(t *testing.T) {
	classify := NewClassifier(testParams())
	utterances := segment(t,
		"Patient: I've been having back pain for weeks.\n"+
			"Doctor: Let's have a look.\n"+
			"Patient: Will it get worse over time?")

	result := classify(utterances)

	assert.Equal(t, IntentSeekingReassurance, result.Intent)
}
