package infer

import (
	"github.com/stretchr/testify/assert"
	"medscribe.com/mre/resolver"
	"medscribe.com/mre/transcript"
	"medscribe.com/mre/types"
	"testing"
)

var testRecencyMarkers = map[string]bool{
	"now":        true,
	"currently":  true,
	"occasional": true,
	"today":      true,
}

func segment(t *testing.T, text string) []types.Utterance {
	utterances, err := transcript.Segment(text)
	assert.Nil(t, err)
	return utterances
}

func candidate(text string, category types.Category, uttIndex int) *types.CandidateSpan {
	return &types.CandidateSpan{
		Span: types.Span{
			Begin: 0,
			End:   int32(len([]rune(text))),
			Text:  &text,
		},
		Category:       category,
		Source:         types.SourcePattern,
		Confidence:     types.PatternConfidence,
		UtteranceIndex: uttIndex,
	}
}

func TestPatientNameCallerSuppliedWins(t *testing.T) {
	utterances := segment(t, "Doctor: Good morning, Mrs. Smith.\nPatient: Hello.")

	fields := InferFields(utterances, resolver.Resolution{}, "Janet Jones", testRecencyMarkers)

	assert.NotNil(t, fields.PatientName)
	assert.Equal(t, "Janet Jones", *fields.PatientName)
}

func TestPatientNameFromDoctorVocative(t *testing.T) {
	utterances := segment(t, "Doctor: Good morning, Mrs. Jones. How are you feeling?\nPatient: Better, thanks.")

	fields := InferFields(utterances, resolver.Resolution{}, "", testRecencyMarkers)

	assert.NotNil(t, fields.PatientName)
	assert.Equal(t, "Mrs. Jones", *fields.PatientName)
}

func TestPatientNameFromSelfIntroduction(t *testing.T) {
	utterances := segment(t, "Doctor: What brings you in?\nPatient: I'm Janet Jones and my neck hurts.")

	fields := InferFields(utterances, resolver.Resolution{}, "", testRecencyMarkers)

	assert.NotNil(t, fields.PatientName)
	assert.Equal(t, "Janet Jones", *fields.PatientName)
}

func TestPatientNameAbsentWithoutEvidence(t *testing.T) {
	utterances := segment(t, "Doctor: How are you?\nPatient: My back hurts.")

	fields := InferFields(utterances, resolver.Resolution{}, "", testRecencyMarkers)

	assert.Nil(t, fields.PatientName)
}

func TestDiagnosisPicksHighestMentionCount(t *testing.T) {
	resolution := resolver.Resolve([]*types.CandidateSpan{
		candidate("muscle strain", types.CategoryDiagnosis, 1),
		candidate("whiplash", types.CategoryDiagnosis, 2),
		candidate("whiplash", types.CategoryDiagnosis, 4),
	})

	fields := InferFields(nil, resolution, "", testRecencyMarkers)

	assert.NotNil(t, fields.Diagnosis)
	assert.Equal(t, "Whiplash", *fields.Diagnosis)
}

func TestDiagnosisTieBreaksOnFirstDetection(t *testing.T) {
	resolution := resolver.Resolve([]*types.CandidateSpan{
		candidate("muscle strain", types.CategoryDiagnosis, 1),
		candidate("whiplash", types.CategoryDiagnosis, 2),
	})

	fields := InferFields(nil, resolution, "", testRecencyMarkers)

	assert.NotNil(t, fields.Diagnosis)
	assert.Equal(t, "Muscle strain", *fields.Diagnosis)
}

func TestCurrentStatusPrefersMostRecentPatientTurn(t *testing.T) {
	utterances := segment(t,
		"Doctor: What happened?\n"+
			"Patient: I had severe back pain after the accident.\n"+
			"Doctor: And now?\n"+
			"Patient: I now only have occasional back pain.")

	resolution := resolver.Resolve([]*types.CandidateSpan{
		candidate("back pain", types.CategorySymptom, 1),
		candidate("back pain", types.CategorySymptom, 3),
		candidate("occasional back pain", types.CategoryStatus, 3),
	})

	fields := InferFields(utterances, resolution, "", testRecencyMarkers)

	assert.NotNil(t, fields.CurrentStatus)
	assert.Equal(t, "Occasional back pain", *fields.CurrentStatus)
}

func TestCurrentStatusFallsBackToSymptomWithMarker(t *testing.T) {
	utterances := segment(t,
		"Doctor: How is it today?\n"+
			"Patient: Currently the headaches come and go.")

	resolution := resolver.Resolve([]*types.CandidateSpan{
		candidate("headaches", types.CategorySymptom, 1),
	})

	fields := InferFields(utterances, resolution, "", testRecencyMarkers)

	assert.NotNil(t, fields.CurrentStatus)
	assert.Equal(t, "Headaches", *fields.CurrentStatus)
}

func TestCurrentStatusAbsentWithoutMarker(t *testing.T) {
	utterances := segment(t,
		"Doctor: What happened?\n"+
			"Patient: I had back pain after the accident.")

	resolution := resolver.Resolve([]*types.CandidateSpan{
		candidate("back pain", types.CategorySymptom, 1),
	})

	fields := InferFields(utterances, resolution, "", testRecencyMarkers)

	assert.Nil(t, fields.CurrentStatus)
}

func TestPrognosisAbsentWithoutCandidates(t *testing.T) {
	utterances := segment(t, "Doctor: How are you?\nPatient: Fine.")

	fields := InferFields(utterances, resolver.Resolution{}, "", testRecencyMarkers)

	assert.Nil(t, fields.Prognosis)
}

func TestPrognosisFromResolvedEntity(t *testing.T) {
	resolution := resolver.Resolve([]*types.CandidateSpan{
		candidate("full recovery within 6 months", types.CategoryPrognosis, 2),
	})

	fields := InferFields(nil, resolution, "", testRecencyMarkers)

	assert.NotNil(t, fields.Prognosis)
	assert.Equal(t, "Full recovery within 6 months", *fields.Prognosis)
}
