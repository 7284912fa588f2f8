package report

import (
	"github.com/stretchr/testify/assert"
	"medscribe.com/mre/infer"
	"medscribe.com/mre/resolver"
	"medscribe.com/mre/sentiment"
	"medscribe.com/mre/types"
	"testing"
)

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

func strPtr(s string) *string {
	return &s
}

func TestBuildReportFillsAllFields(t *testing.T) {
	resolution := resolver.Resolve([]*types.CandidateSpan{
		candidate("neck pain", types.CategorySymptom, 1),
		candidate("back pain", types.CategorySymptom, 1),
		candidate("10 physiotherapy sessions", types.CategoryTreatment, 3),
	})
	fields := infer.Fields{
		PatientName:   strPtr("Janet Jones"),
		Diagnosis:     strPtr("Whiplash"),
		CurrentStatus: strPtr("Occasional back pain"),
		Prognosis:     strPtr("Full recovery within 6 months"),
	}

	record := BuildReport(resolution, fields)

	assert.Equal(t, "Janet Jones", *record.PatientName)
	assert.Equal(t, []string{"Neck pain", "Back pain"}, record.Symptoms)
	assert.Equal(t, "Whiplash", *record.Diagnosis)
	assert.Equal(t, []string{"10 physiotherapy sessions"}, record.Treatment)
	assert.Equal(t, "Occasional back pain", *record.CurrentStatus)
	assert.Equal(t, "Full recovery within 6 months", *record.Prognosis)
}

func TestBuildReportEmptyCategoriesStayEmptyNotNil(t *testing.T) {
	record := BuildReport(resolver.Resolution{}, infer.Fields{})

	assert.NotNil(t, record.Symptoms)
	assert.NotNil(t, record.Treatment)
	assert.Equal(t, 0, len(record.Symptoms))
	assert.Nil(t, record.PatientName)
	assert.Nil(t, record.Diagnosis)
	assert.Nil(t, record.CurrentStatus)
	assert.Nil(t, record.Prognosis)
}

func TestBuildSoapNoteFullRecord(t *testing.T) {
	record := types.StructuredReport{
		Symptoms:      []string{"Neck pain", "Back pain"},
		Diagnosis:     strPtr("Whiplash"),
		Treatment:     []string{"10 physiotherapy sessions"},
		CurrentStatus: strPtr("Occasional back pain"),
		Prognosis:     strPtr("Full recovery within 6 months"),
	}
	sentimentResult := types.SentimentResult{
		Label:  sentiment.LabelReassured,
		Intent: sentiment.IntentOther,
	}

	note := BuildSoapNote(record, sentimentResult)

	assert.Equal(t, "Patient reports neck pain and back pain. Patient reports feeling reassured.", note.Subjective)
	assert.Equal(t, "Treatment to date: 10 physiotherapy sessions.", note.Objective)
	assert.Equal(t, "Whiplash. Current status: occasional back pain.", note.Assessment)
	assert.Equal(t, "Full recovery within 6 months. Follow up as needed.", note.Plan)
}

func TestBuildSoapNoteEmptyRecord(t *testing.T) {
	note := BuildSoapNote(types.StructuredReport{}, types.SentimentResult{Label: sentiment.LabelNeutral})

	assert.Equal(t, "Patient reports no specific symptoms.", note.Subjective)
	assert.Equal(t, "No treatments documented.", note.Objective)
	assert.Equal(t, "No assessment documented.", note.Assessment)
	assert.Equal(t, "Follow up as needed.", note.Plan)
}

func TestBuildSoapNoteAnxiousPatient(t *testing.T) {
	record := types.StructuredReport{
		Symptoms: []string{"Headaches"},
	}
	sentimentResult := types.SentimentResult{
		Label:  sentiment.LabelAnxious,
		Intent: sentiment.IntentExpressingConcern,
	}

	note := BuildSoapNote(record, sentimentResult)

	assert.Equal(t, "Patient reports headaches. Patient expresses ongoing concern.", note.Subjective)
}

func TestJoinNatural(t *testing.T) {
	assert.Equal(t, "", joinNatural(nil))
	assert.Equal(t, "a", joinNatural([]string{"a"}))
	assert.Equal(t, "a and b", joinNatural([]string{"a", "b"}))
	assert.Equal(t, "a, b and c", joinNatural([]string{"a", "b", "c"}))
}
