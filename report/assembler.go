package report

import (
	"medscribe.com/mre/infer"
	"medscribe.com/mre/resolver"
	"medscribe.com/mre/sentiment"
	"medscribe.com/mre/types"
	"strings"
)

// BuildReport composes the structured record from resolved entities and
// inferred fields. Pure formatting, no extraction happens here.
func BuildReport(resolution resolver.Resolution, fields infer.Fields) types.StructuredReport {
	return types.StructuredReport{
		PatientName:   fields.PatientName,
		Symptoms:      nonNil(resolution.Texts(types.CategorySymptom)),
		Diagnosis:     fields.Diagnosis,
		Treatment:     nonNil(resolution.Texts(types.CategoryTreatment)),
		CurrentStatus: fields.CurrentStatus,
		Prognosis:     fields.Prognosis,
	}
}

// BuildSoapNote templates the four SOAP sections from the finished report.
// Missing evidence produces an explicit "none documented" line rather than
// an empty section.
func BuildSoapNote(record types.StructuredReport, sentimentResult types.SentimentResult) types.SoapNote {
	return types.SoapNote{
		Subjective: buildSubjective(record, sentimentResult),
		Objective:  buildObjective(record),
		Assessment: buildAssessment(record),
		Plan:       buildPlan(record),
	}
}

func buildSubjective(record types.StructuredReport, sentimentResult types.SentimentResult) string {
	var sb strings.Builder

	if len(record.Symptoms) > 0 {
		sb.WriteString("Patient reports ")
		sb.WriteString(strings.ToLower(joinNatural(record.Symptoms)))
		sb.WriteString(".")
	} else {
		sb.WriteString("Patient reports no specific symptoms.")
	}

	switch sentimentResult.Label {
	case sentiment.LabelAnxious:
		sb.WriteString(" Patient expresses ongoing concern.")
	case sentiment.LabelReassured:
		sb.WriteString(" Patient reports feeling reassured.")
	}

	return sb.String()
}

func buildObjective(record types.StructuredReport) string {
	if len(record.Treatment) == 0 {
		return "No treatments documented."
	}
	return "Treatment to date: " + strings.ToLower(joinNatural(record.Treatment)) + "."
}

func buildAssessment(record types.StructuredReport) string {
	var parts []string
	if record.Diagnosis != nil {
		parts = append(parts, *record.Diagnosis+".")
	}
	if record.CurrentStatus != nil {
		parts = append(parts, "Current status: "+strings.ToLower(*record.CurrentStatus)+".")
	}
	if len(parts) == 0 {
		return "No assessment documented."
	}
	return strings.Join(parts, " ")
}

func buildPlan(record types.StructuredReport) string {
	if record.Prognosis == nil {
		return "Follow up as needed."
	}
	return *record.Prognosis + ". Follow up as needed."
}

// joinNatural renders a list as prose: "a", "a and b", "a, b and c".
func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
