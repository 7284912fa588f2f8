package types

// StructuredReport is the final structured record. Absent single-valued
// fields marshal as null, absent list fields as empty arrays.
type StructuredReport struct {
	PatientName   *string  `json:"Patient_Name"`
	Symptoms      []string `json:"Symptoms"`
	Diagnosis     *string  `json:"Diagnosis"`
	Treatment     []string `json:"Treatment"`
	CurrentStatus *string  `json:"Current_Status"`
	Prognosis     *string  `json:"Prognosis"`
}

type SentimentResult struct {
	Label  string `json:"label"`
	Intent string `json:"intent"`
}

type SoapNote struct {
	Subjective string `json:"Subjective"`
	Objective  string `json:"Objective"`
	Assessment string `json:"Assessment"`
	Plan       string `json:"Plan"`
}
