package types

type SpanDetail struct {
	Text       string  `json:"text"`
	Source     string  `json:"source"`
	Confidence float64 `json:"confidence"`
	Utterance  int     `json:"utterance"`
	Begin      int32   `json:"begin"`
	End        int32   `json:"end"`
}

type EntityDetail struct {
	Text         string       `json:"text"`
	Category     string       `json:"category"`
	MentionCount int          `json:"mention_count"`
	Spans        []SpanDetail `json:"spans"`
}

// EngineResponse is the full JSON shape handed to the transport layer.
// Entities is populated only in entity-extraction detail mode.
type EngineResponse struct {
	MedicalRecord StructuredReport `json:"medical_record"`
	Sentiment     SentimentResult  `json:"sentiment"`
	SoapNote      SoapNote         `json:"soap_note"`
	Entities      []EntityDetail   `json:"entities,omitempty"`
}
