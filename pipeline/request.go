package pipeline

import "medscribe.com/mre/types"

// Request is one transcript to process. Tid is the caller's trace id and
// threads through every log line of the run.
type Request struct {
	Tid             string               `json:"tid"`
	Text            string               `json:"transcript"`
	PatientName     string               `json:"patient_name,omitempty"`
	ModelSpans      []types.RawModelSpan `json:"model_spans,omitempty"`
	IncludeEntities bool                 `json:"include_entities,omitempty"`
}
