package types

type Source byte

const (
	SourceModel   Source = 1
	SourcePattern Source = 2
)

func (s Source) Name() string {
	if s == SourceModel {
		return "model"
	}
	return "pattern"
}

const (
	// PatternConfidence is assigned to every deterministic pattern match.
	// It sits below ModelDefaultConfidence so model evidence outranks
	// pattern evidence on ties.
	PatternConfidence = 0.5

	// ModelDefaultConfidence is assigned to model spans that arrive
	// without a score.
	ModelDefaultConfidence = 0.75
)

// RawModelSpan is a single tagger hit as delivered by an external NER
// extractor. Offsets are character offsets into the full transcript text.
type RawModelSpan struct {
	Text  string   `json:"text"`
	Label string   `json:"label"`
	Begin int32    `json:"start_offset"`
	End   int32    `json:"end_offset"`
	Score *float64 `json:"score,omitempty"`
}

// CandidateSpan is one detected mention of a medical concept before
// deduplication. Never mutated after creation.
type CandidateSpan struct {
	Span
	Category       Category
	Source         Source
	Confidence     float64
	UtteranceIndex int
}

func (cand *CandidateSpan) GetSpan() *Span {
	return &cand.Span
}
