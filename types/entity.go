package types

// ResolvedEntity is one deduplicated concept with all its supporting
// mentions. SupportingSpans keeps detection order; read-only after the
// resolver returns it.
type ResolvedEntity struct {
	CanonicalText   string
	Category        Category
	SupportingSpans []*CandidateSpan
	MentionCount    int
}