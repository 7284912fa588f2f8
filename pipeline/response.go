package pipeline

import (
	"medscribe.com/mre/resolver"
	"medscribe.com/mre/types"
)

// entityDetails flattens the resolution into the entity-extraction detail
// shape, category order fixed, entities in resolution order.
func entityDetails(resolution resolver.Resolution) []types.EntityDetail {
	details := make([]types.EntityDetail, 0, 8)

	for _, category := range types.AllCategories {
		for _, entity := range resolution.Entities(category) {
			spans := make([]types.SpanDetail, len(entity.SupportingSpans))
			for i, span := range entity.SupportingSpans {
				spans[i] = types.SpanDetail{
					Text:       *span.Text,
					Source:     span.Source.Name(),
					Confidence: span.Confidence,
					Utterance:  span.UtteranceIndex,
					Begin:      span.Begin,
					End:        span.End,
				}
			}
			details = append(details, types.EntityDetail{
				Text:         entity.CanonicalText,
				Category:     entity.Category.Name(),
				MentionCount: entity.MentionCount,
				Spans:        spans,
			})
		}
	}

	return details
}
