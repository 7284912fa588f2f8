package normalizer

import (
	"medscribe.com/mre/types"
	"medscribe.com/mre/utils"
	"path"
	"strings"
)

// LabelMap translates model-specific labels onto the fixed category enum.
// Labels absent from the map are dropped, never errored.
type LabelMap map[string]types.Category

func LoadLabelMap(resourceFolder string, cfg types.Configuration) (LabelMap, error) {
	raw, err := utils.ReadMap(path.Join(resourceFolder, cfg.LabelMap))
	if err != nil {
		return nil, err
	}

	labels := make(LabelMap, len(raw))
	for label, categoryName := range raw {
		category := types.CategoryFromName(strings.TrimSpace(categoryName))
		if category == types.CategoryUnknown {
			continue
		}
		labels[strings.ToUpper(strings.TrimSpace(label))] = category
	}
	return labels, nil
}

// Normalize relabels raw tagger output into CandidateSpans. It neither
// merges nor reorders anything; overlap resolution belongs to the
// resolver. Spans that fall outside every utterance are dropped.
func Normalize(rawSpans []types.RawModelSpan, utterances []types.Utterance, labels LabelMap) []*types.CandidateSpan {
	out := make([]*types.CandidateSpan, 0, len(rawSpans))

	for i := range rawSpans {
		raw := &rawSpans[i]

		category, ok := labels[canonicalLabel(raw.Label)]
		if !ok {
			continue
		}

		uttIndex, ok := findUtterance(utterances, raw.Begin)
		if !ok {
			continue
		}

		confidence := types.ModelDefaultConfidence
		if raw.Score != nil {
			confidence = *raw.Score
		}

		text := strings.Join(strings.Fields(raw.Text), " ")
		if len(text) == 0 {
			continue
		}

		out = append(out, &types.CandidateSpan{
			Span: types.Span{
				Begin: raw.Begin,
				End:   raw.End,
				Text:  &text,
			},
			Category:       category,
			Source:         types.SourceModel,
			Confidence:     confidence,
			UtteranceIndex: uttIndex,
		})
	}

	return out
}

// canonicalLabel uppercases and strips BIO prefixes so that "B-PROBLEM"
// and "problem" hit the same table entry.
func canonicalLabel(label string) string {
	label = strings.ToUpper(strings.TrimSpace(label))
	label = strings.TrimPrefix(label, "B-")
	label = strings.TrimPrefix(label, "I-")
	return label
}

func findUtterance(utterances []types.Utterance, begin int32) (int, bool) {
	for i := range utterances {
		if begin >= utterances[i].Begin && begin < utterances[i].End {
			return utterances[i].Index, true
		}
	}
	return 0, false
}
