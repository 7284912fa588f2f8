package resolver

import (
	"medscribe.com/mre/types"
	"strings"
	"unicode"
)

// Resolution holds the resolved entities of one run, keyed by category.
// Slice order within a category is first-detection order.
type Resolution map[types.Category][]*types.ResolvedEntity

func (r Resolution) Entities(category types.Category) []*types.ResolvedEntity {
	return r[category]
}

// Texts returns the canonical texts of a category in resolution order.
func (r Resolution) Texts(category types.Category) []string {
	entities := r[category]
	texts := make([]string, len(entities))
	for i, ent := range entities {
		texts[i] = ent.CanonicalText
	}
	return texts
}

// Resolve partitions candidates into deduplicated entities. Every input
// span ends up in exactly one entity; running Resolve twice on the same
// input yields identical output.
func Resolve(candidates []*types.CandidateSpan) Resolution {
	resolution := make(Resolution, len(types.AllCategories))

	for _, category := range types.AllCategories {
		var clusters []*cluster

		for _, cand := range candidates {
			if cand.Category != category {
				continue
			}

			member := newMember(cand)
			placed := false
			for _, cl := range clusters {
				if cl.accepts(member) {
					cl.add(member)
					placed = true
					break
				}
			}
			if !placed {
				clusters = append(clusters, &cluster{members: []*clusterMember{member}})
			}
		}

		if len(clusters) == 0 {
			continue
		}

		entities := make([]*types.ResolvedEntity, len(clusters))
		for i, cl := range clusters {
			entities[i] = cl.toEntity(category)
		}
		resolution[category] = entities
	}

	return resolution
}

type clusterMember struct {
	span  *types.CandidateSpan
	canon string
	words []string
}

type cluster struct {
	members []*clusterMember
}

func newMember(span *types.CandidateSpan) *clusterMember {
	canon := canonicalForm(*span.Text)
	return &clusterMember{
		span:  span,
		canon: canon,
		words: strings.Fields(canon),
	}
}

// accepts reports whether the candidate is equivalent to any member of the
// cluster: equal canonical forms anywhere in the transcript, or contiguous
// word-subsequence containment within the same utterance.
func (cl *cluster) accepts(member *clusterMember) bool {
	for _, existing := range cl.members {
		if existing.canon == member.canon {
			return true
		}
		if existing.span.UtteranceIndex != member.span.UtteranceIndex {
			continue
		}
		if isWordSubsequence(member.words, existing.words) ||
			isWordSubsequence(existing.words, member.words) {
			return true
		}
	}
	return false
}

func (cl *cluster) add(member *clusterMember) {
	cl.members = append(cl.members, member)
}

func (cl *cluster) toEntity(category types.Category) *types.ResolvedEntity {
	spans := make([]*types.CandidateSpan, len(cl.members))
	for i, member := range cl.members {
		spans[i] = member.span
	}

	// longest surface form wins, ties broken by earliest detection
	best := cl.members[0]
	for _, member := range cl.members[1:] {
		if len([]rune(member.canon)) > len([]rune(best.canon)) {
			best = member
		}
	}

	return &types.ResolvedEntity{
		CanonicalText:   applyCasing(*best.span.Text),
		Category:        category,
		SupportingSpans: spans,
		MentionCount:    len(spans),
	}
}

// isWordSubsequence reports whether short occurs as a contiguous run
// inside long. This keeps "back pain" subsuming "pain" while unrelated
// phrases that merely share a word stay apart.
func isWordSubsequence(short []string, long []string) bool {
	if len(short) == 0 || len(short) >= len(long) {
		return false
	}
	for i := 0; i+len(short) <= len(long); i++ {
		match := true
		for j := range short {
			if long[i+j] != short[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func canonicalForm(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// applyCasing is the fixed canonical-casing policy: multi-word phrases are
// sentence-cased, single ambiguous words keep their original surface form.
func applyCasing(surface string) string {
	words := strings.Fields(surface)
	if len(words) <= 1 {
		return strings.Join(words, " ")
	}

	phrase := strings.ToLower(strings.Join(words, " "))
	runes := []rune(phrase)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
