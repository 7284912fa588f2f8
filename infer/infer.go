package infer

import (
	"medscribe.com/mre/resolver"
	"medscribe.com/mre/types"
	"strings"
	"unicode"
)

// Fields are the report slots that come from discourse heuristics rather
// than direct entity extraction. A nil field means the transcript gave no
// evidence for it; nothing here is ever guessed.
type Fields struct {
	PatientName   *string
	Diagnosis     *string
	CurrentStatus *string
	Prognosis     *string
}

var honorifics = map[string]string{
	"mr":   "Mr.",
	"mrs":  "Mrs.",
	"ms":   "Ms.",
	"miss": "Miss",
}

// InferFields selects field values from resolved entities and transcript
// structure. It mutates nothing and only ever chooses among existing text.
func InferFields(utterances []types.Utterance, resolution resolver.Resolution, providedName string, recencyMarkers map[string]bool) Fields {
	return Fields{
		PatientName:   inferPatientName(utterances, providedName),
		Diagnosis:     inferDiagnosis(resolution),
		CurrentStatus: inferCurrentStatus(utterances, resolution, recencyMarkers),
		Prognosis:     inferPrognosis(resolution),
	}
}

// inferPatientName applies the precedence chain: caller-supplied name,
// then a vocative in a doctor turn, then a patient self-introduction.
func inferPatientName(utterances []types.Utterance, providedName string) *string {
	if name := strings.TrimSpace(providedName); len(name) > 0 {
		return &name
	}
	if name, ok := findVocativeName(utterances); ok {
		return &name
	}
	if name, ok := findSelfIntroduction(utterances); ok {
		return &name
	}
	return nil
}

// findVocativeName scans doctor turns for "Mrs./Mr./Ms. <Capitalized>".
func findVocativeName(utterances []types.Utterance) (string, bool) {
	for u := range utterances {
		utt := &utterances[u]
		if utt.Speaker != types.SpeakerDoctor {
			continue
		}
		tokens := utt.Tokens
		for i, token := range tokens {
			display, ok := honorifics[*token.Text]
			if !ok {
				continue
			}

			// the period after the honorific tokenizes separately
			next := i + 1
			if next < len(tokens) && tokens[next].IsPunct && *tokens[next].Text == "." {
				next++
			}
			if next >= len(tokens) || !tokens[next].IsWord {
				continue
			}
			surname := tokens[next].GetShapedText()
			if !startsUpper(surname) {
				continue
			}
			return display + " " + surname, true
		}
	}
	return "", false
}

// findSelfIntroduction scans patient turns for "I'm <Name>" or
// "my name is <Name>", taking up to three capitalized tokens.
func findSelfIntroduction(utterances []types.Utterance) (string, bool) {
	for u := range utterances {
		utt := &utterances[u]
		if utt.Speaker != types.SpeakerPatient {
			continue
		}
		tokens := utt.Tokens
		for i, token := range tokens {
			var after int
			switch {
			case *token.Text == "i'm":
				after = i + 1
			case *token.Text == "name" && i+1 < len(tokens) && *tokens[i+1].Text == "is":
				after = i + 2
			default:
				continue
			}

			var parts []string
			for j := after; j < len(tokens) && len(parts) < 3; j++ {
				if !tokens[j].IsWord {
					break
				}
				word := tokens[j].GetShapedText()
				if !startsUpper(word) {
					break
				}
				parts = append(parts, word)
			}
			if len(parts) > 0 {
				return strings.Join(parts, " "), true
			}
		}
	}
	return "", false
}

// inferDiagnosis picks the diagnosis entity with the highest mention
// count; ties go to the one detected first.
func inferDiagnosis(resolution resolver.Resolution) *string {
	entities := resolution.Entities(types.CategoryDiagnosis)
	if len(entities) == 0 {
		return nil
	}

	best := entities[0]
	for _, entity := range entities[1:] {
		if entity.MentionCount > best.MentionCount {
			best = entity
		}
	}

	text := upperFirst(best.CanonicalText)
	return &text
}

// inferCurrentStatus walks patient turns from most recent to oldest. A
// status phrase in a turn wins outright; failing that, a symptom mention
// co-occurring with a recency marker in the same turn is accepted. No
// match means the status stays absent.
func inferCurrentStatus(utterances []types.Utterance, resolution resolver.Resolution, recencyMarkers map[string]bool) *string {
	statuses := resolution.Entities(types.CategoryStatus)
	symptoms := resolution.Entities(types.CategorySymptom)

	for u := len(utterances) - 1; u >= 0; u-- {
		utt := &utterances[u]
		if utt.Speaker != types.SpeakerPatient {
			continue
		}

		if entity := entityInUtterance(statuses, utt.Index); entity != nil {
			text := upperFirst(entity.CanonicalText)
			return &text
		}

		if !hasRecencyMarker(utt, recencyMarkers) {
			continue
		}
		if entity := entityInUtterance(symptoms, utt.Index); entity != nil {
			text := upperFirst(entity.CanonicalText)
			return &text
		}
	}
	return nil
}

func inferPrognosis(resolution resolver.Resolution) *string {
	entities := resolution.Entities(types.CategoryPrognosis)
	if len(entities) == 0 {
		return nil
	}
	text := upperFirst(entities[0].CanonicalText)
	return &text
}

// entityInUtterance returns the first entity with a supporting span in
// the given utterance, preserving detection order across entities.
func entityInUtterance(entities []*types.ResolvedEntity, uttIndex int) *types.ResolvedEntity {
	for _, entity := range entities {
		for _, span := range entity.SupportingSpans {
			if span.UtteranceIndex == uttIndex {
				return entity
			}
		}
	}
	return nil
}

func hasRecencyMarker(utt *types.Utterance, recencyMarkers map[string]bool) bool {
	for _, token := range utt.Tokens {
		if token.IsWord && recencyMarkers[*token.Text] {
			return true
		}
	}
	return false
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func upperFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
