package pattern

import (
	"fmt"
	"medscribe.com/mre/fsm"
	"medscribe.com/mre/types"
	"medscribe.com/mre/utils"
	"strings"
	"unicode"
)

// Matcher scans tokenized utterances for domain phrases and emits pattern
// candidates in the shared CandidateSpan representation. Given identical
// text and tables the output is byte-identical across runs.
type Matcher func(utterances []types.Utterance) []*types.CandidateSpan

// statusAuxWords are stripped from the front of a captured status phrase
// ("now only have occasional back pain" -> "occasional back pain").
var statusAuxWords = map[string]bool{
	"only":         true,
	"have":         true,
	"having":       true,
	"has":          true,
	"had":          true,
	"i":            true,
	"am":           true,
	"is":           true,
	"feel":         true,
	"feeling":      true,
	"get":          true,
	"getting":      true,
	"experience":   true,
	"experiencing": true,
	"been":         true,
	"being":        true,
	"just":         true,
	"some":         true,
	"a":            true,
	"an":           true,
	"the":          true,
}

// adjectival recency markers stay part of the status phrase
var adjectivalMarkers = map[string]bool{
	"occasional":   true,
	"occasionally": true,
	"intermittent": true,
}

const maxStatusPhraseTokens = 8

func NewMatcher(params Params) Matcher {
	symptomTree := buildPhraseTree(params.SymptomPhrases)
	treatmentTree := buildPhraseTree(params.TreatmentNouns)
	conditionTree := buildPhraseTree(params.ConditionNouns)

	treatmentWords := make(map[string]bool)
	for _, entry := range params.TreatmentNouns {
		for _, token := range tokenizeEntry(entry) {
			treatmentWords[token] = true
		}
	}

	treatmentMachine := getTreatmentCountMachine(treatmentWords, params.SessionNouns)
	recoveryMachine := getRecoveryTimeMachine(params.DurationUnits)

	return func(utterances []types.Utterance) []*types.CandidateSpan {
		out := make([]*types.CandidateSpan, 0, 16)
		seen := make(map[uint64]bool)

		emit := func(category types.Category, begin int32, end int32, text string, uttIndex int) {
			key := utils.HashString(fmt.Sprintf("%d_%d_%d", category, begin, end))
			if seen[key] {
				return
			}
			seen[key] = true
			out = append(out, &types.CandidateSpan{
				Span: types.Span{
					Begin: begin,
					End:   end,
					Text:  &text,
				},
				Category:       category,
				Source:         types.SourcePattern,
				Confidence:     types.PatternConfidence,
				UtteranceIndex: uttIndex,
			})
		}

		for u := range utterances {
			utt := &utterances[u]
			tokens := utt.Tokens

			matchSymptoms(utt, tokens, symptomTree, params, emit)
			matchConditions(utt, tokens, conditionTree, emit)
			matchTreatments(utt, tokens, treatmentTree, treatmentMachine, emit)
			matchRecoveryTime(utt, tokens, recoveryMachine, emit)
			matchStatus(utt, tokens, symptomTree, params, emit)
		}

		return out
	}
}

type emitFunc func(category types.Category, begin int32, end int32, text string, uttIndex int)

func matchSymptoms(utt *types.Utterance, tokens []*types.Token, tree utils.StringPrefixTree, params Params, emit emitFunc) {
	for i := 0; i < len(tokens); i++ {
		if length := matchTreeAt(tree, tokens, i); length > 0 {
			begin, end := tokens[i].Begin, tokens[i+length-1].End
			emit(types.CategorySymptom, begin, end, surfaceText(utt, begin, end), utt.Index)
			i += length - 1
			continue
		}

		token := tokens[i]
		if !token.IsWord || !params.SymptomNouns[*token.Text] {
			continue
		}
		begin := token.Begin
		if i > 0 && tokens[i-1].IsWord && params.BodyParts[*tokens[i-1].Text] {
			begin = tokens[i-1].Begin
		}
		emit(types.CategorySymptom, begin, token.End, surfaceText(utt, begin, token.End), utt.Index)
	}
}

func matchConditions(utt *types.Utterance, tokens []*types.Token, tree utils.StringPrefixTree, emit emitFunc) {
	for i := 0; i < len(tokens); i++ {
		length := matchTreeAt(tree, tokens, i)
		if length == 0 {
			continue
		}
		last := i + length - 1
		// "whiplash injury" is one span
		if last+1 < len(tokens) && tokens[last+1].IsWord && *tokens[last+1].Text == "injury" {
			last++
		}
		begin, end := tokens[i].Begin, tokens[last].End
		emit(types.CategoryDiagnosis, begin, end, surfaceText(utt, begin, end), utt.Index)
		i = last
	}
}

func matchTreatments(utt *types.Utterance, tokens []*types.Token, tree utils.StringPrefixTree, machine fsm.Machine, emit emitFunc) {
	// counted phrases first: "ten physiotherapy sessions"
	currentState := stateStart
	tokenStart := -1
	for i, token := range tokens {
		currentState = machine.Input(token, currentState)

		if currentState == stateStart {
			tokenStart = i
		}

		if currentState == stateEnd {
			first := tokenStart + 1
			emit(
				types.CategoryTreatment,
				tokens[first].Begin,
				token.End,
				normalizeCountedPhrase(tokens[first:i+1]),
				utt.Index,
			)
			currentState = stateStart
			tokenStart = i
		}
	}

	// bare treatment mentions
	for i := 0; i < len(tokens); i++ {
		length := matchTreeAt(tree, tokens, i)
		if length == 0 {
			continue
		}
		begin, end := tokens[i].Begin, tokens[i+length-1].End
		emit(types.CategoryTreatment, begin, end, surfaceText(utt, begin, end), utt.Index)
		i += length - 1
	}
}

func matchRecoveryTime(utt *types.Utterance, tokens []*types.Token, machine fsm.Machine, emit emitFunc) {
	currentState := stateStart
	tokenStart := -1
	for i, token := range tokens {
		currentState = machine.Input(token, currentState)

		if currentState == stateStart {
			tokenStart = i
		}

		if currentState == stateEnd {
			first := tokenStart + 1
			begin, end := tokens[first].Begin, token.End
			emit(types.CategoryPrognosis, begin, end, surfaceText(utt, begin, end), utt.Index)
			currentState = stateStart
			tokenStart = i
		}
	}
}

func matchStatus(utt *types.Utterance, tokens []*types.Token, symptomTree utils.StringPrefixTree, params Params, emit emitFunc) {
	for i, token := range tokens {
		if !token.IsWord || !params.RecencyMarkers[*token.Text] {
			continue
		}

		first := i + 1
		if adjectivalMarkers[*token.Text] {
			first = i
		}

		// capture up to the next punctuation mark
		last := first - 1
		for j := first; j < len(tokens) && j-first < maxStatusPhraseTokens; j++ {
			if tokens[j].IsPunct {
				break
			}
			last = j
		}

		// strip leading auxiliaries, but never the marker itself
		for first <= last && first > i && statusAuxWords[*tokens[first].Text] {
			first++
		}

		if first > last || !containsSymptom(tokens[first:last+1], symptomTree, params) {
			continue
		}

		begin, end := tokens[first].Begin, tokens[last].End
		emit(types.CategoryStatus, begin, end, surfaceText(utt, begin, end), utt.Index)
	}
}

func containsSymptom(tokens []*types.Token, tree utils.StringPrefixTree, params Params) bool {
	for i, token := range tokens {
		if token.IsWord && params.SymptomNouns[*token.Text] {
			return true
		}
		if matchTreeAt(tree, tokens, i) > 0 {
			return true
		}
	}
	return false
}

// matchTreeAt returns the length in tokens of the longest phrase from the
// tree starting at index i, or 0 when nothing matches.
func matchTreeAt(tree utils.StringPrefixTree, tokens []*types.Token, i int) int {
	node := tree.Root
	length := 0
	for j := i; j < len(tokens); j++ {
		child, ok := node.Children[*tokens[j].Text]
		if !ok {
			break
		}
		node = child
		if len(node.Text) > 0 {
			length = j - i + 1
		}
	}
	return length
}

func buildPhraseTree(phrases []string) utils.StringPrefixTree {
	var result utils.StringPrefixTree
	for _, phrase := range phrases {
		phrase = strings.TrimSpace(strings.ToLower(phrase))
		tokens := tokenizeEntry(phrase)
		result.Add(tokens, phrase)
	}
	return result
}

// tokenizeEntry splits a rule-table entry the same way the transcript
// tokenizer splits text, so tree lookups line up token for token.
func tokenizeEntry(entry string) []string {
	var tokens []string
	runes := []rune(strings.ToLower(entry))
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsLetter(r):
			begin := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || runes[i] == '\'') {
				i++
			}
			tokens = append(tokens, string(runes[begin:i]))
		case unicode.IsDigit(r):
			begin := i
			for i < len(runes) && unicode.IsDigit(runes[i]) {
				i++
			}
			tokens = append(tokens, string(runes[begin:i]))
		default:
			tokens = append(tokens, string(r))
			i++
		}
	}
	return tokens
}

func normalizeCountedPhrase(tokens []*types.Token) string {
	var sb strings.Builder
	for i, token := range tokens {
		if i > 0 {
			sb.WriteRune(' ')
		}
		if i == 0 {
			if digits, ok := NormalizeCount(*token.Text); ok {
				sb.WriteString(digits)
				continue
			}
		}
		sb.WriteString(*token.Text)
	}
	return sb.String()
}

func surfaceText(utt *types.Utterance, begin int32, end int32) string {
	span := types.Span{Begin: begin, End: end}
	text, ok := span.GetTextFromUtterance(utt)
	if !ok {
		return ""
	}
	return normalizeSpaces(text)
}

func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
