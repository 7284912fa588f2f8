package fsm

import (
	"medscribe.com/mre/types"
	"strings"
)

type Condition func(token types.HasSpan) bool

func AnyCondition(token types.HasSpan) bool {
	return true
}

func NewWordSetCondition(set map[string]bool) Condition {
	return func(token types.HasSpan) bool {
		return set[*token.GetSpan().Text]
	}
}

func NewTextValueCondition(value string) Condition {
	l := len(value)
	return func(token types.HasSpan) bool {
		t, isOk := token.(*types.Token)
		if !isOk {
			return false
		}
		return t.IsWord && len(*t.Text) == l && strings.EqualFold(*t.Text, value)
	}
}

func NewDisjointCondition(conditions ...Condition) Condition {
	return func(token types.HasSpan) bool {
		for _, cond := range conditions {
			if cond(token) {
				return true
			}
		}

		return false
	}
}

func NumberCondition(token types.HasSpan) bool {
	t, isOk := token.(*types.Token)
	if !isOk {
		return false
	}

	return t.IsNumber
}
