// Package filter implements the Filter evaluator and the FileSystemFilter
// composition rule: regexp2-backed predicates over names, extensions,
// attributes, properties, and file content.
package filter

import (
	"github.com/dlclark/regexp2"

	"github.com/Rynaret/Orang/internal/model"
)

// Evaluate applies f to input and returns (match, true) if input satisfies
// the filter XOR negate, or (nil, false) otherwise.
//
// For a group-scoped filter, Evaluate walks successive matches with
// FindNextMatch until it finds one where the requested group participated;
// a match whose target group did not participate is treated as though the
// pattern did not match at that position.
//
// negate inverts the Some/None outcome. When negation turns a "no match"
// into a pass, Evaluate returns a synthetic empty MatchResult with
// ByNegation set, so downstream code can distinguish "passed by negation"
// from "evaluated and genuinely matched".
func Evaluate(f *model.Filter, input string) (*model.MatchResult, bool) {
	result := firstParticipatingMatch(f, input)

	if f.Negate {
		if result == nil {
			return &model.MatchResult{ByNegation: true}, true
		}
		return nil, false
	}

	if result == nil {
		return nil, false
	}
	return result, true
}

func firstParticipatingMatch(f *model.Filter, input string) *model.MatchResult {
	re := f.Regexp()
	m, err := re.FindStringMatch(input)
	for m != nil && err == nil {
		if mr, ok := groupResult(f, m); ok {
			return mr
		}
		m, err = re.FindNextMatch(m)
	}
	return nil
}

// groupResult extracts the MatchResult for f's configured group scope from
// a regexp2.Match. It returns ok=false when the target group exists but did
// not participate in this particular match.
func groupResult(f *model.Filter, m *regexp2.Match) (*model.MatchResult, bool) {
	mr, ok := GroupResult(f, m)
	if !ok {
		return nil, false
	}
	return &mr, true
}

// GroupResult extracts the MatchResult for f's configured group scope
// (GroupName, else GroupIndex, else the whole match) from a regexp2.Match.
// It reports ok=false when the target group exists but did not participate
// in this particular match occurrence. Exported so the content package can
// reuse the same group-selection rule when enumerating all matches.
func GroupResult(f *model.Filter, m *regexp2.Match) (model.MatchResult, bool) {
	if f.GroupName == "" && f.GroupIndex < 0 {
		g := m.Group
		return model.MatchResult{Value: g.String(), Index: g.Index, Length: g.Length}, true
	}

	var g *regexp2.Group
	if f.GroupName != "" {
		g = m.GroupByName(f.GroupName)
	} else {
		g = m.GroupByNumber(f.GroupIndex)
	}
	if g == nil || len(g.Captures) == 0 {
		return model.MatchResult{}, false
	}
	return model.MatchResult{Value: g.String(), Index: g.Index, Length: g.Length}, true
}
