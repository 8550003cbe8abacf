package content

import (
	"github.com/Rynaret/Orang/internal/filter"
	"github.com/Rynaret/Orang/internal/model"
)

// Matcher runs a content Filter against decoded text and exposes both the
// primary match and, when the caller needs it (list/replace/ask verbs), a
// full enumeration.
type Matcher struct {
	Filter *model.Filter
	Text   string
}

// Primary returns the first content match (or the first in the filter's
// configured group, if any), exactly like filter.Evaluate.
func (m *Matcher) Primary() (*model.MatchResult, bool) {
	return filter.Evaluate(m.Filter, m.Text)
}

// All returns every non-overlapping match (or group capture) in left-to-
// right order. It is the enumeration that content.Replacer.Apply consumes.
func (m *Matcher) All() []model.MatchResult {
	re := m.Filter.Regexp()
	var results []model.MatchResult

	mt, err := re.FindStringMatch(m.Text)
	for mt != nil && err == nil {
		if mr, ok := filter.GroupResult(m.Filter, mt); ok {
			results = append(results, mr)
		}
		mt, err = re.FindNextMatch(mt)
	}
	return results
}
