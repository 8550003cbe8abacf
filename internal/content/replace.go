package content

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/Rynaret/Orang/internal/filter"
	"github.com/Rynaret/Orang/internal/model"
)

// Evaluator is a side-effect-free function that computes a replacement
// string for a single match.
type Evaluator func(model.MatchResult) (string, error)

// Template is a replacement template: a literal string optionally
// containing $1..$n backreferences and ${name} named-group references, or
// (when Evaluator is set) a computed replacement that takes precedence over
// Raw entirely.
type Template struct {
	Raw       string
	Evaluator Evaluator
}

// Replacer applies a Template to every match a Filter finds in text, in
// left-to-right, non-overlapping order.
type Replacer struct {
	Filter *model.Filter
}

// Apply computes the replaced text without touching the filesystem. Callers
// decide separately whether to write it out (dry_run) or present a diff.
func (r *Replacer) Apply(text string, tmpl Template) (string, error) {
	re := r.Filter.Regexp()

	var b strings.Builder
	last := 0

	m, err := re.FindStringMatch(text)
	for m != nil && err == nil {
		span, ok := filter.GroupResult(r.Filter, m)
		if !ok {
			m, err = re.FindNextMatch(m)
			continue
		}

		b.WriteString(text[last:span.Index])

		var replacement string
		if tmpl.Evaluator != nil {
			replacement, err = tmpl.Evaluator(span)
			if err != nil {
				return "", err
			}
		} else {
			replacement = expandTemplate(m, tmpl.Raw)
		}
		b.WriteString(replacement)

		last = span.Index + span.Length
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return "", err
	}
	b.WriteString(text[last:])
	return b.String(), nil
}

// expandTemplate expands $1..$n, ${name}, and $$ references in raw against
// m's captured groups. Unrecognized $-sequences are copied through
// literally, matching the forgiving behaviour of most regex replace
// templates.
func expandTemplate(m *regexp2.Match, raw string) string {
	var b strings.Builder
	i := 0
	for i < len(raw) {
		c := raw[i]
		if c != '$' || i == len(raw)-1 {
			b.WriteByte(c)
			i++
			continue
		}

		next := raw[i+1]
		switch {
		case next == '$':
			b.WriteByte('$')
			i += 2
		case next == '{':
			end := strings.IndexByte(raw[i+2:], '}')
			if end < 0 {
				b.WriteByte(c)
				i++
				continue
			}
			name := raw[i+2 : i+2+end]
			if g := m.GroupByName(name); g != nil {
				b.WriteString(g.String())
			}
			i += 2 + end + 1
		case next >= '0' && next <= '9':
			j := i + 1
			for j < len(raw) && raw[j] >= '0' && raw[j] <= '9' {
				j++
			}
			n, _ := strconv.Atoi(raw[i+1 : j])
			if g := m.GroupByNumber(n); g != nil {
				b.WriteString(g.String())
			}
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}
