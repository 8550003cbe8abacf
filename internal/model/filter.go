package model

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// NamePart identifies the slice of a path a name-scoped Filter evaluates
// against.
type NamePart int

const (
	// PartName is the file or directory's base name, including extension.
	PartName NamePart = iota
	// PartNameWithoutExtension is the base name with any extension stripped.
	PartNameWithoutExtension
	// PartExtension is the extension only (without the leading dot).
	PartExtension
	// PartFullName is the full (typically absolute) path.
	PartFullName
)

func (p NamePart) String() string {
	switch p {
	case PartName:
		return "name"
	case PartNameWithoutExtension:
		return "name-without-extension"
	case PartExtension:
		return "extension"
	case PartFullName:
		return "full-name"
	default:
		return "unknown"
	}
}

// FilterOptions holds the regex-engine-level knobs a Filter carries.
// regexp2 (github.com/dlclark/regexp2) is used instead of the stdlib regexp
// package specifically because it supports RightToLeft and ExplicitCapture,
// which stdlib RE2-derived regexp cannot express.
type FilterOptions struct {
	IgnoreCase       bool
	Multiline        bool
	Singleline       bool
	ExplicitCapture  bool
	ECMAScript       bool
	RightToLeft      bool
	CultureInvariant bool // accepted, has no effect: Go has no culture-aware regex engine
	Compiled         bool
	Part             NamePart
}

func (o FilterOptions) toRegexp2() regexp2.RegexOptions {
	var opts regexp2.RegexOptions
	if o.IgnoreCase {
		opts |= regexp2.IgnoreCase
	}
	if o.Multiline {
		opts |= regexp2.Multiline
	}
	if o.Singleline {
		opts |= regexp2.Singleline
	}
	if o.ExplicitCapture {
		opts |= regexp2.ExplicitCapture
	}
	if o.ECMAScript {
		opts |= regexp2.ECMAScript
	}
	if o.RightToLeft {
		opts |= regexp2.RightToLeft
	}
	if o.Compiled {
		opts |= regexp2.Compiled
	}
	return opts
}

// Filter is an immutable regex-backed predicate: a compiled pattern, an
// optional capture-group scope, an optional negation, and the option set
// that produced the compiled form. Construct with Compile; Filter is safe
// for concurrent read-only use once built.
type Filter struct {
	pattern    string
	re         *regexp2.Regexp
	GroupIndex int // -1 => whole match; >=0 => numbered group
	GroupName  string
	Negate     bool
	Options    FilterOptions
}

// Compile builds a Filter from a regular expression pattern and options.
// groupIndex is -1 for "whole match"; groupName, if non-empty, takes
// precedence and is resolved against the compiled pattern's named groups.
func Compile(pattern string, groupIndex int, groupName string, negate bool, opts FilterOptions) (*Filter, error) {
	re, err := regexp2.Compile(pattern, opts.toRegexp2())
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}
	return &Filter{
		pattern:    pattern,
		re:         re,
		GroupIndex: groupIndex,
		GroupName:  groupName,
		Negate:     negate,
		Options:    opts,
	}, nil
}

// Pattern returns the source regular expression text the Filter was
// compiled from.
func (f *Filter) Pattern() string { return f.pattern }

// Regexp returns the underlying compiled engine, for callers (content
// matching, replacement) that need direct access to enumerate all matches.
func (f *Filter) Regexp() *regexp2.Regexp { return f.re }

// MatchResult is the outcome of evaluating a Filter against a candidate
// string: either the whole match or the selected group, depending on
// GroupIndex/GroupName.
type MatchResult struct {
	Value      string
	Index      int
	Length     int
	ByNegation bool // true when this result is the synthetic empty match produced by a negated pass
}
