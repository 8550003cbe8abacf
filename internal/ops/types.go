// Package ops implements the per-verb operation executors: Find, Match,
// Replace, Rename, Copy, Move, and Delete. Each consumes a
// model.FileMatch produced by the walk/filter layer and performs (or, in
// dry-run mode, merely reports) the corresponding filesystem mutation.
//
// Verbs share a single Executor interface selected by a Verb tag rather
// than a type hierarchy.
package ops

import (
	"github.com/Rynaret/Orang/internal/content"
	"github.com/Rynaret/Orang/internal/model"
	"github.com/Rynaret/Orang/internal/telemetry"
)

// Verb names one of the seven single-tree operations.
type Verb int

const (
	VerbFind Verb = iota
	VerbMatch
	VerbReplace
	VerbRename
	VerbCopy
	VerbMove
	VerbDelete
)

// Reporter receives one notification per path an Executor acts on, using
// the ADD/UPD/DEL/REN/ERR verb codes.
type Reporter interface {
	Add(path string)
	Update(path string)
	Delete(path string)
	Rename(from, to string)
	Error(path string, err error)
}

// Options configures a single Executor invocation. Not every field applies
// to every verb; each Executor documents which ones it reads.
type Options struct {
	DryRun bool

	// Recursive gates Delete's willingness to remove a non-empty directory.
	Recursive bool

	// ConflictOverwrite permits Copy/Move to replace an existing
	// destination instead of failing.
	ConflictOverwrite bool

	// SourceRoot/Destination resolve Copy/Move's per-match target via
	// ProjectPath.
	SourceRoot  string
	Destination string

	// ReplaceTemplate/RenameTemplate drive Replace and Rename respectively.
	ReplaceTemplate content.Template
	RenameTemplate  content.Template

	// Filter selects which match in the regex the template/group-number
	// backreferences resolve against; Rename and Replace fail with an
	// OptionParse error when it is nil.
	Filter *model.Filter
}

// Executor performs one verb's operation against a single match.
type Executor interface {
	Execute(tc *telemetry.Context, fm model.FileMatch, opts Options, reporter Reporter) error
}

// ForVerb returns the stock Executor for v.
func ForVerb(v Verb) Executor {
	switch v {
	case VerbFind, VerbMatch:
		return ReportOnlyExecutor{}
	case VerbReplace:
		return ReplaceExecutor{}
	case VerbRename:
		return RenameExecutor{}
	case VerbCopy:
		return CopyExecutor{}
	case VerbMove:
		return MoveExecutor{}
	case VerbDelete:
		return DeleteExecutor{}
	default:
		return ReportOnlyExecutor{}
	}
}
