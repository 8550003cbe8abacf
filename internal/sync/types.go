// Package sync implements a two-pass bidirectional directory synchronizer:
// conflict resolution, rename detection via content equality on same-mtime
// candidates, and dry-run semantics. The first pass mirrors left onto
// right and records everything it touches; the second pass walks right
// with the roles swapped, skipping the recorded set.
package sync

import (
	"github.com/Rynaret/Orang/internal/filter"
	"github.com/Rynaret/Orang/internal/model"
)

// CompareOption is a bit in the set of checks used to decide whether two
// paired entries differ. CompareAttributes is accepted but not consulted
// when two files are compared; only size, modified time and content are.
type CompareOption uint8

const (
	CompareAttributes CompareOption = 1 << iota
	CompareContent
	CompareModifiedTime
	CompareSize
)

func (c CompareOption) has(opt CompareOption) bool { return c&opt != 0 }

// ConflictResolution is the policy applied when mtime gives no verdict.
type ConflictResolution int

const (
	LeftWins ConflictResolution = iota
	RightWins
	Ask
)

// Invert swaps LeftWins/RightWins for pass 2 of the algorithm; Ask remains
// Ask.
func (c ConflictResolution) Invert() ConflictResolution {
	switch c {
	case LeftWins:
		return RightWins
	case RightWins:
		return LeftWins
	default:
		return Ask
	}
}

// Direction identifies which pass of the two-pass algorithm is running.
type Direction int

const (
	LtoR Direction = iota
	RtoL
)

// Decision is the Ask prompt's possible responses. None (e.g. Ctrl-C/EOF)
// is treated as Cancel and returns early; No sets preferLeft=false for just
// that pair.
type Decision int

const (
	DecisionYes Decision = iota
	DecisionNo
	DecisionYesToAll
	DecisionNoToAll
	DecisionCancel
	DecisionNone
)

// Prompter resolves an Ask conflict for a single path pair.
type Prompter interface {
	Ask(leftPath, rightPath string) (Decision, error)
}

// Options configures a single sync invocation.
type Options struct {
	Left  string
	Right string

	FileFilter      *filter.FileSystemFilter
	DirectoryFilter *model.Filter

	Compare  CompareOption
	Conflict ConflictResolution
	DryRun   bool
	Prompter Prompter
}
