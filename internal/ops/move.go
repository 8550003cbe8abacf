package ops

import (
	"os"

	"github.com/Rynaret/Orang/internal/model"
	"github.com/Rynaret/Orang/internal/telemetry"
)

// MoveExecutor copies a match to the equivalent location under
// opts.Destination and then removes the source. The walk is pre-order, so
// a directory is visited before its children and usually still has entries
// when its turn comes; directories are therefore removed best-effort with
// os.Remove, and a directory that cannot be removed is left in place
// without an error being reported.
type MoveExecutor struct{}

func (MoveExecutor) Execute(tc *telemetry.Context, fm model.FileMatch, opts Options, reporter Reporter) error {
	dst, err := ProjectPath(opts.SourceRoot, opts.Destination, fm.Path)
	if err != nil {
		reporter.Error(fm.Path, err)
		return err
	}

	if err := copyEntry(fm.Path, dst, fm.IsDirectory, opts.ConflictOverwrite, opts.DryRun); err != nil {
		reporter.Error(fm.Path, err)
		return err
	}

	if !opts.DryRun {
		// os.Remove, not RemoveAll: a directory that still has unmatched
		// children is left in place rather than destroyed as a side effect
		// of moving the matched ones out of it.
		if err := os.Remove(fm.Path); err != nil && !fm.IsDirectory {
			reporter.Error(fm.Path, err)
			return err
		}
	}

	tc.IncRenamed()
	reporter.Rename(fm.Path, dst)
	return nil
}
