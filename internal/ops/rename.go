package ops

import (
	"github.com/Rynaret/Orang/internal/content"
	"github.com/Rynaret/Orang/internal/model"
	"github.com/Rynaret/Orang/internal/orangerr"
	"github.com/Rynaret/Orang/internal/telemetry"
)

// RenameExecutor applies opts.RenameTemplate to a match's base name.
// Directories are renamed the same way as files; only
// the base name changes, never the parent path.
type RenameExecutor struct{}

func (RenameExecutor) Execute(tc *telemetry.Context, fm model.FileMatch, opts Options, reporter Reporter) error {
	flt := opts.Filter
	if flt == nil {
		return orangerr.OptionParse("rename requires a name filter")
	}

	replacer := &content.Replacer{Filter: flt}
	newPath, err := content.ProposeName(fm.Path, replacer, opts.RenameTemplate)
	if err != nil {
		reporter.Error(fm.Path, err)
		return err
	}
	if newPath == fm.Path {
		return nil
	}

	if err := content.Rename(fm.Path, newPath, opts.DryRun); err != nil {
		reporter.Error(fm.Path, err)
		return err
	}

	tc.IncRenamed()
	reporter.Rename(fm.Path, newPath)
	return nil
}
