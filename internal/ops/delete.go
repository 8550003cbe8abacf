package ops

import (
	"os"

	"github.com/Rynaret/Orang/internal/model"
	"github.com/Rynaret/Orang/internal/orangerr"
	"github.com/Rynaret/Orang/internal/telemetry"
)

// DeleteExecutor removes a matched file or directory. A
// non-empty directory is only removed when opts.Recursive is set;
// otherwise it is reported as an error rather than silently skipped, so the
// caller knows the match was not deleted.
type DeleteExecutor struct{}

func (DeleteExecutor) Execute(tc *telemetry.Context, fm model.FileMatch, opts Options, reporter Reporter) error {
	if fm.IsDirectory {
		entries, err := os.ReadDir(fm.Path)
		if err != nil {
			reporter.Error(fm.Path, err)
			return err
		}
		if len(entries) > 0 && !opts.Recursive {
			err := orangerr.OptionParse("directory not empty; pass --recursive to delete " + fm.Path)
			reporter.Error(fm.Path, err)
			return err
		}
	}

	if opts.DryRun {
		tc.IncDeleted()
		reporter.Delete(fm.Path)
		return nil
	}

	if fm.IsDirectory {
		if err := os.RemoveAll(fm.Path); err != nil {
			reporter.Error(fm.Path, err)
			return err
		}
	} else if err := os.Remove(fm.Path); err != nil {
		reporter.Error(fm.Path, err)
		return err
	}

	tc.IncDeleted()
	reporter.Delete(fm.Path)
	return nil
}
