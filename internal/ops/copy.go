package ops

import (
	"os"
	"path/filepath"

	"github.com/Rynaret/Orang/internal/model"
	"github.com/Rynaret/Orang/internal/orangerr"
	"github.com/Rynaret/Orang/internal/telemetry"
)

// CopyExecutor copies a matched file or directory to the equivalent
// location under opts.Destination. It creates any
// missing parent directories and refuses to overwrite an existing
// destination unless opts.ConflictOverwrite is set.
type CopyExecutor struct{}

func (CopyExecutor) Execute(tc *telemetry.Context, fm model.FileMatch, opts Options, reporter Reporter) error {
	dst, err := ProjectPath(opts.SourceRoot, opts.Destination, fm.Path)
	if err != nil {
		reporter.Error(fm.Path, err)
		return err
	}

	if err := copyEntry(fm.Path, dst, fm.IsDirectory, opts.ConflictOverwrite, opts.DryRun); err != nil {
		reporter.Error(fm.Path, err)
		return err
	}

	tc.IncAdded()
	reporter.Add(dst)
	return nil
}

// copyEntry copies path to dst: a directory is created (non-recursively --
// the walk already visits every descendant, each getting its own Execute
// call), a file's bytes, mode, and mtime are preserved. Existing
// destinations are left untouched unless overwrite is set.
func copyEntry(path, dst string, isDir bool, overwrite, dryRun bool) error {
	if _, err := os.Lstat(dst); err == nil && !overwrite {
		return orangerr.RenameConflict(dst)
	}

	if dryRun {
		return nil
	}

	if isDir {
		info, err := os.Stat(path)
		if err != nil {
			return orangerr.IO(path, orangerr.CauseReadFailed, err)
		}
		if err := os.MkdirAll(dst, info.Mode()); err != nil {
			return orangerr.IO(dst, orangerr.CauseWriteFailed, err)
		}
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return orangerr.IO(path, orangerr.CauseReadFailed, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return orangerr.IO(path, orangerr.CauseReadFailed, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o777); err != nil {
		return orangerr.IO(dst, orangerr.CauseWriteFailed, err)
	}
	if err := os.WriteFile(dst, data, info.Mode()); err != nil {
		return orangerr.IO(dst, orangerr.CauseWriteFailed, err)
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
