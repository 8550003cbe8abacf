package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rynaret/Orang/internal/orangerr"
)

// ProposeName applies tmpl to the name-part of path (the whole base name)
// and returns the proposed new full path, leaving the directory portion
// untouched.
func ProposeName(path string, replacer *Replacer, tmpl Template) (string, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	newBase, err := replacer.Apply(base, tmpl)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, newBase), nil
}

// Rename performs the rename transform with its conflict and case-only
// special cases:
//
//   - if newPath == path, it is a no-op.
//   - if newPath exists and is not the same inode as path, it fails with
//     orangerr.RenameConflict.
//   - if newPath and path differ only by case (case-insensitive
//     filesystems), the rename is performed through a unique intermediate
//     name so the filesystem doesn't silently no-op a same-path
//     case-change rename.
func Rename(path, newPath string, dryRun bool) error {
	if path == newPath {
		return nil
	}

	if info, err := os.Lstat(newPath); err == nil {
		orig, err := os.Lstat(path)
		if err != nil {
			return orangerr.IO(path, orangerr.CauseReadFailed, err)
		}
		if !os.SameFile(info, orig) {
			return orangerr.RenameConflict(newPath)
		}
		// Same inode: either a no-op, or a case-only rename on a
		// case-insensitive filesystem. Fall through to perform it.
	}

	if dryRun {
		return nil
	}

	if strings.EqualFold(path, newPath) {
		intermediate := newPath + fmt.Sprintf(".orang-case-%d", os.Getpid())
		if err := os.Rename(path, intermediate); err != nil {
			return orangerr.IO(path, orangerr.CauseWriteFailed, err)
		}
		if err := os.Rename(intermediate, newPath); err != nil {
			return orangerr.IO(intermediate, orangerr.CauseWriteFailed, err)
		}
		return nil
	}

	if err := os.Rename(path, newPath); err != nil {
		return orangerr.IO(path, orangerr.CauseWriteFailed, err)
	}
	return nil
}
