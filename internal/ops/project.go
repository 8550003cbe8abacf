package ops

import (
	"path/filepath"

	"github.com/Rynaret/Orang/internal/orangerr"
)

// ProjectPath maps a path found under sourceRoot onto the equivalent
// location under destRoot, preserving the relative subtree -- the
// rename-aware destination projection this package shares with the sync
// core's mirroring (internal/sync uses the same relative-path arithmetic,
// just with both roots walked instead of one).
func ProjectPath(sourceRoot, destRoot, path string) (string, error) {
	rel, err := filepath.Rel(sourceRoot, path)
	if err != nil {
		return "", orangerr.IO(path, orangerr.CauseNotFound, err)
	}
	return filepath.Join(destRoot, rel), nil
}
