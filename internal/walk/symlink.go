package walk

import (
	"fmt"
	"os"
	"path/filepath"
)

// symlinkResolver tracks visited real paths to detect symlink loops during a
// single traversal. Traversal is single-threaded, so this needs no mutex: it
// is a plain map owned by the one Walker goroutine driving the walk.
type symlinkResolver struct {
	visited map[string]bool
}

func newSymlinkResolver() *symlinkResolver {
	return &symlinkResolver{visited: make(map[string]bool)}
}

// resolve resolves path through any symlinks and reports whether doing so
// revisits an already-seen real path (a loop). It does not mark the path as
// visited; callers must call markVisited once they commit to descending
// into it.
func (s *symlinkResolver) resolve(path string) (realPath string, isLoop bool, err error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, fmt.Errorf("dangling symlink %s: %w", path, err)
		}
		return "", false, fmt.Errorf("resolving symlink %s: %w", path, err)
	}
	return resolved, s.visited[resolved], nil
}

func (s *symlinkResolver) markVisited(realPath string) {
	s.visited[realPath] = true
}
