package sync

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Rynaret/Orang/internal/filter"
)

// maxRenameCandidates bounds how many same-mtime-and-size files in a
// destination directory get a full compare before rename detection gives
// up and falls back to a plain delete+create.
const maxRenameCandidates = 64

// renameCandidateConcurrency is the one place outside the walker where
// concurrency is permitted: comparing several same-size candidates against
// a single source file is embarrassingly parallel and carries no ordering
// requirement.
const renameCandidateConcurrency = 4

// indexEntry is one destination-directory sibling tracked as a possible
// rename counterpart: its path, size, and modification time.
type indexEntry struct {
	path  string
	size  int64
	mtime time.Time
}

// DirectoryIndex lists one destination directory's filter-accepted regular
// files, the candidate pool rename detection draws from. Rename candidates
// are always siblings within the same directory, so an index is scoped to
// a single directory rather than an entire tree.
type DirectoryIndex struct {
	dir     string
	entries []indexEntry
}

// BuildDirectoryIndex lists dir's immediate file children (non-recursive).
// A missing directory yields an empty index rather than an error, since the
// parent may not exist yet on the destination side.
func BuildDirectoryIndex(dir string, ff *filter.FileSystemFilter) (*DirectoryIndex, error) {
	idx := &DirectoryIndex{dir: dir}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return idx, nil
		}
		return nil, err
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if ff != nil {
			match, err := ff.Accept(filter.Candidate{
				Path:        path,
				IsDir:       false,
				Info:        info,
				ReadContent: func() (string, error) { data, e := os.ReadFile(path); return string(data), e },
			})
			if err != nil || match == nil {
				continue
			}
		}
		idx.entries = append(idx.entries, indexEntry{path: path, size: info.Size(), mtime: info.ModTime()})
	}
	return idx, nil
}

// Remove drops path from the index once it has been consumed as a rename
// target, so it is never proposed twice.
func (idx *DirectoryIndex) Remove(path string) {
	for i, e := range idx.entries {
		if e.path == path {
			idx.entries = append(idx.entries[:i], idx.entries[i+1:]...)
			return
		}
	}
}

// directoryIndexCache memoizes the most recently built DirectoryIndex,
// rebuilding only when the requested directory changes. Consecutive files
// visited during a pass usually share the same parent directory, so this
// avoids re-listing that directory for every candidate lookup.
type directoryIndexCache struct {
	filter *filter.FileSystemFilter
	dir    string
	idx    *DirectoryIndex
}

func newDirectoryIndexCache(ff *filter.FileSystemFilter) *directoryIndexCache {
	return &directoryIndexCache{filter: ff}
}

func (c *directoryIndexCache) get(dir string) (*DirectoryIndex, error) {
	if c.idx != nil && c.dir == dir {
		return c.idx, nil
	}
	idx, err := BuildDirectoryIndex(dir, c.filter)
	if err != nil {
		return nil, err
	}
	c.dir, c.idx = dir, idx
	return idx, nil
}

// FindRenameCandidate looks for the one destination-directory sibling that
// is the likely rename counterpart of a source file about to be copied.
// A candidate must (1) share the source's modified time, (2) share its
// size, and (3) be byte-identical to it. If zero or more than one
// candidate survives all three filters, the search reports no candidate
// and the caller falls through to a plain copy.
//
// The source file's content hash is computed once and reused across every
// candidate comparison, since many candidates sharing the same size and
// mtime is the expensive case this function exists to handle cheaply.
func FindRenameCandidate(ctx context.Context, srcPath string, srcInfo os.FileInfo, idx *DirectoryIndex) (string, error) {
	var sameTime []indexEntry
	for _, e := range idx.entries {
		if e.mtime.Equal(srcInfo.ModTime()) {
			sameTime = append(sameTime, e)
		}
	}

	var candidates []indexEntry
	for _, e := range sameTime {
		if e.size == srcInfo.Size() {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return "", nil
	}
	if len(candidates) > maxRenameCandidates {
		return "", nil
	}

	srcHash, err := quickHash(srcPath)
	if err != nil {
		return "", err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(renameCandidateConcurrency)

	var mu sync.Mutex
	var matches []string

	for _, candidate := range candidates {
		candidate := candidate
		g.Go(func() error {
			candHash, err := quickHash(candidate.path)
			if err != nil {
				return err
			}
			if candHash != srcHash {
				return nil
			}

			eq, err := filesEqual(gctx, srcPath, candidate.path)
			if err != nil {
				return err
			}
			if eq {
				mu.Lock()
				matches = append(matches, candidate.path)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}
	if len(matches) != 1 {
		return "", nil
	}
	return matches[0], nil
}

// statInfo is a tiny os.Stat wrapper kept here so rename.go and sync.go
// share one helper instead of repeating Lstat/IsNotExist handling.
func statInfo(path string) (os.FileInfo, bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return info, true, nil
}
