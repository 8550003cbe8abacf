// Package walk implements the recursive traversal engine: a stack-based,
// pre-order, single-threaded walker that applies a FileSystemFilter,
// honours recursion/target/attribute settings, enforces max-matching-files,
// and emits a lazy stream of model.FileMatch.
//
// The walk uses an explicit stack rather than filepath.WalkDir so that
// children are visited in filesystem enumeration order instead of the
// filename-sorted order WalkDir imposes.
package walk

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Rynaret/Orang/internal/filter"
	"github.com/Rynaret/Orang/internal/model"
	"github.com/Rynaret/Orang/internal/orangerr"
	"github.com/Rynaret/Orang/internal/telemetry"
)

// Config holds everything a single traversal needs.
type Config struct {
	Root                  string
	FileFilter            *filter.FileSystemFilter
	DirectoryFilter       *model.Filter // gates descent; nil accepts every directory
	SearchTarget          model.SearchTarget
	RecurseSubdirectories bool
	FollowSymlinks        bool // reparse points are never followed unless this is explicitly set
	ReadContent           func(path string) (string, error)
}

// Walker is the traversal engine. It carries no state between calls to Walk;
// a fresh symlinkResolver is created per invocation.
type Walker struct{}

// NewWalker returns a ready-to-use Walker.
func NewWalker() *Walker { return &Walker{} }

type frame struct {
	path          string
	directoryName string
}

// Walk returns a lazy sequence of model.FileMatch for cfg.Root, driven by
// tc's cancellation and max-matching-files cap. Call the returned function
// with a yield callback to iterate; returning false from yield halts
// traversal promptly, as does tc's cancellation.
func (w *Walker) Walk(tc *telemetry.Context, cfg Config) func(yield func(model.FileMatch) bool) {
	return func(yield func(model.FileMatch) bool) {
		root, err := filepath.Abs(cfg.Root)
		if err != nil {
			tc.ReportError(orangerr.IO(cfg.Root, orangerr.CauseNotFound, err))
			return
		}
		info, err := os.Stat(root)
		if err != nil {
			tc.ReportError(orangerr.IO(root, orangerr.CauseNotFound, err))
			return
		}
		if !info.IsDir() {
			tc.ReportError(orangerr.IO(root, orangerr.CauseNotFound, fmt.Errorf("not a directory")))
			return
		}

		sym := newSymlinkResolver()
		stack := []frame{{path: root, directoryName: filepath.Base(root)}}

		for len(stack) > 0 {
			if tc.Canceled() {
				return
			}

			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			entries, err := readDirUnsorted(cur.path)
			if err != nil {
				tc.ReportError(orangerr.IO(cur.path, classifyOSError(err), err))
				tc.IncSearchedDirectories()
				continue
			}

			// Push in reverse so the first-enumerated child is processed
			// (popped) first, preserving filesystem enumeration order across
			// the depth-first walk.
			var children []frame

			for _, entry := range entries {
				if tc.Canceled() {
					return
				}

				childPath := filepath.Join(cur.path, entry.Name())
				isDir := entry.IsDir()

				if isDir {
					tc.IncDirectories()
				} else {
					tc.IncFiles()
				}

				isSymlink := entry.Type()&os.ModeSymlink != 0
				statPath := childPath
				if isSymlink {
					if !cfg.FollowSymlinks {
						continue
					}
					real, loop, err := sym.resolve(childPath)
					if err != nil {
						tc.ReportError(orangerr.IO(childPath, orangerr.CauseReadFailed, err))
						continue
					}
					if loop {
						continue
					}
					sym.markVisited(real)
					statPath = real
				}

				var fi os.FileInfo
				if isSymlink {
					fi, err = os.Stat(statPath) // statPath already resolved to the real, non-symlink target
				} else {
					fi, err = os.Lstat(statPath)
				}
				if err != nil {
					tc.ReportError(orangerr.IO(childPath, classifyOSError(err), err))
					continue
				}
				if isSymlink {
					isDir = fi.IsDir()
				}

				cand := filter.Candidate{
					Path:          childPath,
					IsDir:         isDir,
					Info:          fi,
					DirectoryName: cur.directoryName,
				}
				if !isDir && cfg.ReadContent != nil {
					cand.ReadContent = func() (string, error) { return cfg.ReadContent(childPath) }
				}

				fm, err := cfg.FileFilter.Accept(cand)
				if err != nil {
					if oe, ok := err.(*orangerr.Error); ok {
						tc.ReportError(oe)
					} else {
						tc.ReportError(orangerr.IO(childPath, orangerr.CauseReadFailed, err))
					}
					continue
				}

				if fm != nil {
					tc.ObserveSize(fm.Size)
					targetMatches := (cfg.SearchTarget == model.TargetAll) ||
						(isDir && cfg.SearchTarget == model.TargetDirectories) ||
						(!isDir && cfg.SearchTarget == model.TargetFiles)

					if targetMatches {
						reachedMax := tc.IncMatching(isDir)
						if !yield(*fm) {
							return
						}
						if reachedMax {
							tc.MarkMaxReached()
							return
						}
					}
				}

				if isDir && cfg.RecurseSubdirectories {
					descend := true
					if cfg.DirectoryFilter != nil {
						_, ok := filter.MatchName(cfg.DirectoryFilter, childPath)
						descend = ok
					}
					if descend {
						children = append(children, frame{path: childPath, directoryName: entry.Name()})
					}
				}
			}

			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}

			tc.IncSearchedDirectories()
			tc.ReportProgress()
		}
	}
}

func classifyOSError(err error) orangerr.Cause {
	switch {
	case os.IsNotExist(err):
		return orangerr.CauseNotFound
	case os.IsPermission(err):
		return orangerr.CausePermissionDenied
	default:
		return orangerr.CauseReadFailed
	}
}

// readDirUnsorted lists a directory's entries in filesystem enumeration
// order. Unlike the package-level os.ReadDir (which sorts by filename),
// (*os.File).ReadDir preserves the order the filesystem returns, which is
// the traversal order this walker requires.
func readDirUnsorted(dir string) ([]os.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ReadDir(-1)
}
