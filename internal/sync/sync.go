package sync

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Rynaret/Orang/internal/content"
	"github.com/Rynaret/Orang/internal/filter"
	"github.com/Rynaret/Orang/internal/model"
	"github.com/Rynaret/Orang/internal/orangerr"
)

// Reporter receives one notification per path acted on, mirroring the
// ADD/UPD/DEL/REN/ERR verb codes ops.Reporter uses for the single-tree
// operations, so sync output reads the same as find/replace/rename output.
type Reporter interface {
	Copied(path string)
	Updated(path string)
	Deleted(path string)
	Renamed(from, to string)
	Skipped(path string)
	Error(path string, err error)
}

// Result totals one Run invocation's effects.
type Result struct {
	Copied  int
	Updated int
	Deleted int
	Renamed int
	Skipped int
	Errors  int
}

// Run performs the two-pass bidirectional sync: pass one mirrors Left onto
// Right, pass two mirrors Right onto Left while
// skipping anything pass one already touched, using a conflict-resolution
// policy inverted between passes so "Left wins" consistently means the
// literal Left root wins regardless of which pass is walking which side.
func Run(ctx context.Context, opts Options, reporter Reporter) (Result, error) {
	var result Result

	state := &passState{
		opts:        opts,
		reporter:    reporter,
		result:      &result,
		allDecision: DecisionNone,
	}

	ignored := make(map[string]struct{})

	// Rename detection only runs on the L->R pass, so only that pass needs a
	// destination-side index cache.
	rightCache := newDirectoryIndexCache(opts.FileFilter)

	touched, canceled, err := state.runPass(ctx, opts.Left, opts.Right, opts.Conflict, ignored, rightCache, LtoR)
	if err != nil {
		return result, err
	}
	if canceled {
		return result, orangerr.Canceled()
	}

	ignored = touched
	_, canceled, err = state.runPass(ctx, opts.Right, opts.Left, opts.Conflict.Invert(), ignored, nil, RtoL)
	if err != nil {
		return result, err
	}
	if canceled {
		return result, orangerr.Canceled()
	}

	return result, nil
}

// passState carries the "yes/no to all" sticky decision across every path
// pair within (and across) passes.
type passState struct {
	opts        Options
	reporter    Reporter
	result      *Result
	allDecision Decision // DecisionYesToAll, DecisionNoToAll, or DecisionNone (not yet set)
}

func (s *passState) runPass(ctx context.Context, srcRoot, dstRoot string, conflict ConflictResolution, ignored map[string]struct{}, dstCache *directoryIndexCache, direction Direction) (map[string]struct{}, bool, error) {
	touched := make(map[string]struct{})

	canceled := false
	err := walkTree(srcRoot, s.opts.DirectoryFilter, func(relPath string, isDir bool, info os.FileInfo) error {
		if canceled {
			return filepath.SkipAll
		}
		select {
		case <-ctx.Done():
			canceled = true
			return filepath.SkipAll
		default:
		}

		if _, skip := ignored[relPath]; skip {
			return nil
		}

		srcPath := filepath.Join(srcRoot, relPath)
		dstPath := filepath.Join(dstRoot, relPath)

		if !isDir {
			if s.opts.FileFilter != nil {
				match, err := s.opts.FileFilter.Accept(filter.Candidate{
					Path:        srcPath,
					IsDir:       false,
					Info:        info,
					ReadContent: func() (string, error) { return readFileText(srcPath) },
				})
				if err != nil {
					s.result.Errors++
					s.reporter.Error(srcPath, err)
					return nil
				}
				if match == nil {
					return nil
				}
			}
		}

		touched[relPath] = struct{}{}

		dstInfo, dstExists, err := statInfo(dstPath)
		if err != nil {
			s.result.Errors++
			s.reporter.Error(dstPath, err)
			return nil
		}

		if !dstExists && !isDir {
			if oldPath, newPath, err := s.tryRename(ctx, srcPath, dstRoot, relPath, dstCache, info, direction); err != nil {
				s.result.Errors++
				s.reporter.Error(srcPath, err)
				return nil
			} else if newPath != "" {
				s.result.Renamed++
				s.reporter.Renamed(oldPath, newPath)
				touched[renamedRelPath(dstRoot, newPath)] = struct{}{}
				touched[renamedRelPath(dstRoot, oldPath)] = struct{}{}
				return nil
			}
		}

		state := classify(dstExists, dstInfo)
		if state == dstIsFile || state == dstIsDir {
			sameKind := (state == dstIsDir) == isDir
			if sameKind && !isDir && s.contentsEqual(ctx, srcPath, dstPath, info, dstInfo) {
				s.result.Skipped++
				s.reporter.Skipped(srcPath)
				return nil
			}
			if sameKind && isDir && info.Mode().Perm() == dstInfo.Mode().Perm() {
				return nil // both directories, attrs already agree
			}
		}

		preferLeft, canc, err := s.resolvePreferLeft(srcPath, dstPath, info, dstInfo, dstExists, state, isDir, conflict)
		if err != nil {
			s.result.Errors++
			s.reporter.Error(srcPath, err)
			return nil
		}
		if canc {
			canceled = true
			return filepath.SkipAll
		}

		s.execute(decide(isDir, state, preferLeft), srcPath, dstPath)
		return nil
	})

	if canceled {
		return touched, true, nil
	}
	return touched, false, err
}

// tryRename attempts rename detection for a file missing on the
// destination side. Rename detection only runs on the L->R pass: running
// it on R->L as well could "rename" a file that the L->R pass already
// placed, double-counting a single rename as two operations. Under
// dry-run the detection itself still runs (it is read-only) so the
// reported counts match what a real run would do, but no rename happens.
func (s *passState) tryRename(ctx context.Context, srcPath, dstRoot, relPath string, dstCache *directoryIndexCache, info os.FileInfo, direction Direction) (oldPath, newPath string, err error) {
	if direction != LtoR {
		return "", "", nil
	}
	dstPath := filepath.Join(dstRoot, relPath)
	idx, err := dstCache.get(filepath.Dir(dstPath))
	if err != nil {
		return "", "", err
	}
	candidate, err := FindRenameCandidate(ctx, srcPath, info, idx)
	if err != nil || candidate == "" {
		return "", "", err
	}
	if !s.opts.DryRun {
		if err := os.MkdirAll(filepath.Dir(dstPath), 0o777); err != nil {
			return "", "", orangerr.IO(dstPath, orangerr.CauseWriteFailed, err)
		}
		if err := content.Rename(candidate, dstPath, false); err != nil {
			return "", "", err
		}
	}
	idx.Remove(candidate)
	return candidate, dstPath, nil
}

func renamedRelPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}

func (s *passState) contentsEqual(ctx context.Context, srcPath, dstPath string, srcInfo, dstInfo os.FileInfo) bool {
	if s.opts.Compare.has(CompareSize) && srcInfo.Size() != dstInfo.Size() {
		return false
	}
	if s.opts.Compare.has(CompareModifiedTime) && !srcInfo.ModTime().Equal(dstInfo.ModTime()) {
		return false
	}
	if s.opts.Compare.has(CompareContent) {
		eq, err := filesEqual(ctx, srcPath, dstPath)
		if err != nil || !eq {
			return false
		}
		return true
	}
	// With no content compare requested, fall back to size+mtime agreement.
	return srcInfo.Size() == dstInfo.Size() && srcInfo.ModTime().Equal(dstInfo.ModTime())
}

func classify(exists bool, info os.FileInfo) dstState {
	if !exists {
		return dstMissing
	}
	if info.IsDir() {
		return dstIsDir
	}
	return dstIsFile
}

// resolvePreferLeft decides which side of this path pair wins.
// "preferLeft" here means "the side currently being walked (src) wins" --
// the literal Left/Right root mapping is handled by the caller inverting
// conflict between passes.
func (s *passState) resolvePreferLeft(srcPath, dstPath string, srcInfo, dstInfo os.FileInfo, dstExists bool, state dstState, srcIsDir bool, conflict ConflictResolution) (bool, bool, error) {
	kindMismatch := dstExists && (state == dstIsDir) != srcIsDir
	if !dstExists || kindMismatch {
		// Nothing to arbitrate: the side being walked is the only side that
		// has this item, so it always propagates.
		return true, false, nil
	}

	if !srcIsDir {
		srcTime, dstTime := srcInfo.ModTime(), dstInfo.ModTime()
		if srcTime.After(dstTime) {
			return true, false, nil
		}
		if dstTime.After(srcTime) {
			return false, false, nil
		}
	}

	switch conflict {
	case LeftWins:
		return true, false, nil
	case RightWins:
		return false, false, nil
	default:
		return s.ask(srcPath, dstPath)
	}
}

func (s *passState) ask(srcPath, dstPath string) (bool, bool, error) {
	switch s.allDecision {
	case DecisionYesToAll:
		return true, false, nil
	case DecisionNoToAll:
		return false, false, nil
	}

	// No prompter wired in (non-interactive run): treat the unresolvable
	// conflict as a cancellation rather than silently picking a side.
	if s.opts.Prompter == nil {
		return false, true, nil
	}

	d, err := s.opts.Prompter.Ask(srcPath, dstPath)
	if err != nil {
		return false, false, err
	}
	switch d {
	case DecisionYes:
		return true, false, nil
	case DecisionNo:
		return false, false, nil
	case DecisionYesToAll:
		s.allDecision = DecisionYesToAll
		return true, false, nil
	case DecisionNoToAll:
		s.allDecision = DecisionNoToAll
		return false, false, nil
	default: // DecisionCancel, DecisionNone
		return false, true, nil
	}
}

func (s *passState) execute(action Action, srcPath, dstPath string) {
	if s.opts.DryRun {
		s.reportDryRun(action, srcPath, dstPath)
		return
	}

	var err error
	switch action {
	case ActionNoop:
		return
	case ActionUpdateDstAttrs:
		err = copyAttrs(srcPath, dstPath)
		if err == nil {
			s.result.Updated++
			s.reporter.Updated(dstPath)
		}
	case ActionUpdateSrcAttrs:
		err = copyAttrs(dstPath, srcPath)
		if err == nil {
			s.result.Updated++
			s.reporter.Updated(srcPath)
		}
	case ActionCreateDstDir:
		err = os.MkdirAll(dstPath, 0o777)
		if err == nil {
			s.result.Copied++
			s.reporter.Copied(dstPath)
		}
	case ActionDeleteSrcDir:
		err = os.RemoveAll(srcPath)
		if err == nil {
			s.result.Deleted++
			s.reporter.Deleted(srcPath)
		}
	case ActionDeleteDstFileCreateDstDir:
		if err = os.Remove(dstPath); err == nil {
			err = os.MkdirAll(dstPath, 0o777)
		}
		if err == nil {
			s.result.Updated++
			s.reporter.Updated(dstPath)
		}
	case ActionDeleteSrcDirCopyDstFile:
		if err = os.RemoveAll(srcPath); err == nil {
			err = copyFile(dstPath, srcPath)
		}
		if err == nil {
			s.result.Updated++
			s.reporter.Updated(srcPath)
		}
	case ActionOverwriteDst:
		err = copyFile(srcPath, dstPath)
		if err == nil {
			s.result.Updated++
			s.reporter.Updated(dstPath)
		}
	case ActionOverwriteSrc:
		err = copyFile(dstPath, srcPath)
		if err == nil {
			s.result.Updated++
			s.reporter.Updated(srcPath)
		}
	case ActionDeleteDstDirCopySrcFile:
		if err = os.RemoveAll(dstPath); err == nil {
			err = copyFile(srcPath, dstPath)
		}
		if err == nil {
			s.result.Updated++
			s.reporter.Updated(dstPath)
		}
	case ActionDeleteSrcFileCreateSrcDirFromDst:
		if err = os.Remove(srcPath); err == nil {
			err = os.MkdirAll(srcPath, 0o777)
		}
		if err == nil {
			s.result.Updated++
			s.reporter.Updated(srcPath)
		}
	case ActionCopySrcToDst:
		if err = os.MkdirAll(filepath.Dir(dstPath), 0o777); err == nil {
			err = copyFile(srcPath, dstPath)
		}
		if err == nil {
			s.result.Copied++
			s.reporter.Copied(dstPath)
		}
	case ActionDeleteSrc:
		err = os.Remove(srcPath)
		if err == nil {
			s.result.Deleted++
			s.reporter.Deleted(srcPath)
		}
	}
	if err != nil {
		s.result.Errors++
		s.reporter.Error(srcPath, err)
	}
}

func (s *passState) reportDryRun(action Action, srcPath, dstPath string) {
	switch action {
	case ActionNoop:
		return
	case ActionCreateDstDir, ActionCopySrcToDst:
		s.result.Copied++
		s.reporter.Copied(dstPath)
	case ActionDeleteSrcDir, ActionDeleteSrc:
		s.result.Deleted++
		s.reporter.Deleted(srcPath)
	default:
		s.result.Updated++
		s.reporter.Updated(dstPath)
	}
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return orangerr.IO(src, orangerr.CauseReadFailed, err)
	}
	info, err := os.Stat(src)
	if err != nil {
		return orangerr.IO(src, orangerr.CauseReadFailed, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o777); err != nil {
		return orangerr.IO(dst, orangerr.CauseWriteFailed, err)
	}
	if err := os.WriteFile(dst, data, info.Mode()); err != nil {
		return orangerr.IO(dst, orangerr.CauseWriteFailed, err)
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

func copyAttrs(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return orangerr.IO(src, orangerr.CauseReadFailed, err)
	}
	if err := os.Chmod(dst, info.Mode()); err != nil {
		return orangerr.IO(dst, orangerr.CauseWriteFailed, err)
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

func readFileText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// walkTree performs a simple recursive descent of root, reporting each
// entry's path relative to root. Directory recursion is gated by dirFilter
// matched against the directory's base name, mirroring the recursion gate
// walk.Walker applies during search. Unlike walk.Walker this does not need
// enumeration-order guarantees, so it uses the simpler sorted os.ReadDir.
func walkTree(root string, dirFilter *model.Filter, visit func(relPath string, isDir bool, info os.FileInfo) error) error {
	return walkDir(root, "", dirFilter, visit)
}

func walkDir(root, relPath string, dirFilter *model.Filter, visit func(relPath string, isDir bool, info os.FileInfo) error) error {
	abs := filepath.Join(root, relPath)
	entries, err := os.ReadDir(abs)
	if err != nil {
		return orangerr.IO(abs, orangerr.CauseReadFailed, err)
	}

	for _, entry := range entries {
		childRel := filepath.Join(relPath, entry.Name())
		info, err := entry.Info()
		if err != nil {
			continue
		}

		if entry.IsDir() {
			if dirFilter != nil {
				if _, ok := filter.Evaluate(dirFilter, entry.Name()); !ok {
					continue
				}
			}
			if err := visit(childRel, true, info); err != nil {
				return err
			}
			if err := walkDir(root, childRel, dirFilter, visit); err != nil {
				return err
			}
			continue
		}

		if err := visit(childRel, false, info); err != nil {
			return err
		}
	}
	return nil
}
