package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rynaret/Orang/internal/config"
	"github.com/Rynaret/Orang/internal/content"
	"github.com/Rynaret/Orang/internal/filter"
	"github.com/Rynaret/Orang/internal/model"
	"github.com/Rynaret/Orang/internal/ops"
	"github.com/Rynaret/Orang/internal/orangerr"
	"github.com/Rynaret/Orang/internal/result"
	"github.com/Rynaret/Orang/internal/telemetry"
	"github.com/Rynaret/Orang/internal/walk"
)

// errNoMatches signals exit code 1 (success, but nothing matched) without
// being logged as a real error by Execute.
var errNoMatches = errors.New("no matches found")

// resultOptions configures the optional result-pipeline stage: sorting,
// capping, and column-width display. Buffering activates only when Sort or
// Columns is non-empty; otherwise runVerb streams matches to
// the executor as they're found, without holding the whole result set in
// memory.
type resultOptions struct {
	Sort     []result.Descriptor
	MaxCount int
	Columns  []string
}

func (ro resultOptions) buffers() bool {
	return len(ro.Sort) > 0 || len(ro.Columns) > 0
}

// runVerb walks root applying f's filters, dispatching every match to the
// given verb's Executor, and reports through a consoleReporter. It is the
// shared glue behind every find/match/replace/rename/copy/move/delete
// command. When ro requests sorting or a column display, matches are
// buffered until traversal completes instead of streaming straight to the
// executor.
func runVerb(cmd *cobra.Command, root string, f *filterFlags, verb ops.Verb, opts ops.Options, profile *config.Profile, ro resultOptions) error {
	fsf, err := f.buildFileSystemFilter(profile)
	if err != nil {
		return err
	}
	dirFilter, err := f.directoryFilter(profile)
	if err != nil {
		return err
	}

	fallbackEnc, err := content.ByName(f.effectiveEncoding(profile))
	if err != nil {
		return orangerr.UnknownEnum("--encoding", f.effectiveEncoding(profile))
	}

	// The walker emits absolute paths, so the root used for destination
	// projection and base-directory display must be absolute too.
	root, err = filepath.Abs(root)
	if err != nil {
		return orangerr.IO(root, orangerr.CauseNotFound, err)
	}

	tc := telemetry.New(context.Background(), f.effectiveMaxMatching(profile))
	if f.progress {
		tc.Progress = progressPrinter{w: cmd.ErrOrStderr()}
	}
	reporter := newConsoleReporter(cmd.OutOrStdout())
	executor := ops.ForVerb(verb)
	opts.SourceRoot = root
	opts.Filter = primaryFilter(fsf)

	cfg := walk.Config{
		Root:                  root,
		FileFilter:            fsf,
		DirectoryFilter:       dirFilter,
		SearchTarget:          f.searchTarget(),
		RecurseSubdirectories: f.effectiveRecursive(profile),
		FollowSymlinks:        f.effectiveFollowSymlinks(profile),
		ReadContent: func(path string) (string, error) {
			data, err := readFileBytes(path)
			if err != nil {
				return "", err
			}
			text, err := content.Decode(data, fallbackEnc)
			if err != nil {
				return "", orangerr.Encoding(path, err)
			}
			return text, nil
		},
	}

	w := walk.NewWalker()
	matched := false
	var firstErr error

	if !ro.buffers() {
		emitted := 0
		w.Walk(tc, cfg)(func(fm model.FileMatch) bool {
			matched = true
			if err := executor.Execute(tc, fm, opts, reporter); err != nil && firstErr == nil {
				firstErr = err
			}
			emitted++
			return ro.MaxCount <= 0 || emitted < ro.MaxCount
		})
	} else {
		buf := result.NewBuffer()
		sizeMap := model.NewDirectorySizeMap()
		w.Walk(tc, cfg)(func(fm model.FileMatch) bool {
			matched = true
			buf.Add(model.NewSearchResult(fm, root, sizeMap))
			return true
		})

		items := buf.Items()
		if len(ro.Sort) > 0 {
			items = result.Sort(items, ro.Sort)
		}
		items = result.Cap(items, ro.MaxCount)
		widths := result.ComputeColumnWidths(items)

		for _, item := range items {
			if len(ro.Columns) > 0 {
				size, _ := item.Size(func() (int64, error) { return dirSize(item.Match.Path) })
				reporter.AddColumns(item.Match.Path, size, widths)
				continue
			}
			if err := executor.Execute(tc, item.Match, opts, reporter); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}

	if f.progress {
		fmt.Fprintln(cmd.ErrOrStderr())
	}
	if f.includeSummary {
		snap := tc.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "searched=%d files=%d dirs=%d matches=%d errors=%d elapsed=%s\n",
			snap.SearchedDirectories, snap.Files, snap.Directories,
			snap.MatchingFiles+snap.MatchingDirectories, snap.Errors,
			tc.Elapsed().Round(time.Millisecond))
	}

	if tc.TerminationReason() == model.TerminationCanceled {
		return orangerr.Canceled()
	}
	if firstErr != nil {
		return firstErr
	}
	if !matched {
		return errNoMatches
	}
	return nil
}

func readFileBytes(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// dirSize sums the size of every regular file under path, for the result
// pipeline's column display when a buffered result is a directory.
func dirSize(path string) (int64, error) {
	var total int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			total += info.Size()
		}
		return nil
	})
	return total, err
}

// primaryFilter picks the filter whose matches a replace/rename template's
// backreferences resolve against: content for content-driven verbs (Replace),
// otherwise the name filter (Rename).
func primaryFilter(fsf *filter.FileSystemFilter) *model.Filter {
	if fsf.Content != nil {
		return fsf.Content
	}
	return fsf.Name
}
