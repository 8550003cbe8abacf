// Package telemetry implements the per-invocation search context:
// per-invocation counters, a progress reporter, an error sink,
// cancellation, and the termination reason. It holds no result buffer;
// callers that buffer results keep their own. It is created once per command
// invocation and owned by the single foreground thread that runs the
// command; all mutation happens from that thread.
package telemetry

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Rynaret/Orang/internal/model"
	"github.com/Rynaret/Orang/internal/orangerr"
)

// ProgressReporter receives periodic progress updates during traversal.
// Implementations must not block the caller for long; the default CLI
// implementation simply rewrites a single status line.
type ProgressReporter interface {
	Report(c *Counters)
}

// NopProgressReporter discards all updates.
type NopProgressReporter struct{}

func (NopProgressReporter) Report(*Counters) {}

// ErrorSink receives non-fatal per-path errors encountered during traversal
// or content processing.
type ErrorSink interface {
	Report(err *orangerr.Error)
}

// NopErrorSink discards all errors.
type NopErrorSink struct{}

func (NopErrorSink) Report(*orangerr.Error) {}

// Counters is a point-in-time copy of the monotonic counters aggregated into
// the end-of-command summary. The live values are held in atomics inside
// Context and changed only through its helpers; a Counters value is a plain
// snapshot that readers access directly.
type Counters struct {
	SearchedDirectories int64
	Files               int64
	Directories         int64
	MatchingFiles       int64
	MatchingDirectories int64
	Added               int64
	Updated             int64
	Renamed             int64
	Deleted             int64
	Errors              int64
	MaxFileSize         int64
	CumulativeSize      int64
}

// Context is the per-invocation aggregate of telemetry, progress, error
// reporting, and cancellation. It does not hold a result buffer.
type Context struct {
	ctx         context.Context
	cancel      context.CancelFunc
	counters    atomicCounters
	Progress    ProgressReporter
	Errors      ErrorSink
	MaxMatching int64
	startedAt   time.Time

	termination atomic.Int32
}

type atomicCounters struct {
	searchedDirectories atomic.Int64
	files               atomic.Int64
	directories         atomic.Int64
	matchingFiles       atomic.Int64
	matchingDirectories atomic.Int64
	added               atomic.Int64
	updated             atomic.Int64
	renamed             atomic.Int64
	deleted             atomic.Int64
	errors              atomic.Int64
	maxFileSize         atomic.Int64
	cumulativeSize      atomic.Int64
}

// New creates a Context for a single command invocation. maxMatching is
// the max-matching-files cap; 0 disables the cap.
func New(parent context.Context, maxMatching int64) *Context {
	ctx, cancel := context.WithCancel(parent)
	return &Context{
		ctx:         ctx,
		cancel:      cancel,
		Progress:    NopProgressReporter{},
		Errors:      NopErrorSink{},
		MaxMatching: maxMatching,
		startedAt:   time.Now(),
	}
}

// Ctx returns the cancellation-bearing context.Context for this invocation.
func (c *Context) Ctx() context.Context { return c.ctx }

// Cancel triggers cancellation and sets TerminationReason to Canceled,
// unless MaxReached already won the race.
func (c *Context) Cancel() {
	c.termination.CompareAndSwap(int32(model.TerminationNone), int32(model.TerminationCanceled))
	c.cancel()
}

// Canceled reports whether the context's cancellation signal has fired.
func (c *Context) Canceled() bool {
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}

// TerminationReason returns why the command stopped, if it has.
func (c *Context) TerminationReason() model.TerminationReason {
	return model.TerminationReason(c.termination.Load())
}

// MarkMaxReached records that max-matching-files was hit and stops further
// traversal cleanly. A prior Canceled result is not overwritten.
func (c *Context) MarkMaxReached() {
	c.termination.CompareAndSwap(int32(model.TerminationNone), int32(model.TerminationMaxReached))
	c.cancel()
}

// --- counters ---

func (c *Context) IncSearchedDirectories() { c.counters.searchedDirectories.Add(1) }
func (c *Context) IncFiles()               { c.counters.files.Add(1) }
func (c *Context) IncDirectories()         { c.counters.directories.Add(1) }
func (c *Context) IncAdded()               { c.counters.added.Add(1) }
func (c *Context) IncUpdated()             { c.counters.updated.Add(1) }
func (c *Context) IncRenamed()             { c.counters.renamed.Add(1) }
func (c *Context) IncDeleted()             { c.counters.deleted.Add(1) }
func (c *Context) IncErrors()              { c.counters.errors.Add(1) }

func (c *Context) ObserveSize(n int64) {
	c.counters.cumulativeSize.Add(n)
	for {
		cur := c.counters.maxFileSize.Load()
		if n <= cur || c.counters.maxFileSize.CompareAndSwap(cur, n) {
			return
		}
	}
}

// IncMatching increments the matching-file or matching-directory counter and
// reports whether the combined matching count has now reached MaxMatching.
// Callers that receive true must stop emitting further
// matches and call MarkMaxReached.
func (c *Context) IncMatching(isDirectory bool) (reachedMax bool) {
	var total int64
	if isDirectory {
		total = c.counters.matchingDirectories.Add(1) + c.counters.matchingFiles.Load()
	} else {
		total = c.counters.matchingFiles.Add(1) + c.counters.matchingDirectories.Load()
	}
	return c.MaxMatching > 0 && total >= c.MaxMatching
}

// Snapshot returns a point-in-time copy of the counters, suitable for
// progress reporting or the final summary.
func (c *Context) Snapshot() Counters {
	return Counters{
		SearchedDirectories: c.counters.searchedDirectories.Load(),
		Files:               c.counters.files.Load(),
		Directories:         c.counters.directories.Load(),
		MatchingFiles:       c.counters.matchingFiles.Load(),
		MatchingDirectories: c.counters.matchingDirectories.Load(),
		Added:               c.counters.added.Load(),
		Updated:             c.counters.updated.Load(),
		Renamed:             c.counters.renamed.Load(),
		Deleted:             c.counters.deleted.Load(),
		Errors:              c.counters.errors.Load(),
		MaxFileSize:         c.counters.maxFileSize.Load(),
		CumulativeSize:      c.counters.cumulativeSize.Load(),
	}
}

// Elapsed returns the duration since the Context was created.
func (c *Context) Elapsed() time.Duration { return time.Since(c.startedAt) }

// ReportError forwards a non-fatal error to the configured ErrorSink and
// increments the error counter.
func (c *Context) ReportError(err *orangerr.Error) {
	c.IncErrors()
	c.Errors.Report(err)
}

// ReportProgress forwards the current counter snapshot to the configured
// ProgressReporter.
func (c *Context) ReportProgress() {
	snap := c.Snapshot()
	c.Progress.Report(&snap)
}
