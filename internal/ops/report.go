package ops

import (
	"github.com/Rynaret/Orang/internal/model"
	"github.com/Rynaret/Orang/internal/telemetry"
)

// ReportOnlyExecutor backs both Find and Match: neither verb mutates the
// filesystem, they only surface matches, so one read-only Executor serves
// both (the difference between the two verbs is entirely in which filters
// the CLI layer populates -- name/extension/attributes for Find, content
// for Match -- not in how a match gets reported).
type ReportOnlyExecutor struct{}

func (ReportOnlyExecutor) Execute(tc *telemetry.Context, fm model.FileMatch, opts Options, reporter Reporter) error {
	reporter.Add(fm.Path)
	return nil
}
