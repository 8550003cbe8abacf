package ops

import (
	"github.com/Rynaret/Orang/internal/content"
	"github.com/Rynaret/Orang/internal/model"
	"github.com/Rynaret/Orang/internal/orangerr"
	"github.com/Rynaret/Orang/internal/telemetry"
)

// ReplaceExecutor rewrites a file's content with opts.ReplaceTemplate
// applied to every match of the filter that found it. Directories are skipped (content replacement has no meaning for them).
type ReplaceExecutor struct{}

func (ReplaceExecutor) Execute(tc *telemetry.Context, fm model.FileMatch, opts Options, reporter Reporter) error {
	if fm.IsDirectory {
		return nil
	}

	flt := opts.Filter
	if flt == nil {
		return orangerr.OptionParse("replace requires a content filter")
	}

	replacer := &content.Replacer{Filter: flt}
	newText, err := replacer.Apply(fm.Text, opts.ReplaceTemplate)
	if err != nil {
		reporter.Error(fm.Path, err)
		return err
	}

	changed, err := content.WriteReplacement(fm.Path, newText, opts.DryRun)
	if err != nil {
		reporter.Error(fm.Path, err)
		return err
	}
	if changed {
		tc.IncUpdated()
		reporter.Update(fm.Path)
	}
	return nil
}
