package ops_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rynaret/Orang/internal/content"
	"github.com/Rynaret/Orang/internal/model"
	"github.com/Rynaret/Orang/internal/ops"
	"github.com/Rynaret/Orang/internal/telemetry"
	"github.com/Rynaret/Orang/internal/testutil"
)

type spyReporter struct {
	added, updated, deleted []string
	renamed                 [][2]string
	errors                  []string
}

func (r *spyReporter) Add(path string)    { r.added = append(r.added, path) }
func (r *spyReporter) Update(path string) { r.updated = append(r.updated, path) }
func (r *spyReporter) Delete(path string) { r.deleted = append(r.deleted, path) }
func (r *spyReporter) Rename(from, to string) {
	r.renamed = append(r.renamed, [2]string{from, to})
}
func (r *spyReporter) Error(path string, err error) { r.errors = append(r.errors, path) }

func newTC() *telemetry.Context { return telemetry.New(context.Background(), 0) }

// Replace rewrites every content match in the file, case-insensitively
// here.
func TestReplaceExecutor_Scenario(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "x.md", "hello\nHELLO\n")

	f, err := model.Compile(`hello`, -1, "", false, model.FilterOptions{IgnoreCase: true})
	require.NoError(t, err)

	text, err := os.ReadFile(path)
	require.NoError(t, err)
	fm := model.FileMatch{Path: path, Text: string(text)}

	reporter := &spyReporter{}
	executor := ops.ForVerb(ops.VerbReplace)
	err = executor.Execute(newTC(), fm, ops.Options{
		Filter:          f,
		ReplaceTemplate: content.Template{Raw: "world"},
	}, reporter)
	require.NoError(t, err)

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "world\nworld\n", string(out))
	assert.Len(t, reporter.updated, 1)
}

// Dry-run delete reports but does not mutate.
func TestDeleteExecutor_DryRun(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "a.tmp", "x")

	fm := model.FileMatch{Path: path}
	reporter := &spyReporter{}
	executor := ops.ForVerb(ops.VerbDelete)
	err := executor.Execute(newTC(), fm, ops.Options{DryRun: true}, reporter)
	require.NoError(t, err)

	assert.FileExists(t, path)
	assert.Len(t, reporter.deleted, 1)
}

func TestDeleteExecutor_Actual(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "a.tmp", "x")

	fm := model.FileMatch{Path: path}
	reporter := &spyReporter{}
	executor := ops.ForVerb(ops.VerbDelete)
	err := executor.Execute(newTC(), fm, ops.Options{}, reporter)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteExecutor_NonEmptyDirRequiresRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.MkdirAll(sub, 0o777))
	testutil.WriteFile(t, dir, "sub/child.txt", "x")

	fm := model.FileMatch{Path: sub, IsDirectory: true}
	reporter := &spyReporter{}
	executor := ops.ForVerb(ops.VerbDelete)

	err := executor.Execute(newTC(), fm, ops.Options{}, reporter)
	assert.Error(t, err, "non-empty directory without --recursive must fail")
	assert.DirExists(t, sub)

	err = executor.Execute(newTC(), fm, ops.Options{Recursive: true}, reporter)
	require.NoError(t, err)
	_, statErr := os.Stat(sub)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCopyExecutor(t *testing.T) {
	srcRoot := t.TempDir()
	dstRoot := t.TempDir()
	path := testutil.WriteFile(t, srcRoot, "sub/a.txt", "hello")

	fm := model.FileMatch{Path: path}
	reporter := &spyReporter{}
	executor := ops.ForVerb(ops.VerbCopy)
	err := executor.Execute(newTC(), fm, ops.Options{
		SourceRoot:  srcRoot,
		Destination: dstRoot,
	}, reporter)
	require.NoError(t, err)

	out, err := os.ReadFile(filepath.Join(dstRoot, "sub/a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(out))
	assert.FileExists(t, path, "copy must leave the source untouched")
}

func TestCopyExecutor_RefusesOverwriteByDefault(t *testing.T) {
	srcRoot := t.TempDir()
	dstRoot := t.TempDir()
	path := testutil.WriteFile(t, srcRoot, "a.txt", "new")
	testutil.WriteFile(t, dstRoot, "a.txt", "existing")

	fm := model.FileMatch{Path: path}
	reporter := &spyReporter{}
	executor := ops.ForVerb(ops.VerbCopy)
	err := executor.Execute(newTC(), fm, ops.Options{
		SourceRoot:  srcRoot,
		Destination: dstRoot,
	}, reporter)
	assert.Error(t, err)

	out, err := os.ReadFile(filepath.Join(dstRoot, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "existing", string(out), "destination must not be overwritten without the conflict option")
}

func TestMoveExecutor(t *testing.T) {
	srcRoot := t.TempDir()
	dstRoot := t.TempDir()
	path := testutil.WriteFile(t, srcRoot, "a.txt", "hello")

	fm := model.FileMatch{Path: path}
	reporter := &spyReporter{}
	executor := ops.ForVerb(ops.VerbMove)
	err := executor.Execute(newTC(), fm, ops.Options{
		SourceRoot:  srcRoot,
		Destination: dstRoot,
	}, reporter)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "move must remove the source")
	assert.FileExists(t, filepath.Join(dstRoot, "a.txt"))
}

func TestRenameExecutor(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "report_draft.txt", "x")

	f, err := model.Compile(`_draft`, -1, "", false, model.FilterOptions{})
	require.NoError(t, err)

	fm := model.FileMatch{Path: path}
	reporter := &spyReporter{}
	executor := ops.ForVerb(ops.VerbRename)
	err = executor.Execute(newTC(), fm, ops.Options{
		Filter:         f,
		RenameTemplate: content.Template{Raw: ""},
	}, reporter)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "report.txt"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestReportOnlyExecutor(t *testing.T) {
	fm := model.FileMatch{Path: "/tmp/whatever.txt"}
	reporter := &spyReporter{}
	executor := ops.ForVerb(ops.VerbFind)
	err := executor.Execute(newTC(), fm, ops.Options{}, reporter)
	require.NoError(t, err)
	assert.Equal(t, []string{"/tmp/whatever.txt"}, reporter.added)
}
