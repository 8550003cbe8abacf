package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rynaret/Orang/internal/content"
	"github.com/Rynaret/Orang/internal/model"
	"github.com/Rynaret/Orang/internal/orangerr"
	"github.com/Rynaret/Orang/internal/testutil"
)

func TestProposeName(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "report_draft.txt", "x")

	f, err := model.Compile(`_draft`, -1, "", false, model.FilterOptions{})
	require.NoError(t, err)
	r := &content.Replacer{Filter: f}

	newPath, err := content.ProposeName(path, r, content.Template{Raw: ""})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.txt"), newPath)
}

func TestRename_Noop(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "a.txt", "x")
	require.NoError(t, content.Rename(path, path, false))
}

func TestRename_Conflict(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WriteFile(t, dir, "a.txt", "x")
	dst := testutil.WriteFile(t, dir, "b.txt", "y")

	err := content.Rename(src, dst, false)
	require.Error(t, err)
	var oe *orangerr.Error
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, orangerr.KindRenameConflict, oe.Kind)

	// Neither file should have moved.
	_, err = os.Stat(src)
	assert.NoError(t, err)
	_, err = os.Stat(dst)
	assert.NoError(t, err)
}

func TestRename_DryRunDoesNotTouchFilesystem(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WriteFile(t, dir, "a.txt", "x")
	dst := filepath.Join(dir, "b.txt")

	require.NoError(t, content.Rename(src, dst, true))

	_, err := os.Stat(src)
	assert.NoError(t, err, "dry-run rename must not move the source")
	_, err = os.Stat(dst)
	assert.Error(t, err, "dry-run rename must not create the destination")
}

func TestRename_Actual(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WriteFile(t, dir, "a.txt", "x")
	dst := filepath.Join(dir, "b.txt")

	require.NoError(t, content.Rename(src, dst, false))

	_, err := os.Stat(src)
	assert.Error(t, err)
	_, err = os.Stat(dst)
	assert.NoError(t, err)
}

func TestRename_CaseOnlyGoesThroughIntermediate(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WriteFile(t, dir, "report.txt", "x")
	dst := filepath.Join(dir, "REPORT.txt")

	err := content.Rename(src, dst, false)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "case-only rename must leave exactly one file behind")
}
