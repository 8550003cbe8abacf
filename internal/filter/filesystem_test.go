package filter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rynaret/Orang/internal/filter"
	"github.com/Rynaret/Orang/internal/model"
	"github.com/Rynaret/Orang/internal/testutil"
)

func candidateFor(t *testing.T, path string) filter.Candidate {
	t.Helper()
	info, err := os.Lstat(path)
	require.NoError(t, err)
	return filter.Candidate{
		Path:          path,
		IsDir:         info.IsDir(),
		Info:          info,
		DirectoryName: filepath.Base(filepath.Dir(path)),
		ReadContent: func() (string, error) {
			data, err := os.ReadFile(path)
			return string(data), err
		},
	}
}

// FileSystemFilter.Accept succeeds iff every configured sub-filter
// accepts the candidate independently.
func TestFileSystemFilter_Conjunction(t *testing.T) {
	dir := t.TempDir()
	match := testutil.WriteFile(t, dir, "notes/report.txt", "hello world")
	wrongExt := testutil.WriteFile(t, dir, "notes/report.log", "hello world")
	wrongContent := testutil.WriteFile(t, dir, "notes/report-other.txt", "nothing interesting")

	name, err := model.Compile(`report`, -1, "", false, model.FilterOptions{})
	require.NoError(t, err)
	ext, err := model.Compile(`^txt$`, -1, "", false, model.FilterOptions{Part: model.PartExtension})
	require.NoError(t, err)
	content, err := model.Compile(`hello`, -1, "", false, model.FilterOptions{})
	require.NoError(t, err)

	fsf := &filter.FileSystemFilter{Name: name, Extension: ext, Content: content}

	fm, err := fsf.Accept(candidateFor(t, match))
	require.NoError(t, err)
	require.NotNil(t, fm, "candidate passing all sub-filters should be accepted")

	fm, err = fsf.Accept(candidateFor(t, wrongExt))
	require.NoError(t, err)
	assert.Nil(t, fm, "wrong extension should fail the conjunction")

	fm, err = fsf.Accept(candidateFor(t, wrongContent))
	require.NoError(t, err)
	assert.Nil(t, fm, "name matches but content doesn't, should fail the conjunction")
}

func TestFileSystemFilter_AttributeRequireAndSkip(t *testing.T) {
	dir := t.TempDir()
	hidden := testutil.WriteFile(t, dir, ".hidden.txt", "x")
	visible := testutil.WriteFile(t, dir, "visible.txt", "x")

	fsf := &filter.FileSystemFilter{AttributesRequire: model.AttrHidden}
	fm, err := fsf.Accept(candidateFor(t, hidden))
	require.NoError(t, err)
	assert.NotNil(t, fm)

	fm, err = fsf.Accept(candidateFor(t, visible))
	require.NoError(t, err)
	assert.Nil(t, fm)

	skipFsf := &filter.FileSystemFilter{AttributesSkip: model.AttrHidden}
	fm, err = skipFsf.Accept(candidateFor(t, hidden))
	require.NoError(t, err)
	assert.Nil(t, fm)
}

func TestFileSystemFilter_EmptyOption(t *testing.T) {
	dir := t.TempDir()
	empty := testutil.WriteFile(t, dir, "empty.txt", "")
	nonEmpty := testutil.WriteFile(t, dir, "full.txt", "data")

	fsf := &filter.FileSystemFilter{Empty: model.EmptyOnly}
	fm, err := fsf.Accept(candidateFor(t, empty))
	require.NoError(t, err)
	assert.NotNil(t, fm)

	fm, err = fsf.Accept(candidateFor(t, nonEmpty))
	require.NoError(t, err)
	assert.Nil(t, fm)

	fsf.Empty = model.NonEmptyOnly
	fm, err = fsf.Accept(candidateFor(t, nonEmpty))
	require.NoError(t, err)
	assert.NotNil(t, fm)
}

// Directories are never considered for the content filter;
// Candidate.ReadContent is only invoked for files.
func TestFileSystemFilter_DirectoryNeverReadsContent(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.MkdirAll(sub, 0o777))

	content, err := model.Compile(`anything`, -1, "", false, model.FilterOptions{})
	require.NoError(t, err)
	fsf := &filter.FileSystemFilter{Content: content}

	info, err := os.Lstat(sub)
	require.NoError(t, err)
	cand := filter.Candidate{
		Path:  sub,
		IsDir: true,
		Info:  info,
		ReadContent: func() (string, error) {
			t.Fatal("content filter must never read a directory's bytes")
			return "", nil
		},
	}

	fm, err := fsf.Accept(cand)
	require.NoError(t, err)
	require.NotNil(t, fm)
	assert.Nil(t, fm.ContentMatch)
}
