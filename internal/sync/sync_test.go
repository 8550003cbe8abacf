package sync_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	syncpkg "github.com/Rynaret/Orang/internal/sync"
	"github.com/Rynaret/Orang/internal/testutil"
)

type recordingReporter struct {
	copied, updated, deleted []string
	renamed                  [][2]string
	errors                   []string
}

func (r *recordingReporter) Copied(path string)  { r.copied = append(r.copied, path) }
func (r *recordingReporter) Updated(path string) { r.updated = append(r.updated, path) }
func (r *recordingReporter) Deleted(path string) { r.deleted = append(r.deleted, path) }
func (r *recordingReporter) Renamed(from, to string) {
	r.renamed = append(r.renamed, [2]string{from, to})
}
func (r *recordingReporter) Skipped(path string) {}
func (r *recordingReporter) Error(path string, err error) {
	r.errors = append(r.errors, path+": "+err.Error())
}

func newReporter() *recordingReporter { return &recordingReporter{} }

func readAll(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// A file present only on the left gets copied to the right, and vice
// versa.
func TestSync_BasicCopyBothDirections(t *testing.T) {
	left := t.TempDir()
	right := t.TempDir()
	testutil.WriteFile(t, left, "only-left.txt", "L")
	testutil.WriteFile(t, right, "only-right.txt", "R")

	reporter := newReporter()
	result, err := syncpkg.Run(context.Background(), syncpkg.Options{
		Left:     left,
		Right:    right,
		Compare:  syncpkg.CompareContent | syncpkg.CompareSize | syncpkg.CompareModifiedTime,
		Conflict: syncpkg.LeftWins,
	}, reporter)
	require.NoError(t, err)

	assert.Equal(t, "L", readAll(t, filepath.Join(right, "only-left.txt")))
	assert.Equal(t, "R", readAll(t, filepath.Join(left, "only-right.txt")))
	assert.Equal(t, 2, result.Copied)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 0, result.Deleted)
}

// Newer mtime wins even under LeftWins, when left is in fact newer --
// and the reverse when right is newer.
func TestSync_NewerMtimeWins(t *testing.T) {
	left := t.TempDir()
	right := t.TempDir()
	testutil.WriteFile(t, left, "a.txt", "new content")
	testutil.WriteFile(t, right, "a.txt", "old content")
	testutil.SetModTime(t, filepath.Join(left, "a.txt"), time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	testutil.SetModTime(t, filepath.Join(right, "a.txt"), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	reporter := newReporter()
	result, err := syncpkg.Run(context.Background(), syncpkg.Options{
		Left:     left,
		Right:    right,
		Compare:  syncpkg.CompareContent | syncpkg.CompareModifiedTime,
		Conflict: syncpkg.LeftWins,
	}, reporter)
	require.NoError(t, err)

	assert.Equal(t, "new content", readAll(t, filepath.Join(right, "a.txt")))
	assert.Equal(t, 1, result.Updated)
}

// A same-mtime, byte-identical file under a different name on the other
// side is recognized as a rename, not copied.
func TestSync_RenameDetection(t *testing.T) {
	left := t.TempDir()
	right := t.TempDir()

	ts := time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC)
	testutil.WriteFile(t, left, "docs/foo.txt", "shared content")
	testutil.SetModTime(t, filepath.Join(left, "docs/foo.txt"), ts)

	testutil.WriteFile(t, right, "docs/bar.txt", "shared content")
	testutil.SetModTime(t, filepath.Join(right, "docs/bar.txt"), ts)

	reporter := newReporter()
	result, err := syncpkg.Run(context.Background(), syncpkg.Options{
		Left:     left,
		Right:    right,
		Compare:  syncpkg.CompareContent | syncpkg.CompareModifiedTime,
		Conflict: syncpkg.LeftWins,
	}, reporter)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Renamed)
	assert.Equal(t, 0, result.Copied)
	_, err = os.Stat(filepath.Join(right, "docs/bar.txt"))
	assert.True(t, os.IsNotExist(err), "the old name should no longer exist after a rename")
	assert.FileExists(t, filepath.Join(right, "docs/foo.txt"))
}

// Sync converges: running a completed LeftWins sync a second time
// performs zero mutations.
func TestSync_Convergence(t *testing.T) {
	left := t.TempDir()
	right := t.TempDir()
	testutil.WriteFile(t, left, "a.txt", "hello")
	testutil.WriteFile(t, left, "sub/b.txt", "world")

	opts := syncpkg.Options{
		Left:     left,
		Right:    right,
		Compare:  syncpkg.CompareContent | syncpkg.CompareSize | syncpkg.CompareModifiedTime,
		Conflict: syncpkg.LeftWins,
	}

	_, err := syncpkg.Run(context.Background(), opts, newReporter())
	require.NoError(t, err)

	reporter := newReporter()
	result, err := syncpkg.Run(context.Background(), opts, reporter)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Copied)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 0, result.Deleted)
	assert.Equal(t, 0, result.Renamed)
}

// For conflicting paths with tied mtimes, LeftWins and RightWins each
// produce a mirror of their respective winning side.
func TestSync_Symmetry(t *testing.T) {
	for _, conflict := range []syncpkg.ConflictResolution{syncpkg.LeftWins, syncpkg.RightWins} {
		left := t.TempDir()
		right := t.TempDir()
		testutil.WriteFile(t, left, "conflict.txt", "left-version")
		testutil.WriteFile(t, right, "conflict.txt", "right-version")
		sameTime := time.Date(2022, 3, 3, 0, 0, 0, 0, time.UTC)
		testutil.SetModTime(t, filepath.Join(left, "conflict.txt"), sameTime)
		testutil.SetModTime(t, filepath.Join(right, "conflict.txt"), sameTime)

		_, err := syncpkg.Run(context.Background(), syncpkg.Options{
			Left:     left,
			Right:    right,
			Compare:  syncpkg.CompareContent | syncpkg.CompareModifiedTime,
			Conflict: conflict,
		}, newReporter())
		require.NoError(t, err)

		leftContent := readAll(t, filepath.Join(left, "conflict.txt"))
		rightContent := readAll(t, filepath.Join(right, "conflict.txt"))
		assert.Equal(t, leftContent, rightContent, "both sides should mirror the same winner")

		if conflict == syncpkg.LeftWins {
			assert.Equal(t, "left-version", leftContent)
		} else {
			assert.Equal(t, "right-version", leftContent)
		}
	}
}

// Dry-run still runs rename detection (it is read-only) so the reported
// counts match a real run, without touching either side.
func TestSync_DryRunRenameDetection(t *testing.T) {
	left := t.TempDir()
	right := t.TempDir()

	ts := time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC)
	testutil.WriteFile(t, left, "docs/foo.txt", "shared content")
	testutil.SetModTime(t, filepath.Join(left, "docs/foo.txt"), ts)
	testutil.WriteFile(t, right, "docs/bar.txt", "shared content")
	testutil.SetModTime(t, filepath.Join(right, "docs/bar.txt"), ts)

	reporter := newReporter()
	result, err := syncpkg.Run(context.Background(), syncpkg.Options{
		Left:     left,
		Right:    right,
		Compare:  syncpkg.CompareContent | syncpkg.CompareModifiedTime,
		Conflict: syncpkg.LeftWins,
		DryRun:   true,
	}, reporter)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Renamed)
	assert.Equal(t, 0, result.Copied)
	assert.FileExists(t, filepath.Join(right, "docs/bar.txt"), "dry-run must not perform the rename")
	_, statErr := os.Stat(filepath.Join(right, "docs/foo.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

// Dry-run performs no filesystem mutations but reports the action it
// would have taken.
func TestSync_DryRunPurity(t *testing.T) {
	left := t.TempDir()
	right := t.TempDir()
	testutil.WriteFile(t, left, "only-left.txt", "L")

	reporter := newReporter()
	result, err := syncpkg.Run(context.Background(), syncpkg.Options{
		Left:     left,
		Right:    right,
		Compare:  syncpkg.CompareContent,
		Conflict: syncpkg.LeftWins,
		DryRun:   true,
	}, reporter)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Copied)
	_, err = os.Stat(filepath.Join(right, "only-left.txt"))
	assert.True(t, os.IsNotExist(err), "dry-run must not create the destination file")
}
