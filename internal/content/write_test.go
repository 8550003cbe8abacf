package content_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rynaret/Orang/internal/content"
	"github.com/Rynaret/Orang/internal/testutil"
)

func TestWriteReplacement_WritesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "a.txt", "hello world")
	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	testutil.SetModTime(t, path, old)

	changed, err := content.WriteReplacement(path, "hello there", false)
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello there", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no leftover temp file should remain after a successful write")
}

func TestWriteReplacement_NoChangeWhenIdentical(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "a.txt", "hello world")

	changed, err := content.WriteReplacement(path, "hello world", false)
	require.NoError(t, err)
	assert.False(t, changed)
}

// Dry-run leaves the on-disk bytes untouched, but still reports whether a
// write would have changed anything.
func TestWriteReplacement_DryRunPurity(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "a.txt", "hello world")

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	changed, err := content.WriteReplacement(path, "hello there", true)
	require.NoError(t, err)
	assert.True(t, changed, "dry-run still reports that a write would change the file")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "dry-run must not mutate the file")
}
