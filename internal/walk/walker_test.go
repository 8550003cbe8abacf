package walk_test

import (
	"context"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rynaret/Orang/internal/filter"
	"github.com/Rynaret/Orang/internal/model"
	"github.com/Rynaret/Orang/internal/telemetry"
	"github.com/Rynaret/Orang/internal/testutil"
	"github.com/Rynaret/Orang/internal/walk"
)

func collect(w *walk.Walker, tc *telemetry.Context, cfg walk.Config) []string {
	var paths []string
	w.Walk(tc, cfg)(func(fm model.FileMatch) bool {
		paths = append(paths, fm.Path)
		return true
	})
	return paths
}

// Find by name, recursive.
func TestWalker_FindByName(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "a.txt", "x")
	testutil.WriteFile(t, dir, "b.log", "x")
	testutil.WriteFile(t, dir, "sub/c.txt", "x")

	name, err := model.Compile(`\.txt$`, -1, "", false, model.FilterOptions{Part: model.PartName})
	require.NoError(t, err)

	fsf := &filter.FileSystemFilter{Name: name}
	tc := telemetry.New(context.Background(), 0)
	w := walk.NewWalker()

	paths := collect(w, tc, walk.Config{
		Root:                  dir,
		FileFilter:            fsf,
		SearchTarget:          model.TargetFiles,
		RecurseSubdirectories: true,
	})

	var bases []string
	for _, p := range paths {
		bases = append(bases, filepath.Base(p))
	}
	sort.Strings(bases)
	assert.Equal(t, []string{"a.txt", "c.txt"}, bases)
}

// max-matching-files caps the number of emitted matches
// and sets TerminationReason = MaxReached.
func TestWalker_MaxMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 100; i++ {
		testutil.WriteFile(t, dir, filepathJoin(i), "x")
	}

	name, err := model.Compile(`\.log$`, -1, "", false, model.FilterOptions{Part: model.PartName})
	require.NoError(t, err)
	fsf := &filter.FileSystemFilter{Name: name}

	tc := telemetry.New(context.Background(), 5)
	w := walk.NewWalker()

	paths := collect(w, tc, walk.Config{
		Root:                  dir,
		FileFilter:            fsf,
		SearchTarget:          model.TargetFiles,
		RecurseSubdirectories: true,
	})

	assert.Len(t, paths, 5)
	assert.Equal(t, model.TerminationMaxReached, tc.TerminationReason())
	snap := tc.Snapshot()
	assert.LessOrEqual(t, snap.MatchingFiles+snap.MatchingDirectories, int64(5))
}

func filepathJoin(i int) string {
	return filepath.Join("logs", "f"+itoa(i)+".log")
}

func itoa(i int) string {
	digits := "0123456789"
	if i == 0 {
		return "0"
	}
	var b []byte
	for i > 0 {
		b = append([]byte{digits[i%10]}, b...)
		i /= 10
	}
	return string(b)
}

// Traversal visits each reachable path at most once per root, even
// with several nested subdirectories.
func TestWalker_VisitsEachPathOnce(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "a/b/c/d.txt", "x")
	testutil.WriteFile(t, dir, "a/b/e.txt", "x")
	testutil.WriteFile(t, dir, "a/f.txt", "x")

	name, err := model.Compile(`\.txt$`, -1, "", false, model.FilterOptions{Part: model.PartName})
	require.NoError(t, err)
	fsf := &filter.FileSystemFilter{Name: name}

	tc := telemetry.New(context.Background(), 0)
	w := walk.NewWalker()
	paths := collect(w, tc, walk.Config{
		Root:                  dir,
		FileFilter:            fsf,
		SearchTarget:          model.TargetFiles,
		RecurseSubdirectories: true,
	})

	seen := map[string]bool{}
	for _, p := range paths {
		assert.False(t, seen[p], "path %s visited more than once", p)
		seen[p] = true
	}
	assert.Len(t, paths, 3)
}

func TestWalker_NonRecursiveStopsAtRoot(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "a.txt", "x")
	testutil.WriteFile(t, dir, "sub/b.txt", "x")

	name, err := model.Compile(`\.txt$`, -1, "", false, model.FilterOptions{Part: model.PartName})
	require.NoError(t, err)
	fsf := &filter.FileSystemFilter{Name: name}

	tc := telemetry.New(context.Background(), 0)
	w := walk.NewWalker()
	paths := collect(w, tc, walk.Config{
		Root:                  dir,
		FileFilter:            fsf,
		SearchTarget:          model.TargetFiles,
		RecurseSubdirectories: false,
	})

	require.Len(t, paths, 1)
	assert.Equal(t, "a.txt", filepath.Base(paths[0]))
}

func TestWalker_DirectoryFilterGatesDescent(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "keep/a.txt", "x")
	testutil.WriteFile(t, dir, "skip/b.txt", "x")

	name, err := model.Compile(`\.txt$`, -1, "", false, model.FilterOptions{Part: model.PartName})
	require.NoError(t, err)
	fsf := &filter.FileSystemFilter{Name: name}
	dirFilter, err := model.Compile(`^keep$`, -1, "", false, model.FilterOptions{})
	require.NoError(t, err)

	tc := telemetry.New(context.Background(), 0)
	w := walk.NewWalker()
	paths := collect(w, tc, walk.Config{
		Root:                  dir,
		FileFilter:            fsf,
		DirectoryFilter:       dirFilter,
		SearchTarget:          model.TargetFiles,
		RecurseSubdirectories: true,
	})

	require.Len(t, paths, 1)
	assert.Equal(t, "a.txt", filepath.Base(paths[0]))
}
