package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// WriteFile writes content to path, relative to dir, creating any missing
// parent directories first. Intended for building small fixture trees
// inline in a test rather than shipping a testdata directory per case.
func WriteFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	full := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o777); err != nil {
		t.Fatalf("mkdir for %s: %v", full, err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", full, err)
	}
	return full
}

// SetModTime pins path's modification time to ts, so tests over
// mtime-sensitive logic (sync's PreferLeft derivation, rename detection)
// are deterministic instead of racing the filesystem clock.
func SetModTime(t *testing.T, path string, ts time.Time) {
	t.Helper()
	if err := os.Chtimes(path, ts, ts); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}
