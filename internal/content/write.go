package content

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteReplacement atomically writes newText over path: a sibling temp file
// is written first, then renamed over the original, preserving the
// original's mode and modification time and leaving no partial
// file-writes behind. When dryRun is true, no filesystem mutation occurs;
// the function only reports whether newText differs from the file's
// current content.
func WriteReplacement(path string, newText string, dryRun bool) (changed bool, err error) {
	original, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	if string(original) == newText {
		return false, nil
	}
	if dryRun {
		return true, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".orang-tmp-*")
	if err != nil {
		return false, fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(newText); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return false, fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, info.Mode()); err != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("preserving mode on %s: %w", path, err)
	}
	if err := os.Chtimes(tmpPath, info.ModTime(), info.ModTime()); err != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("preserving mtime on %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("replacing %s: %w", path, err)
	}
	return true, nil
}
