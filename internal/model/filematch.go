package model

import (
	"sync"
	"time"
)

// SearchTarget restricts which filesystem entry kinds a traversal emits.
type SearchTarget int

const (
	TargetFiles SearchTarget = iota
	TargetDirectories
	TargetAll
)

// TerminationReason records why a command's traversal stopped.
type TerminationReason int

const (
	TerminationNone TerminationReason = iota
	TerminationMaxReached
	TerminationCanceled
)

func (t TerminationReason) String() string {
	switch t {
	case TerminationMaxReached:
		return "MaxReached"
	case TerminationCanceled:
		return "Canceled"
	default:
		return "None"
	}
}

// FileMatch is the record produced for each path that passed filtering.
// A FileMatch with IsDirectory true never carries a content match.
type FileMatch struct {
	Path               string
	IsDirectory        bool
	NameMatch          MatchResult
	ExtensionMatch     *MatchResult
	DirectoryNameMatch *MatchResult

	// Text and ContentMatch are populated only for content searches on
	// files (never directories).
	Text         string
	ContentMatch *MatchResult

	ModifiedTime time.Time
	CreationTime time.Time
	Size         int64
	Attributes   Attributes
}

// SearchResult wraps a FileMatch with the base directory it was discovered
// under and a lazily evaluated, cached size (directories only need to walk
// their subtree once).
type SearchResult struct {
	Match       FileMatch
	BaseDir     string
	sizeMap     *DirectorySizeMap
	sizeOnce    sync.Once
	resolvedLen int64
}

// NewSearchResult builds a SearchResult backed by the given shared
// DirectorySizeMap cache (pass nil to disable caching, e.g. for files where
// Match.Size is already authoritative).
func NewSearchResult(match FileMatch, baseDir string, sizeMap *DirectorySizeMap) *SearchResult {
	return &SearchResult{Match: match, BaseDir: baseDir, sizeMap: sizeMap}
}

// Size returns the result's size in bytes. For files this is Match.Size.
// For directories it consults (and populates) the shared DirectorySizeMap
// on first access, computing the size exactly once per path regardless of
// how many times Size is called.
func (r *SearchResult) Size(compute func() (int64, error)) (int64, error) {
	if !r.Match.IsDirectory || r.sizeMap == nil {
		return r.Match.Size, nil
	}
	if cached, ok := r.sizeMap.Get(r.Match.Path); ok {
		return cached, nil
	}
	var err error
	r.sizeOnce.Do(func() {
		r.resolvedLen, err = compute()
		if err == nil {
			r.sizeMap.Set(r.Match.Path, r.resolvedLen)
		}
	})
	if err != nil {
		return 0, err
	}
	if cached, ok := r.sizeMap.Get(r.Match.Path); ok {
		return cached, nil
	}
	return r.resolvedLen, nil
}

// DirectorySizeMap is a concurrency-safe cache of directory path to
// cumulative size, populated lazily the first time a directory's size is
// observed. The map is guarded by a sync.RWMutex.
type DirectorySizeMap struct {
	mu    sync.RWMutex
	sizes map[string]int64
}

// NewDirectorySizeMap returns an empty DirectorySizeMap.
func NewDirectorySizeMap() *DirectorySizeMap {
	return &DirectorySizeMap{sizes: make(map[string]int64)}
}

// Get returns the cached size for path, if present.
func (m *DirectorySizeMap) Get(path string) (int64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.sizes[path]
	return v, ok
}

// Set records the size for path.
func (m *DirectorySizeMap) Set(path string, size int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sizes[path] = size
}
