package filter

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/Rynaret/Orang/internal/model"
	"github.com/Rynaret/Orang/internal/orangerr"
)

// Candidate is everything a FileSystemFilter needs to evaluate a single
// filesystem entry. ReadContent is supplied by the traversal engine and is
// invoked at most once, and only when a content filter is configured and
// the candidate is a file; content filtering is the only check that reads
// bytes.
type Candidate struct {
	Path          string
	IsDir         bool
	Info          os.FileInfo
	DirectoryName string // parent directory's base name, for DirectoryNameMatch
	ReadContent   func() (string, error)
}

// FileSystemFilter composes the optional sub-filters: a candidate file
// passes iff all present sub-filters pass; a directory is considered for
// its own filters and for recursion independently (recursion gating lives
// in the walk package's directory filter, not here).
type FileSystemFilter struct {
	Name              *model.Filter
	Extension         *model.Filter
	DirectoryName     *model.Filter
	Content           *model.Filter
	AttributesRequire model.Attributes
	AttributesSkip    model.Attributes
	Empty             model.FileEmptyOption
	Property          *model.FilePropertyFilter
}

// Accept applies the checks in short-circuit order: attributes require ->
// attributes skip -> name filter -> extension filter -> property
// predicates -> empty-option -> content filter.
func (f *FileSystemFilter) Accept(cand Candidate) (*model.FileMatch, error) {
	attrs := model.AttributesOf(filepath.Base(cand.Path), cand.Info)

	if f.AttributesRequire != 0 && !attrs.Has(f.AttributesRequire) {
		return nil, nil
	}
	if f.AttributesSkip != 0 && attrs.Any(f.AttributesSkip) {
		return nil, nil
	}

	match := model.FileMatch{
		Path:         cand.Path,
		IsDirectory:  cand.IsDir,
		ModifiedTime: cand.Info.ModTime(),
		CreationTime: cand.Info.ModTime(),
		Size:         cand.Info.Size(),
		Attributes:   attrs,
	}

	if f.Name != nil {
		mr, ok := MatchName(f.Name, cand.Path)
		if !ok {
			return nil, nil
		}
		match.NameMatch = *mr
	}

	if f.Extension != nil && !cand.IsDir {
		mr, ok := Evaluate(f.Extension, NamePartOf(cand.Path, model.PartExtension))
		if !ok {
			return nil, nil
		}
		match.ExtensionMatch = mr
	}

	if f.DirectoryName != nil {
		mr, ok := Evaluate(f.DirectoryName, cand.DirectoryName)
		if !ok {
			return nil, nil
		}
		match.DirectoryNameMatch = mr
	}

	if f.Property != nil {
		// os.FileInfo exposes no portable creation time on Unix-likes; in its
		// absence the modified time stands in for it, same as most Go CLI
		// tools that need a birth time without cgo/platform-specific syscalls.
		if !f.Property.Accept(cand.Info.ModTime(), cand.Info.ModTime(), cand.Info.Size()) {
			return nil, nil
		}
	}

	if f.Empty != model.EmptyAny {
		empty, err := isEmpty(cand)
		if err != nil {
			return nil, err
		}
		if f.Empty == model.EmptyOnly && !empty {
			return nil, nil
		}
		if f.Empty == model.NonEmptyOnly && empty {
			return nil, nil
		}
	}

	if f.Content != nil && !cand.IsDir {
		if cand.ReadContent == nil {
			return nil, orangerr.IO(cand.Path, orangerr.CauseReadFailed, nil)
		}
		text, err := cand.ReadContent()
		if err != nil {
			var oe *orangerr.Error
			if errors.As(err, &oe) {
				return nil, oe
			}
			return nil, orangerr.IO(cand.Path, orangerr.CauseReadFailed, err)
		}
		mr, ok := Evaluate(f.Content, text)
		if !ok {
			return nil, nil
		}
		match.Text = text
		match.ContentMatch = mr
	}

	return &match, nil
}

func isEmpty(cand Candidate) (bool, error) {
	if cand.IsDir {
		entries, err := os.ReadDir(cand.Path)
		if err != nil {
			return false, err
		}
		return len(entries) == 0, nil
	}
	return cand.Info.Size() == 0, nil
}
