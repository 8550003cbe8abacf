package filter

import (
	"path/filepath"
	"strings"

	"github.com/Rynaret/Orang/internal/model"
)

// NamePartOf extracts the slice of path that a Filter configured with the
// given NamePart evaluates against.
func NamePartOf(path string, part model.NamePart) string {
	base := filepath.Base(path)
	switch part {
	case model.PartName:
		return base
	case model.PartNameWithoutExtension:
		return strings.TrimSuffix(base, filepath.Ext(base))
	case model.PartExtension:
		ext := filepath.Ext(base)
		return strings.TrimPrefix(ext, ".")
	case model.PartFullName:
		return path
	default:
		return base
	}
}

// MatchName evaluates f against the appropriate part of path, per f's
// configured Options.Part.
func MatchName(f *model.Filter, path string) (*model.MatchResult, bool) {
	return Evaluate(f, NamePartOf(path, f.Options.Part))
}
