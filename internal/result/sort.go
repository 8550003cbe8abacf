// Package result implements the output pipeline: an append-only buffer of
// matches, stable multi-key sorting over an ordered list of
// {field, direction} descriptors, result-count capping, and column-width
// computation for aligned table output.
package result

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Rynaret/Orang/internal/model"
)

// Field names a sortable column of a SearchResult.
type Field int

const (
	FieldPath Field = iota
	FieldName
	FieldSize
	FieldModifiedTime
	FieldCreationTime
	FieldMatch
	FieldLength
)

// Direction is ascending or descending.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Descriptor is one {field, direction} key in a multi-key sort.
type Descriptor struct {
	Field     Field
	Direction Direction
}

// Sort returns a new slice of items ordered by the given descriptors,
// applied left to right as primary/secondary/... keys. The input slice is
// never mutated, and the sort is stable: items that compare equal on every
// descriptor retain their original relative order.
func Sort(items []*model.SearchResult, descriptors []Descriptor) []*model.SearchResult {
	out := make([]*model.SearchResult, len(items))
	copy(out, items)

	slices.SortStableFunc(out, func(a, b *model.SearchResult) int {
		for _, d := range descriptors {
			n := compareField(a, b, d.Field)
			if d.Direction == Descending {
				n = -n
			}
			if n != 0 {
				return n
			}
		}
		return 0
	})

	return out
}

func compareField(a, b *model.SearchResult, f Field) int {
	switch f {
	case FieldName:
		return cmp.Compare(strings.ToLower(baseName(a.Match.Path)), strings.ToLower(baseName(b.Match.Path)))
	case FieldSize:
		return cmp.Compare(a.Match.Size, b.Match.Size)
	case FieldModifiedTime:
		return a.Match.ModifiedTime.Compare(b.Match.ModifiedTime)
	case FieldCreationTime:
		return a.Match.CreationTime.Compare(b.Match.CreationTime)
	case FieldMatch:
		return cmp.Compare(matchValue(a), matchValue(b))
	case FieldLength:
		return cmp.Compare(matchLength(a), matchLength(b))
	default:
		return cmp.Compare(a.Match.Path, b.Match.Path)
	}
}

// matchValue is the text a "match" sort key compares: the content match
// when one exists, the name match otherwise.
func matchValue(r *model.SearchResult) string {
	if r.Match.ContentMatch != nil {
		return r.Match.ContentMatch.Value
	}
	return r.Match.NameMatch.Value
}

func matchLength(r *model.SearchResult) int {
	if r.Match.ContentMatch != nil {
		return r.Match.ContentMatch.Length
	}
	return r.Match.NameMatch.Length
}

func baseName(path string) string {
	i := strings.LastIndexAny(path, `/\`)
	if i < 0 {
		return path
	}
	return path[i+1:]
}

// Cap truncates items to at most maxCount entries. maxCount <= 0 means
// unlimited, matching the max-matching-files convention elsewhere in the
// model.
func Cap(items []*model.SearchResult, maxCount int) []*model.SearchResult {
	if maxCount <= 0 || len(items) <= maxCount {
		return items
	}
	return items[:maxCount]
}
