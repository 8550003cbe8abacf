package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rynaret/Orang/internal/config"
	"github.com/Rynaret/Orang/internal/filter"
	"github.com/Rynaret/Orang/internal/model"
	"github.com/Rynaret/Orang/internal/orangerr"
)

// filterFlags holds the pattern/filter flags shared by every verb that
// walks a tree. Not every verb exposes every field on its own flag set;
// each command wires up only the flags relevant to it via
// addNameFlags/addContentFlags/etc.
type filterFlags struct {
	namePattern            string
	negateName             bool
	extPattern             string
	dirNamePattern         string
	contentPattern         string
	directoryFilterPattern string

	sizePredicate     string
	modifiedPredicate string
	createdPredicate  string

	ignoreCase      bool
	multiline       bool
	explicitCapture bool

	requireHidden   bool
	requireReadOnly bool
	skipHidden      bool
	skipSystem      bool

	emptyOnly    bool
	nonEmptyOnly bool

	encodingName string

	recursive      bool
	followSymlinks bool
	maxMatching    int
	target         string // "files", "dirs", or "all"
	dryRun         bool
	includeSummary bool
	progress       bool
}

func addNameFlags(cmd *cobra.Command, f *filterFlags) {
	cmd.Flags().StringVarP(&f.namePattern, "name", "n", "", "regex matched against the base file/directory name")
	cmd.Flags().BoolVar(&f.negateName, "negate", false, "invert the --name match")
	cmd.Flags().StringVarP(&f.extPattern, "extension", "e", "", "regex matched against the file extension")
	cmd.Flags().StringVar(&f.dirNamePattern, "dir-name", "", "regex matched against the parent directory name")
	cmd.Flags().StringVar(&f.directoryFilterPattern, "directory-filter", "", "regex a directory's name must match to be descended into (controls recursion, not matching)")
}

// addPropertyFlags registers the creation/modified/size property flags.
// Each accepts a comparator prefix --
// one of <=, >=, <, >, = -- followed by a literal: an integer byte count,
// optionally with a KB/MB/GB/TB suffix, for --size, or an RFC3339 or "2006-01-02" timestamp for --modified and
// --created.
func addPropertyFlags(cmd *cobra.Command, f *filterFlags) {
	cmd.Flags().StringVar(&f.sizePredicate, "size", "", `size comparison, e.g. ">1024" or "<=10MB"`)
	cmd.Flags().StringVar(&f.modifiedPredicate, "modified", "", `modified-time comparison, e.g. ">=2024-01-01"`)
	cmd.Flags().StringVar(&f.createdPredicate, "created", "", `creation-time comparison, e.g. "<2024-01-01" (compared against the modified time; no birth time is read)`)
}

func addContentFlags(cmd *cobra.Command, f *filterFlags) {
	cmd.Flags().StringVarP(&f.contentPattern, "content", "c", "", "regex matched against decoded file content")
	cmd.Flags().StringVar(&f.encodingName, "encoding", "", "fallback text encoding for files without a BOM (utf-8, utf-16le, utf-16be, latin-1, windows-1252)")
}

func addRegexOptionFlags(cmd *cobra.Command, f *filterFlags) {
	cmd.Flags().BoolVarP(&f.ignoreCase, "ignore-case", "i", false, "case-insensitive matching")
	cmd.Flags().BoolVar(&f.multiline, "multiline", false, "^ and $ match at line boundaries")
	cmd.Flags().BoolVar(&f.explicitCapture, "explicit-capture", false, "only named groups participate in captures")
}

func addAttributeFlags(cmd *cobra.Command, f *filterFlags) {
	cmd.Flags().BoolVar(&f.requireHidden, "hidden", false, "only match hidden entries")
	cmd.Flags().BoolVar(&f.requireReadOnly, "readonly", false, "only match read-only entries")
	cmd.Flags().BoolVar(&f.skipHidden, "skip-hidden", false, "skip hidden entries")
	cmd.Flags().BoolVar(&f.skipSystem, "skip-system", false, "skip system entries")
}

func addEmptyFlags(cmd *cobra.Command, f *filterFlags) {
	cmd.Flags().BoolVar(&f.emptyOnly, "empty", false, "only match empty files/directories")
	cmd.Flags().BoolVar(&f.nonEmptyOnly, "non-empty", false, "only match non-empty files/directories")
}

func addTraversalFlags(cmd *cobra.Command, f *filterFlags) {
	cmd.Flags().BoolVarP(&f.recursive, "recurse", "r", true, "recurse into subdirectories")
	cmd.Flags().BoolVar(&f.followSymlinks, "follow-symlinks", false, "follow symbolic links during traversal")
	cmd.Flags().IntVar(&f.maxMatching, "max-matching", 0, "stop after this many matches (0 = unbounded)")
	cmd.Flags().StringVar(&f.target, "target", "files", "restrict matches to: files, dirs, or all")
	cmd.Flags().BoolVar(&f.includeSummary, "include-summary", false, "print a summary line with counts after the results")
	cmd.Flags().BoolVar(&f.progress, "progress", false, "report traversal progress on stderr")
}

func addDryRunFlag(cmd *cobra.Command, f *filterFlags) {
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "report what would change without writing anything")
}

func (f *filterFlags) regexOptions(profile *config.Profile) model.FilterOptions {
	opts := model.FilterOptions{
		IgnoreCase:      f.ignoreCase,
		Multiline:       f.multiline,
		ExplicitCapture: f.explicitCapture,
	}
	if profile != nil {
		if profile.IgnoreCase != nil {
			opts.IgnoreCase = opts.IgnoreCase || *profile.IgnoreCase
		}
		if profile.Multiline != nil {
			opts.Multiline = opts.Multiline || *profile.Multiline
		}
		if profile.ExplicitCapture != nil {
			opts.ExplicitCapture = opts.ExplicitCapture || *profile.ExplicitCapture
		}
	}
	return opts
}

// buildFileSystemFilter compiles every flag-supplied pattern into a
// filter.FileSystemFilter, one sub-filter per supplied flag.
func (f *filterFlags) buildFileSystemFilter(profile *config.Profile) (*filter.FileSystemFilter, error) {
	opts := f.regexOptions(profile)
	fsf := &filter.FileSystemFilter{}

	if f.namePattern != "" {
		compiled, err := model.Compile(f.namePattern, -1, "", f.negateName, opts)
		if err != nil {
			return nil, orangerr.Regex(f.namePattern, err)
		}
		fsf.Name = compiled
	}
	if f.extPattern != "" {
		compiled, err := model.Compile(f.extPattern, -1, "", false, opts)
		if err != nil {
			return nil, orangerr.Regex(f.extPattern, err)
		}
		fsf.Extension = compiled
	}
	if f.dirNamePattern != "" {
		compiled, err := model.Compile(f.dirNamePattern, -1, "", false, opts)
		if err != nil {
			return nil, orangerr.Regex(f.dirNamePattern, err)
		}
		fsf.DirectoryName = compiled
	}
	if f.contentPattern != "" {
		compiled, err := model.Compile(f.contentPattern, -1, "", false, opts)
		if err != nil {
			return nil, orangerr.Regex(f.contentPattern, err)
		}
		fsf.Content = compiled
	}

	if f.requireHidden {
		fsf.AttributesRequire |= model.AttrHidden
	}
	if f.requireReadOnly {
		fsf.AttributesRequire |= model.AttrReadOnly
	}
	if f.skipHidden {
		fsf.AttributesSkip |= model.AttrHidden
	}
	if f.skipSystem {
		fsf.AttributesSkip |= model.AttrSystem
	}

	switch {
	case f.emptyOnly:
		fsf.Empty = model.EmptyOnly
	case f.nonEmptyOnly:
		fsf.Empty = model.NonEmptyOnly
	default:
		fsf.Empty = model.EmptyAny
	}

	prop, err := f.propertyFilter()
	if err != nil {
		return nil, err
	}
	fsf.Property = prop

	return fsf, nil
}

// propertyFilter builds the FilePropertyFilter from whichever of
// --size/--modified/--created were supplied, or returns nil if none were.
func (f *filterFlags) propertyFilter() (*model.FilePropertyFilter, error) {
	if f.sizePredicate == "" && f.modifiedPredicate == "" && f.createdPredicate == "" {
		return nil, nil
	}

	var prop model.FilePropertyFilter

	if f.sizePredicate != "" {
		cmp, lit, err := splitComparator(f.sizePredicate)
		if err != nil {
			return nil, orangerr.UnknownEnum("--size", f.sizePredicate)
		}
		size, err := parseByteSize(lit)
		if err != nil {
			return nil, orangerr.UnknownEnum("--size", f.sizePredicate)
		}
		prop.Size = &model.PropertyPredicate[int64]{Comparator: cmp, Literal: size}
	}

	if f.modifiedPredicate != "" {
		cmp, lit, err := splitComparator(f.modifiedPredicate)
		if err != nil {
			return nil, orangerr.UnknownEnum("--modified", f.modifiedPredicate)
		}
		t, err := parseDateTime(lit)
		if err != nil {
			return nil, orangerr.UnknownEnum("--modified", f.modifiedPredicate)
		}
		prop.ModifiedTime = &model.PropertyPredicate[time.Time]{Comparator: cmp, Literal: t}
	}

	if f.createdPredicate != "" {
		cmp, lit, err := splitComparator(f.createdPredicate)
		if err != nil {
			return nil, orangerr.UnknownEnum("--created", f.createdPredicate)
		}
		t, err := parseDateTime(lit)
		if err != nil {
			return nil, orangerr.UnknownEnum("--created", f.createdPredicate)
		}
		prop.CreationTime = &model.PropertyPredicate[time.Time]{Comparator: cmp, Literal: t}
	}

	return &prop, nil
}

// splitComparator peels a leading comparator token (<=, >=, <, >, =) off a
// flag value and returns it alongside the remaining literal. A value with
// no recognized comparator prefix defaults to EQ.
func splitComparator(s string) (model.Comparator, string, error) {
	switch {
	case strings.HasPrefix(s, "<="):
		return model.LE, strings.TrimSpace(s[2:]), nil
	case strings.HasPrefix(s, ">="):
		return model.GE, strings.TrimSpace(s[2:]), nil
	case strings.HasPrefix(s, "<"):
		return model.LT, strings.TrimSpace(s[1:]), nil
	case strings.HasPrefix(s, ">"):
		return model.GT, strings.TrimSpace(s[1:]), nil
	case strings.HasPrefix(s, "="):
		return model.EQ, strings.TrimSpace(s[1:]), nil
	case s == "":
		return 0, "", fmt.Errorf("empty predicate")
	default:
		return model.EQ, strings.TrimSpace(s), nil
	}
}

// parseByteSize parses a literal as a plain byte count or with a
// KB/MB/GB/TB suffix (binary units, case-insensitive).
func parseByteSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	units := []struct {
		suffix string
		factor int64
	}{
		{"TB", 1 << 40},
		{"GB", 1 << 30},
		{"MB", 1 << 20},
		{"KB", 1 << 10},
		{"B", 1},
	}
	for _, u := range units {
		if strings.HasSuffix(strings.ToUpper(s), u.suffix) {
			numeric := strings.TrimSpace(s[:len(s)-len(u.suffix)])
			n, err := strconv.ParseInt(numeric, 10, 64)
			if err != nil {
				return 0, err
			}
			return n * u.factor, nil
		}
	}
	return strconv.ParseInt(s, 10, 64)
}

// parseDateTime parses a literal as RFC3339 or a bare "2006-01-02" date.
func parseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// directoryFilter compiles --directory-filter into the Filter that gates
// descent during traversal, distinct from --dir-name's match-only filter.
func (f *filterFlags) directoryFilter(profile *config.Profile) (*model.Filter, error) {
	if f.directoryFilterPattern == "" {
		return nil, nil
	}
	compiled, err := model.Compile(f.directoryFilterPattern, -1, "", false, f.regexOptions(profile))
	if err != nil {
		return nil, orangerr.Regex(f.directoryFilterPattern, err)
	}
	return compiled, nil
}

func (f *filterFlags) searchTarget() model.SearchTarget {
	switch f.target {
	case "dirs", "directories":
		return model.TargetDirectories
	case "all":
		return model.TargetAll
	default:
		return model.TargetFiles
	}
}

func (f *filterFlags) effectiveDryRun(profile *config.Profile) bool {
	if f.dryRun {
		return true
	}
	return profile != nil && profile.DryRun != nil && *profile.DryRun
}

func (f *filterFlags) effectiveMaxMatching(profile *config.Profile) int64 {
	if f.maxMatching > 0 {
		return int64(f.maxMatching)
	}
	if profile != nil && profile.MaxMatchingFiles != nil {
		return int64(*profile.MaxMatchingFiles)
	}
	return 0
}

func (f *filterFlags) effectiveRecursive(profile *config.Profile) bool {
	if !f.recursive {
		return false
	}
	if profile != nil && profile.Recursive != nil {
		return *profile.Recursive
	}
	return true
}

func (f *filterFlags) effectiveEncoding(profile *config.Profile) string {
	if f.encodingName != "" {
		return f.encodingName
	}
	if profile != nil && profile.Encoding != nil {
		return *profile.Encoding
	}
	return ""
}

func (f *filterFlags) effectiveFollowSymlinks(profile *config.Profile) bool {
	if f.followSymlinks {
		return true
	}
	return profile != nil && profile.FollowSymlinks != nil && *profile.FollowSymlinks
}
