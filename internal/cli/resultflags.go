package cli

import (
	"strings"

	"github.com/Rynaret/Orang/internal/orangerr"
	"github.com/Rynaret/Orang/internal/result"
)

// parseSortDescriptors parses a comma-separated --sort value into an
// ordered list of result.Descriptor, e.g. "name,-size" sorts by name
// ascending, then size descending. A leading "-" on a field name requests
// descending order.
func parseSortDescriptors(spec string) ([]result.Descriptor, error) {
	if spec == "" {
		return nil, nil
	}

	var descriptors []result.Descriptor
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		dir := result.Ascending
		if strings.HasPrefix(part, "-") {
			dir = result.Descending
			part = part[1:]
		}

		field, ok := sortField(part)
		if !ok {
			return nil, orangerr.UnknownEnum("--sort", part)
		}
		descriptors = append(descriptors, result.Descriptor{Field: field, Direction: dir})
	}
	return descriptors, nil
}

func sortField(name string) (result.Field, bool) {
	switch name {
	case "path":
		return result.FieldPath, true
	case "name":
		return result.FieldName, true
	case "size":
		return result.FieldSize, true
	case "modified-time":
		return result.FieldModifiedTime, true
	case "creation-time":
		return result.FieldCreationTime, true
	case "match":
		return result.FieldMatch, true
	case "length":
		return result.FieldLength, true
	default:
		return 0, false
	}
}

// parseDisplayColumns splits a comma-separated --display value into its
// individual column names.
func parseDisplayColumns(spec string) []string {
	if spec == "" {
		return nil
	}
	var cols []string
	for _, c := range strings.Split(spec, ",") {
		c = strings.TrimSpace(c)
		if c != "" {
			cols = append(cols, c)
		}
	}
	return cols
}
