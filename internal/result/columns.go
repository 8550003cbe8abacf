package result

import (
	"fmt"

	"github.com/Rynaret/Orang/internal/model"
)

// ColumnWidths holds the maximum rendered width of each aligned column
// across a result set, so a table renderer can pad every row to the same
// width without a second pass over the data.
type ColumnWidths struct {
	Path int
	Size int
}

// ComputeColumnWidths scans items once and returns the widest path string
// and the widest formatted size string, for column alignment.
func ComputeColumnWidths(items []*model.SearchResult) ColumnWidths {
	var w ColumnWidths
	for _, r := range items {
		if n := len(r.Match.Path); n > w.Path {
			w.Path = n
		}
		if n := len(formatSize(r.Match.Size)); n > w.Size {
			w.Size = n
		}
	}
	return w
}

func formatSize(n int64) string {
	return fmt.Sprintf("%d", n)
}
