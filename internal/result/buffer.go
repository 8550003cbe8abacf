package result

import "github.com/Rynaret/Orang/internal/model"

// Buffer is an append-only collector of model.SearchResult, used when a
// command needs the full result set in memory before sorting or rendering
// (buffering is opt-in; most verbs stream results as they're found). A
// nil *Buffer is valid and simply discards Add calls, so
// callers that don't need buffering can pass one around without a nil
// check at every call site.
type Buffer struct {
	items []*model.SearchResult
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer { return &Buffer{} }

// Add appends r to the buffer. Safe to call on a nil *Buffer.
func (b *Buffer) Add(r *model.SearchResult) {
	if b == nil {
		return
	}
	b.items = append(b.items, r)
}

// Items returns the buffered results in insertion order.
func (b *Buffer) Items() []*model.SearchResult {
	if b == nil {
		return nil
	}
	return b.items
}

// Len returns the number of buffered results.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}
