package transform

import (
	"github.com/google/uuid"

	"github.com/statuta-labs/statuta/ast"
)

// Entry is one snapshot in a history log.
type Entry struct {
	ID          string
	Description string
	doc         *ast.Document
}

// Document returns a copy of the snapshot.
func (e Entry) Document() *ast.Document { return e.doc.Clone() }

// History is a linear undo/redo log of whole-document snapshots for one
// editing session. It is not safe for concurrent use.
type History struct {
	entries []Entry
	current int
}

// NewHistory seeds a history with an initial document at index 0.
func NewHistory(initial *ast.Document) *History {
	return &History{
		entries: []Entry{{
			ID:          uuid.NewString(),
			Description: "initial",
			doc:         initial.Clone(),
		}},
	}
}

// Apply runs the transform against the current snapshot, discards any
// snapshots beyond the current index (a previously redoable branch
// collapses), appends the result and advances to it. The returned document
// is the caller's copy of the new current snapshot.
func (h *History) Apply(t Transform) (*ast.Document, error) {
	next, err := t.Apply(h.entries[h.current].doc)
	if err != nil {
		return nil, err
	}
	h.entries = append(h.entries[:h.current+1], Entry{
		ID:          uuid.NewString(),
		Description: t.Description(),
		doc:         next,
	})
	h.current++
	return next.Clone(), nil
}

// Undo steps back one snapshot. At the oldest snapshot it reports false and
// does not move.
func (h *History) Undo() (*ast.Document, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.current--
	return h.entries[h.current].doc.Clone(), true
}

// Redo steps forward one snapshot. At the newest snapshot it reports false
// and does not move.
func (h *History) Redo() (*ast.Document, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.current++
	return h.entries[h.current].doc.Clone(), true
}

// CanUndo reports whether a snapshot exists before the current one.
func (h *History) CanUndo() bool { return h.current > 0 }

// CanRedo reports whether a snapshot exists after the current one.
func (h *History) CanRedo() bool { return h.current < len(h.entries)-1 }

// Current returns a copy of the current snapshot.
func (h *History) Current() *ast.Document {
	return h.entries[h.current].doc.Clone()
}

// Entries returns the log in order, oldest first.
func (h *History) Entries() []Entry {
	return append([]Entry(nil), h.entries...)
}
