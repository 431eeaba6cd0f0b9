package ink

// DefaultHistoryLimit is the default number of snapshots kept per page.
const DefaultHistoryLimit = 200

// History is a linear undo/redo stack of whole stroke-list snapshots.
//
// It always holds at least one entry and keeps 0 <= cursor < Len().
// Redo is possible while the cursor is below the last entry; pushing after
// an undo discards the redo tail.
type History struct {
	entries [][]Stroke
	cursor  int
	limit   int
}

// NewHistory creates a history whose only entry is initial.
// limit bounds the number of entries kept; zero or less means unbounded.
func NewHistory(initial []Stroke, limit int) *History {
	return &History{
		entries: [][]Stroke{cloneStrokes(initial)},
		limit:   limit,
	}
}

// Push truncates entries beyond the cursor, appends snapshot and moves the
// cursor to it. When the limit is exceeded the oldest entries are dropped.
func (h *History) Push(snapshot []Stroke) {
	h.entries = append(h.entries[:h.cursor+1], cloneStrokes(snapshot))
	if h.limit > 0 && len(h.entries) > h.limit {
		drop := len(h.entries) - h.limit
		h.entries = append(h.entries[:0:0], h.entries[drop:]...)
	}
	h.cursor = len(h.entries) - 1
}

// Undo steps back one entry and returns it. At the first entry it is a
// no-op and reports false.
func (h *History) Undo() ([]Stroke, bool) {
	if h.cursor == 0 {
		return h.Current(), false
	}
	h.cursor--
	return h.Current(), true
}

// Redo steps forward one entry and returns it. At the last entry it is a
// no-op and reports false.
func (h *History) Redo() ([]Stroke, bool) {
	if h.cursor >= len(h.entries)-1 {
		return h.Current(), false
	}
	h.cursor++
	return h.Current(), true
}

// Reset replaces the whole stack with a single entry, as when a different
// page is loaded.
func (h *History) Reset(snapshot []Stroke) {
	h.entries = [][]Stroke{cloneStrokes(snapshot)}
	h.cursor = 0
}

// Current returns a copy of the entry at the cursor.
func (h *History) Current() []Stroke {
	return cloneStrokes(h.entries[h.cursor])
}

// CanUndo reports whether Undo would move the cursor.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether Redo would move the cursor.
func (h *History) CanRedo() bool { return h.cursor < len(h.entries)-1 }

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }

// Cursor returns the index of the current entry.
func (h *History) Cursor() int { return h.cursor }
