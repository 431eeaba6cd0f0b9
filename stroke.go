package ink

// MinStrokePoints is the number of points a stroke needs to be committed.
const MinStrokePoints = 2

// Stroke is one continuous pen or highlighter gesture.
//
// Strokes are immutable once committed to a Document: the eraser removes
// whole strokes and never edits Points in place.
type Stroke struct {
	ID       string   `json:"id"`
	Tool     ToolKind `json:"tool"`
	PenStyle PenStyle `json:"penStyle,omitempty"`
	Color    string   `json:"color"`
	// Width is the base width before pressure scaling.
	Width  float64 `json:"width"`
	Points []Point `json:"points"`
}

// Committable reports whether s has enough points to be kept.
func (s Stroke) Committable() bool {
	return len(s.Points) >= MinStrokePoints
}

// Clone returns a deep copy of s.
func (s Stroke) Clone() Stroke {
	c := s
	c.Points = append([]Point(nil), s.Points...)
	return c
}

// cloneStrokes copies the slice header only. Committed strokes are shared
// between the document, the history and eraser sessions, so they must never
// be modified in place; Document.Clone copies them for callers.
func cloneStrokes(src []Stroke) []Stroke {
	if src == nil {
		return []Stroke{}
	}
	return append(make([]Stroke, 0, len(src)), src...)
}
