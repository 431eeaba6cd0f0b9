package ink

// DefaultEraserRadius is the eraser cursor radius in logical units.
const DefaultEraserRadius = 10.0

// StrokeHit reports whether an eraser at p with the given radius touches s.
// The effective threshold is radius*EraserHitScale + s.Width/2, tested
// against every raw point and every segment. Strokes with fewer than two
// points carry no visible geometry and are never hit.
func StrokeHit(s Stroke, p Point, radius float64) bool {
	if len(s.Points) < MinStrokePoints {
		return false
	}
	threshold := radius*EraserHitScale + s.Width/2

	for _, sp := range s.Points {
		if Distance(sp, p) <= threshold {
			return true
		}
	}
	for i := 1; i < len(s.Points); i++ {
		if PointToSegmentDistance(p, s.Points[i-1], s.Points[i]) <= threshold {
			return true
		}
	}
	return false
}

// EraseAt returns the strokes not hit by an eraser at p. Hit strokes are
// dropped whole; the survivors keep their order. The input slice is not
// modified. When nothing is hit the result has the same length as strokes.
func EraseAt(strokes []Stroke, p Point, radius float64) []Stroke {
	out := make([]Stroke, 0, len(strokes))
	for _, s := range strokes {
		if !StrokeHit(s, p, radius) {
			out = append(out, s)
		}
	}
	return out
}

// EraserSession batches one continuous erase gesture so it commits as a
// single history entry. Now is always a subsequence of Start.
type EraserSession struct {
	// Start is the committed stroke list when the gesture began.
	Start []Stroke
	// Now is the list after every erase applied so far.
	Now []Stroke
	// Changed is set the first time Now shrinks.
	Changed bool

	radius float64
	trail  []Point
}

// NewEraserSession opens a session over the committed strokes.
func NewEraserSession(strokes []Stroke, radius float64) *EraserSession {
	return &EraserSession{
		Start:  cloneStrokes(strokes),
		Now:    cloneStrokes(strokes),
		radius: radius,
	}
}

// Apply erases at p against the session's current list and reports whether
// anything was removed by this call.
func (s *EraserSession) Apply(p Point) bool {
	s.trail = append(s.trail, p)
	if len(s.trail) > maxCursorTrail {
		s.trail = s.trail[len(s.trail)-maxCursorTrail:]
	}

	next := EraseAt(s.Now, p, s.radius)
	if len(next) == len(s.Now) {
		return false
	}
	Logger().Debug("ink: eraser removed strokes", "removed", len(s.Now)-len(next), "remaining", len(next))
	s.Now = next
	s.Changed = true
	return true
}

// Removed returns the number of strokes erased so far in this session.
func (s *EraserSession) Removed() int {
	return len(s.Start) - len(s.Now)
}

// Trail returns the recent cursor positions, smoothed for drawing.
func (s *EraserSession) Trail() []Point {
	return MovingAverage(s.trail, CursorTrailWindow)
}

// maxCursorTrail bounds the eraser trail drawn behind the cursor.
const maxCursorTrail = 12
