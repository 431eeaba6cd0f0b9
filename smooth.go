package ink

import "math"

// Moving-average window sizes per tool.
const (
	PenSmoothingWindow         = 3
	HighlighterSmoothingWindow = 2
	CursorTrailWindow          = 2
)

// splineStep is the target distance between synthetic spline points.
const splineStep = 3.0

// MovingAverage returns a copy of points where each sample's X, Y and
// Pressure are averaged over a window of windowSize neighbors. The window
// shrinks at the ends of the sequence instead of wrapping around.
// Inputs with fewer than 2 points, or a window smaller than 2, are returned
// as an unmodified copy.
func MovingAverage(points []Point, windowSize int) []Point {
	out := append([]Point(nil), points...)
	if len(points) < 2 || windowSize < 2 {
		return out
	}

	before := windowSize / 2
	after := windowSize - 1 - before
	for i := range points {
		lo := max(0, i-before)
		hi := min(len(points)-1, i+after)

		var x, y, p float64
		for j := lo; j <= hi; j++ {
			x += points[j].X
			y += points[j].Y
			p += points[j].Pressure
		}
		n := float64(hi - lo + 1)
		out[i].X = x / n
		out[i].Y = y / n
		out[i].Pressure = p / n
	}
	return out
}

// CatmullRom interpolates a cardinal spline through points. Each source
// segment is subdivided into max(2, ceil(length/3)) samples so longer
// segments get denser output. tension in [0, 1] scales the tangents
// (0.5 is the classic Catmull-Rom curve, 0 gives straight segments).
// Pressure and timestamp are interpolated linearly between the two
// bracketing source points. The first and last points are preserved.
func CatmullRom(points []Point, tension float64) []Point {
	if len(points) < 2 {
		return append([]Point(nil), points...)
	}

	out := make([]Point, 0, len(points)*4)
	last := len(points) - 1
	for i := 0; i < last; i++ {
		p0 := points[max(0, i-1)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[min(last, i+2)]

		m1x, m1y := (p2.X-p0.X)*tension, (p2.Y-p0.Y)*tension
		m2x, m2y := (p3.X-p1.X)*tension, (p3.Y-p1.Y)*tension

		steps := max(2, int(math.Ceil(Distance(p1, p2)/splineStep)))
		for s := 0; s < steps; s++ {
			t := float64(s) / float64(steps)
			h00, h10, h01, h11 := hermite(t)

			pt := Lerp(p1, p2, t)
			pt.X = h00*p1.X + h10*m1x + h01*p2.X + h11*m2x
			pt.Y = h00*p1.Y + h10*m1y + h01*p2.Y + h11*m2y
			out = append(out, pt)
		}
	}
	return append(out, points[last])
}

// hermite returns the cubic Hermite basis functions at t.
func hermite(t float64) (h00, h10, h01, h11 float64) {
	t2 := t * t
	t3 := t2 * t
	h00 = 2*t3 - 3*t2 + 1
	h10 = t3 - 2*t2 + t
	h01 = -2*t3 + 3*t2
	h11 = t3 - t2
	return h00, h10, h01, h11
}

// SmoothStroke returns the render-ready points of s. Pens get a 3-point
// moving average followed by a Catmull-Rom pass with the style's tension;
// highlighters only get a 2-point moving average. s is not modified.
func SmoothStroke(s Stroke, reg *Registry) []Point {
	if len(s.Points) < 2 {
		return append([]Point(nil), s.Points...)
	}
	if s.Tool == ToolHighlighter {
		return MovingAverage(s.Points, HighlighterSmoothingWindow)
	}
	if reg == nil {
		reg = DefaultRegistry()
	}
	averaged := MovingAverage(s.Points, PenSmoothingWindow)
	return CatmullRom(averaged, reg.Lookup(s.PenStyle).Smoothing)
}
