package ink

import "math"

// DefaultPressure is the neutral pressure assigned when none is known.
const DefaultPressure = 0.5

// Point is one captured input sample in logical canvas coordinates.
// Pressure is in [0, 1]. Timestamp is a monotonic time in milliseconds,
// zero when the host does not report one.
type Point struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Pressure  float64 `json:"pressure"`
	Timestamp int64   `json:"timestamp,omitempty"`
}

// Pt returns a Point at (x, y) with the default pressure.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y, Pressure: DefaultPressure}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// PointToSegmentDistance returns the distance from p to the closest point of
// the segment [a, b]. The projection parameter is clamped to [0, 1], so points
// beyond either end measure to that endpoint. A degenerate segment (a == b)
// measures to a.
func PointToSegmentDistance(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Distance(p, a)
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = clamp(t, 0, 1)

	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}

// Lerp interpolates position, pressure and timestamp between a and b.
// t=0 returns a, t=1 returns b.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X:         a.X + (b.X-a.X)*t,
		Y:         a.Y + (b.Y-a.Y)*t,
		Pressure:  a.Pressure + (b.Pressure-a.Pressure)*t,
		Timestamp: a.Timestamp + int64(math.Round(float64(b.Timestamp-a.Timestamp)*t)),
	}
}

// midpoint returns the point halfway between a and b.
func midpoint(a, b Point) Point {
	return Lerp(a, b, 0.5)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
