package ink

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func line(id string, x0, y0, x1, y1, width float64) Stroke {
	return Stroke{ID: id, Tool: ToolPen, Width: width, Points: []Point{Pt(x0, y0), Pt(x1, y1)}}
}

func TestStrokeHit(t *testing.T) {
	s := line("a", 0, 0, 100, 0, 4)
	// Threshold is 10*1.2 + 4/2 = 14.
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"on a point", Pt(0, 0), true},
		{"on the segment", Pt(50, 0), true},
		{"just inside threshold", Pt(50, 13.9), true},
		{"at threshold", Pt(50, 14), true},
		{"just outside threshold", Pt(50, 14.1), false},
		{"beyond end", Pt(114.5, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StrokeHit(s, tt.p, 10); got != tt.want {
				t.Errorf("StrokeHit(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestStrokeHitShortStroke(t *testing.T) {
	s := Stroke{ID: "dot", Width: 10, Points: []Point{Pt(5, 5)}}
	if StrokeHit(s, Pt(5, 5), 10) {
		t.Error("a single-point stroke should never be hit")
	}
	if got := EraseAt([]Stroke{s}, Pt(5, 5), 10); len(got) != 1 {
		t.Errorf("EraseAt removed a single-point stroke")
	}
}

func TestEraseAtKeepsOrderAndInput(t *testing.T) {
	strokes := []Stroke{
		line("a", 0, 0, 10, 0, 2),
		line("b", 0, 100, 10, 100, 2),
		line("c", 0, 200, 10, 200, 2),
	}
	got := EraseAt(strokes, Pt(5, 100), 5)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("EraseAt = %v, want [a c]", ids(got))
	}
	if len(strokes) != 3 || strokes[1].ID != "b" {
		t.Error("EraseAt modified its input")
	}
}

func TestEraserSession(t *testing.T) {
	strokes := []Stroke{line("a", 0, 0, 10, 0, 2), line("b", 50, 0, 60, 0, 2)}
	s := NewEraserSession(strokes, 5)

	if s.Apply(Pt(30, 50)) {
		t.Error("Apply far from strokes reported a removal")
	}
	if s.Changed {
		t.Error("Changed set without a removal")
	}
	if !s.Apply(Pt(55, 0)) {
		t.Error("Apply on stroke b reported no removal")
	}
	if !s.Changed || s.Removed() != 1 {
		t.Errorf("Changed = %v, Removed() = %d, want true, 1", s.Changed, s.Removed())
	}
	if len(s.Start) != 2 {
		t.Errorf("Start changed to %v", ids(s.Start))
	}
	if len(s.Trail()) != 2 {
		t.Errorf("Trail() has %d points, want 2", len(s.Trail()))
	}
}

func TestEraserSessionMonotonic(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	strokes := make([]Stroke, 40)
	for i := range strokes {
		x, y := rng.Float64()*500, rng.Float64()*500
		strokes[i] = line(fmt.Sprint(i), x, y, x+rng.Float64()*60, y+rng.Float64()*60, 1+rng.Float64()*4)
	}

	s := NewEraserSession(strokes, 12)
	start := make(map[string]int, len(s.Start))
	for i, st := range s.Start {
		start[st.ID] = i
	}

	prevLen := len(s.Now)
	for range 300 {
		s.Apply(Pt(rng.Float64()*560, rng.Float64()*560))

		if len(s.Now) > prevLen || len(s.Now) > len(s.Start) {
			t.Fatalf("session grew from %d to %d", prevLen, len(s.Now))
		}
		prevLen = len(s.Now)

		last := -1
		for _, st := range s.Now {
			idx, ok := start[st.ID]
			if !ok {
				t.Fatalf("stroke %s is not in the gesture start list", st.ID)
			}
			if idx <= last {
				t.Fatalf("stroke %s reordered", st.ID)
			}
			last = idx
		}
	}
}

func ids(strokes []Stroke) []string {
	out := make([]string, len(strokes))
	for i, s := range strokes {
		out[i] = s.ID
	}
	return out
}
