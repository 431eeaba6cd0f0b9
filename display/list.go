package display

import (
	"fmt"
	"math"
)

// List is one complete frame: an ordered sequence of commands in logical
// units over a Width by Height canvas. A List is either replayed in full or
// not at all; backends never see a partial frame.
//
// The List is not safe for concurrent use while it is being built.
type List struct {
	Width, Height float64
	// Scale is the number of backing-store pixels per logical unit.
	Scale    float64
	Commands []Command
}

// NewList creates an empty frame of the given logical size at scale 1.
func NewList(width, height float64) *List {
	return &List{Width: width, Height: height, Scale: 1}
}

// Append adds commands to the end of the frame.
func (l *List) Append(cmds ...Command) {
	l.Commands = append(l.Commands, cmds...)
}

// Len returns the number of commands.
func (l *List) Len() int {
	return len(l.Commands)
}

// Count returns the number of commands of type t.
func (l *List) Count(t CommandType) int {
	n := 0
	for _, c := range l.Commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// PixelSize returns the backing-store size of the frame.
func (l *List) PixelSize() (w, h int) {
	s := l.scale()
	return int(math.Ceil(l.Width * s)), int(math.Ceil(l.Height * s))
}

func (l *List) scale() float64 {
	if l.Scale <= 0 {
		return 1
	}
	return l.Scale
}

// Playback replays every command onto b between Begin and End.
func (l *List) Playback(b Backend) error {
	if b == nil {
		return fmt.Errorf("display: playback to nil backend")
	}
	w, h := l.PixelSize()
	if err := b.Begin(w, h, l.scale()); err != nil {
		return fmt.Errorf("display: begin %dx%d: %w", w, h, err)
	}

	for _, cmd := range l.Commands {
		switch c := cmd.(type) {
		case ClearCommand:
			b.Clear(c.Color)
		case ImageCommand:
			if c.Image != nil {
				b.DrawImage(c.Image, c.Dst)
			}
		case PolylineCommand:
			if len(c.Points) > 1 {
				b.StrokePolyline(c.Points, c.Line)
			}
		case CurveCommand:
			b.StrokeCurve(c.From, c.Control, c.To, c.Quad, c.Line)
		case RectCommand:
			if c.Fill {
				b.FillRect(c.Rect, c.Line.Color)
			} else {
				b.StrokeRect(c.Rect, c.Line)
			}
		case CircleCommand:
			if c.Fill {
				b.FillCircle(c.Center, c.Radius, c.Line.Color)
			} else {
				b.StrokeCircle(c.Center, c.Radius, c.Line)
			}
		case TextCommand:
			if c.Text != "" {
				b.DrawText(c.Text, c.X, c.Y, c.Font, c.Color)
			}
		}
	}

	return b.End()
}
