package ink

import "fmt"

// unknownStr is returned by String methods for out-of-range values.
const unknownStr = "unknown"

// PenStyle is a named visual preset for the pen tool.
// The zero value means "unset" and renders as Fountain.
type PenStyle uint8

const (
	// Fountain is a pressure-reactive nib with a wide width range.
	Fountain PenStyle = iota + 1
	// Ballpoint keeps a nearly constant width.
	Ballpoint
	// Brush has the widest range and a soft, translucent body.
	Brush
)

var penStyleNames = [...]string{
	Fountain:  "fountain",
	Ballpoint: "ballpoint",
	Brush:     "brush",
}

// String returns the lower-case style name.
func (s PenStyle) String() string {
	if s > 0 && int(s) < len(penStyleNames) {
		return penStyleNames[s]
	}
	return unknownStr
}

// MarshalText implements encoding.TextMarshaler.
func (s PenStyle) MarshalText() ([]byte, error) {
	if s == 0 {
		return []byte{}, nil
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Unknown names decode to the unset style rather than failing the document.
func (s *PenStyle) UnmarshalText(b []byte) error {
	*s = 0
	for i, name := range penStyleNames {
		if name != "" && name == string(b) {
			*s = PenStyle(i)
			break
		}
	}
	return nil
}

// ToolKind identifies the tool that produced a committed stroke.
type ToolKind uint8

const (
	// ToolPen strokes are smoothed with a spline and drawn with variable width.
	ToolPen ToolKind = iota
	// ToolHighlighter strokes are flat translucent bands.
	ToolHighlighter
)

// String returns "pen" or "highlighter".
func (k ToolKind) String() string {
	switch k {
	case ToolPen:
		return "pen"
	case ToolHighlighter:
		return "highlighter"
	default:
		return unknownStr
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ToolKind) MarshalText() ([]byte, error) {
	switch k {
	case ToolPen, ToolHighlighter:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("ink: invalid tool kind %d", k)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ToolKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "pen":
		*k = ToolPen
	case "highlighter":
		*k = ToolHighlighter
	default:
		return fmt.Errorf("ink: unknown tool %q", b)
	}
	return nil
}

// Tool is the closed set of tools an Engine can have selected:
// Pen, Highlighter, Eraser and Text.
type Tool interface {
	// toolName keeps the set closed to this package.
	toolName() string
}

// Pen draws variable-width strokes in the given style.
type Pen struct {
	Style PenStyle
}

// Highlighter draws flat translucent bands.
type Highlighter struct{}

// Eraser removes whole strokes near the pointer.
type Eraser struct{}

// Text creates and edits floating text boxes.
type Text struct{}

func (p Pen) toolName() string       { return "pen/" + p.Style.String() }
func (Highlighter) toolName() string { return "highlighter" }
func (Eraser) toolName() string      { return "eraser" }
func (Text) toolName() string        { return "text" }

// ToolName returns a short human-readable name for t.
func ToolName(t Tool) string {
	if t == nil {
		return "none"
	}
	return t.toolName()
}
