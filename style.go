package ink

import (
	"math"
	"sync"
)

// Tuned constants kept for behavior parity with existing annotated pages.
const (
	// HighlighterAlpha is the fixed opacity of highlighter bands.
	HighlighterAlpha = 0.35

	// EraserHitScale enlarges the eraser hit radius beyond the drawn cursor.
	EraserHitScale = 1.2
)

// StyleEntry holds the rendering parameters of one pen style.
type StyleEntry struct {
	// Opacity is the alpha applied to every segment of the stroke.
	Opacity float64
	// MinWidth and MaxWidth bound the width multiplier applied to the
	// stroke's base width at zero and full pressure.
	MinWidth float64
	MaxWidth float64
	// PressureSensitivity is the exponent applied to pressure.
	PressureSensitivity float64
	// Smoothing is the Catmull-Rom tension in [0, 1].
	Smoothing float64
}

// WidthMultiplier maps a pressure in [0, 1] to a multiplier of the base width:
// MinWidth + (MaxWidth-MinWidth) * pressure^PressureSensitivity.
func (e StyleEntry) WidthMultiplier(pressure float64) float64 {
	p := clamp(pressure, 0, 1)
	return e.MinWidth + (e.MaxWidth-e.MinWidth)*math.Pow(p, e.PressureSensitivity)
}

// Registry is an immutable table of StyleEntry values keyed by PenStyle.
// It is built once and shared by pointer; it needs no locking.
type Registry struct {
	entries  map[PenStyle]StyleEntry
	fallback StyleEntry
}

// defaultStyles is the built-in pen table.
var defaultStyles = map[PenStyle]StyleEntry{
	Fountain:  {Opacity: 1.0, MinWidth: 0.5, MaxWidth: 1.8, PressureSensitivity: 1.4, Smoothing: 0.5},
	Ballpoint: {Opacity: 0.95, MinWidth: 0.85, MaxWidth: 1.15, PressureSensitivity: 0.6, Smoothing: 0.35},
	Brush:     {Opacity: 0.85, MinWidth: 0.3, MaxWidth: 2.4, PressureSensitivity: 1.0, Smoothing: 0.6},
}

// NewRegistry builds a registry from entries. Styles missing from entries
// fall back to the built-in table. The map is copied.
func NewRegistry(entries map[PenStyle]StyleEntry) *Registry {
	r := &Registry{entries: make(map[PenStyle]StyleEntry, len(defaultStyles))}
	for s, e := range defaultStyles {
		r.entries[s] = e
	}
	for s, e := range entries {
		r.entries[s] = e
	}
	r.fallback = r.entries[Fountain]
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(nil)
})

// DefaultRegistry returns the shared built-in registry.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// Lookup returns the entry for s. Unset or unknown styles use Fountain.
func (r *Registry) Lookup(s PenStyle) StyleEntry {
	if e, ok := r.entries[s]; ok {
		return e
	}
	return r.fallback
}

// Default drawing style values.
const (
	DefaultStrokeColor = "#000000"
	DefaultStrokeWidth = 2.0
)

// Style is the drawing state applied to strokes and text boxes created
// after it is set. Existing strokes keep the style they were drawn with.
type Style struct {
	Color        string
	Width        float64
	EraserRadius float64

	FontSize   float64
	FontFamily string
}

// DefaultStyle returns the style of a new engine.
func DefaultStyle() Style {
	return Style{
		Color:        DefaultStrokeColor,
		Width:        DefaultStrokeWidth,
		EraserRadius: DefaultEraserRadius,
		FontSize:     DefaultFontSize,
		FontFamily:   DefaultFontFamily,
	}
}

// normalized fills zero fields from DefaultStyle and clamps the font size.
func (s Style) normalized() Style {
	d := DefaultStyle()
	if s.Color == "" {
		s.Color = d.Color
	}
	if s.Width <= 0 {
		s.Width = d.Width
	}
	if s.EraserRadius <= 0 {
		s.EraserRadius = d.EraserRadius
	}
	if s.FontSize <= 0 {
		s.FontSize = d.FontSize
	}
	s.FontSize = clamp(s.FontSize, MinFontSize, MaxFontSize)
	if s.FontFamily == "" {
		s.FontFamily = d.FontFamily
	}
	return s
}
