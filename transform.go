package ink

import (
	"math"

	"github.com/gogpu/gg"
)

// Zoom bounds accepted by Viewport.
const (
	MinZoom = 0.3
	MaxZoom = 2.0
)

// Viewport maps pointer coordinates to logical canvas coordinates.
//
// The canvas has a fixed logical size. On screen it is drawn at
// LogicalWidth*Zoom by LogicalHeight*Zoom, with its top-left corner at
// (OriginX+PanX, OriginY+PanY). DevicePixelRatio only sizes the raster
// backing store; it never affects logical coordinates.
type Viewport struct {
	LogicalWidth  float64
	LogicalHeight float64

	Zoom       float64
	PanX, PanY float64

	// OriginX and OriginY locate the unpanned canvas in screen space.
	OriginX, OriginY float64

	DevicePixelRatio float64
}

// NewViewport returns an unzoomed, unpanned viewport at DPR 1.
func NewViewport(logicalWidth, logicalHeight float64) Viewport {
	return Viewport{
		LogicalWidth:     logicalWidth,
		LogicalHeight:    logicalHeight,
		Zoom:             1,
		DevicePixelRatio: 1,
	}
}

// normalized returns v with zoom clamped and a usable DPR.
func (v Viewport) normalized() Viewport {
	if v.Zoom == 0 {
		v.Zoom = 1
	}
	v.Zoom = clamp(v.Zoom, MinZoom, MaxZoom)
	if v.DevicePixelRatio <= 0 {
		v.DevicePixelRatio = 1
	}
	return v
}

// WithZoom returns a copy of v at the given zoom, clamped to [MinZoom, MaxZoom].
func (v Viewport) WithZoom(zoom float64) Viewport {
	v.Zoom = clamp(zoom, MinZoom, MaxZoom)
	return v
}

// WithPan returns a copy of v with the given pan offset.
func (v Viewport) WithPan(x, y float64) Viewport {
	v.PanX, v.PanY = x, y
	return v
}

// ScreenSize returns the on-screen size of the canvas element.
func (v Viewport) ScreenSize() (w, h float64) {
	n := v.normalized()
	return n.LogicalWidth * n.Zoom, n.LogicalHeight * n.Zoom
}

// Matrix returns the logical-to-screen transform.
func (v Viewport) Matrix() gg.Matrix {
	n := v.normalized()
	sw, _ := n.ScreenSize()
	scale := 1.0
	if n.LogicalWidth > 0 {
		scale = sw / n.LogicalWidth
	}
	return gg.Translate(n.OriginX+n.PanX, n.OriginY+n.PanY).Multiply(gg.Scale(scale, scale))
}

// ScreenToLogical converts a screen position to logical canvas coordinates:
// subtract the element origin, then divide by on-screen size over logical size.
func (v Viewport) ScreenToLogical(screenX, screenY float64) (x, y float64) {
	p := v.Matrix().Invert().TransformPoint(gg.Pt(screenX, screenY))
	return p.X, p.Y
}

// LogicalToScreen converts logical canvas coordinates to a screen position.
func (v Viewport) LogicalToScreen(x, y float64) (screenX, screenY float64) {
	p := v.Matrix().TransformPoint(gg.Pt(x, y))
	return p.X, p.Y
}

// Contains reports whether the logical point lies on the canvas.
func (v Viewport) Contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x <= v.LogicalWidth && y <= v.LogicalHeight
}

// BackingScale is the factor from logical units to backing-store pixels.
func (v Viewport) BackingScale() float64 {
	return v.normalized().DevicePixelRatio
}

// BackingSize returns the raster backing-store size in pixels.
func (v Viewport) BackingSize() (w, h int) {
	s := v.BackingScale()
	return int(math.Ceil(v.LogicalWidth * s)), int(math.Ceil(v.LogicalHeight * s))
}
