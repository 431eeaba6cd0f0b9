// Package raster provides a display backend that renders frames to pixel
// images using gg.Context.
//
// The raster backend is the reference backend for ink. It is used by the
// inkrender command, by export, and for pixel comparisons in tests.
//
// Coordinates arrive in logical units and are multiplied by the scale given
// to Begin, so line widths and text sizes grow with the device pixel ratio.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/ink/display/raster"
//
//	// Create via registry
//	backend, _ := display.NewBackend("raster")
//
//	// Or create directly
//	backend := raster.NewBackend()
//
//	list.Playback(backend)
//	backend.SavePNG("page.png")
package raster

import (
	"errors"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/ink/display"
	"github.com/gogpu/ink/typeset"
)

func init() {
	display.Register("raster", func() display.Backend {
		return NewBackend()
	})
}

// ErrNotStarted is returned by output methods called before Begin.
var ErrNotStarted = errors.New("raster: backend not started")

// Backend renders display lists to a pixel image using gg.Context.
type Backend struct {
	ctx    *gg.Context
	fonts  *typeset.Provider
	width  int
	height int
	scale  float64
}

// Ensure Backend implements all required interfaces.
var (
	_ io.Closer             = (*Backend)(nil)
	_ display.Backend       = (*Backend)(nil)
	_ display.WriterBackend = (*Backend)(nil)
	_ display.FileBackend   = (*Backend)(nil)
	_ display.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend using the default font provider.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{fonts: typeset.Default(), scale: 1}
}

// NewBackendWithFonts creates a raster backend that resolves text faces
// through fonts.
func NewBackendWithFonts(fonts *typeset.Provider) *Backend {
	if fonts == nil {
		fonts = typeset.Default()
	}
	return &Backend{fonts: fonts, scale: 1}
}

// Begin allocates a width by height pixel surface. A previous surface is
// released.
func (b *Backend) Begin(width, height int, scale float64) error {
	if width <= 0 || height <= 0 {
		return display.ErrInvalidSize
	}
	if scale <= 0 {
		scale = 1
	}
	if b.ctx != nil {
		_ = b.ctx.Close()
	}
	b.width = width
	b.height = height
	b.scale = scale
	b.ctx = gg.NewContext(width, height)
	return nil
}

// End finalizes the rendering. The surface stays open for Image, WriteTo
// and SaveToFile until Close or the next Begin.
func (b *Backend) End() error {
	return nil
}

// Close releases the surface. Output methods return ErrNotStarted until the
// next Begin. Close is safe to call more than once.
func (b *Backend) Close() error {
	if b.ctx == nil {
		return nil
	}
	err := b.ctx.Close()
	b.ctx = nil
	return err
}

// Clear fills the whole surface with c.
func (b *Backend) Clear(c gg.RGBA) {
	b.ctx.ClearWithColor(c)
}

// DrawImage draws img scaled into dst.
func (b *Backend) DrawImage(img display.Image, dst display.Rect) {
	if img == nil || dst.IsEmpty() {
		return
	}
	b.ctx.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:         dst.MinX * b.scale,
		Y:         dst.MinY * b.scale,
		DstWidth:  dst.Width() * b.scale,
		DstHeight: dst.Height() * b.scale,
	})
}

// StrokePolyline strokes pts as one open path.
func (b *Backend) StrokePolyline(pts []gg.Point, style display.LineStyle) {
	if len(pts) < 2 {
		return
	}
	b.applyLine(style)
	b.ctx.MoveTo(pts[0].X*b.scale, pts[0].Y*b.scale)
	for _, p := range pts[1:] {
		b.ctx.LineTo(p.X*b.scale, p.Y*b.scale)
	}
	_ = b.ctx.Stroke()
}

// StrokeCurve strokes a line or a quadratic segment.
func (b *Backend) StrokeCurve(from, ctrl, to gg.Point, quad bool, style display.LineStyle) {
	b.applyLine(style)
	s := b.scale
	b.ctx.MoveTo(from.X*s, from.Y*s)
	if quad {
		b.ctx.QuadraticTo(ctrl.X*s, ctrl.Y*s, to.X*s, to.Y*s)
	} else {
		b.ctx.LineTo(to.X*s, to.Y*s)
	}
	_ = b.ctx.Stroke()
}

// FillRect fills r with c.
func (b *Backend) FillRect(r display.Rect, c gg.RGBA) {
	b.ctx.SetRGBA(c.R, c.G, c.B, c.A)
	b.ctx.DrawRectangle(r.MinX*b.scale, r.MinY*b.scale, r.Width()*b.scale, r.Height()*b.scale)
	_ = b.ctx.Fill()
}

// StrokeRect strokes the outline of r.
func (b *Backend) StrokeRect(r display.Rect, style display.LineStyle) {
	b.applyLine(style)
	b.ctx.DrawRectangle(r.MinX*b.scale, r.MinY*b.scale, r.Width()*b.scale, r.Height()*b.scale)
	_ = b.ctx.Stroke()
}

// FillCircle fills a circle with c.
func (b *Backend) FillCircle(center gg.Point, radius float64, c gg.RGBA) {
	b.ctx.SetRGBA(c.R, c.G, c.B, c.A)
	b.ctx.DrawCircle(center.X*b.scale, center.Y*b.scale, radius*b.scale)
	_ = b.ctx.Fill()
}

// StrokeCircle strokes the outline of a circle.
func (b *Backend) StrokeCircle(center gg.Point, radius float64, style display.LineStyle) {
	b.applyLine(style)
	b.ctx.DrawCircle(center.X*b.scale, center.Y*b.scale, radius*b.scale)
	_ = b.ctx.Stroke()
}

// DrawText draws s with its baseline origin at (x, y). Text is drawn
// straight onto the pixmap, so the face is resolved at backing-store size.
func (b *Backend) DrawText(s string, x, y float64, font display.Font, c gg.RGBA) {
	face := b.fonts.Face(font.Family, font.Size*b.scale)
	if face == nil {
		return
	}
	b.ctx.SetFont(face)
	b.ctx.SetRGBA(c.R, c.G, c.B, c.A)
	b.ctx.DrawString(s, x*b.scale, y*b.scale)
}

// WriteTo writes the rendered frame as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.ctx == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	err := b.ctx.EncodePNG(cw)
	return cw.n, err
}

// SaveToFile saves the rendered frame as a PNG file.
func (b *Backend) SaveToFile(path string) error {
	return b.SavePNG(path)
}

// SavePNG saves the rendered frame as a PNG file.
func (b *Backend) SavePNG(path string) error {
	if b.ctx == nil {
		return ErrNotStarted
	}
	return b.ctx.SavePNG(path)
}

// Image returns the rendered image.
func (b *Backend) Image() image.Image {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Image()
}

// Width returns the surface width in pixels.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the surface height in pixels.
func (b *Backend) Height() int {
	return b.height
}

// Scale returns the pixels per logical unit of the current frame.
func (b *Backend) Scale() float64 {
	return b.scale
}

func (b *Backend) applyLine(style display.LineStyle) {
	c := style.Color
	b.ctx.SetRGBA(c.R, c.G, c.B, c.A)
	b.ctx.SetLineWidth(style.Width * b.scale)
	b.ctx.SetLineCap(convertLineCap(style.Cap))
	b.ctx.SetLineJoin(convertLineJoin(style.Join))
}

func convertLineCap(lineCap display.LineCap) gg.LineCap {
	switch lineCap {
	case display.CapRound:
		return gg.LineCapRound
	case display.CapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func convertLineJoin(join display.LineJoin) gg.LineJoin {
	switch join {
	case display.JoinMiter:
		return gg.LineJoinMiter
	case display.JoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinRound
	}
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
