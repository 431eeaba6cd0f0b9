package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/ink/display"
)

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestBackendRegistration(t *testing.T) {
	if !display.IsRegistered("raster") {
		t.Fatal("raster backend not registered")
	}

	backend, err := display.NewBackend("raster")
	if err != nil {
		t.Fatalf("failed to create raster backend: %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatal("backend is not *raster.Backend")
	}
}

func TestBackendLifecycle(t *testing.T) {
	backend := NewBackend()
	if backend.Image() != nil {
		t.Error("Image() before Begin should be nil")
	}
	if err := backend.SavePNG(filepath.Join(t.TempDir(), "x.png")); !errors.Is(err, ErrNotStarted) {
		t.Errorf("SavePNG before Begin = %v, want ErrNotStarted", err)
	}

	if err := backend.Begin(100, 80, 1); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if backend.Width() != 100 || backend.Height() != 80 {
		t.Errorf("size = %dx%d, want 100x80", backend.Width(), backend.Height())
	}
	if err := backend.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	bounds := backend.Image().Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 80 {
		t.Errorf("Image bounds = %v, want 100x80", bounds)
	}

	if err := backend.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if backend.Image() != nil {
		t.Error("Image() after Close should be nil")
	}
	if _, err := backend.WriteTo(&bytes.Buffer{}); !errors.Is(err, ErrNotStarted) {
		t.Errorf("WriteTo after Close = %v, want ErrNotStarted", err)
	}
	if err := backend.Close(); err != nil {
		t.Errorf("second Close = %v, want nil", err)
	}
}

func TestBackendBeginInvalidSize(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(0, 10, 1); !errors.Is(err, display.ErrInvalidSize) {
		t.Errorf("Begin(0, 10) = %v, want ErrInvalidSize", err)
	}
	if backend.Image() != nil {
		t.Error("failed Begin should not allocate a surface")
	}
}

func TestBackendFillRectScaled(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(100, 100, 2); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	backend.Clear(gg.White)
	backend.FillRect(display.NewRect(10, 10, 20, 20), gg.Red)
	_ = backend.End()

	img := backend.Image()
	// Logical (20,20) lands on pixel (40,40) at scale 2.
	if p := rgbaAt(img, 40, 40); p.R < 200 || p.G > 50 || p.B > 50 {
		t.Errorf("pixel at (40,40) = %v, expected red", p)
	}
	if p := rgbaAt(img, 70, 70); p.R < 200 || p.G < 200 || p.B < 200 {
		t.Errorf("pixel at (70,70) = %v, expected white", p)
	}
}

func TestBackendStrokeCurve(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(60, 60, 1); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	backend.Clear(gg.White)
	style := display.LineStyle{Color: gg.Black, Width: 6, Cap: display.CapRound}
	backend.StrokeCurve(gg.Pt(10, 30), gg.Pt(0, 0), gg.Pt(50, 30), false, style)
	_ = backend.End()

	if p := rgbaAt(backend.Image(), 30, 30); p.R > 80 {
		t.Errorf("pixel on line = %v, expected dark", p)
	}
	if p := rgbaAt(backend.Image(), 30, 5); p.R < 200 {
		t.Errorf("pixel off line = %v, expected white", p)
	}
}

func TestBackendFillCircle(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(50, 50, 1); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	backend.FillCircle(gg.Pt(25, 25), 10, gg.Blue)
	_ = backend.End()

	if p := rgbaAt(backend.Image(), 25, 25); p.B < 200 || p.A < 200 {
		t.Errorf("circle center = %v, expected blue", p)
	}
	if p := rgbaAt(backend.Image(), 2, 2); p.A != 0 {
		t.Errorf("corner = %v, expected transparent", p)
	}
}

func TestBackendDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.RGBA{G: 255, A: 255})
		}
	}

	backend := NewBackend()
	if err := backend.Begin(40, 40, 1); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	backend.DrawImage(src, display.NewRect(0, 0, 40, 40))
	_ = backend.End()

	if p := rgbaAt(backend.Image(), 20, 20); p.G < 200 {
		t.Errorf("pixel = %v, expected green", p)
	}
}

func TestBackendDrawText(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(200, 60, 1); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	backend.Clear(gg.White)
	backend.DrawText("Hello", 10, 40, display.Font{Family: "sans-serif", Size: 32}, gg.Black)
	_ = backend.End()

	img := backend.Image()
	dark := 0
	for y := 0; y < 60; y++ {
		for x := 0; x < 200; x++ {
			if rgbaAt(img, x, y).R < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("DrawText produced no visible pixels")
	}
}

func TestBackendPlaybackAndWriteTo(t *testing.T) {
	l := &display.List{Width: 30, Height: 20, Scale: 1.5}
	l.Append(
		display.ClearCommand{Color: gg.White},
		display.PolylineCommand{
			Points: []gg.Point{gg.Pt(2, 2), gg.Pt(28, 18)},
			Line:   display.LineStyle{Color: gg.Black, Width: 2},
		},
	)

	backend := NewBackend()
	if err := l.Playback(backend); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}
	if backend.Width() != 45 || backend.Height() != 30 {
		t.Errorf("size = %dx%d, want 45x30", backend.Width(), backend.Height())
	}

	var buf bytes.Buffer
	n, err := backend.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, buffer has %d", n, buf.Len())
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 45 || b.Dy() != 30 {
		t.Errorf("decoded bounds = %v, want 45x30", b)
	}
}

func TestBackendSaveToFile(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(10, 10, 1); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	_ = backend.End()
	if err := backend.SaveToFile(filepath.Join(t.TempDir(), "out.png")); err != nil {
		t.Errorf("SaveToFile failed: %v", err)
	}
}
