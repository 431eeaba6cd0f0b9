package ink

import "testing"

func TestViewportScreenToLogical(t *testing.T) {
	tests := []struct {
		name         string
		vp           Viewport
		sx, sy       float64
		wantX, wantY float64
	}{
		{"identity", NewViewport(800, 1000), 120, 40, 120, 40},
		{"origin offset", Viewport{LogicalWidth: 800, LogicalHeight: 1000, Zoom: 1, OriginX: 20, OriginY: 10}, 120, 40, 100, 30},
		{"zoomed in", NewViewport(800, 1000).WithZoom(2), 200, 100, 100, 50},
		{"zoomed out", NewViewport(800, 1000).WithZoom(0.5), 50, 25, 100, 50},
		{"panned and zoomed", NewViewport(800, 1000).WithZoom(2).WithPan(-100, 50), 100, 150, 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.vp.ScreenToLogical(tt.sx, tt.sy)
			if !almostEqual(x, tt.wantX, 1e-9) || !almostEqual(y, tt.wantY, 1e-9) {
				t.Errorf("ScreenToLogical(%v, %v) = (%v, %v), want (%v, %v)", tt.sx, tt.sy, x, y, tt.wantX, tt.wantY)
			}
			bx, by := tt.vp.LogicalToScreen(x, y)
			if !almostEqual(bx, tt.sx, 1e-9) || !almostEqual(by, tt.sy, 1e-9) {
				t.Errorf("LogicalToScreen round trip = (%v, %v), want (%v, %v)", bx, by, tt.sx, tt.sy)
			}
		})
	}
}

func TestViewportZoomClamp(t *testing.T) {
	tests := []struct {
		zoom, want float64
	}{
		{0.1, MinZoom},
		{5, MaxZoom},
		{1.25, 1.25},
	}
	for _, tt := range tests {
		if got := NewViewport(10, 10).WithZoom(tt.zoom).Zoom; got != tt.want {
			t.Errorf("WithZoom(%v).Zoom = %v, want %v", tt.zoom, got, tt.want)
		}
	}
	// A zero-value zoom behaves as 1.
	v := Viewport{LogicalWidth: 100, LogicalHeight: 100}
	if x, _ := v.ScreenToLogical(40, 0); !almostEqual(x, 40, 1e-9) {
		t.Errorf("zero zoom ScreenToLogical x = %v, want 40", x)
	}
}

func TestViewportDevicePixelRatioIsRasterOnly(t *testing.T) {
	v := NewViewport(801, 600)
	v.DevicePixelRatio = 1.5

	x, y := v.ScreenToLogical(30, 60)
	if x != 30 || y != 60 {
		t.Errorf("DPR changed logical coordinates: (%v, %v)", x, y)
	}
	if w, h := v.BackingSize(); w != 1202 || h != 900 {
		t.Errorf("BackingSize() = %dx%d, want 1202x900", w, h)
	}
	if s := v.BackingScale(); s != 1.5 {
		t.Errorf("BackingScale() = %v, want 1.5", s)
	}
	if w, h := v.ScreenSize(); w != 801 || h != 600 {
		t.Errorf("ScreenSize() = %vx%v, want 801x600", w, h)
	}
}

func TestViewportContains(t *testing.T) {
	v := NewViewport(100, 50)
	if !v.Contains(0, 0) || !v.Contains(100, 50) || v.Contains(101, 10) || v.Contains(5, -1) {
		t.Error("Contains does not match the page bounds")
	}
}
