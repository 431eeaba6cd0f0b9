package ink

import "errors"

// Sentinel errors for the ink package.
var (
	// ErrSurfaceUnavailable is returned by Engine.Draw when there is no
	// render target. Nothing is drawn; the next Draw with a surface repaints.
	ErrSurfaceUnavailable = errors.New("ink: render surface unavailable")

	// ErrBackgroundDecode is returned when a background image cannot be decoded.
	// The engine keeps rendering without a background.
	ErrBackgroundDecode = errors.New("ink: cannot decode background image")
)
