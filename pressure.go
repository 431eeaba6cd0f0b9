package ink

import "math"

// Velocity-to-pressure mapping constants.
const (
	// PressureReferenceVelocity is the speed, in logical units per second,
	// at which the estimated pressure bottoms out.
	PressureReferenceVelocity = 500.0

	// pressureVelocityWeight scales how much speed thins the line.
	pressureVelocityWeight = 0.6

	// MinEstimatedPressure keeps fast strokes visible.
	MinEstimatedPressure = 0.2

	// MaxEstimatedPressure is the pressure of a stationary pointer.
	MaxEstimatedPressure = 1.0
)

// EstimatePressure derives a synthetic pressure from pointer velocity.
// Slow movement yields more pressure, fast movement less.
//
// With no previous sample or a non-positive time delta the neutral
// DefaultPressure is returned.
func EstimatePressure(current Point, previous *Point, deltaTimeMs int64) float64 {
	if previous == nil || deltaTimeMs <= 0 {
		return DefaultPressure
	}

	velocity := Distance(current, *previous) / float64(deltaTimeMs) * 1000
	normalized := math.Min(velocity/PressureReferenceVelocity, 1)

	return clamp(1-normalized*pressureVelocityWeight, MinEstimatedPressure, MaxEstimatedPressure)
}

// NeedsPressureEstimate reports whether a device-reported pressure is a
// placeholder. Mice and most touch screens report exactly 0 or 0.5; any other
// value is real hardware pressure and passes through unchanged.
func NeedsPressureEstimate(pressure float64) bool {
	return pressure == 0 || pressure == DefaultPressure
}
