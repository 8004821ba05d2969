package mathutil

import "math"

// Lerp returns a + (b-a)*t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// EaseInOutQuad is a smoothstep-like ease-in-out curve over [0,1].
// Quadratic acceleration in, quadratic deceleration out.
func EaseInOutQuad(f float64) float64 {
	if f < 0.5 {
		return 2 * f * f
	}
	g := -2*f + 2
	return 1 - g*g/2
}

// NearestTurn returns the multiple of 2π closest to angle (radians).
// Smoothing a rotation toward this value settles on an upright
// orientation without a visible snap.
func NearestTurn(angle float64) float64 {
	return math.Round(angle/(2*math.Pi)) * 2 * math.Pi
}
