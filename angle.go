package reedshepp

import "math"

// TwoPi is the full turn, 2π.
const TwoPi = 2 * math.Pi

// HalfPi is the quarter turn, π/2.
const HalfPi = math.Pi / 2

// NormalizeAngle reduces an angle to [0, 2π). The result is congruent to a
// modulo 2π, for arbitrarily large or negative inputs.
// NaN and ±Inf cannot be reduced and are returned as NaN.
func NormalizeAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		tracer().Errorf("cannot normalize angle %g", a)
		return math.NaN()
	}
	if a >= TwoPi || a < -TwoPi {
		a = math.Mod(a, TwoPi)
	}
	for a < 0.0 {
		a += TwoPi
	}
	for a >= TwoPi {
		a -= TwoPi
	}
	return a
}

// Bearing is a four-quadrant inverse tangent of y/x with range [0, 2π)
// instead of the conventional (−π, π].
//
// Special cases are:
//
//	Bearing(0, 0)  = 0
//	Bearing(y, 0)  = π/2   for y > 0
//	Bearing(y, 0)  = −π/2  for y < 0
//
// The last case is the only one outside of [0, 2π); callers normalize
// where it matters.
func Bearing(y, x float64) float64 {
	if x == 0.0 && y == 0.0 {
		return 0.0
	}
	if x == 0.0 {
		if y > 0 {
			return HalfPi
		}
		return -HalfPi
	}
	a := math.Atan(y / x)
	if a > 0.0 {
		if x > 0 {
			return a // quadrant I
		}
		return a + math.Pi // quadrant III
	}
	if x > 0 {
		if a == 0.0 {
			return 0.0 // positive x-axis
		}
		return a + TwoPi // quadrant IV
	}
	return a + math.Pi // quadrant II and negative x-axis
}

// AngleDiff returns the smallest absolute difference between two headings,
// in [0, π].
func AngleDiff(a, b float64) float64 {
	d := NormalizeAngle(a - b)
	if d > math.Pi {
		d = TwoPi - d
	}
	return d
}
