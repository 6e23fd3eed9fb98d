package reedshepp

import (
	"fmt"
	"math"
)

// === Pose Data Type ========================================================

// Pose is an oriented planar position. Theta is the heading in radians,
// counter-clockwise from the x-axis. Headings are taken modulo 2π, but are
// not normalized eagerly.
type Pose struct {
	X, Y  float64
	Theta float64
}

// Pz is a quick notation for constructing a pose.
func Pz(x, y, theta float64) Pose {
	return Pose{X: x, Y: y, Theta: theta}
}

// At creates a pose from a position and a heading.
func At(pos Pair, theta float64) Pose {
	return Pose{X: pos.X(), Y: pos.Y(), Theta: theta}
}

// Position returns the position part of a pose.
func (p Pose) Position() Pair {
	return P(p.X, p.Y)
}

// Normalized returns a copy of p with its heading reduced to [0, 2π).
func (p Pose) Normalized() Pose {
	p.Theta = NormalizeAngle(p.Theta)
	return p
}

// Equal compares two poses up to eps, in position as well as in heading.
// Headings are compared modulo 2π.
func (p Pose) Equal(p2 Pose, eps float64) bool {
	return math.Abs(p.X-p2.X) <= eps && math.Abs(p.Y-p2.Y) <= eps &&
		AngleDiff(p.Theta, p2.Theta) <= eps
}

// Dist is the planar distance between two poses, ignoring headings.
func (p Pose) Dist(p2 Pose) float64 {
	return (p2.Position() - p.Position()).Abs()
}

// Floor truncates all components of a pose towards zero, keeping the given
// number of decimals. It is intended for printing sample tables, therefore
// values which "mean" to be zero are zapped (no "-0" in the output).
func (p Pose) Floor(decimals int) Pose {
	mult := math.Pow(10, float64(decimals))
	return Pose{
		X:     Zap(math.Trunc(p.X*mult) / mult),
		Y:     Zap(math.Trunc(p.Y*mult) / mult),
		Theta: Zap(math.Trunc(p.Theta*mult) / mult),
	}
}

func (p Pose) String() string {
	return fmt.Sprintf("(%g,%g;%g)", p.X, p.Y, p.Theta)
}
