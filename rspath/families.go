package rspath

import (
	"math"

	"github.com/npillmayer/reedshepp"
)

// Infeasible is the length reported for path shapes which cannot connect
// two poses. It never compares less than a real length.
const Infeasible = math.MaxFloat64

// tolerance for degenerate chords
const tiny = 1e-12

// sines below this are treated as zero in family 10
const sineClamp = 1e-3

const halfPi = reedshepp.HalfPi

// Family identifies one of the twelve base path shapes, numbered 1…12.
type Family int

// evaluator computes the parameters and the length of one family for a goal
// (x, y, φ) given relative to the start pose. (rs, rc) is the offset of the
// start circle's reference point, supplied by the search driver.
type evaluator func(c *Config, x, y, phi, rs, rc float64) (t, u, v, length float64)

// evaluators is indexed by family-1.
var evaluators = [12]evaluator{
	family1, family2, family3, family4, family5, family6,
	family7, family8, family9, family10, family11, family12,
}

var mod2pi = reedshepp.NormalizeAngle

func infeasible() (float64, float64, float64, float64) {
	return 0, 0, 0, Infeasible
}

// result rejects NaN parameters, which may only stem from non-finite input.
func result(t, u, v, length float64) (float64, float64, float64, float64) {
	if math.IsNaN(t) || math.IsNaN(u) || math.IsNaN(v) || math.IsNaN(length) {
		return infeasible()
	}
	return t, u, v, length
}

func inUnit(x float64) bool {
	return x >= -1 && x <= 1
}

// family 1: C|C|C
func family1(c *Config, x, y, phi, rs, rc float64) (float64, float64, float64, float64) {
	a, b := x-rs, y+rc
	if math.Abs(a) < tiny && math.Abs(b) < tiny {
		return infeasible()
	}
	u1 := math.Hypot(a, b)
	if u1 > c.r4 {
		return infeasible()
	}
	theta := reedshepp.Bearing(b, a)
	alpha := math.Acos(u1 / c.r4)
	t := mod2pi(halfPi + alpha + theta)
	u := mod2pi(math.Pi - 2*alpha)
	v := mod2pi(phi - t - u)
	return result(t, u, v, c.r*(t+u+v))
}

// family 2: C|C C
func family2(c *Config, x, y, phi, rs, rc float64) (float64, float64, float64, float64) {
	a, b := x-rs, y+rc
	if math.Abs(a) < tiny && math.Abs(b) < tiny {
		return infeasible()
	}
	u1 := math.Hypot(a, b)
	if u1 > c.r4 {
		return infeasible()
	}
	theta := reedshepp.Bearing(b, a)
	alpha := math.Acos(u1 / c.r4)
	t := mod2pi(halfPi + alpha + theta)
	u := mod2pi(math.Pi - 2*alpha)
	v := mod2pi(t + u - phi)
	return result(t, u, v, c.r*(t+u+v))
}

// family 3: C S C with both arcs turning to the same side. Always feasible.
func family3(c *Config, x, y, phi, rs, rc float64) (float64, float64, float64, float64) {
	a, b := x-rs, y+rc
	t := mod2pi(reedshepp.Bearing(b, a))
	u := math.Hypot(a, b)
	v := mod2pi(phi - t)
	return result(t, u, v, c.r*(t+v)+u)
}

// family 4: C S C with arcs turning to opposite sides
func family4(c *Config, x, y, phi, rs, rc float64) (float64, float64, float64, float64) {
	a, b := x+rs, y-rc
	u1 := math.Hypot(a, b)
	if u1 < c.r2 {
		return infeasible()
	}
	theta := reedshepp.Bearing(b, a)
	u := math.Sqrt(u1*u1 - c.sq4)
	alpha := reedshepp.Bearing(c.r2, u)
	t := mod2pi(theta + alpha)
	v := mod2pi(t - phi)
	return result(t, u, v, c.r*(t+v)+u)
}

// family 5: C Cu|Cu C
func family5(c *Config, x, y, phi, rs, rc float64) (float64, float64, float64, float64) {
	a, b := x+rs, y-rc
	if math.Abs(a) < tiny && math.Abs(b) < tiny {
		return infeasible()
	}
	u1 := math.Hypot(a, b)
	if u1 > c.r4 {
		return infeasible()
	}
	theta := reedshepp.Bearing(b, a)
	var t, u float64
	if u1 > c.r2 {
		alpha := math.Acos((u1/2 - c.r) / c.r2)
		t = mod2pi(halfPi + theta - alpha)
		u = mod2pi(math.Pi - alpha)
	} else {
		alpha := math.Acos((u1/2 + c.r) / c.r2)
		t = mod2pi(halfPi + theta + alpha)
		u = mod2pi(alpha)
	}
	v := mod2pi(phi - t + 2*u)
	return result(t, u, v, c.r*(2*u+t+v))
}

// family 6: C|Cu Cu|C
func family6(c *Config, x, y, phi, rs, rc float64) (float64, float64, float64, float64) {
	a, b := x+rs, y-rc
	if math.Abs(a) < tiny && math.Abs(b) < tiny {
		return infeasible()
	}
	u1 := math.Hypot(a, b)
	if u1 > 6*c.r {
		return infeasible()
	}
	theta := reedshepp.Bearing(b, a)
	va1 := (5*c.sq - u1*u1/4) / c.sq4
	if va1 < 0 || va1 > 1 {
		return infeasible()
	}
	u := math.Acos(va1)
	arg := c.r2 * math.Sin(u) / u1
	if !inUnit(arg) {
		return infeasible()
	}
	alpha := math.Asin(arg)
	t := mod2pi(halfPi + theta + alpha)
	v := mod2pi(t - phi)
	return result(t, u, v, c.r*(2*u+t+v))
}

// family 7: C|Cπ/2 S C
func family7(c *Config, x, y, phi, rs, rc float64) (float64, float64, float64, float64) {
	a, b := x-rs, y+rc
	u1 := math.Hypot(a, b)
	if u1 < c.r2 {
		return infeasible()
	}
	theta := reedshepp.Bearing(b, a)
	u := math.Sqrt(u1*u1-c.sq4) - c.r2
	if u < 0 {
		return infeasible()
	}
	alpha := reedshepp.Bearing(c.r2, u+c.r2)
	t := mod2pi(halfPi + theta + alpha)
	v := mod2pi(t + halfPi - phi)
	return result(t, u, v, c.r*(t+halfPi+v)+u)
}

// family 8: C|Cπ/2 S C, last arc on the other side
func family8(c *Config, x, y, phi, rs, rc float64) (float64, float64, float64, float64) {
	a, b := x+rs, y-rc
	u1 := math.Hypot(a, b)
	if u1 < c.r2 {
		return infeasible()
	}
	theta := reedshepp.Bearing(b, a)
	t := mod2pi(halfPi + theta)
	u := u1 - c.r2
	v := mod2pi(phi - t - halfPi)
	return result(t, u, v, c.r*(t+halfPi+v)+u)
}

// family 9: C|Cπ/2 S Cπ/2|C
func family9(c *Config, x, y, phi, rs, rc float64) (float64, float64, float64, float64) {
	a, b := x+rs, y-rc
	u1 := math.Hypot(a, b)
	if u1 < c.r4 {
		return infeasible()
	}
	theta := reedshepp.Bearing(b, a)
	u := math.Sqrt(u1*u1-c.sq4) - c.r4
	if u < 0 {
		return infeasible()
	}
	alpha := reedshepp.Bearing(c.r2, u+c.r4)
	t := mod2pi(halfPi + theta + alpha)
	v := mod2pi(t - phi)
	return result(t, u, v, c.r*(t+math.Pi+v)+u)
}

// family 10: C C|C
func family10(c *Config, x, y, phi, rs, rc float64) (float64, float64, float64, float64) {
	a, b := x-rs, y+rc
	if math.Abs(a) < tiny && math.Abs(b) < tiny {
		return infeasible()
	}
	u1 := math.Hypot(a, b)
	if u1 > c.r4 {
		return infeasible()
	}
	theta := reedshepp.Bearing(b, a)
	arg := (8*c.sq - u1*u1) / (8 * c.sq)
	if !inUnit(arg) {
		return infeasible()
	}
	u := math.Acos(arg)
	sinu := math.Sin(u)
	if math.Abs(sinu) < sineClamp {
		if math.Abs(u1) < sineClamp {
			return infeasible()
		}
		sinu = 0
	}
	arg = c.r2 * sinu / u1
	if !inUnit(arg) {
		return infeasible()
	}
	alpha := math.Asin(arg)
	t := mod2pi(halfPi - alpha + theta)
	v := mod2pi(t - u - phi)
	return result(t, u, v, c.r*(t+u+v))
}

// family 11: C S Cπ/2|C
func family11(c *Config, x, y, phi, rs, rc float64) (float64, float64, float64, float64) {
	a, b := x-rs, y+rc
	u1 := math.Hypot(a, b)
	if u1 < c.r2 {
		return infeasible()
	}
	theta := reedshepp.Bearing(b, a)
	u := math.Sqrt(u1*u1-c.sq4) - c.r2
	if u < 0 {
		return infeasible()
	}
	alpha := reedshepp.Bearing(u+c.r2, c.r2)
	t := mod2pi(halfPi + theta - alpha)
	v := mod2pi(t - halfPi - phi)
	return result(t, u, v, c.r*(t+halfPi+v)+u)
}

// family 12: C S Cπ/2|C, first two arcs on the same side
func family12(c *Config, x, y, phi, rs, rc float64) (float64, float64, float64, float64) {
	a, b := x+rs, y-rc
	u1 := math.Hypot(a, b)
	if u1 < c.r2 {
		return infeasible()
	}
	theta := reedshepp.Bearing(b, a)
	t := mod2pi(theta)
	u := u1 - c.r2
	v := mod2pi(-t - halfPi + phi)
	return result(t, u, v, c.r*(t+halfPi+v)+u)
}
