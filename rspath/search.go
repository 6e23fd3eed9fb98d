package rspath

import (
	"fmt"
	"math"

	"github.com/npillmayer/reedshepp"
)

// Solution is the result of a path search: the shortest word connecting two
// poses, its parameters and its total length.
//
// If Degenerate is set, start and goal coincide, Length is 0 and the word
// and its parameters carry no information.
type Solution struct {
	Length     float64
	Word       Word
	T, U, V    float64
	Degenerate bool
}

// Feasible is a predicate: does s describe an existing path?
func (s Solution) Feasible() bool {
	return s.Degenerate || (s.Word.Valid() && s.Length < Infeasible)
}

func (s Solution) String() string {
	if s.Degenerate {
		return "solution{degenerate}"
	}
	if s.Length == Infeasible {
		return fmt.Sprintf("solution{#%d infeasible}", s.Word)
	}
	return fmt.Sprintf("solution{#%d %s, t=%g, u=%g, v=%g, length=%g}",
		s.Word, s.Word, s.T, s.U, s.V, s.Length)
}

// reflection is one of the symmetries under which a family is evaluated.
type reflection int8

const (
	identity reflection = iota
	timeflip            // (−x, y, −φ): drive the path backwards
	reflect             // (x, −y, −φ): mirror at the start heading
	both                // (−x, −y, φ)
)

// candidate is a (family, reflection) pair. Its position in candidates
// is its word id minus 1.
type candidate struct {
	family     Family
	reflection reflection
	useB2      bool // reference offset R(cos φ + 1) instead of R(cos φ − 1)
}

// candidates lists all 48 words in enumeration order. For ties in length the
// earliest entry wins.
var candidates = [48]candidate{
	{1, identity, false}, {1, timeflip, false}, {1, reflect, false}, {1, both, false},
	{2, identity, false}, {2, timeflip, false}, {2, reflect, false}, {2, both, false},
	{3, identity, false}, {3, reflect, false}, {3, timeflip, false}, {3, both, false},
	{4, identity, true}, {4, reflect, true}, {4, timeflip, true}, {4, both, true},
	{5, identity, true}, {5, reflect, true}, {5, timeflip, true}, {5, both, true},
	{6, identity, true}, {6, reflect, true}, {6, timeflip, true}, {6, both, true},
	{7, identity, false}, {7, reflect, false}, {7, timeflip, false}, {7, both, false},
	{8, identity, true}, {8, reflect, true}, {8, timeflip, true}, {8, both, true},
	{9, identity, true}, {9, reflect, true}, {9, timeflip, true}, {9, both, true},
	{10, identity, false}, {10, reflect, false}, {10, timeflip, false}, {10, both, false},
	{11, identity, false}, {11, reflect, false}, {11, timeflip, false}, {11, both, false},
	{12, identity, true}, {12, reflect, true}, {12, timeflip, true}, {12, both, true},
}

// frame is the goal expressed relative to the start pose, together with the
// auxiliary offsets shared by all evaluators.
type frame struct {
	x, y, phi float64
	ap, am    float64 // ±R sin φ
	b1, b2    float64 // R(cos φ − 1), R(cos φ + 1)
	cfg       *Config
}

func newFrame(c *Config, p1, p2 reedshepp.Pose) frame {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	theta := reedshepp.Bearing(dy, dx)
	alpha := theta - p1.Theta
	d := math.Hypot(dx, dy)
	phi := p2.Theta - p1.Theta
	sinphi, cosphi := math.Sincos(phi)
	return frame{
		x:   math.Cos(alpha) * d,
		y:   math.Sin(alpha) * d,
		phi: phi,
		ap:  c.r * sinphi,
		am:  -c.r * sinphi,
		b1:  c.r * (cosphi - 1),
		b2:  c.r * (cosphi + 1),
		cfg: c,
	}
}

// evaluate computes word w in frame f.
func (f frame) evaluate(w Word) Solution {
	cand := candidates[w-1]
	b := f.b1
	if cand.useB2 {
		b = f.b2
	}
	x, y, phi, rs := f.x, f.y, f.phi, f.ap
	switch cand.reflection {
	case timeflip:
		x, phi, rs = -x, -phi, f.am
	case reflect:
		y, phi, rs = -y, -phi, f.am
	case both:
		x, y = -x, -y
	}
	t, u, v, l := evaluators[cand.family-1](f.cfg, x, y, phi, rs, b)
	return Solution{Length: l, Word: w, T: t, U: u, V: v}
}

// ShortestPath searches all 48 words for the shortest path from p1 to p2,
// for the turning radius of c. Among words of equal length the one with the
// lowest word id wins.
//
// ShortestPath always runs the full search, even if p1 and p2 coincide.
// Callers wanting a short-cut for identical poses use ShortestPathGuarded.
func ShortestPath(c *Config, p1, p2 reedshepp.Pose) Solution {
	f := newFrame(c, p1, p2)
	best := Solution{Length: Infeasible}
	for w := Word(1); int(w) <= len(candidates); w++ {
		s := f.evaluate(w)
		if s.Length < best.Length {
			best = s
		}
	}
	tracer().P("word", int(best.Word)).Debugf("shortest path %v → %v: %s", p1, p2, best)
	return best
}

// ShortestPathGuarded is like ShortestPath, but returns a degenerate
// zero-length solution without searching if p1 and p2 are equal in every
// component up to 1e-12.
func ShortestPathGuarded(c *Config, p1, p2 reedshepp.Pose) Solution {
	if isDegenerate(p1, p2) {
		tracer().Debugf("start and goal coincide at %v", p1)
		return Solution{Degenerate: true}
	}
	return ShortestPath(c, p1, p2)
}

func isDegenerate(p1, p2 reedshepp.Pose) bool {
	return math.Abs(p1.X-p2.X) < tiny && math.Abs(p1.Y-p2.Y) < tiny &&
		math.Abs(p1.Theta-p2.Theta) < tiny
}

// Candidates evaluates every word for a path from p1 to p2. Element i holds
// word i+1; infeasible words have length Infeasible.
func Candidates(c *Config, p1, p2 reedshepp.Pose) []Solution {
	f := newFrame(c, p1, p2)
	all := make([]Solution, len(candidates))
	for i := range candidates {
		all[i] = f.evaluate(Word(i + 1))
	}
	return all
}
