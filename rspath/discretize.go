package rspath

import (
	"math"

	"github.com/npillmayer/reedshepp"
)

// Discretize samples path word w with parameters (t, u, v), starting at
// pose start. Arcs are sampled every step radians of turning, straight
// segments every c.StraightStep() units of distance. The first sample is
// always start, the last one is the exact end of the path.
//
// If a segment's remainder after its last full step is small (a fifth of a
// step on arcs, 0.4 at the default straight step), the endpoint replaces
// the previous sample instead of being appended. Spacing of the samples is therefore at
// most step (or the straight step), except for samples at merged segment ends.
//
// An invalid word or a step which is not positive is reported on the trace,
// and the result then contains just the start pose.
func Discretize(c *Config, w Word, t, u, v float64, start reedshepp.Pose, step float64) Trajectory {
	s := sampler{
		cfg:     c,
		step:    step,
		pose:    start,
		samples: []reedshepp.Pose{start},
	}
	if !w.Valid() {
		tracer().Errorf("cannot discretize unknown path word %d", int(w))
		return s.trajectory()
	}
	if !positive(step) {
		tracer().Errorf("cannot discretize path %s with sampling step %g", w, step)
		return s.trajectory()
	}
	for _, seg := range wordTable[w-1] {
		val := seg.magnitude(t, u, v)
		if seg.Shape == Straight {
			s.straight(seg.Dir, val)
		} else {
			s.arc(seg.Shape, seg.Dir, val)
		}
	}
	tracer().P("word", int(w)).Debugf("%d samples, end = %v", len(s.samples), s.pose)
	return s.trajectory()
}

// Discretize samples the path of a search result, starting at pose start.
// A degenerate solution yields the start pose as its only sample.
func (s Solution) Discretize(c *Config, start reedshepp.Pose, step float64) Trajectory {
	if s.Degenerate {
		return Trajectory{Samples: []reedshepp.Pose{start}, End: start}
	}
	return Discretize(c, s.Word, s.T, s.U, s.V, start, step)
}

// sampler threads the running pose through the segments of a word.
type sampler struct {
	cfg     *Config
	step    float64
	pose    reedshepp.Pose
	samples []reedshepp.Pose
}

func (s *sampler) trajectory() Trajectory {
	return Trajectory{Samples: s.samples, End: s.pose}
}

// arc turns by angle val on the circle left or right of the current pose.
func (s *sampler) arc(shape Shape, dir Direction, val float64) {
	if math.Abs(val) < tiny {
		return
	}
	side := 1.0
	if shape == RightArc {
		side = -1.0
	}
	theta := s.pose.Theta
	sin, cos := math.Sincos(theta)
	pos := s.pose.Position()
	center := pos + reedshepp.P(-side*s.cfg.r*sin, side*s.cfg.r*cos)
	sign := side * float64(dir) // counter-clockwise is positive
	n := int(val / s.step)
	for k := 1; k <= n; k++ {
		a := sign * float64(k) * s.step
		s.samples = append(s.samples, reedshepp.At(pos.Rotatedaround(center, a), mod2pi(theta+a)))
	}
	a := sign * val
	end := reedshepp.At(pos.Rotatedaround(center, a), mod2pi(theta+a))
	s.finish(end, n, val-float64(n)*s.step, s.step/5)
}

// straight drives distance val along the current heading.
func (s *sampler) straight(dir Direction, val float64) {
	if math.Abs(val/s.cfg.r) < tiny || math.Abs(val) < tiny {
		return
	}
	theta := mod2pi(s.pose.Theta)
	sin, cos := math.Sincos(theta)
	o := float64(dir)
	x, y := s.pose.X, s.pose.Y
	d := s.cfg.straightStep
	n := int(val / d)
	for k := 1; k <= n; k++ {
		l := o * float64(k) * d
		s.samples = append(s.samples, reedshepp.Pz(x+l*cos, y+l*sin, theta))
	}
	end := reedshepp.Pz(x+o*val*cos, y+o*val*sin, theta)
	s.finish(end, n, val-float64(n)*d, s.cfg.straightLimit)
}

// finish places the exact endpoint of a segment. A remainder up to limit is
// merged into the previous sample, but the start sample is never replaced.
func (s *sampler) finish(end reedshepp.Pose, n int, remainder, limit float64) {
	if remainder > limit || (n == 0 && len(s.samples) == 1) {
		s.samples = append(s.samples, end)
	} else {
		s.samples[len(s.samples)-1] = end
	}
	s.pose = end
}
