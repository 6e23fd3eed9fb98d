package rspath

import (
	"math"

	"github.com/npillmayer/reedshepp"
)

// Curve searches the shortest path between two poses and samples it with
// the given step. The search is unguarded: for identical poses a zero-length
// path is found, and its trajectory holds the start pose only.
func (p *Planner) Curve(from, to reedshepp.Pose, step float64) (Solution, Trajectory) {
	cfg := p.cfg.Load()
	s := ShortestPath(cfg, from, to)
	return s, s.Discretize(cfg, from, step)
}

// CurveAutoStep is like Curve, but chooses the sampling step from the
// distance between the poses: half of the planar distance plus the heading
// change, the latter measured as arc length on the turning circle. The step
// never exceeds maxStep. Identical poses are sampled with maxStep.
func (p *Planner) CurveAutoStep(from, to reedshepp.Pose, maxStep float64) (Solution, Trajectory) {
	cfg := p.cfg.Load()
	step := maxStep
	if from != to {
		d := from.Dist(to) + cfg.r*reedshepp.AngleDiff(to.Theta, from.Theta)
		if d > 0 {
			step = math.Min(maxStep, d/2)
		}
	}
	tracer().Debugf("auto step = %g", step)
	s := ShortestPath(cfg, from, to)
	return s, s.Discretize(cfg, from, step)
}

// CurveAutoStepByLength is like Curve, but takes a fifth of the path length
// as the sampling step, up to maxStep.
func (p *Planner) CurveAutoStepByLength(from, to reedshepp.Pose, maxStep float64) (Solution, Trajectory) {
	cfg := p.cfg.Load()
	s := ShortestPath(cfg, from, to)
	step := maxStep
	if s.Length > 0 {
		step = math.Min(maxStep, s.Length/5)
	}
	tracer().Debugf("auto step = %g", step)
	return s, s.Discretize(cfg, from, step)
}
