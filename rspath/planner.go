package rspath

import (
	"sync/atomic"

	"github.com/npillmayer/reedshepp"
)

// Planner holds the current configuration for path planning. The turning
// radius may be changed at any time, from any goroutine. Every operation
// works on a single configuration snapshot; a radius change affects only
// operations started after it.
//
// The zero value is not usable; create planners with NewPlanner.
type Planner struct {
	cfg atomic.Pointer[Config]
}

// NewPlanner creates a planner. If cfg is nil, DefaultConfig is used.
func NewPlanner(cfg *Config) *Planner {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	p := &Planner{}
	p.cfg.Store(cfg)
	return p
}

// Config returns the current configuration.
func (p *Planner) Config() *Config {
	return p.cfg.Load()
}

// SetConfig replaces the configuration. A nil cfg is ignored.
func (p *Planner) SetConfig(cfg *Config) {
	if cfg != nil {
		p.cfg.Store(cfg)
	}
}

// SetTurningRadius replaces the configuration with one for radius r,
// keeping the other settings. Invalid radii leave the planner unchanged.
func (p *Planner) SetTurningRadius(r float64) error {
	old := p.cfg.Load()
	cfg, err := NewConfig(r, WithStraightStep(old.straightStep))
	if err != nil {
		return err
	}
	p.cfg.Store(cfg)
	tracer().Infof("turning radius set to %g", r)
	return nil
}

// ShortestPath calls ShortestPath with the current configuration.
func (p *Planner) ShortestPath(p1, p2 reedshepp.Pose) Solution {
	return ShortestPath(p.cfg.Load(), p1, p2)
}

// ShortestPathGuarded calls ShortestPathGuarded with the current configuration.
func (p *Planner) ShortestPathGuarded(p1, p2 reedshepp.Pose) Solution {
	return ShortestPathGuarded(p.cfg.Load(), p1, p2)
}

// Ranked calls Ranked with the current configuration.
func (p *Planner) Ranked(p1, p2 reedshepp.Pose) []Solution {
	return Ranked(p.cfg.Load(), p1, p2)
}

// Discretize calls Discretize with the current configuration.
func (p *Planner) Discretize(w Word, t, u, v float64, start reedshepp.Pose, step float64) Trajectory {
	return Discretize(p.cfg.Load(), w, t, u, v, start, step)
}
