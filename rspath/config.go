package rspath

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
)

// Configuration keys read by ConfigFrom.
const (
	KeyRadius       = "reedshepp.radius"
	KeyStraightStep = "reedshepp.straightstep"
)

// DefaultStraightStep is the sampling distance along straight segments.
// It is independent of the sampling step handed to Discretize.
const DefaultStraightStep = 1.2

// straightMerge is the largest remainder on a straight segment which is
// merged into the previous sample, at the default straight step. Other
// straight steps scale it proportionally.
const straightMerge = 0.4

var (
	// ErrInvalidRadius indicates a turning radius which is not a positive finite number.
	ErrInvalidRadius = errors.New("turning radius must be positive and finite")
	// ErrInvalidStep indicates a sampling step which is not a positive finite number.
	ErrInvalidStep = errors.New("sampling step must be positive and finite")
)

// Config holds the turning radius and its derived multiples. A Config is
// immutable once created and may be shared between goroutines freely.
// Changing the radius means creating a new Config.
type Config struct {
	r             float64 // turning radius R
	r2            float64 // 2R
	r4            float64 // 4R
	sq            float64 // R²
	sq4           float64 // 4R²
	straightStep  float64 // sampling distance on straight segments
	straightLimit float64 // merge threshold for straight remainders
}

// Option configures optional parameters of a Config.
type Option func(*Config) error

// WithStraightStep sets the sampling distance along straight segments.
func WithStraightStep(s float64) Option {
	return func(c *Config) error {
		if !positive(s) {
			return fmt.Errorf("%w: straight step = %g", ErrInvalidStep, s)
		}
		c.straightStep = s
		return nil
	}
}

// NewConfig creates a configuration for turning radius r.
func NewConfig(r float64, opts ...Option) (*Config, error) {
	if !positive(r) {
		return nil, fmt.Errorf("%w: radius = %g", ErrInvalidRadius, r)
	}
	c := &Config{
		r:            r,
		r2:           2 * r,
		r4:           4 * r,
		sq:           r * r,
		sq4:          4 * r * r,
		straightStep: DefaultStraightStep,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	c.straightLimit = straightMerge * c.straightStep / DefaultStraightStep
	return c, nil
}

// MustNewConfig is like NewConfig, but panics on invalid parameters.
func MustNewConfig(r float64, opts ...Option) *Config {
	c, err := NewConfig(r, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultConfig returns a configuration for a unit turning radius.
func DefaultConfig() *Config {
	return MustNewConfig(1.0)
}

// ConfigFrom creates a configuration from application configuration conf.
// Keys KeyRadius and KeyStraightStep are consulted; missing keys fall back
// to a unit radius and DefaultStraightStep respectively.
func ConfigFrom(conf schuko.Configuration) (*Config, error) {
	r, err := floatSetting(conf, KeyRadius, 1.0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, err)
	}
	s, err := floatSetting(conf, KeyStraightStep, DefaultStraightStep)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, err)
	}
	return NewConfig(r, WithStraightStep(s))
}

func floatSetting(conf schuko.Configuration, key string, dflt float64) (float64, error) {
	if conf == nil || !conf.IsSet(key) {
		return dflt, nil
	}
	v := strings.TrimSpace(conf.GetString(key))
	if v == "" {
		return dflt, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config key %q: %w", key, err)
	}
	return f, nil
}

// Radius returns the turning radius R.
func (c *Config) Radius() float64 {
	return c.r
}

// StraightStep returns the sampling distance along straight segments.
func (c *Config) StraightStep() float64 {
	return c.straightStep
}

func (c *Config) String() string {
	return fmt.Sprintf("config{R=%g, straight step=%g}", c.r, c.straightStep)
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1) // NaN fails x > 0
}
