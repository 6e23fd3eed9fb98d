package rspath

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg, err := NewConfig(2.5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.Radius())
	assert.Equal(t, 5.0, cfg.r2)
	assert.Equal(t, 10.0, cfg.r4)
	assert.Equal(t, 6.25, cfg.sq)
	assert.Equal(t, 25.0, cfg.sq4)
	assert.Equal(t, DefaultStraightStep, cfg.StraightStep())
	assert.Equal(t, 0.4, cfg.straightLimit)
	cfg = MustNewConfig(1, WithStraightStep(0.6))
	assert.InDelta(t, 0.2, cfg.straightLimit, 1e-15)
}

func TestNewConfigRejectsInvalidRadius(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, r := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := NewConfig(r)
		assert.True(t, errors.Is(err, ErrInvalidRadius), "radius %g", r)
	}
	_, err := NewConfig(1, WithStraightStep(0))
	assert.True(t, errors.Is(err, ErrInvalidStep))
	assert.Panics(t, func() { MustNewConfig(-2) })
}

func TestConfigFrom(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg, err := ConfigFrom(testconfig.Conf{})
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.Radius())
	assert.Equal(t, DefaultStraightStep, cfg.StraightStep())
	//
	cfg, err = ConfigFrom(testconfig.Conf{
		KeyRadius:       "2.5",
		KeyStraightStep: " 0.25 ",
	})
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.Radius())
	assert.Equal(t, 0.25, cfg.StraightStep())
	//
	cfg, err = ConfigFrom(nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.Radius())
}

func TestConfigFromRejectsGarbage(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tests := []struct {
		conf testconfig.Conf
		err  error
	}{
		{testconfig.Conf{KeyRadius: "wide"}, ErrInvalidRadius},
		{testconfig.Conf{KeyRadius: "-3"}, ErrInvalidRadius},
		{testconfig.Conf{KeyStraightStep: "0"}, ErrInvalidStep},
		{testconfig.Conf{KeyStraightStep: "1,2"}, ErrInvalidStep},
	}
	for _, tc := range tests {
		_, err := ConfigFrom(tc.conf)
		assert.True(t, errors.Is(err, tc.err), "%v: error = %v", tc.conf, err)
	}
}
