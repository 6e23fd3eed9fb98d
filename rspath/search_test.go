package rspath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/npillmayer/reedshepp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var origin = reedshepp.Pz(0, 0, 0)

func TestGuardedIdenticalPoses(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	for _, p := range []reedshepp.Pose{
		origin,
		reedshepp.Pz(3, -4, 1.5),
		reedshepp.Pz(-100, 0.25, -7),
	} {
		s := ShortestPathGuarded(cfg, p, p)
		assert.True(t, s.Degenerate, "pose %v", p)
		assert.Equal(t, 0.0, s.Length)
	}
}

func TestGuardDoesNotTriggerForDistinctPoses(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	s := ShortestPathGuarded(cfg, origin, reedshepp.Pz(0, 0, 1e-9))
	assert.False(t, s.Degenerate)
	assert.True(t, s.Word.Valid())
}

func TestUnguardedIdenticalPoses(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := ShortestPath(DefaultConfig(), origin, origin)
	assert.False(t, s.Degenerate)
	assert.InDelta(t, 0.0, s.Length, 1e-12)
}

func TestStraightAhead(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := ShortestPath(DefaultConfig(), origin, reedshepp.Pz(10, 0, 0))
	t.Logf("solution = %v", s)
	assert.Equal(t, Word(9), s.Word)
	assert.Equal(t, Family(3), s.Word.Family())
	assert.Equal(t, "L+ S+ L+", s.Word.String())
	assert.InDelta(t, 10.0, s.Length, 1e-9)
	assert.InDelta(t, 0.0, s.T, 1e-9)
	assert.InDelta(t, 10.0, s.U, 1e-9)
	assert.InDelta(t, 0.0, s.V, 1e-9)
}

func TestUTurnInPlace(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := ShortestPath(DefaultConfig(), origin, reedshepp.Pz(0, 0, math.Pi))
	t.Logf("solution = %v", s)
	// three arcs of 60° each with two cusps, e.g. L+ R- L+. The four
	// reflections of family 1 are equally long.
	assert.Equal(t, Family(1), s.Word.Family())
	assert.InDelta(t, math.Pi, s.Length, 1e-9)
	assert.InDelta(t, s.T+s.U+s.V, s.Length, 1e-9)
	for _, param := range []float64{s.T, s.U, s.V} {
		assert.InDelta(t, math.Pi/3, param, 1e-9)
	}
}

func TestLengthScalesWithRadius(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	goal := reedshepp.Pz(3, 2, reedshepp.HalfPi)
	s1 := ShortestPath(MustNewConfig(1), origin, goal)
	s2 := ShortestPath(MustNewConfig(2), reedshepp.Pz(0, 0, 0), reedshepp.Pz(6, 4, reedshepp.HalfPi))
	assert.Equal(t, s1.Word, s2.Word)
	assert.InDelta(t, 2*s1.Length, s2.Length, 1e-9)
}

func TestSearchResultReachesGoal(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rnd := rand.New(rand.NewSource(4711))
	uniform := func(lo, hi float64) float64 {
		return lo + rnd.Float64()*(hi-lo)
	}
	for _, r := range []float64{1, 0.5, 2.5} {
		cfg := MustNewConfig(r)
		for i := 0; i < 500; i++ {
			p1 := reedshepp.Pz(uniform(-10, 10), uniform(-10, 10), uniform(-7, 7))
			p2 := reedshepp.Pz(uniform(-10, 10), uniform(-10, 10), uniform(-7, 7))
			s := ShortestPath(cfg, p1, p2)
			require.True(t, s.Feasible(), "no path from %v to %v", p1, p2)
			tr := s.Discretize(cfg, p1, 0.05)
			require.True(t, tr.End.Equal(p2, 1e-6),
				"R=%g: %v ends at %v instead of %v", r, s, tr.End, p2)
			require.Equal(t, p1, tr.Samples[0])
			require.Equal(t, tr.End, tr.Samples[tr.Len()-1])
		}
	}
}

func TestEveryFeasibleCandidateReachesGoal(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	goals := []reedshepp.Pose{
		reedshepp.Pz(1, 1, 0),
		reedshepp.Pz(-4, 1, math.Pi),
		reedshepp.Pz(0, 2, 0),
		reedshepp.Pz(2, 0, math.Pi),
		reedshepp.Pz(-0.5, -1.5, 2),
	}
	for _, goal := range goals {
		n := 0
		for _, s := range Candidates(cfg, origin, goal) {
			if !s.Feasible() {
				continue
			}
			n++
			tr := s.Discretize(cfg, origin, 0.1)
			assert.True(t, tr.End.Equal(goal, 1e-6), "word %d %s ends at %v instead of %v",
				s.Word, s.Word, tr.End, goal)
		}
		assert.Greater(t, n, 0)
	}
}

// wordOf finds the word of a family under a reflection.
func wordOf(f Family, r reflection) Word {
	for i, c := range candidates {
		if c.family == f && c.reflection == r {
			return Word(i + 1)
		}
	}
	return NoWord
}

func TestReflectionConsistency(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	for _, x := range []float64{-3.7, -1.3, 0.6, 2.9} {
		for _, y := range []float64{-2.2, 0.4, 3.1} {
			for _, phi := range []float64{-2.5, -0.7, 1.1, 2.8} {
				base := Candidates(cfg, origin, reedshepp.Pz(x, y, phi))
				mirrored := map[reflection]reedshepp.Pose{
					timeflip: reedshepp.Pz(-x, y, -phi),
					reflect:  reedshepp.Pz(x, -y, -phi),
					both:     reedshepp.Pz(-x, -y, phi),
				}
				for r, goal := range mirrored {
					other := Candidates(cfg, origin, goal)
					for f := Family(1); f <= 12; f++ {
						a := base[wordOf(f, r)-1]
						b := other[wordOf(f, identity)-1]
						require.Equal(t, a.Length == Infeasible, b.Length == Infeasible,
							"family %d, reflection %d, goal (%g,%g,%g)", f, r, x, y, phi)
						if a.Length == Infeasible {
							continue
						}
						assert.InDelta(t, b.Length, a.Length, 1e-9)
						assert.InDelta(t, b.T, a.T, 1e-9)
						assert.InDelta(t, b.U, a.U, 1e-9)
						assert.InDelta(t, b.V, a.V, 1e-9)
					}
				}
			}
		}
	}
}

func TestCandidateTableCoversEveryReflection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for f := Family(1); f <= 12; f++ {
		for _, r := range []reflection{identity, timeflip, reflect, both} {
			w := wordOf(f, r)
			if assert.True(t, w.Valid(), "family %d reflection %d", f, r) {
				assert.Equal(t, f, w.Family())
			}
		}
	}
}

func TestTieBreakPrefersFirstWord(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	all := Candidates(cfg, origin, origin)
	for w := Word(9); w <= 12; w++ { // family 3 has zero length in every reflection
		assert.InDelta(t, 0.0, all[w-1].Length, 1e-12, "word %d", w)
	}
	assert.Equal(t, Word(9), ShortestPath(cfg, origin, origin).Word)
	for _, goal := range []reedshepp.Pose{origin, reedshepp.Pz(0, 0, math.Pi), reedshepp.Pz(10, 0, 0)} {
		best := ShortestPath(cfg, origin, goal)
		for _, s := range Candidates(cfg, origin, goal) {
			if s.Word < best.Word {
				assert.Greater(t, s.Length, best.Length, "word %d", s.Word)
			} else {
				assert.GreaterOrEqual(t, s.Length, best.Length, "word %d", s.Word)
			}
		}
	}
}

func TestRankedStartsWithShortestPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	for _, goal := range []reedshepp.Pose{
		reedshepp.Pz(10, 0, 0),
		reedshepp.Pz(0, 0, math.Pi),
		reedshepp.Pz(-4, 1, math.Pi),
		reedshepp.Pz(0.3, -2, 4),
	} {
		ranked := Ranked(cfg, origin, goal)
		require.NotEmpty(t, ranked)
		assert.Equal(t, ShortestPath(cfg, origin, goal), ranked[0])
		for i := 1; i < len(ranked); i++ {
			assert.LessOrEqual(t, ranked[i-1].Length, ranked[i].Length)
			assert.Less(t, ranked[i].Length, Infeasible)
		}
	}
}
