package rspath

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/reedshepp"
)

// rankKey orders solutions by length first, then by word id.
type rankKey struct {
	length float64
	word   Word
}

func rankComparator(a, b interface{}) int {
	ka, kb := a.(rankKey), b.(rankKey)
	if c := utils.Float64Comparator(ka.length, kb.length); c != 0 {
		return c
	}
	return utils.IntComparator(int(ka.word), int(kb.word))
}

// Ranked returns all feasible words for a path from p1 to p2, shortest first.
// Words of equal length are ordered by word id, thus the first entry is
// always the solution of ShortestPath. Planners may fall back to the
// following entries if the shortest path is rejected for other reasons.
func Ranked(c *Config, p1, p2 reedshepp.Pose) []Solution {
	m := treemap.NewWith(rankComparator)
	for _, s := range Candidates(c, p1, p2) {
		if s.Length < Infeasible {
			m.Put(rankKey{length: s.Length, word: s.Word}, s)
		}
	}
	ranked := make([]Solution, 0, m.Size())
	it := m.Iterator()
	for it.Next() {
		ranked = append(ranked, it.Value().(Solution))
	}
	tracer().Debugf("%d of %d path words are feasible", len(ranked), len(candidates))
	return ranked
}
