package rspath

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestWordTable(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for w := Word(1); w <= 48; w++ {
		segs := w.Segments()
		if len(segs) < 3 || len(segs) > 5 {
			t.Errorf("word %d has %d segments", w, len(segs))
		}
		if w.Family() != Family((w-1)/4+1) {
			t.Errorf("word %d is in family %d", w, w.Family())
		}
		hasQuarter := false
		for _, seg := range segs {
			if seg.Source == QuarterTurn {
				hasQuarter = true
				assert.NotEqual(t, Straight, seg.Shape, "word %d", w)
			}
		}
		quarterFamily := (w >= 25 && w <= 36) || (w >= 41 && w <= 48)
		assert.Equal(t, quarterFamily, hasQuarter, "word %d", w)
	}
}

func TestWordValidity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.False(t, NoWord.Valid())
	assert.False(t, Word(49).Valid())
	assert.Nil(t, Word(-1).Segments())
	assert.Equal(t, Family(0), Word(0).Family())
	assert.Equal(t, "word(49)", Word(49).String())
}

func TestWordNotation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, "L+ R- L+", Word(1).String())
	assert.Equal(t, "R- L+ R-", Word(4).String())
	assert.Equal(t, "L+ R- S- L- R+", Word(33).String())
	assert.Equal(t, "R- S- R- L+", Word(48).String())
}

func TestSegmentsAreCopies(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	segs := Word(9).Segments()
	segs[1].Shape = LeftArc
	assert.Equal(t, Straight, Word(9).Segments()[1].Shape)
}
