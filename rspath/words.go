package rspath

import (
	"fmt"
	"strings"
)

// Shape is the geometric primitive of a path segment.
type Shape int8

// Segment shapes.
const (
	LeftArc Shape = iota
	RightArc
	Straight
)

func (s Shape) String() string {
	switch s {
	case LeftArc:
		return "L"
	case RightArc:
		return "R"
	case Straight:
		return "S"
	}
	return "?"
}

// Direction is the gear of a segment: the vehicle drives forward or backward.
type Direction int8

// Forward and Backward are used as signs when integrating a segment.
const (
	Forward  Direction = 1
	Backward Direction = -1
)

func (d Direction) String() string {
	if d == Backward {
		return "-"
	}
	return "+"
}

// Source tells where a segment takes its magnitude from.
type Source int8

// A segment's magnitude is one of the word parameters t, u, v, or a
// fixed quarter turn π/2.
const (
	ParamT Source = iota
	ParamU
	ParamV
	QuarterTurn
)

func (s Source) String() string {
	return [...]string{"t", "u", "v", "π/2"}[s]
}

// Segment is one primitive of a path word. For arcs the magnitude is an
// angle in radians, for straights a length.
type Segment struct {
	Shape  Shape
	Dir    Direction
	Source Source
}

func (seg Segment) String() string {
	return seg.Shape.String() + seg.Dir.String()
}

// magnitude selects the value of a segment from the word parameters.
func (seg Segment) magnitude(t, u, v float64) float64 {
	switch seg.Source {
	case ParamT:
		return t
	case ParamU:
		return u
	case ParamV:
		return v
	}
	return halfPi
}

// Word identifies one of the 48 canonical path shapes. Valid words are
// numbered 1…48; word 4k+1…4k+4 are the four reflections of family k+1.
type Word int

// NoWord is the zero value, returned for degenerate solutions.
const NoWord Word = 0

// Valid is a predicate: is w one of the 48 path words?
func (w Word) Valid() bool {
	return w >= 1 && int(w) <= len(wordTable)
}

// Family returns the base shape family of a word, in 1…12.
// Invalid words return 0.
func (w Word) Family() Family {
	if !w.Valid() {
		return 0
	}
	return candidates[w-1].family
}

// Segments returns the ordered segment list of a word, or nil for an
// invalid word. The returned slice is a copy.
func (w Word) Segments() []Segment {
	if !w.Valid() {
		return nil
	}
	segs := wordTable[w-1]
	return append([]Segment(nil), segs...)
}

// String returns the segment notation of a word, e.g. "L+ R- L+".
func (w Word) String() string {
	if !w.Valid() {
		return fmt.Sprintf("word(%d)", int(w))
	}
	var b strings.Builder
	for i, seg := range wordTable[w-1] {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

// Shorthands for the segment table.
var (
	lpt = Segment{LeftArc, Forward, ParamT}
	lmt = Segment{LeftArc, Backward, ParamT}
	rpt = Segment{RightArc, Forward, ParamT}
	rmt = Segment{RightArc, Backward, ParamT}
	lpu = Segment{LeftArc, Forward, ParamU}
	lmu = Segment{LeftArc, Backward, ParamU}
	rpu = Segment{RightArc, Forward, ParamU}
	rmu = Segment{RightArc, Backward, ParamU}
	spu = Segment{Straight, Forward, ParamU}
	smu = Segment{Straight, Backward, ParamU}
	lpv = Segment{LeftArc, Forward, ParamV}
	lmv = Segment{LeftArc, Backward, ParamV}
	rpv = Segment{RightArc, Forward, ParamV}
	rmv = Segment{RightArc, Backward, ParamV}
	lpq = Segment{LeftArc, Forward, QuarterTurn}
	lmq = Segment{LeftArc, Backward, QuarterTurn}
	rpq = Segment{RightArc, Forward, QuarterTurn}
	rmq = Segment{RightArc, Backward, QuarterTurn}
)

// wordTable maps word w to its segments at index w-1. Never mutated.
var wordTable = [48][]Segment{
	// family 1: C|C|C
	{lpt, rmu, lpv}, {lmt, rpu, lmv}, {rpt, lmu, rpv}, {rmt, lpu, rmv},
	// family 2: C|C C
	{lpt, rmu, lmv}, {lmt, rpu, lpv}, {rpt, lmu, rmv}, {rmt, lpu, rpv},
	// family 3: C S C, same side
	{lpt, spu, lpv}, {rpt, spu, rpv}, {lmt, smu, lmv}, {rmt, smu, rmv},
	// family 4: C S C, opposite sides
	{lpt, spu, rpv}, {rpt, spu, lpv}, {lmt, smu, rmv}, {rmt, smu, lmv},
	// family 5: C Cu|Cu C
	{lpt, rpu, lmu, rmv}, {rpt, lpu, rmu, lmv}, {lmt, rmu, lpu, rpv}, {rmt, lmu, rpu, lpv},
	// family 6: C|Cu Cu|C
	{lpt, rmu, lmu, rpv}, {rpt, lmu, rmu, lpv}, {lmt, rpu, lpu, rmv}, {rmt, lpu, rpu, lmv},
	// family 7: C|Cπ/2 S C
	{lpt, rmq, smu, lmv}, {rpt, lmq, smu, rmv}, {lmt, rpq, spu, lpv}, {rmt, lpq, spu, rpv},
	// family 8: C|Cπ/2 S C, opposite sides
	{lpt, rmq, smu, rmv}, {rpt, lmq, smu, lmv}, {lmt, rpq, spu, rpv}, {rmt, lpq, spu, lpv},
	// family 9: C|Cπ/2 S Cπ/2|C
	{lpt, rmq, smu, lmq, rpv}, {rpt, lmq, smu, rmq, lpv}, {lmt, rpq, spu, lpq, rmv}, {rmt, lpq, spu, rpq, lmv},
	// family 10: C C|C
	{lpt, rpu, lmv}, {rpt, lpu, rmv}, {lmt, rmu, lpv}, {rmt, lmu, rpv},
	// family 11: C S Cπ/2|C
	{lpt, spu, rpq, lmv}, {rpt, spu, lpq, rmv}, {lmt, smu, rmq, lpv}, {rmt, smu, lmq, rpv},
	// family 12: C S Cπ/2|C, same side
	{lpt, spu, lpq, rmv}, {rpt, spu, rpq, lmv}, {lmt, smu, lmq, rpv}, {rmt, smu, rmq, lpv},
}
