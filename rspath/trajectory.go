package rspath

import (
	"bytes"
	"fmt"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/reedshepp"
)

// Trajectory is a sampled path. End is the exact final pose of the path,
// which is also the last sample.
type Trajectory struct {
	Samples []reedshepp.Pose
	End     reedshepp.Pose
}

// Len returns the number of samples.
func (tr Trajectory) Len() int {
	return len(tr.Samples)
}

// Start returns the first sample, i.e. the start pose of the path.
func (tr Trajectory) Start() reedshepp.Pose {
	if len(tr.Samples) == 0 {
		return tr.End
	}
	return tr.Samples[0]
}

// Contour returns the sample positions as a polygon contour, in sampling
// order. The contour is open: the last point is not connected back to the
// first one by repetition.
func (tr Trajectory) Contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, len(tr.Samples))
	for _, p := range tr.Samples {
		c = append(c, polyclip.Point{X: p.X, Y: p.Y})
	}
	return c
}

// Bounds returns the axis-aligned bounding box of all sample positions.
// Note that arcs may bulge out of the box between two samples by at most
// R·(1 − cos(step/2)).
func (tr Trajectory) Bounds() polyclip.Rectangle {
	if len(tr.Samples) == 0 {
		p := polyclip.Point{X: tr.End.X, Y: tr.End.Y}
		return polyclip.Rectangle{Min: p, Max: p}
	}
	return tr.Contour().BoundingBox()
}

// MaxSpacing returns the largest planar distance between two consecutive
// samples.
func (tr Trajectory) MaxSpacing() float64 {
	d := 0.0
	for i := 1; i < len(tr.Samples); i++ {
		if dd := tr.Samples[i-1].Dist(tr.Samples[i]); dd > d {
			d = dd
		}
	}
	return d
}

// String lists all samples, one per line.
func (tr Trajectory) String() string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "trajectory[%d] {\n", len(tr.Samples))
	for i, p := range tr.Samples {
		fmt.Fprintf(&b, "  %3d: %s\n", i, p)
	}
	b.WriteString("}")
	return b.String()
}
