package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/reedshepp"
	"github.com/npillmayer/reedshepp/rspath"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoses(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	start, goal, err := parsePoses([]string{"0", "0", "0", "1.5", "-2", "3.14"})
	require.NoError(t, err)
	assert.Equal(t, reedshepp.Pz(0, 0, 0), start)
	assert.Equal(t, reedshepp.Pz(1.5, -2, 3.14), goal)
	_, _, err = parsePoses([]string{"0", "0", "north", "1", "1", "1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "argument 3")
}

func TestReport(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := rspath.NewPlanner(nil)
	s, tr := p.Curve(reedshepp.Pz(0, 0, 0), reedshepp.Pz(0, 0, math.Pi), 0.1)
	var out bytes.Buffer
	report(&out, p.Config(), s, tr, 2)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5+tr.Len())
	assert.Equal(t, "# radius\t1", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "# length\t3.14159"), lines[1])
	assert.Equal(t, "0\t0\t0", lines[5])
}
