/*
Package rspath finds shortest paths for car-like vehicles and samples them.

A vehicle which can drive forward and backward, and whose turning radius is
bounded from below by R, can connect any two poses (x, y, θ) by a path made
of at most five segments. Each segment is either an arc of radius R, turning
left or right, or a straight line, and is driven either forward or backward.
Reeds and Shepp have shown that the shortest such path is always one of a
small set of words:

   J. A. Reeds and L. A. Shepp
   Optimal paths for a car that goes both forwards and backwards
   Pacific Journal of Mathematics, 145(2), 1990

The words are grouped into twelve families. Each family has a closed-form
solution for its parameters (t, u, v), and four variants which follow from
symmetry: the family itself, the path driven backwards in time, the path
mirrored at the start heading, and both. This gives 48 words, numbered
1…48, which are all evaluated by a path search. Word numbers are stable and
may be passed around between a search and a later sampling step.

Usage

Turning radius and sampling settings are held in an immutable Config:

	cfg, err := rspath.NewConfig(2.5)
	…
	s := rspath.ShortestPathGuarded(cfg, start, goal)
	if !s.Degenerate {
		tr := s.Discretize(cfg, start, 0.1) // sample arcs every 0.1 rad
		…
	}

Clients which need to change the radius at runtime use a Planner, which
swaps configurations atomically.

Sampling

Arcs are sampled at angular steps, straight segments at a fixed distance
(Config.StraightStep, 1.2 by default), independent of the step handed to
Discretize. Callers working in small units should set the straight step
with WithStraightStep.

Tracing

The package traces to key "reedshepp.path".

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package rspath

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'reedshepp.path'
func tracer() tracing.Trace {
	return tracing.Select("reedshepp.path")
}
