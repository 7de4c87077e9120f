// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/vpath/math32"
)

// maxFlattenDepth bounds the recursive subdivision of one curve,
// giving at most 2^maxFlattenDepth lines per segment.
const maxFlattenDepth = 10

// Flatten returns a path with every quadratic and cubic Bézier replaced
// by lines that deviate from the curve by at most tolerance.
// Curves are halved with [ChopQuadAt] and [ChopCubicAt] until their
// control points are within tolerance of the chord.
// A tolerance <= 0 uses [Tolerance]. A path without curves is
// returned as is.
func (p *Path) Flatten(tolerance float32) *Path {
	if !p.hasCurves() {
		return p
	}
	if tolerance <= 0 {
		tolerance = Tolerance
	}
	b := &Builder{}
	for v, pts := range p.Segments() {
		switch v {
		case Move:
			b.MoveTo(pts[0])
		case Line:
			b.LineTo(pts[1])
		case Quad:
			flattenQuad(b, [3]math32.Vector2(pts), tolerance, 0)
		case Cubic:
			flattenCubic(b, [4]math32.Vector2(pts), tolerance, 0)
		}
	}
	return b.Detach()
}

func (p *Path) hasCurves() bool {
	for _, v := range p.verbsOrNil() {
		if v == Quad || v == Cubic {
			return true
		}
	}
	return false
}

func flattenQuad(b *Builder, q [3]math32.Vector2, tolerance float32, depth int) {
	chord := math32.NewLine2(q[0], q[2])
	if depth >= maxFlattenDepth || chord.DistanceToPoint(q[1]) <= tolerance {
		b.LineTo(q[2])
		return
	}
	h := ChopQuadAt(q, 0.5)
	flattenQuad(b, [3]math32.Vector2(h[0:3]), tolerance, depth+1)
	flattenQuad(b, [3]math32.Vector2(h[2:5]), tolerance, depth+1)
}

func flattenCubic(b *Builder, c [4]math32.Vector2, tolerance float32, depth int) {
	chord := math32.NewLine2(c[0], c[3])
	if depth >= maxFlattenDepth || (chord.DistanceToPoint(c[1]) <= tolerance && chord.DistanceToPoint(c[2]) <= tolerance) {
		b.LineTo(c[3])
		return
	}
	h := ChopCubicAt(c, 0.5)
	flattenCubic(b, [4]math32.Vector2(h[0:4]), tolerance, depth+1)
	flattenCubic(b, [4]math32.Vector2(h[3:7]), tolerance, depth+1)
}
