// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/vpath/math32"
)

// Bounds returns the exact bounding box of the curves of the path,
// which for curves is tighter than the box of the control points:
// quadratic and cubic segments are bounded at their endpoints and at
// the zeros of their derivative within the segment.
// It returns the zero box for an empty path.
func (p *Path) Bounds() math32.Box2 {
	if p.CountPoints() == 0 {
		return math32.Box2{}
	}
	b := math32.Box2{Min: p.pts[0], Max: p.pts[0]}
	it := p.Iterator()
	var pts [MaxNextPoints]math32.Vector2
	for v, ok := it.Next(&pts); ok; v, ok = it.Next(&pts) {
		switch v {
		case Move:
			b.ExpandByPoint(pts[0])
		case Line:
			b.ExpandByPoint(pts[1])
		case Quad:
			b.ExpandByBox(QuadBounds([3]math32.Vector2{pts[0], pts[1], pts[2]}))
		case Cubic:
			b.ExpandByBox(CubicBounds(pts))
		}
	}
	return b
}

// ControlBounds returns the bounding box of all stored points,
// including control points. It contains [Path.Bounds] and is
// cheaper, but is not tight around curves.
// It returns the zero box for an empty path.
func (p *Path) ControlBounds() math32.Box2 {
	return math32.B2FromPoints(p.pointsOrNil())
}
