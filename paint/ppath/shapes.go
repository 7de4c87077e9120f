// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/vpath/math32"
)

// AddRect adds a closed rectangle contour starting at the top-left
// corner of r. CW visits top-right next and CCW bottom-left.
// Only the move and three lines are stored: the edge back to the
// top-left is implied by the contour.
func (b *Builder) AddRect(r math32.Box2, dir Direction) *Builder {
	r = r.Canon()
	tl := r.Min
	tr := math32.Vec2(r.Max.X, r.Min.Y)
	br := r.Max
	bl := math32.Vec2(r.Min.X, r.Max.Y)
	b.MoveTo(tl)
	if dir == CCW {
		b.LineTo(bl)
		b.LineTo(br)
		b.LineTo(tr)
	} else {
		b.LineTo(tr)
		b.LineTo(br)
		b.LineTo(bl)
	}
	return b
}

// AddPolygon adds a contour through the given points: a move to the
// first one and lines to the rest. No points is a no-op.
func (b *Builder) AddPolygon(pts ...math32.Vector2) *Builder {
	if len(pts) == 0 {
		return b
	}
	b.MoveTo(pts[0])
	for _, p := range pts[1:] {
		b.LineTo(p)
	}
	return b
}

// tan(pi/8), the control point offset of a 45 degree quadratic arc
// on the unit circle.
const circleTan = math32.Sqrt2 - 1

const circleDiag = math32.Sqrt2 / 2

// unitCircle holds the 16 points (8 control/end pairs) of a unit circle
// approximated by 45 degree quadratic arcs, starting after (1,0) and
// going through increasing angles, which is clockwise with y down.
var unitCircle = [16]math32.Vector2{
	{1, circleTan}, {circleDiag, circleDiag},
	{circleTan, 1}, {0, 1},
	{-circleTan, 1}, {-circleDiag, circleDiag},
	{-1, circleTan}, {-1, 0},
	{-1, -circleTan}, {-circleDiag, -circleDiag},
	{-circleTan, -1}, {0, -1},
	{circleTan, -1}, {circleDiag, -circleDiag},
	{1, -circleTan}, {1, 0},
}

// AddCircle adds a closed circle contour of 8 quadratic arcs of
// 45 degrees each, starting at the rightmost point.
func (b *Builder) AddCircle(center math32.Vector2, radius float32, dir Direction) *Builder {
	return b.AddEllipse(center, radius, radius, dir)
}

// AddEllipse adds a closed axis-aligned ellipse contour, made from the
// unit circle of [Builder.AddCircle] scaled by rx and ry.
func (b *Builder) AddEllipse(center math32.Vector2, rx, ry float32, dir Direction) *Builder {
	m := math32.Translate2D(center.X, center.Y).Scale(rx, ry)
	b.MoveTo(m.MulVector2AsPoint(math32.Vec2(1, 0)))
	if dir == CCW {
		// mirroring across the x axis reverses the winding
		m = m.Scale(1, -1)
	}
	for i := 0; i < len(unitCircle); i += 2 {
		b.QuadTo(m.MulVector2AsPoint(unitCircle[i]), m.MulVector2AsPoint(unitCircle[i+1]))
	}
	return b
}

// AddRegularPolygon adds a regular polygon contour with n vertices
// on a circle of radius r around center. With up set, one vertex
// points straight up, otherwise the first vertex is on the right.
func (b *Builder) AddRegularPolygon(center math32.Vector2, n int, r float32, up bool) *Builder {
	if n < 3 || r == 0 {
		return b
	}
	return b.AddStarPolygon(center, n, r, r, up)
}

// AddStarPolygon adds a star contour with n outer vertices on a circle of
// radius outer and n inner vertices at radius inner, alternating.
// When inner equals outer it is a regular polygon with n vertices.
func (b *Builder) AddStarPolygon(center math32.Vector2, n int, outer, inner float32, up bool) *Builder {
	if n < 2 {
		return b
	}
	theta := float32(0)
	if up {
		theta = -math32.Pi / 2
	}
	step := 2 * math32.Pi / float32(n)
	first := true
	add := func(angle, radius float32) {
		s, c := math32.Sincos(angle)
		p := math32.Vec2(center.X+radius*c, center.Y+radius*s)
		if first {
			b.MoveTo(p)
			first = false
			return
		}
		b.LineTo(p)
	}
	for i := 0; i < n; i++ {
		a := theta + float32(i)*step
		add(a, outer)
		if inner != outer {
			add(a+step/2, inner)
		}
	}
	return b
}
