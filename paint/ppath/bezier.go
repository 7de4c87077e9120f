// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/vpath/math32"
)

// ChopQuadAt splits the quadratic Bézier src at parameter t using
// de Casteljau subdivision. The result holds both halves sharing the
// split point: dst[0:3] covers [0,t] and dst[2:5] covers [t,1].
// t is clamped to [0,1] (NaN counts as 0), so the boundary values
// produce a zero-length half instead of failing.
func ChopQuadAt(src [3]math32.Vector2, t float32) [5]math32.Vector2 {
	t = clampT(t)
	ab := src[0].Lerp(src[1], t)
	bc := src[1].Lerp(src[2], t)
	abc := ab.Lerp(bc, t)
	return [5]math32.Vector2{src[0], ab, abc, bc, src[2]}
}

// ChopCubicAt splits the cubic Bézier src at parameter t using
// de Casteljau subdivision. The result holds both halves sharing the
// split point: dst[0:4] covers [0,t] and dst[3:7] covers [t,1].
// t is clamped to [0,1] as in [ChopQuadAt].
func ChopCubicAt(src [4]math32.Vector2, t float32) [7]math32.Vector2 {
	t = clampT(t)
	ab := src[0].Lerp(src[1], t)
	bc := src[1].Lerp(src[2], t)
	cd := src[2].Lerp(src[3], t)
	abc := ab.Lerp(bc, t)
	bcd := bc.Lerp(cd, t)
	abcd := abc.Lerp(bcd, t)
	return [7]math32.Vector2{src[0], ab, abc, abcd, bcd, cd, src[3]}
}

// EvalQuadAt returns the point on the quadratic Bézier src at
// parameter t, clamped to [0,1].
func EvalQuadAt(src [3]math32.Vector2, t float32) math32.Vector2 {
	t = clampT(t)
	return math32.Vec2(quadAt(src[0].X, src[1].X, src[2].X, t), quadAt(src[0].Y, src[1].Y, src[2].Y, t))
}

// EvalCubicAt returns the point on the cubic Bézier src at
// parameter t, clamped to [0,1].
func EvalCubicAt(src [4]math32.Vector2, t float32) math32.Vector2 {
	t = clampT(t)
	return math32.Vec2(cubicAt(src[0].X, src[1].X, src[2].X, src[3].X, t), cubicAt(src[0].Y, src[1].Y, src[2].Y, src[3].Y, t))
}

// quadAt evaluates one axis of a quadratic Bézier in Bernstein form.
func quadAt(p0, p1, p2, t float32) float32 {
	mt := 1 - t
	return mt*mt*p0 + 2*mt*t*p1 + t*t*p2
}

// cubicAt evaluates one axis of a cubic Bézier in Bernstein form.
func cubicAt(p0, p1, p2, p3, t float32) float32 {
	mt := 1 - t
	return mt*mt*mt*p0 + 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t*p3
}

// quadExtremum returns the parameter of the interior extremum of one
// axis of a quadratic Bézier. The derivative is linear, with its root at
// (p0-p1)/(p0-2p1+p2); ok is false when that root is not in (0,1).
func quadExtremum(p0, p1, p2 float32) (t float32, ok bool) {
	den := p0 - 2*p1 + p2
	if den == 0 {
		return 0, false
	}
	t = (p0 - p1) / den
	return t, inOpenUnit(t)
}

// cubicExtrema returns the parameters of the interior extrema of one axis
// of a cubic Bézier, as the roots in (0,1) of its derivative divided by 3:
//
//	(-p0 + 3p1 - 3p2 + p3) t^2 + 2(p0 - 2p1 + p2) t + (p1 - p0)
//
// Missing extrema are NaN.
func cubicExtrema(p0, p1, p2, p3 float32) (float32, float32) {
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 2 * (p0 - 2*p1 + p2)
	c := p1 - p0
	t1, t2 := solveQuadraticFormula(a, b, c)
	if !inOpenUnit(t1) {
		t1 = math32.NaN()
	}
	if !inOpenUnit(t2) {
		t2 = math32.NaN()
	}
	return t1, t2
}

// QuadBounds returns the exact bounds of the quadratic Bézier src,
// which may be smaller than the box of its control points.
func QuadBounds(src [3]math32.Vector2) math32.Box2 {
	b := math32.B2FromPoints([]math32.Vector2{src[0], src[2]})
	if t, ok := quadExtremum(src[0].X, src[1].X, src[2].X); ok {
		x := quadAt(src[0].X, src[1].X, src[2].X, t)
		b.Min.X = math32.Min(b.Min.X, x)
		b.Max.X = math32.Max(b.Max.X, x)
	}
	if t, ok := quadExtremum(src[0].Y, src[1].Y, src[2].Y); ok {
		y := quadAt(src[0].Y, src[1].Y, src[2].Y, t)
		b.Min.Y = math32.Min(b.Min.Y, y)
		b.Max.Y = math32.Max(b.Max.Y, y)
	}
	return b
}

// CubicBounds returns the exact bounds of the cubic Bézier src,
// which may be smaller than the box of its control points.
func CubicBounds(src [4]math32.Vector2) math32.Box2 {
	b := math32.B2FromPoints([]math32.Vector2{src[0], src[3]})
	t1, t2 := cubicExtrema(src[0].X, src[1].X, src[2].X, src[3].X)
	for _, t := range [2]float32{t1, t2} {
		if math32.IsNaN(t) {
			continue
		}
		x := cubicAt(src[0].X, src[1].X, src[2].X, src[3].X, t)
		b.Min.X = math32.Min(b.Min.X, x)
		b.Max.X = math32.Max(b.Max.X, x)
	}
	t1, t2 = cubicExtrema(src[0].Y, src[1].Y, src[2].Y, src[3].Y)
	for _, t := range [2]float32{t1, t2} {
		if math32.IsNaN(t) {
			continue
		}
		y := cubicAt(src[0].Y, src[1].Y, src[2].Y, src[3].Y, t)
		b.Min.Y = math32.Min(b.Min.Y, y)
		b.Max.Y = math32.Max(b.Max.Y, y)
	}
	return b
}
