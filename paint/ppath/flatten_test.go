// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"cogentcore.org/vpath/math32"
	"github.com/stretchr/testify/assert"
)

func TestFlattenLines(t *testing.T) {
	p := Build(func(b *Builder) { b.AddRect(math32.B2(0, 0, 10, 10), CW) })
	assert.Same(t, p, p.Flatten(0.1))
	var np *Path
	assert.Nil(t, np.Flatten(0.1))
}

func TestFlattenQuad(t *testing.T) {
	// x = 100t, y = 100t^2
	p := Build(func(b *Builder) {
		b.MoveTo(math32.Vec2(0, 0))
		b.QuadTo(math32.Vec2(50, 0), math32.Vec2(100, 100))
	})
	for _, tol := range []float32{1, 0.1, 0.01} {
		f := p.Flatten(tol)
		for _, v := range f.Verbs() {
			assert.Contains(t, []Verb{Move, Line}, v)
		}
		pts := f.Points()
		assert.Equal(t, math32.Vec2(0, 0), pts[0])
		assert.Equal(t, math32.Vec2(100, 100), pts[len(pts)-1])
		for _, pt := range pts {
			assert.InDelta(t, pt.X*pt.X/100, pt.Y, 1e-2, "vertex %v is on the curve", pt)
		}
		// each chord stays close to the curve at its midpoint
		for i := 1; i < len(pts); i++ {
			mid := pts[i-1].Lerp(pts[i], 0.5)
			assert.LessOrEqual(t, mid.Y-mid.X*mid.X/100, 2*tol)
		}
		tolEqualBox2(t, p.Bounds(), f.Bounds(), 1e-3)
	}
	coarse, fine := p.Flatten(1).CountPoints(), p.Flatten(0.01).CountPoints()
	assert.Greater(t, coarse, 2)
	assert.Greater(t, fine, coarse)
}

func TestFlattenCubic(t *testing.T) {
	p := Build(func(b *Builder) {
		b.MoveTo(math32.Vec2(0, 50))
		b.CubicTo(math32.Vec2(100, 0), math32.Vec2(100, 100), math32.Vec2(0, 50))
		b.MoveTo(math32.Vec2(200, 0))
		b.LineTo(math32.Vec2(210, 0))
	})
	f := p.Flatten(0)
	assert.Equal(t, 2, f.CountContours())
	assert.Equal(t, math32.Vec2(210, 0), f.Pos())
	tolEqualBox2(t, p.Bounds(), f.Bounds(), float64(2*Tolerance))

	// a degenerate curve still ends where it should
	d := Build(func(b *Builder) {
		b.MoveTo(math32.Vec2(1, 1))
		b.CubicTo(math32.Vec2(1, 1), math32.Vec2(1, 1), math32.Vec2(1, 1))
	}).Flatten(0.1)
	assert.Equal(t, []math32.Vector2{{1, 1}, {1, 1}}, d.Points())
}
