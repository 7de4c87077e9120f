// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"cogentcore.org/vpath/base/iox/imagex"
	"cogentcore.org/vpath/math32"
	"cogentcore.org/vpath/paint/ppath"
	"github.com/stretchr/testify/assert"
)

func alphaSum(m *image.Alpha) float32 {
	s := float32(0)
	for _, a := range m.Pix {
		s += float32(a) / 255
	}
	return s
}

func TestNoDraw(t *testing.T) {
	paths := map[string]*ppath.Path{
		"empty": ppath.Build(func(b *ppath.Builder) {}),
		"move": ppath.Build(func(b *ppath.Builder) {
			b.MoveTo(math32.Vec2(1, 1))
		}),
		"line": ppath.Build(func(b *ppath.Builder) {
			b.MoveTo(math32.Vec2(1, 1))
			b.LineTo(math32.Vec2(2, 2))
		}),
		"back": ppath.Build(func(b *ppath.Builder) {
			b.MoveTo(math32.Vec2(1, 1))
			b.LineTo(math32.Vec2(2, 2))
			b.LineTo(math32.Vec2(1, 1))
		}),
		"nil":     nil,
		"outside": ppath.Build(func(b *ppath.Builder) { b.AddRect(math32.B2(50, 50, 60, 60), ppath.CW) }),
	}
	f := &Filler{}
	for name, p := range paths {
		t.Run(name, func(t *testing.T) {
			m := f.Mask(p, image.Pt(10, 10))
			assert.Equal(t, 0, Coverage(m))
		})
	}
}

func TestMaskRect(t *testing.T) {
	f := &Filler{}
	for _, dir := range []ppath.Direction{ppath.CW, ppath.CCW} {
		t.Run(dir.String(), func(t *testing.T) {
			p := ppath.Build(func(b *ppath.Builder) { b.AddRect(math32.B2(10, 20, 30, 40), dir) })
			m := f.Mask(p, image.Pt(50, 50))
			assert.Equal(t, 400, Coverage(m))
			assert.Equal(t, uint8(0xff), m.AlphaAt(15, 25).A)
			assert.Equal(t, uint8(0xff), m.AlphaAt(29, 39).A)
			assert.Equal(t, uint8(0), m.AlphaAt(9, 25).A)
			assert.Equal(t, uint8(0), m.AlphaAt(30, 39).A)
		})
	}
}

func TestMaskClipped(t *testing.T) {
	p := ppath.Build(func(b *ppath.Builder) { b.AddRect(math32.B2(-10, -10, 10, 10), ppath.CW) })
	m := (&Filler{}).Mask(p, image.Pt(20, 20))
	assert.Equal(t, 100, Coverage(m))
	assert.Equal(t, uint8(0xff), m.AlphaAt(0, 0).A)
	assert.Equal(t, uint8(0), m.AlphaAt(10, 10).A)
}

func TestMaskWinding(t *testing.T) {
	f := &Filler{}
	hole := ppath.Build(func(b *ppath.Builder) {
		b.AddRect(math32.B2(0, 0, 20, 20), ppath.CW)
		b.AddRect(math32.B2(5, 5, 15, 15), ppath.CCW)
	})
	m := f.Mask(hole, image.Pt(20, 20))
	assert.Equal(t, 300, Coverage(m))
	assert.Equal(t, uint8(0), m.AlphaAt(10, 10).A)
	assert.Equal(t, uint8(0xff), m.AlphaAt(2, 2).A)

	same := ppath.Build(func(b *ppath.Builder) {
		b.AddRect(math32.B2(0, 0, 20, 20), ppath.CW)
		b.AddRect(math32.B2(5, 5, 15, 15), ppath.CW)
	})
	m = f.Mask(same, image.Pt(20, 20))
	assert.Equal(t, 400, Coverage(m))
	assert.Equal(t, uint8(0xff), m.AlphaAt(10, 10).A)
	imagex.Assert(t, m, "winding")
}

func TestMaskCircle(t *testing.T) {
	p := ppath.Build(func(b *ppath.Builder) { b.AddCircle(math32.Vec2(25, 25), 10, ppath.CW) })
	area := math32.Pi * 100
	for _, tol := range []float32{0, 0.05} {
		m := (&Filler{Tolerance: tol}).Mask(p, image.Pt(50, 50))
		assert.InDelta(t, area, alphaSum(m), 4, "tolerance %g", tol)
		assert.Equal(t, uint8(0xff), m.AlphaAt(25, 25).A)
		assert.Equal(t, uint8(0), m.AlphaAt(14, 14).A)
		imagex.Assert(t, m, fmt.Sprintf("circle-tol%d", int(tol*100)))
	}
}

func TestFill(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	p := ppath.MustParseSVGPath("M2 2H6V6H2Z")
	red := color.RGBA{0xff, 0, 0, 0xff}
	(&Filler{}).Fill(img, p, red)

	assert.Equal(t, red, img.RGBAAt(3, 3))
	assert.Equal(t, red, img.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, img.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, img.RGBAAt(6, 6))

	// half transparent over white
	(&Filler{}).Fill(img, ppath.MustParseSVGPath("M0 0H2V2H0Z"), color.NRGBA{0, 0, 0xff, 0x80})
	c := img.RGBAAt(0, 0)
	assert.InDelta(t, 0x7f, c.R, 1)
	assert.InDelta(t, 0xff, c.B, 1)
}
