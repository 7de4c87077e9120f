// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster fills [ppath.Path] values into images, using the
// nonzero winding rule of [vector.Rasterizer].
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"cogentcore.org/vpath/paint/ppath"
	"golang.org/x/image/vector"
)

// Filler scan-converts paths. The zero value is ready to use.
// A Filler reuses its rasterizer between calls, so it must not
// be used from multiple goroutines at once.
type Filler struct {
	// Tolerance, when > 0, flattens curves to lines deviating at
	// most this many pixels before rasterizing, instead of letting
	// the rasterizer subdivide them.
	Tolerance float32

	ras vector.Rasterizer
}

// Mask returns the coverage of p as an alpha mask of the given size.
// Pixels outside the path bounds are zero.
func (f *Filler) Mask(p *ppath.Path, size image.Point) *image.Alpha {
	m := image.NewAlpha(image.Rectangle{Max: size})
	f.Draw(m, p, image.Opaque, draw.Src)
	return m
}

// Fill composites p onto dst in the color c.
func (f *Filler) Fill(dst draw.Image, p *ppath.Path, c color.Color) {
	f.Draw(dst, p, image.NewUniform(c), draw.Over)
}

// Draw draws src onto dst through the coverage of p with op.
// Only the pixels within the bounds of p are touched.
func (f *Filler) Draw(dst draw.Image, p *ppath.Path, src image.Image, op draw.Op) {
	clip := p.Bounds().ToRect().Intersect(dst.Bounds())
	if p.Empty() || clip.Empty() {
		slog.Debug("raster: nothing to fill", "bounds", p.Bounds(), "dst", dst.Bounds())
		return
	}
	if f.Tolerance > 0 {
		p = p.Flatten(f.Tolerance)
	}
	f.ras.Reset(clip.Dx(), clip.Dy())
	f.ras.DrawOp = op
	f.addEdges(p.Offset(-float32(clip.Min.X), -float32(clip.Min.Y)))
	f.ras.Draw(dst, clip, src, clip.Min)
}

// addEdges feeds the closed edges of p to the rasterizer, which
// only accumulates signed area, so a move is only needed where an
// edge does not continue from the previous one.
func (f *Filler) addEdges(p *ppath.Path) {
	first := true
	var pen [2]float32
	for v, pts := range p.Edges() {
		if first || pts[0].X != pen[0] || pts[0].Y != pen[1] {
			f.ras.MoveTo(pts[0].X, pts[0].Y)
			first = false
		}
		end := pts[len(pts)-1]
		switch v {
		case ppath.Line:
			f.ras.LineTo(end.X, end.Y)
		case ppath.Quad:
			f.ras.QuadTo(pts[1].X, pts[1].Y, end.X, end.Y)
		case ppath.Cubic:
			f.ras.CubeTo(pts[1].X, pts[1].Y, pts[2].X, pts[2].Y, end.X, end.Y)
		}
		pen = [2]float32{end.X, end.Y}
	}
}

// Coverage returns the number of pixels in m with nonzero alpha.
func Coverage(m *image.Alpha) int {
	n := 0
	for _, a := range m.Pix {
		if a != 0 {
			n++
		}
	}
	return n
}
