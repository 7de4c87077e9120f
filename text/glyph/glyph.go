// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glyph converts font glyph outlines into paths, for text
// that is filled like any other shape.
package glyph

import (
	"bytes"
	"log/slog"
	"sync"

	"cogentcore.org/vpath/base/errors"
	"cogentcore.org/vpath/math32"
	"cogentcore.org/vpath/paint/ppath"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrNoOutline is returned for glyphs that are stored as bitmaps
// or SVG documents instead of outlines.
var ErrNoOutline = errors.New("glyph: glyph has no outline")

// Outliner produces glyph outlines from one font face at a given size.
// Glyphs are placed left to right from a baseline origin without
// shaping or kerning, with y pointing down.
type Outliner struct {
	face *font.Face

	// Size is the em size in pixels.
	Size float32
}

// NewOutliner parses the TrueType or OpenType font data and returns
// an Outliner for it.
func NewOutliner(ttf []byte, size float32) (*Outliner, error) {
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, err
	}
	return &Outliner{face: face, Size: size}, nil
}

// goRegular is parsed once and shared. A face is not safe for
// concurrent use, so each [Outliner] gets its own.
var goRegular = sync.OnceValues(func() (*font.Font, error) {
	ld, err := opentype.NewLoader(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return font.NewFont(ld)
})

// Default returns an Outliner for the embedded Go Regular font.
func Default(size float32) *Outliner {
	return &Outliner{face: font.NewFace(errors.Must1(goRegular())), Size: size}
}

// scale converts font units to pixels.
func (o *Outliner) scale() float32 {
	return o.Size / float32(o.face.Upem())
}

// LineHeight returns the distance between baselines.
func (o *Outliner) LineHeight() float32 {
	ext, ok := o.face.FontHExtents()
	if !ok {
		return o.Size * 1.2
	}
	return (ext.Ascender - ext.Descender + ext.LineGap) * o.scale()
}

func (o *Outliner) lookup(r rune) font.GID {
	gid, ok := o.face.NominalGlyph(r)
	if !ok {
		slog.Debug("glyph: rune not in font", "rune", string(r))
		return 0 // .notdef
	}
	return gid
}

// Glyph adds the outline of r with its baseline origin at pos to b,
// and returns its advance.
func (o *Outliner) Glyph(b *ppath.Builder, r rune, pos math32.Vector2) (float32, error) {
	gid := o.lookup(r)
	outline, ok := o.face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return 0, ErrNoOutline
	}
	sc := o.scale()
	pt := func(a opentype.SegmentPoint) math32.Vector2 {
		return math32.Vec2(pos.X+a.X*sc, pos.Y-a.Y*sc)
	}
	for _, s := range outline.Segments {
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			b.MoveTo(pt(s.Args[0]))
		case opentype.SegmentOpLineTo:
			b.LineTo(pt(s.Args[0]))
		case opentype.SegmentOpQuadTo:
			b.QuadTo(pt(s.Args[0]), pt(s.Args[1]))
		case opentype.SegmentOpCubeTo:
			b.CubicTo(pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2]))
		}
	}
	return o.face.HorizontalAdvance(gid) * sc, nil
}

// GlyphPath returns the outline of r with its baseline origin at (0, 0).
func (o *Outliner) GlyphPath(r rune) (*ppath.Path, error) {
	b := ppath.NewBuilder()
	if _, err := o.Glyph(b, r, math32.Vector2{}); err != nil {
		return nil, err
	}
	return b.Detach(), nil
}

// TextPath returns the outlines of s with the baseline of the first
// line starting at pos, and the advance of its longest line.
// A newline starts a new line [Outliner.LineHeight] further down.
// Glyphs without outlines are skipped, and reported in the joined error.
func (o *Outliner) TextPath(s string, pos math32.Vector2) (*ppath.Path, float32, error) {
	b := ppath.NewBuilder()
	var errs []error
	x, width := pos.X, float32(0)
	for _, r := range s {
		if r == '\n' {
			width = math32.Max(width, x-pos.X)
			x = pos.X
			pos.Y += o.LineHeight()
			continue
		}
		adv, err := o.Glyph(b, r, math32.Vec2(x, pos.Y))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		x += adv
	}
	width = math32.Max(width, x-pos.X)
	return b.Detach(), width, errors.Join(errs...)
}
