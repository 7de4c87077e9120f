// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/vpath/math32"
)

// Builder accumulates contours and produces an immutable [Path]
// with [Builder.Detach]. The zero value is an empty builder ready to use.
// A Builder must not be used from more than one goroutine at a time.
type Builder struct {
	pts   []math32.Vector2
	verbs []Verb
}

// NewBuilder returns a new empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build runs fn on a new builder and returns the detached path.
func Build(fn func(b *Builder)) *Path {
	b := &Builder{}
	fn(b)
	return b.Detach()
}

// Reset clears all accumulated points and verbs.
func (b *Builder) Reset() {
	b.pts = nil
	b.verbs = nil
}

// CountPoints returns the number of points accumulated so far.
func (b *Builder) CountPoints() int {
	return len(b.pts)
}

// CountVerbs returns the number of verbs accumulated so far.
func (b *Builder) CountVerbs() int {
	return len(b.verbs)
}

// Pos returns the current point, which is the last point added,
// or the origin when nothing has been added.
func (b *Builder) Pos() math32.Vector2 {
	if len(b.pts) == 0 {
		return math32.Vector2{}
	}
	return b.pts[len(b.pts)-1]
}

// MoveTo starts a new contour at p.
func (b *Builder) MoveTo(p math32.Vector2) {
	b.verbs = append(b.verbs, Move)
	b.pts = append(b.pts, p)
}

// LineTo adds a line from the current point to p.
// It panics if no contour has been started with [Builder.MoveTo].
func (b *Builder) LineTo(p math32.Vector2) {
	b.mustHaveCurrent("LineTo")
	b.verbs = append(b.verbs, Line)
	b.pts = append(b.pts, p)
}

// QuadTo adds a quadratic Bézier from the current point through
// control point c to end point e.
// It panics if no contour has been started with [Builder.MoveTo].
func (b *Builder) QuadTo(c, e math32.Vector2) {
	b.mustHaveCurrent("QuadTo")
	b.verbs = append(b.verbs, Quad)
	b.pts = append(b.pts, c, e)
}

// CubicTo adds a cubic Bézier from the current point through
// control points c1 and c2 to end point e.
// It panics if no contour has been started with [Builder.MoveTo].
func (b *Builder) CubicTo(c1, c2, e math32.Vector2) {
	b.mustHaveCurrent("CubicTo")
	b.verbs = append(b.verbs, Cubic)
	b.pts = append(b.pts, c1, c2, e)
}

func (b *Builder) mustHaveCurrent(op string) {
	if len(b.verbs) == 0 {
		panic("ppath: " + op + " called before MoveTo")
	}
}

// Transform maps every point accumulated so far by m.
func (b *Builder) Transform(m math32.Matrix2) {
	if m.IsIdentity() {
		return
	}
	m.MapPoints(b.pts, b.pts)
}

// Detach moves the accumulated contours into a new [Path]
// and resets the builder, which can then be reused.
func (b *Builder) Detach() *Path {
	p := &Path{pts: b.pts, verbs: b.verbs}
	b.pts = nil
	b.verbs = nil
	return p
}
