// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"iter"

	"cogentcore.org/vpath/math32"
)

// Iterator walks every verb of a path in storage order, yielding the
// absolute points of each segment:
//
//	Move:  [point]
//	Line:  [previous, end]
//	Quad:  [previous, control, end]
//	Cubic: [previous, control1, control2, end]
//
// where previous is the last point of the verb before it.
// An Iterator is a value cursor: copies advance independently
// and never modify the path.
type Iterator struct {
	path *Path
	vi   int // next verb
	pi   int // next point
}

// NewIterator returns an [Iterator] at the start of p.
func NewIterator(p *Path) Iterator {
	return Iterator{path: p}
}

// Iterator returns an [Iterator] at the start of the path.
func (p *Path) Iterator() Iterator {
	return NewIterator(p)
}

// Next writes the points of the next segment into pts and returns
// its verb. It returns false once the path is exhausted.
func (it *Iterator) Next(pts *[MaxNextPoints]math32.Vector2) (Verb, bool) {
	if it.path == nil || it.vi >= len(it.path.verbs) {
		return Move, false
	}
	v := it.path.verbs[it.vi]
	it.vi++
	n := v.Points()
	if v == Move {
		pts[0] = it.path.pts[it.pi]
	} else {
		pts[0] = it.path.pts[it.pi-1]
		copy(pts[1:1+n], it.path.pts[it.pi:it.pi+n])
	}
	it.pi += n
	return v, true
}

// Edger walks the edges of a path: the same segments as [Iterator]
// without the Move verbs, plus one synthesized [Line] per contour from
// its last point back to its first, yielded right after the contour's
// own segments. A contour with no segments yields nothing.
// This is the form a scanline filler wants, where every contour is closed.
type Edger struct {
	iter  Iterator
	start math32.Vector2 // first point of the current contour
	last  math32.Vector2 // current point
	open  bool           // the current contour has unclosed segments
}

// NewEdger returns an [Edger] at the start of p.
func NewEdger(p *Path) Edger {
	return Edger{iter: NewIterator(p)}
}

// Edger returns an [Edger] at the start of the path.
func (p *Path) Edger() Edger {
	return NewEdger(p)
}

// Next writes the points of the next edge into pts and returns
// its verb, which is never [Move]. It returns false once the path
// is exhausted and the last contour has been closed.
func (e *Edger) Next(pts *[MaxNextPoints]math32.Vector2) (Verb, bool) {
	for {
		v, ok := e.iter.Next(pts)
		if !ok {
			if e.open {
				e.open = false
				pts[0], pts[1] = e.last, e.start
				return Line, true
			}
			return Move, false
		}
		if v == Move {
			mv := pts[0]
			if e.open {
				pts[0], pts[1] = e.last, e.start
				e.start, e.last = mv, mv
				e.open = false
				return Line, true
			}
			e.start, e.last = mv, mv
			continue
		}
		e.last = pts[v.Points()]
		e.open = true
		return v, true
	}
}

// Segments returns an iterator over the verbs and points of the path,
// as yielded by [Iterator]. The point slice is reused between steps
// and is only valid until the next one.
func (p *Path) Segments() iter.Seq2[Verb, []math32.Vector2] {
	return func(yield func(Verb, []math32.Vector2) bool) {
		it := p.Iterator()
		var pts [MaxNextPoints]math32.Vector2
		for v, ok := it.Next(&pts); ok; v, ok = it.Next(&pts) {
			if !yield(v, pts[:v.NextPoints()]) {
				return
			}
		}
	}
}

// Edges returns an iterator over the edges of the path,
// as yielded by [Edger]. The point slice is reused between steps
// and is only valid until the next one.
func (p *Path) Edges() iter.Seq2[Verb, []math32.Vector2] {
	return func(yield func(Verb, []math32.Vector2) bool) {
		e := p.Edger()
		var pts [MaxNextPoints]math32.Vector2
		for v, ok := e.Next(&pts); ok; v, ok = e.Next(&pts) {
			if !yield(v, pts[:v.NextPoints()]) {
				return
			}
		}
	}
}
