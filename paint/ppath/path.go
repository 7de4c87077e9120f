// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"bytes"
	"encoding/gob"
	"slices"
	"strconv"

	"cogentcore.org/vpath/math32"
)

// Path is an immutable sequence of contours, stored as a list of
// points and a parallel list of verbs. Each verb consumes a fixed
// number of new points from the point list, in order: [Move] and [Line]
// one, [Quad] two and [Cubic] three. The start of a segment is never
// stored again: it is the last point of the previous verb.
// Every contour starts with exactly one Move.
//
// A Path is made by [Builder.Detach] and is never modified after that,
// so it can be shared and read concurrently without locking.
// A nil *Path is a valid empty path.
type Path struct {
	pts   []math32.Vector2
	verbs []Verb
}

// Empty returns true if the path has no verbs.
func (p *Path) Empty() bool {
	return p == nil || len(p.verbs) == 0
}

// CountPoints returns the number of stored points, including
// control points.
func (p *Path) CountPoints() int {
	if p == nil {
		return 0
	}
	return len(p.pts)
}

// CountVerbs returns the number of stored verbs.
func (p *Path) CountVerbs() int {
	if p == nil {
		return 0
	}
	return len(p.verbs)
}

// CountContours returns the number of contours, which is the
// number of [Move] verbs.
func (p *Path) CountContours() int {
	n := 0
	if p == nil {
		return n
	}
	for _, v := range p.verbs {
		if v == Move {
			n++
		}
	}
	return n
}

// Points returns a copy of the stored points.
func (p *Path) Points() []math32.Vector2 {
	if p == nil {
		return nil
	}
	return slices.Clone(p.pts)
}

// Verbs returns a copy of the stored verbs.
func (p *Path) Verbs() []Verb {
	if p == nil {
		return nil
	}
	return slices.Clone(p.verbs)
}

// Equals returns true if p and q have the same verbs and
// their points are equal within tolerance Epsilon.
func (p *Path) Equals(q *Path) bool {
	if p.CountVerbs() != q.CountVerbs() || p.CountPoints() != q.CountPoints() {
		return false
	}
	if p.Empty() {
		return true
	}
	if !slices.Equal(p.verbs, q.verbs) {
		return false
	}
	for i := range p.pts {
		if !EqualPoint(p.pts[i], q.pts[i]) {
			return false
		}
	}
	return true
}

// Sane returns true if the path does not have NaN or infinity values.
func (p *Path) Sane() bool {
	if p == nil {
		return true
	}
	for _, pt := range p.pts {
		if pt.IsNaN() || math32.IsInf(pt.X, 0) || math32.IsInf(pt.Y, 0) {
			return false
		}
	}
	return true
}

// StartPos returns the first point of the path, or the origin
// for an empty path.
func (p *Path) StartPos() math32.Vector2 {
	if p.CountPoints() == 0 {
		return math32.Vector2{}
	}
	return p.pts[0]
}

// Pos returns the last point of the path, which is the end point
// of the last verb, or the origin for an empty path.
func (p *Path) Pos() math32.Vector2 {
	if p.CountPoints() == 0 {
		return math32.Vector2{}
	}
	return p.pts[len(p.pts)-1]
}

// Transform returns a new path with every point mapped by m.
// When m is the identity, or the path is empty, it returns p itself,
// so callers can detect the no-op by pointer comparison.
func (p *Path) Transform(m math32.Matrix2) *Path {
	if m.IsIdentity() || p.CountPoints() == 0 {
		return p
	}
	pts := make([]math32.Vector2, len(p.pts))
	m.MapPoints(pts, p.pts)
	// verbs are never written after detach, so they can be shared.
	return &Path{pts: pts, verbs: p.verbs}
}

// Offset returns the path translated by (dx, dy).
func (p *Path) Offset(dx, dy float32) *Path {
	return p.Transform(math32.Translate2D(dx, dy))
}

// Append returns a new path with the contours of qs following those of p.
// Empty paths are skipped, and p itself is returned if nothing is added.
func (p *Path) Append(qs ...*Path) *Path {
	np := &Path{pts: slices.Clone(p.pointsOrNil()), verbs: slices.Clone(p.verbsOrNil())}
	added := false
	for _, q := range qs {
		if q.Empty() {
			continue
		}
		np.pts = append(np.pts, q.pts...)
		np.verbs = append(np.verbs, q.verbs...)
		added = true
	}
	if !added {
		return p
	}
	return np
}

func (p *Path) pointsOrNil() []math32.Vector2 {
	if p == nil {
		return nil
	}
	return p.pts
}

func (p *Path) verbsOrNil() []Verb {
	if p == nil {
		return nil
	}
	return p.verbs
}

// gobPath is the exported form of a path for gob encoding.
type gobPath struct {
	Points []math32.Vector2
	Verbs  []Verb
}

// GobEncode implements the gob interface.
func (p *Path) GobEncode() ([]byte, error) {
	b := bytes.Buffer{}
	enc := gob.NewEncoder(&b)
	if err := enc.Encode(gobPath{p.pointsOrNil(), p.verbsOrNil()}); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// GobDecode implements the gob interface. The decoded points and
// verbs are validated like a [Builder] would, so malformed data
// returns an error instead of producing a broken path.
func (p *Path) GobDecode(b []byte) error {
	var gp gobPath
	dec := gob.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&gp); err != nil {
		return err
	}
	if err := validate(gp.Points, gp.Verbs); err != nil {
		return err
	}
	p.pts, p.verbs = gp.Points, gp.Verbs
	return nil
}

// validate checks that verbs starts with a Move, contains only
// known verbs, and consumes exactly len(pts) points.
func validate(pts []math32.Vector2, verbs []Verb) error {
	n := 0
	for i, v := range verbs {
		if v < Move || v > Cubic {
			return &FormatError{Index: i, Msg: "unknown verb " + v.String()}
		}
		if i == 0 && v != Move {
			return &FormatError{Index: i, Msg: "first verb is " + v.String() + ", not Move"}
		}
		n += v.Points()
	}
	if n != len(pts) {
		return &FormatError{Index: len(verbs), Msg: "point count does not match verbs"}
	}
	return nil
}

// FormatError reports malformed path data, either from decoding
// or from parsing SVG path data.
type FormatError struct {
	// Index is the position of the offending verb or byte.
	Index int
	Msg   string
}

func (e *FormatError) Error() string {
	return "ppath: " + e.Msg + " at " + strconv.Itoa(e.Index)
}
