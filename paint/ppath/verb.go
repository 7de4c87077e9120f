// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import "strconv"

// Verb identifies the kind of a path segment.
type Verb int32

const (
	// Move starts a new contour at its single point.
	Move Verb = iota

	// Line is a straight segment from the current point to its end point.
	Line

	// Quad is a quadratic Bézier with one control point and an end point.
	Quad

	// Cubic is a cubic Bézier with two control points and an end point.
	Cubic
)

// MaxNextPoints is the most points any traversal writes for one verb.
const MaxNextPoints = 4

// verbPoints is the number of new points each verb stores.
var verbPoints = [4]int{1, 1, 2, 3}

var verbNames = [4]string{"Move", "Line", "Quad", "Cubic"}

// Points returns the number of new points that the verb
// consumes from path storage.
func (v Verb) Points() int {
	return verbPoints[v]
}

// NextPoints returns the number of points that a traversal yields
// for the verb: the stored points plus the previous point for
// everything but [Move].
func (v Verb) NextPoints() int {
	if v == Move {
		return 1
	}
	return verbPoints[v] + 1
}

func (v Verb) String() string {
	if v < Move || v > Cubic {
		return "Verb(" + strconv.Itoa(int(v)) + ")"
	}
	return verbNames[v]
}

// Direction is the winding order used by the closed shape
// builders on [Builder].
type Direction int32

const (
	// CW is clockwise in a y-down coordinate system.
	CW Direction = iota

	// CCW is counter-clockwise in a y-down coordinate system.
	CCW
)

func (d Direction) String() string {
	switch d {
	case CW:
		return "CW"
	case CCW:
		return "CCW"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// SetString sets the direction from its name: CW or CCW, in upper or
// lower case. The empty string is CW.
func (d *Direction) SetString(s string) error {
	switch s {
	case "CW", "cw", "":
		*d = CW
	case "CCW", "ccw":
		*d = CCW
	default:
		return &DirectionError{s}
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Direction) UnmarshalText(text []byte) error {
	return d.SetString(string(text))
}

// DirectionError is returned by [Direction.SetString] for an unknown name.
type DirectionError struct {
	Name string
}

func (e *DirectionError) Error() string {
	return "ppath: unknown direction " + strconv.Quote(e.Name)
}
