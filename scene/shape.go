// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image/color"
	"strconv"

	"cogentcore.org/vpath/base/errors"
	"cogentcore.org/vpath/math32"
	"cogentcore.org/vpath/paint/ppath"
	"cogentcore.org/vpath/text/glyph"
)

// ErrUnknownShape is returned for a missing or unrecognized shape kind.
var ErrUnknownShape = errors.New("scene: unknown shape kind")

// ShapeKind selects which fields of a [Shape] describe its geometry.
type ShapeKind int32

const (
	// NoShape is the zero kind, which is invalid.
	NoShape ShapeKind = iota

	// Rect uses Rect and Dir.
	Rect

	// Polygon uses Points.
	Polygon

	// Circle uses Center, Radius and Dir.
	Circle

	// Ellipse uses Center, RX, RY and Dir.
	Ellipse

	// Star uses Center, N, Radius and Inner.
	Star

	// PathData uses D, as SVG path data.
	PathData

	// Text uses Text, Origin and Size.
	Text
)

var shapeKindNames = []string{"", "rect", "polygon", "circle", "ellipse", "star", "path", "text"}

func (k ShapeKind) String() string {
	if k < 0 || int(k) >= len(shapeKindNames) {
		return "ShapeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return shapeKindNames[k]
}

// SetString sets the kind from its lower case name.
func (k *ShapeKind) SetString(s string) error {
	for i, n := range shapeKindNames {
		if i > 0 && n == s {
			*k = ShapeKind(i)
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownShape, s)
}

func (k ShapeKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *ShapeKind) UnmarshalText(text []byte) error { return k.SetString(string(text)) }

// Shape is one filled shape of a [Scene]. Kind selects the fields
// that are used; the others are ignored.
type Shape struct {
	Kind ShapeKind `toml:"kind" yaml:"kind"`

	// Rect is x0, y0, x1, y1.
	Rect [4]float32 `toml:"rect,omitempty" yaml:"rect,omitempty"`

	Points [][2]float32 `toml:"points,omitempty" yaml:"points,omitempty"`

	Center [2]float32 `toml:"center,omitempty" yaml:"center,omitempty"`

	// Radius is the circle radius, or the outer radius of a star.
	Radius float32 `toml:"radius,omitempty" yaml:"radius,omitempty"`

	RX float32 `toml:"rx,omitempty" yaml:"rx,omitempty"`
	RY float32 `toml:"ry,omitempty" yaml:"ry,omitempty"`

	// N is the number of star points.
	N int `toml:"n,omitempty" yaml:"n,omitempty"`

	// Inner is the inner radius of a star; 0 gives a regular polygon.
	Inner float32 `toml:"inner,omitempty" yaml:"inner,omitempty"`

	// Dir is the winding of rects, circles and ellipses,
	// which matters where shapes of one path overlap.
	Dir ppath.Direction `toml:"dir,omitempty" yaml:"dir,omitempty"`

	// D is SVG path data.
	D string `toml:"d,omitempty" yaml:"d,omitempty"`

	Text string `toml:"text,omitempty" yaml:"text,omitempty"`

	// Origin is the start of the text baseline.
	Origin [2]float32 `toml:"origin,omitempty" yaml:"origin,omitempty"`

	// Size is the text em size in pixels.
	Size float32 `toml:"size,omitempty" yaml:"size,omitempty"`

	// Fill is the fill color, black by default.
	Fill string `toml:"fill,omitempty" yaml:"fill,omitempty"`

	// Transform is an SVG transform list applied to the geometry,
	// such as "translate(10,0) rotate(45)".
	Transform string `toml:"transform,omitempty" yaml:"transform,omitempty"`
}

func vec(v [2]float32) math32.Vector2 { return math32.Vec2(v[0], v[1]) }

// Path returns the geometry of the shape, with its transform applied.
func (s *Shape) Path() (*ppath.Path, error) {
	b := ppath.NewBuilder()
	switch s.Kind {
	case Rect:
		b.AddRect(math32.B2(s.Rect[0], s.Rect[1], s.Rect[2], s.Rect[3]), s.Dir)
	case Polygon:
		if len(s.Points) < 3 {
			return nil, fmt.Errorf("polygon needs at least 3 points, got %d", len(s.Points))
		}
		pts := make([]math32.Vector2, len(s.Points))
		for i, p := range s.Points {
			pts[i] = vec(p)
		}
		b.AddPolygon(pts...)
	case Circle:
		if s.Radius <= 0 {
			return nil, fmt.Errorf("circle radius must be positive, got %g", s.Radius)
		}
		b.AddCircle(vec(s.Center), s.Radius, s.Dir)
	case Ellipse:
		if s.RX <= 0 || s.RY <= 0 {
			return nil, fmt.Errorf("ellipse radii must be positive, got %g, %g", s.RX, s.RY)
		}
		b.AddEllipse(vec(s.Center), s.RX, s.RY, s.Dir)
	case Star:
		if s.N < 3 || s.Radius <= 0 {
			return nil, fmt.Errorf("star needs n >= 3 and a positive radius, got %d, %g", s.N, s.Radius)
		}
		inner := s.Inner
		if inner <= 0 {
			inner = s.Radius
		}
		b.AddStarPolygon(vec(s.Center), s.N, s.Radius, inner, true)
	case PathData:
		p, err := ppath.ParseSVGPath(s.D)
		if err != nil {
			return nil, err
		}
		return s.transform(p)
	case Text:
		size := s.Size
		if size <= 0 {
			size = 16
		}
		p, _, err := glyph.Default(size).TextPath(s.Text, vec(s.Origin))
		if err != nil {
			return nil, err
		}
		return s.transform(p)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownShape, s.Kind.String())
	}
	return s.transform(b.Detach())
}

func (s *Shape) transform(p *ppath.Path) (*ppath.Path, error) {
	if s.Transform == "" {
		return p, nil
	}
	m := math32.Identity2()
	if err := m.SetString(s.Transform); err != nil {
		return nil, err
	}
	return p.Transform(m), nil
}

// Color returns the parsed fill color.
func (s *Shape) Color() (color.NRGBA, error) {
	return colorOr(s.Fill, color.NRGBA{A: 0xff})
}
