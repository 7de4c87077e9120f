// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Matrix2 is a 3x2 matrix, used for 2D affine transforms.
// [XX YX XY YY X0 Y0] maps a point (x, y) to
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
//
// which is the same layout as the SVG and PDF transform arrays.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2] matrix.
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns a Matrix2 2D matrix with given translations
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns a Matrix2 scaling matrix by given factors
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{
		x, 0,
		0, y,
		0, 0,
	}
}

// Rotate2D returns a Matrix2 2D matrix with given rotation, specified in radians.
// This uses the standard graphics convention where increasing Y goes _down_
// instead of up, in contrast with the mathematical coordinate system where Y is up.
func Rotate2D(angle float32) Matrix2 {
	s, c := Sincos(angle)
	return Matrix2{
		c, s,
		-s, c,
		0, 0,
	}
}

// Skew2D returns a Matrix2 shear matrix with the given skew factors.
func Skew2D(x, y float32) Matrix2 {
	return Matrix2{
		1, y,
		x, 1,
		0, 0,
	}
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (a Matrix2) IsIdentity() bool {
	return a.XX == 1 && a.YX == 0 && a.XY == 0 && a.YY == 1 && a.X0 == 0 && a.Y0 == 0
}

// Mul returns a*b. When applied to a point, b is applied first.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// MulVector2AsVector multiplies the Vector2 as a vector without adding translations.
// This is for directional vectors and not points.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y
	ty := a.YX*v.X + a.YY*v.Y
	return Vec2(tx, ty)
}

// MulVector2AsPoint multiplies the Vector2 as a point, including adding translations.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y + a.X0
	ty := a.YX*v.X + a.YY*v.Y + a.Y0
	return Vec2(tx, ty)
}

// MapPoints multiplies each point in src as a point and stores the
// result in dst, which may alias src. dst must be at least as long as src.
func (a Matrix2) MapPoints(dst, src []Vector2) {
	for i, p := range src {
		dst[i] = a.MulVector2AsPoint(p)
	}
}

// Translate returns a matrix that translates by (x, y) before applying a.
func (a Matrix2) Translate(x, y float32) Matrix2 {
	return a.Mul(Translate2D(x, y))
}

// Scale returns a matrix that scales by (x, y) before applying a.
func (a Matrix2) Scale(x, y float32) Matrix2 {
	return a.Mul(Scale2D(x, y))
}

// Rotate returns a matrix that rotates by angle (radians) before applying a.
func (a Matrix2) Rotate(angle float32) Matrix2 {
	return a.Mul(Rotate2D(angle))
}

// String returns the SVG transform form of the matrix: "none" for the
// identity, a translate and / or scale for axis-aligned matrices,
// and matrix() otherwise.
func (a Matrix2) String() string {
	if a.IsIdentity() {
		return "none"
	}
	if a.YX != 0 || a.XY != 0 {
		return fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)", a.XX, a.YX, a.XY, a.YY, a.X0, a.Y0)
	}
	var parts []string
	if a.X0 != 0 || a.Y0 != 0 {
		parts = append(parts, fmt.Sprintf("translate(%g,%g)", a.X0, a.Y0))
	}
	if a.XX != 1 || a.YY != 1 {
		parts = append(parts, fmt.Sprintf("scale(%g,%g)", a.XX, a.YY))
	}
	return strings.Join(parts, " ")
}

// SetString sets the matrix from an SVG transform list, such as
// "translate(10,20) scale(2) rotate(45)". Transforms are composed in
// the SVG order: the rightmost one is applied to points first.
// On error the matrix is left as the identity.
func (a *Matrix2) SetString(str string) error {
	*a = Identity2()
	str = strings.TrimSpace(str)
	if str == "" || str == "none" {
		return nil
	}
	m := Identity2()
	for str != "" {
		op, rest, ok := strings.Cut(str, "(")
		if !ok {
			return fmt.Errorf("math32.Matrix2.SetString: missing '(' in %q", str)
		}
		args, tail, ok := strings.Cut(rest, ")")
		if !ok {
			return fmt.Errorf("math32.Matrix2.SetString: missing ')' in %q", str)
		}
		vals, err := parseFloats(args)
		if err != nil {
			return fmt.Errorf("math32.Matrix2.SetString: %w", err)
		}
		op = strings.ToLower(strings.TrimSpace(op))
		t, err := transformFromArgs(op, vals)
		if err != nil {
			return err
		}
		m = m.Mul(t)
		str = strings.TrimLeft(tail, " \t\n,")
	}
	*a = m
	return nil
}

func transformFromArgs(op string, v []float32) (Matrix2, error) {
	want := func(n ...int) error {
		for _, c := range n {
			if len(v) == c {
				return nil
			}
		}
		return fmt.Errorf("math32.Matrix2.SetString: %s takes %v args, got %d", op, n, len(v))
	}
	switch op {
	case "matrix":
		if err := want(6); err != nil {
			return Identity2(), err
		}
		return Matrix2{v[0], v[1], v[2], v[3], v[4], v[5]}, nil
	case "translate":
		if err := want(1, 2); err != nil {
			return Identity2(), err
		}
		if len(v) == 1 {
			return Translate2D(v[0], 0), nil
		}
		return Translate2D(v[0], v[1]), nil
	case "scale":
		if err := want(1, 2); err != nil {
			return Identity2(), err
		}
		if len(v) == 1 {
			return Scale2D(v[0], v[0]), nil
		}
		return Scale2D(v[0], v[1]), nil
	case "rotate":
		if err := want(1, 3); err != nil {
			return Identity2(), err
		}
		r := Rotate2D(DegToRad(v[0]))
		if len(v) == 3 {
			return Translate2D(v[1], v[2]).Mul(r).Mul(Translate2D(-v[1], -v[2])), nil
		}
		return r, nil
	case "skewx":
		if err := want(1); err != nil {
			return Identity2(), err
		}
		return Skew2D(Tan(DegToRad(v[0])), 0), nil
	case "skewy":
		if err := want(1); err != nil {
			return Identity2(), err
		}
		return Skew2D(0, Tan(DegToRad(v[0]))), nil
	}
	return Identity2(), fmt.Errorf("math32.Matrix2.SetString: unknown transform %q", op)
}

func parseFloats(s string) ([]float32, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	vals := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, err
		}
		vals[i] = float32(v)
	}
	return vals, nil
}
