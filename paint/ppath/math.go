// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"cogentcore.org/vpath/math32"
)

var (
	// Tolerance is the default maximum deviation from the original path
	// when flattening curves into lines, in path units.
	Tolerance = float32(0.01)

	// PixelTolerance is the maximum deviation of the rasterized path from
	// the original for flattening purposes, in pixels.
	PixelTolerance = float32(0.1)

	//	In C, FLT_EPSILON = 1.19209e-07

	// Epsilon is the smallest number below which we assume the value to be zero.
	// This is to avoid numerical floating point issues.
	Epsilon = float32(1e-7)
)

// Equal returns true if a and b are equal within an absolute
// tolerance of Epsilon.
func Equal(a, b float32) bool {
	// avoid math32.Abs
	if a < b {
		return b-a <= Epsilon
	}
	return a-b <= Epsilon
}

// EqualPoint returns true if a and b are equal within an absolute
// tolerance of Epsilon on both axes.
func EqualPoint(a, b math32.Vector2) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// clampT limits a curve parameter to [0,1], mapping NaN to 0.
func clampT(t float32) float32 {
	if !(t > 0) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// inOpenUnit reports whether t lies strictly inside (0,1).
func inOpenUnit(t float32) bool {
	return 0 < t && t < 1
}

// solveQuadraticFormula returns the real roots of a*x^2 + b*x + c = 0,
// with the smaller one first. Missing roots are NaN.
// When a is (near) zero the linear equation b*x + c = 0 is solved instead.
func solveQuadraticFormula(a, b, c float32) (float32, float32) {
	if Equal(a, 0.0) {
		if Equal(b, 0.0) {
			if Equal(c, 0.0) {
				// all terms disappear, all x satisfy the solution
				return 0.0, math32.NaN()
			}
			// linear term disappears, no solutions
			return math32.NaN(), math32.NaN()
		}
		// quadratic term disappears, solve linear equation
		return -c / b, math32.NaN()
	}

	if Equal(c, 0.0) {
		// no constant term, one solution at zero and one from solving linearly
		if Equal(b, 0.0) {
			return 0.0, math32.NaN()
		}
		if x := -b / a; x < 0.0 {
			return x, 0.0
		}
		return 0.0, -b / a
	}

	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return math32.NaN(), math32.NaN()
	} else if Equal(discriminant, 0.0) {
		return -b / (2.0 * a), math32.NaN()
	}

	// Citardauq formula: compute the root where b and the radical do not
	// cancel, then derive the other from the product of the roots.
	q := math32.Sqrt(discriminant)
	if b < 0.0 {
		// apply sign of b
		q = -q
	}
	x1 := -(b + q) / (2.0 * a)
	x2 := c / (a * x1)
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return x1, x2
}
