// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"cogentcore.org/vpath/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSVGPath(t *testing.T) {
	tests := []struct {
		d   string
		out string
	}{
		{"", ""},
		{"M10 20L30 0", "M10 20L30 0z"},
		{"M10,20 L30,0 Z", "M10 20L30 0z"},
		{"M0 0 10 0 10 10", "M0 0L10 0L10 10z"},
		{"m10 10 l5 0 v5 h-5 z", "M10 10L15 10L15 15L10 15z"},
		{"M10 10H20V30H10", "M10 10L20 10L20 30L10 30z"},
		{"L10 0", "M0 0L10 0z"},
		{"M.5.5L1-2", "M0.5 0.5L1 -2z"},
		{"M1e1 0l-1E-1 0", "M10 0L9.9 0z"},
		{"M0 0Q5 10 10 0T20 0", "M0 0Q5 10 10 0Q15 -10 20 0z"},
		{"M0 0T10 0", "M0 0Q0 0 10 0z"},
		{"M0 0C0 10 10 10 10 0S20 -10 20 0", "M0 0C0 10 10 10 10 0C10 -10 20 -10 20 0z"},
		{"M0 0c0 10 10 10 10 0s10 -10 10 0", "M0 0C0 10 10 10 10 0C10 -10 20 -10 20 0z"},
		{"M0 0S5 5 10 0", "M0 0C0 0 5 5 10 0z"},
		{"M0 0L10 0ZL0 10", "M0 0L10 0zM0 0L0 10z"},
		{"M0 0L10 0zm5 5l1 1", "M0 0L10 0zM5 5L6 6z"},
		{"M1 1M2 2L3 3", "M1 1M2 2L3 3z"},
	}
	for _, tt := range tests {
		t.Run(tt.d, func(t *testing.T) {
			p, err := ParseSVGPath(tt.d)
			require.NoError(t, err)
			assert.Equal(t, tt.out, p.String())
		})
	}
}

func TestParseSVGPathErrors(t *testing.T) {
	tests := []struct {
		d   string
		msg string
	}{
		{"M0 0A10 10 0 0 1 20 20", "arcs are not supported"},
		{"M0", "expected number"},
		{"M0 0L", "expected number"},
		{"M0 0X5", "unknown command"},
		{"10 10", "unknown command"},
		{"M0 0L.e 1", "expected number"},
	}
	for _, tt := range tests {
		t.Run(tt.d, func(t *testing.T) {
			_, err := ParseSVGPath(tt.d)
			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Contains(t, fe.Msg, tt.msg)
		})
	}
	assert.Panics(t, func() { MustParseSVGPath("A") })
}

func TestPathStringRoundTrip(t *testing.T) {
	p := Build(func(b *Builder) {
		b.AddRect(math32.B2(1, 2, 3, 4), CCW)
		b.MoveTo(math32.Vec2(-5, 0.25))
		b.QuadTo(math32.Vec2(2.5, 8), math32.Vec2(7, 7))
		b.CubicTo(math32.Vec2(0, 0), math32.Vec2(-1, -1), math32.Vec2(-0.5, 3))
	})
	s := p.String()
	assert.Equal(t, "M1 2L1 4L3 4L3 2zM-5 0.25Q2.5 8 7 7C0 0 -1 -1 -0.5 3z", s)
	q, err := ParseSVGPath(s)
	require.NoError(t, err)
	// the parser starts a new contour after each z
	assert.Equal(t, p.Points(), q.Points())
	assert.Equal(t, p.Verbs(), q.Verbs())
	assert.Equal(t, "", (*Path)(nil).String())
}

func TestPathStringExact(t *testing.T) {
	p := Build(func(b *Builder) {
		b.AddCircle(math32.Vec2(1.0/3, 0.1), 123.456789, CW)
		b.AddPolygon(math32.Vec2(16777215, -0.7), math32.Vec2(98765.43, 0.0012345))
	})
	q, err := ParseSVGPath(p.String())
	require.NoError(t, err)
	assert.Equal(t, p.Points(), q.Points())
	assert.Equal(t, "M0.33333334 0.1", MustParseSVGPath("M0.33333334 0.1").String())
}
