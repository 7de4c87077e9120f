// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerbPoints(t *testing.T) {
	tests := []struct {
		v            Verb
		name         string
		points, next int
	}{
		{Move, "Move", 1, 1},
		{Line, "Line", 1, 2},
		{Quad, "Quad", 2, 3},
		{Cubic, "Cubic", 3, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.v.String())
		assert.Equal(t, tt.points, tt.v.Points())
		assert.Equal(t, tt.next, tt.v.NextPoints())
		assert.LessOrEqual(t, tt.v.NextPoints(), MaxNextPoints)
	}
	assert.Equal(t, "Verb(9)", Verb(9).String())
}

func TestDirection(t *testing.T) {
	var d Direction
	for _, s := range []string{"CCW", "ccw"} {
		assert.NoError(t, d.SetString(s))
		assert.Equal(t, CCW, d)
	}
	for _, s := range []string{"CW", "cw", ""} {
		assert.NoError(t, d.SetString(s))
		assert.Equal(t, CW, d)
	}

	err := d.UnmarshalText([]byte("sideways"))
	var de *DirectionError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, "sideways", de.Name)
	assert.EqualError(t, err, `ppath: unknown direction "sideways"`)

	b, err := CCW.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "CCW", string(b))
	assert.Equal(t, "Direction(5)", Direction(5).String())
}
