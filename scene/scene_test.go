// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/vpath/base/iox/imagex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	ts, err := Load(filepath.Join("testdata", "scene.toml"))
	require.NoError(t, err)
	ys, err := Load(filepath.Join("testdata", "scene.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ts, ys)

	assert.Equal(t, 64, ts.Width)
	assert.Equal(t, 48, ts.Height)
	require.Len(t, ts.Shapes, 5)
	assert.Equal(t, Rect, ts.Shapes[0].Kind)
	assert.Equal(t, Star, ts.Shapes[3].Kind)
	assert.Equal(t, "translate(1, 0)", ts.Shapes[3].Transform)
	assert.Equal(t, PathData, ts.Shapes[4].Kind)

	_, err = Load(filepath.Join("testdata", "scene.json"))
	assert.ErrorContains(t, err, "unknown file format")
	_, err = Load(filepath.Join("testdata", "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		f    Format
		msg  string
	}{
		{"toml-kind", "width = 1\nheight = 1\n[[shapes]]\nkind = \"blob\"\n", TOML, "unknown shape kind"},
		{"yaml-kind", "width: 1\nheight: 1\nshapes:\n  - kind: blob\n", YAML, "unknown shape kind"},
		{"missing-kind", "width: 1\nheight: 1\nshapes:\n  - fill: \"#fff\"\n", YAML, "unknown shape kind"},
		{"size", "width = 0\nheight = 1\n", TOML, "invalid size"},
		{"background", "width: 1\nheight: 1\nbackground: pink\n", YAML, "invalid color"},
		{"fill", "width = 1\nheight = 1\n[[shapes]]\nkind = \"rect\"\nfill = \"#zzz\"\n", TOML, "shape 0"},
		{"toml-field", "width = 1\nheight = 1\ncolour = \"#fff\"\n", TOML, "toml"},
		{"yaml-field", "width: 1\nheight: 1\ncolour: \"#fff\"\n", YAML, "colour"},
		{"dir", "width: 1\nheight: 1\nshapes:\n  - kind: rect\n    dir: up\n", YAML, "unknown direction"},
		{"path", "width: 1\nheight: 1\nshapes:\n  - kind: path\n    d: M0 0 A\n", YAML, "arcs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.f)
			assert.ErrorContains(t, err, tt.msg)
		})
	}

	_, err := Parse([]byte("width: 1\nheight: 1\nshapes:\n  - kind: blob\n"), YAML)
	assert.ErrorIs(t, err, ErrUnknownShape)
	_, err = Parse([]byte("width: 1\nheight: 1\nshapes:\n  - {}\n"), YAML)
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func TestEncode(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "scene.toml"))
	require.NoError(t, err)
	for _, f := range []Format{TOML, YAML} {
		t.Run(f.String(), func(t *testing.T) {
			data, err := sc.Encode(f)
			require.NoError(t, err)
			sc2, err := Parse(data, f)
			require.NoError(t, err)
			assert.Equal(t, sc, sc2)
		})
	}
}

func TestRender(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "scene.toml"))
	require.NoError(t, err)
	img, err := sc.Render()
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())

	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	assert.Equal(t, white, img.RGBAAt(0, 0))
	assert.Equal(t, white, img.RGBAAt(62, 2))
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, img.RGBAAt(10, 10))
	assert.Equal(t, color.RGBA{0, 0, 0xff, 0xff}, img.RGBAAt(44, 14))
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, img.RGBAAt(47, 36))
	assert.Equal(t, color.RGBA{0, 0xff, 0, 0xff}, img.RGBAAt(31, 3))

	// half transparent green over white
	c := img.RGBAAt(16, 40)
	assert.InDelta(t, 0x7f, c.R, 2)
	assert.InDelta(t, 0x7f, c.B, 2)
	assert.Greater(t, c.G, c.R)

	imagex.Assert(t, img, "scene")

	flat := *sc
	flat.Tolerance = 0.1
	img2, err := flat.Render()
	require.NoError(t, err)
	assert.Equal(t, img.RGBAAt(44, 14), img2.RGBAAt(44, 14))
}
