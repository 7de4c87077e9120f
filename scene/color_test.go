// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		s    string
		want color.NRGBA
		err  bool
	}{
		{"#ff0000", color.NRGBA{0xff, 0, 0, 0xff}, false},
		{"#0f0", color.NRGBA{0, 0xff, 0, 0xff}, false},
		{"#abc", color.NRGBA{0xaa, 0xbb, 0xcc, 0xff}, false},
		{"#00800080", color.NRGBA{0, 0x80, 0, 0x80}, false},
		{"#0008", color.NRGBA{0, 0, 0, 0x88}, false},
		{" #102030 ", color.NRGBA{0x10, 0x20, 0x30, 0xff}, false},
		{"none", color.NRGBA{}, false},
		{"Transparent", color.NRGBA{}, false},
		{"red", color.NRGBA{}, true},
		{"#12345", color.NRGBA{}, true},
		{"#1234567z", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			c, err := ParseColor(tt.s)
			if tt.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestFormatColor(t *testing.T) {
	assert.Equal(t, "#ff8000", FormatColor(color.NRGBA{0xff, 0x80, 0, 0xff}))
	assert.Equal(t, "#ff800040", FormatColor(color.NRGBA{0xff, 0x80, 0, 0x40}))
	c, err := ParseColor(FormatColor(color.NRGBA{1, 2, 3, 4}))
	assert.NoError(t, err)
	assert.Equal(t, color.NRGBA{1, 2, 3, 4}, c)
}
