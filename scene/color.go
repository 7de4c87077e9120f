// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a hex color in #rgb, #rgba, #rrggbb or #rrggbbaa
// form, or one of the names "none" and "transparent".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "none", "transparent":
		return color.NRGBA{}, nil
	}
	base, alpha := s, uint8(0xff)
	switch len(s) {
	case 5:
		a, err := strconv.ParseUint(s[4:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("scene: invalid color %q", s)
		}
		base, alpha = s[:4], uint8(a*0x11)
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("scene: invalid color %q", s)
		}
		base, alpha = s[:7], uint8(a)
	}
	if len(base) != 4 && len(base) != 7 {
		return color.NRGBA{}, fmt.Errorf("scene: invalid color %q", s)
	}
	c, err := colorful.Hex(base)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("scene: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{r, g, b, alpha}, nil
}

// FormatColor returns c as #rrggbb, or #rrggbbaa when it is not opaque.
func FormatColor(c color.NRGBA) string {
	h := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
	if c.A == 0xff {
		return h
	}
	return fmt.Sprintf("%s%02x", h, c.A)
}

// colorOr parses s, returning def when s is empty.
func colorOr(s string, def color.NRGBA) (color.NRGBA, error) {
	if s == "" {
		return def, nil
	}
	return ParseColor(s)
}
