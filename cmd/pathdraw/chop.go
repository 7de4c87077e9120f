// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/vpath/base/iox/imagex"
	"cogentcore.org/vpath/math32"
	"cogentcore.org/vpath/paint/ppath"
	"cogentcore.org/vpath/paint/raster"
	"github.com/spf13/cobra"
)

func newChopCmd() *cobra.Command {
	var t float32
	var out string
	var size int
	cmd := &cobra.Command{
		Use:   "chop <x,y>...",
		Short: "Split a quadratic (3 points) or cubic (4 points) Bézier curve and show its bounds",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			pts := make([]math32.Vector2, len(args))
			for i, a := range args {
				p, err := parsePoint(a)
				if err != nil {
					return err
				}
				pts[i] = p
			}
			c := newCurve(pts)
			c.chop(t)
			c.print(cmd.OutOrStdout(), t)
			if out == "" {
				return nil
			}
			return imagex.Save(c.draw(size), out)
		},
	}
	cmd.Flags().Float32VarP(&t, "at", "t", 0.5, "parameter to split at, clamped to [0, 1]")
	cmd.Flags().StringVarP(&out, "output", "o", "", "also draw the curve into this image file")
	cmd.Flags().IntVar(&size, "size", 256, "image size in pixels")
	return cmd
}

// parsePoint parses "x,y".
func parsePoint(s string) (math32.Vector2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return math32.Vector2{}, fmt.Errorf("point %q is not x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return math32.Vector2{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return math32.Vector2{}, fmt.Errorf("point %q: %w", s, err)
	}
	return math32.Vec2(float32(x), float32(y)), nil
}

// curve is a quadratic or cubic Bézier and its two halves.
type curve struct {
	pts    []math32.Vector2
	first  []math32.Vector2
	second []math32.Vector2
	path   *ppath.Path
}

func newCurve(pts []math32.Vector2) *curve {
	c := &curve{pts: pts}
	c.path = ppath.Build(func(b *ppath.Builder) {
		b.MoveTo(pts[0])
		if len(pts) == 3 {
			b.QuadTo(pts[1], pts[2])
		} else {
			b.CubicTo(pts[1], pts[2], pts[3])
		}
	})
	return c
}

func (c *curve) chop(t float32) {
	if len(c.pts) == 3 {
		d := ppath.ChopQuadAt([3]math32.Vector2(c.pts), t)
		c.first, c.second = d[0:3], d[2:5]
		return
	}
	d := ppath.ChopCubicAt([4]math32.Vector2(c.pts), t)
	c.first, c.second = d[0:4], d[3:7]
}

func (c *curve) print(w io.Writer, t float32) {
	kind := "cubic"
	if len(c.pts) == 3 {
		kind = "quad"
	}
	fmt.Fprintf(w, "%s %v t=%g\n", kind, c.pts, t)
	fmt.Fprintf(w, "first %v\n", c.first)
	fmt.Fprintf(w, "second %v\n", c.second)
	fmt.Fprintf(w, "bounds %v\n", c.path.Bounds())
	fmt.Fprintf(w, "control %v\n", c.path.ControlBounds())
}

// draw renders the region enclosed by the curve and its chord, a
// frame around its exact bounds, the control points in blue and the
// split point in red, scaled to fit a size x size image.
func (c *curve) draw(size int) *image.RGBA {
	const margin = 16
	cb := c.path.ControlBounds()
	ext := math32.Max(cb.Size().X, cb.Size().Y)
	sc := float32(1)
	if ext > 0 {
		sc = (float32(size) - 2*margin) / ext
	}
	m := math32.Translate2D(margin, margin).Scale(sc, sc).Translate(-cb.Min.X, -cb.Min.Y)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	f := &raster.Filler{}

	f.Fill(img, c.path.Transform(m), color.NRGBA{0x80, 0x80, 0x80, 0x60})

	// a one pixel frame is a rect with a reversed rect inside
	bb := c.path.Bounds().MulMatrix2(m)
	frame := ppath.Build(func(b *ppath.Builder) {
		b.AddRect(math32.B2(bb.Min.X-1, bb.Min.Y-1, bb.Max.X+1, bb.Max.Y+1), ppath.CW)
		b.AddRect(bb, ppath.CCW)
	})
	f.Fill(img, frame, color.NRGBA{0, 0x80, 0, 0xff})

	dots := ppath.Build(func(b *ppath.Builder) {
		for _, p := range c.pts {
			b.AddCircle(m.MulVector2AsPoint(p), 3, ppath.CW)
		}
	})
	f.Fill(img, dots, color.NRGBA{0, 0, 0xff, 0xff})
	split := ppath.Build(func(b *ppath.Builder) {
		b.AddCircle(m.MulVector2AsPoint(c.second[0]), 4, ppath.CW)
	})
	f.Fill(img, split, color.NRGBA{0xff, 0, 0, 0xff})
	return img
}
