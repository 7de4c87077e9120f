// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"
)

// WriteSVG writes the scene as an SVG document with one path
// element per shape.
func (sc *Scene) WriteSVG(w io.Writer) error {
	ps, err := sc.Paths()
	if err != nil {
		return err
	}
	bg, err := colorOr(sc.Background, color.NRGBA{})
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n", sc.Width, sc.Height, sc.Width, sc.Height)
	if bg.A != 0 {
		fmt.Fprintf(bw, "<rect width=\"%d\" height=\"%d\"%s/>\n", sc.Width, sc.Height, fillAttrs(bg))
	}
	for i, p := range ps {
		if p.Empty() {
			continue
		}
		c, err := sc.Shapes[i].Color()
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "<path d=\"%s\"%s/>\n", p.String(), fillAttrs(c))
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

func fillAttrs(c color.NRGBA) string {
	opaque := c
	opaque.A = 0xff
	s := " fill=\"" + FormatColor(opaque) + "\""
	if c.A != 0xff {
		s += " fill-opacity=\"" + strconv.FormatFloat(float64(c.A)/255, 'g', 3, 64) + "\""
	}
	return s
}
