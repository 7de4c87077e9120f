// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"strconv"
	"strings"

	"cogentcore.org/vpath/math32"
	parse "github.com/tdewolff/parse/v2/strconv"
)

// String returns the path as SVG path data, with absolute commands
// and a z after each contour that has segments, since every contour
// of a [Path] is filled as closed.
func (p *Path) String() string {
	sb := strings.Builder{}
	open := false
	for v, pts := range p.Segments() {
		switch v {
		case Move:
			if open {
				sb.WriteString("z")
			}
			open = false
			sb.WriteString("M")
			writePoint(&sb, pts[0])
		case Line:
			sb.WriteString("L")
			writePoint(&sb, pts[1])
		case Quad:
			sb.WriteString("Q")
			writePoint(&sb, pts[1])
			sb.WriteString(" ")
			writePoint(&sb, pts[2])
		case Cubic:
			sb.WriteString("C")
			writePoint(&sb, pts[1])
			sb.WriteString(" ")
			writePoint(&sb, pts[2])
			sb.WriteString(" ")
			writePoint(&sb, pts[3])
		}
		if v != Move {
			open = true
		}
	}
	if open {
		sb.WriteString("z")
	}
	return sb.String()
}

func writePoint(sb *strings.Builder, p math32.Vector2) {
	sb.WriteString(num(p.X))
	sb.WriteString(" ")
	sb.WriteString(num(p.Y))
}

// num formats f with the fewest digits that parse back to the same float32.
func num(f float32) string {
	if f == 0 {
		// avoid -0
		return "0"
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// MustParseSVGPath parses an SVG path data string into a path,
// and panics on error.
func MustParseSVGPath(s string) *Path {
	p, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseSVGPath parses an SVG path data string into a path.
// It supports the M, L, H, V, Q, T, C, S and Z commands in both
// absolute and relative forms. Arcs (A) are not supported.
// A path that does not start with a move starts at the origin, and
// a command after Z continues from the start of the closed contour.
func ParseSVGPath(s string) (*Path, error) {
	sp := svgParser{s: s}
	return sp.parse()
}

type svgParser struct {
	s string
	i int

	b       Builder
	cur     math32.Vector2
	start   math32.Vector2
	lastCtl math32.Vector2 // reflected by S and T
	lastCmd byte
	inPath  bool
}

func (sp *svgParser) errorf(msg string) error {
	return &FormatError{Index: sp.i, Msg: msg}
}

func (sp *svgParser) skipSpace() {
	for sp.i < len(sp.s) {
		switch sp.s[sp.i] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			sp.i++
		default:
			return
		}
	}
}

// number scans one SVG number, which may directly follow the previous
// one without separator, as in "1.5.5" or "1-2".
func (sp *svgParser) number() (float32, error) {
	sp.skipSpace()
	f, n := parse.ParseFloat([]byte(sp.s[sp.i:]))
	if n == 0 {
		return 0, sp.errorf("expected number")
	}
	sp.i += n
	return float32(f), nil
}

func (sp *svgParser) point(rel bool) (math32.Vector2, error) {
	x, err := sp.number()
	if err != nil {
		return math32.Vector2{}, err
	}
	y, err := sp.number()
	if err != nil {
		return math32.Vector2{}, err
	}
	p := math32.Vec2(x, y)
	if rel {
		p = p.Add(sp.cur)
	}
	return p, nil
}

// hasNumber reports whether another number follows, for implicitly
// repeated commands.
func (sp *svgParser) hasNumber() bool {
	sp.skipSpace()
	if sp.i >= len(sp.s) {
		return false
	}
	c := sp.s[sp.i]
	return (c >= '0' && c <= '9') || c == '.' || c == '+' || c == '-'
}

// ensureContour starts a contour at the current point if the
// previous one was closed or nothing has been started.
func (sp *svgParser) ensureContour() {
	if !sp.inPath {
		sp.b.MoveTo(sp.cur)
		sp.start = sp.cur
		sp.inPath = true
	}
}

func (sp *svgParser) parse() (*Path, error) {
	sp.skipSpace()
	for sp.i < len(sp.s) {
		c := sp.s[sp.i]
		cmd := c | 0x20 // lower case
		if !strings.ContainsRune("mlhvqtcsz", rune(cmd)) {
			if c == 'A' || c == 'a' {
				return nil, sp.errorf("arcs are not supported")
			}
			return nil, sp.errorf("unknown command " + strconv.QuoteRune(rune(c)))
		}
		rel := c >= 'a'
		sp.i++
		if err := sp.command(cmd, rel); err != nil {
			return nil, err
		}
		sp.skipSpace()
	}
	return sp.b.Detach(), nil
}

func (sp *svgParser) command(cmd byte, rel bool) error {
	if cmd == 'z' {
		if sp.inPath {
			sp.cur = sp.start
			sp.inPath = false
		}
		sp.lastCmd = cmd
		return nil
	}
	first := true
	for first || sp.hasNumber() {
		if err := sp.segment(cmd, rel, first); err != nil {
			return err
		}
		first = false
	}
	return nil
}

func (sp *svgParser) segment(cmd byte, rel, first bool) error {
	switch cmd {
	case 'm':
		p, err := sp.point(rel)
		if err != nil {
			return err
		}
		if first {
			sp.b.MoveTo(p)
			sp.start = p
			sp.inPath = true
		} else {
			// further pairs after a move are lines
			sp.ensureContour()
			sp.b.LineTo(p)
		}
		sp.cur = p
	case 'l':
		p, err := sp.point(rel)
		if err != nil {
			return err
		}
		sp.ensureContour()
		sp.b.LineTo(p)
		sp.cur = p
	case 'h', 'v':
		f, err := sp.number()
		if err != nil {
			return err
		}
		p := sp.cur
		switch {
		case cmd == 'h' && rel:
			p.X += f
		case cmd == 'h':
			p.X = f
		case rel:
			p.Y += f
		default:
			p.Y = f
		}
		sp.ensureContour()
		sp.b.LineTo(p)
		sp.cur = p
	case 'q', 't':
		var c math32.Vector2
		if cmd == 'q' {
			var err error
			if c, err = sp.point(rel); err != nil {
				return err
			}
		} else {
			c = sp.reflect('q', 't')
		}
		e, err := sp.point(rel)
		if err != nil {
			return err
		}
		sp.ensureContour()
		sp.b.QuadTo(c, e)
		sp.lastCtl = c
		sp.cur = e
	case 'c', 's':
		var c1 math32.Vector2
		if cmd == 'c' {
			var err error
			if c1, err = sp.point(rel); err != nil {
				return err
			}
		} else {
			c1 = sp.reflect('c', 's')
		}
		c2, err := sp.point(rel)
		if err != nil {
			return err
		}
		e, err := sp.point(rel)
		if err != nil {
			return err
		}
		sp.ensureContour()
		sp.b.CubicTo(c1, c2, e)
		sp.lastCtl = c2
		sp.cur = e
	}
	sp.lastCmd = cmd
	return nil
}

// reflect returns the reflection of the last control point about the
// current point when the previous command was one of the given curve
// commands, and the current point otherwise.
func (sp *svgParser) reflect(cmds ...byte) math32.Vector2 {
	for _, c := range cmds {
		if sp.lastCmd == c {
			return sp.cur.MulScalar(2).Sub(sp.lastCtl)
		}
	}
	return sp.cur
}
