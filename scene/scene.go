// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene describes images as lists of filled shapes in TOML or
// YAML files, and renders them with [raster.Filler].
package scene

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/vpath/paint/ppath"
	"cogentcore.org/vpath/paint/raster"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a scene file format.
type Format int32

const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "toml"
}

// FormatFromFilename returns the format for the extension of filename:
// .toml, .yaml or .yml.
func FormatFromFilename(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("scene: unknown file format for %q", filename)
}

// Scene is an image of the given size, cleared to Background, with
// Shapes filled in order on top.
type Scene struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	// Background is the clear color, transparent by default.
	Background string `toml:"background,omitempty" yaml:"background,omitempty"`

	// Tolerance, when > 0, flattens curves before rasterizing.
	Tolerance float32 `toml:"tolerance,omitempty" yaml:"tolerance,omitempty"`

	Shapes []Shape `toml:"shapes" yaml:"shapes"`
}

// Load reads a scene file, with the format given by its extension.
func Load(filename string) (*Scene, error) {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	sc, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sc, nil
}

// Parse decodes and validates a scene.
func Parse(data []byte, f Format) (*Scene, error) {
	sc := &Scene{}
	var err error
	switch f {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(sc)
	default:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(sc)
	}
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", f, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// Encode writes the scene in the given format.
func (sc *Scene) Encode(f Format) ([]byte, error) {
	if f == YAML {
		return yaml.Marshal(sc)
	}
	return toml.Marshal(sc)
}

// Validate checks the size, colors and shapes of the scene.
func (sc *Scene) Validate() error {
	if sc.Width <= 0 || sc.Height <= 0 {
		return fmt.Errorf("scene: invalid size %dx%d", sc.Width, sc.Height)
	}
	if _, err := colorOr(sc.Background, color.NRGBA{}); err != nil {
		return err
	}
	for i := range sc.Shapes {
		s := &sc.Shapes[i]
		if _, err := s.Color(); err != nil {
			return fmt.Errorf("scene: shape %d: %w", i, err)
		}
		if _, err := s.Path(); err != nil {
			return fmt.Errorf("scene: shape %d (%s): %w", i, s.Kind, err)
		}
	}
	return nil
}

// Paths returns the path of each shape.
func (sc *Scene) Paths() ([]*ppath.Path, error) {
	ps := make([]*ppath.Path, len(sc.Shapes))
	for i := range sc.Shapes {
		p, err := sc.Shapes[i].Path()
		if err != nil {
			return nil, fmt.Errorf("scene: shape %d (%s): %w", i, sc.Shapes[i].Kind, err)
		}
		ps[i] = p
	}
	return ps, nil
}

// Render fills the shapes into a new image.
func (sc *Scene) Render() (*image.RGBA, error) {
	bg, err := colorOr(sc.Background, color.NRGBA{})
	if err != nil {
		return nil, err
	}
	ps, err := sc.Paths()
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, sc.Width, sc.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	f := &raster.Filler{Tolerance: sc.Tolerance}
	for i, p := range ps {
		c, err := sc.Shapes[i].Color()
		if err != nil {
			return nil, err
		}
		slog.Debug("scene: fill", "shape", i, "kind", sc.Shapes[i].Kind, "bounds", p.Bounds())
		f.Fill(img, p, c)
	}
	return img, nil
}
