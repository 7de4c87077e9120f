// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/vpath/base/errors"
	"cogentcore.org/vpath/base/iox/imagex"
	"cogentcore.org/vpath/scene"
	"github.com/spf13/cobra"
)

// outputName returns out, or the scene file name with the given extension.
func outputName(out, file, ext string) string {
	if out != "" {
		return out
	}
	return strings.TrimSuffix(file, filepath.Ext(file)) + ext
}

func newRenderCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "render <scene>",
		Short: "Render a TOML or YAML scene to an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			img, err := sc.Render()
			if err != nil {
				return err
			}
			fn := outputName(out, args[0], ".png")
			if err := imagex.Save(img, fn); err != nil {
				return errors.Log(err)
			}
			slog.Info("rendered", "scene", args[0], "output", fn, "shapes", len(sc.Shapes))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output image file, as png, jpeg, gif, tiff or bmp (default: scene name with .png)")
	return cmd
}

func newBoundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounds <scene>",
		Short: "Print the exact and control point bounds of each shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			ps, err := sc.Paths()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, p := range ps {
				fmt.Fprintf(w, "%d\t%s\tbounds %v\tcontrol %v\n", i, sc.Shapes[i].Kind, p.Bounds(), p.ControlBounds())
			}
			return nil
		},
	}
}

func newSVGCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "svg <scene>",
		Short: "Write a scene as an SVG document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				return sc.WriteSVG(cmd.OutOrStdout())
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			return sc.WriteSVG(f)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output SVG file (default: standard output)")
	return cmd
}
