// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pathdraw renders and inspects vector path scenes.
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/vpath/base/logx"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var vv, v, q bool
	root := &cobra.Command{
		Use:          "pathdraw",
		Short:        "Render and inspect vector path scenes",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			slog.SetDefault(logx.NewLogger(cmd.ErrOrStderr()))
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&vv, "vv", false, "show debug messages")
	pf.BoolVarP(&v, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&q, "quiet", "q", false, "only show errors")
	root.AddCommand(newRenderCmd(), newBoundsCmd(), newSVGCmd(), newChopCmd())
	return root
}
