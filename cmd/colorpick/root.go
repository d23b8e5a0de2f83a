// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/colorpicker/base/errors"
	"cogentcore.org/colorpicker/base/iox/tomlx"
	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/palette"
	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// Config contains the configuration options for colorpick,
// which are read from a TOML file and can be overridden by flags.
type Config struct {

	// Palette is the palette file used by the nearest command.
	// The CSS named colors are used if it is empty.
	Palette string `toml:"palette"`

	// Metric is the distance metric used by the nearest command.
	Metric palette.Metric `toml:"metric"`

	// Swatch is whether to print a color swatch before each color.
	Swatch bool `toml:"swatch"`

	// Copy is whether to copy the hex value of the last
	// printed color to the clipboard.
	Copy bool `toml:"copy"`
}

// app is the state shared by all of the commands.
type app struct {
	cfg        Config
	configFile string
	verbose    bool

	// last is the last color printed, for the clipboard.
	last *colors.Color
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var swatch, copyHex bool
	root := &cobra.Command{
		Use:   "colorpick",
		Short: "Inspect, convert, and transform colors",
		Long: `colorpick parses colors in hex, rgb(), hsl(), and named formats,
prints them in the RGB and HSL color spaces, and transforms, compares,
and matches them against palettes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
			if err := tomlx.OpenFiles(&a.cfg, a.configFile); err != nil {
				return fmt.Errorf("reading config file %q: %w", a.configFile, err)
			}
			slog.Debug("loaded config", "file", a.configFile, "palette", a.cfg.Palette, "metric", a.cfg.Metric)
			if cmd.Flags().Changed("swatch") {
				a.cfg.Swatch = swatch
			}
			if cmd.Flags().Changed("copy") {
				a.cfg.Copy = copyHex
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.cfg.Copy && a.last != nil {
				errors.Log(clipboard.WriteAll(a.last.HexString()))
			}
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "colorpick.toml", "config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "print debug logs")
	pf.BoolVar(&swatch, "swatch", false, "print a color swatch before each color")
	pf.BoolVar(&copyHex, "copy", false, "copy the last color to the clipboard as hex")

	root.AddCommand(
		a.newShowCmd(),
		a.newConvertCmd(),
		a.newHSLCmd(),
		a.newAdjustCmd(),
		a.newDistanceCmd(),
		a.newNearestCmd(),
		a.newRampCmd(),
		a.newPaletteCmd(),
	)
	return root
}

// printColor prints the given color in all of its formats,
// preceded by the given label if it is non-empty.
func (a *app) printColor(w io.Writer, label string, c *colors.Color) {
	line := fmt.Sprintf("%s  %s  %s", c.HexString(), c.RGBString(), c.HSLString())
	if label != "" {
		line = label + "  " + line
	}
	if a.cfg.Swatch {
		out := termenv.NewOutput(w)
		line = out.String("    ").Background(out.Color(c.HexString())).String() + "  " + line
	}
	fmt.Fprintln(w, line)
	a.last = c
}

// parseColors parses all of the given color strings.
func parseColors(args []string) ([]*colors.Color, error) {
	cs := make([]*colors.Color, len(args))
	for i, arg := range args {
		c, err := colors.FromString(arg)
		if err != nil {
			return nil, err
		}
		cs[i] = c
	}
	return cs, nil
}
