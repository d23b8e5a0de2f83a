// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/palette"
	"github.com/spf13/cobra"
)

// adjustments are the transformations applied by the adjust command,
// in the order they are applied.
type adjustments struct {
	lighten, darken      float32
	saturate, desaturate float32
	spin                 float32
	blend                float32
	blendWith            string
	invert               bool
}

func (aj *adjustments) apply(c *colors.Color) (*colors.Color, error) {
	steps := []struct {
		amount float32
		fun    func(c *colors.Color, amount float32) *colors.Color
	}{
		{aj.lighten, colors.Lighten},
		{aj.darken, colors.Darken},
		{aj.saturate, colors.Saturate},
		{aj.desaturate, colors.Desaturate},
		{aj.spin, colors.Spin},
	}
	for _, st := range steps {
		if st.amount != 0 {
			c = st.fun(c, st.amount)
		}
	}
	if aj.blendWith != "" {
		o, err := colors.FromString(aj.blendWith)
		if err != nil {
			return nil, err
		}
		c = colors.Blend(aj.blend, c, o)
	}
	if aj.invert {
		c = colors.Inverse(c)
	}
	return c, nil
}

func (a *app) newAdjustCmd() *cobra.Command {
	aj := &adjustments{}
	cmd := &cobra.Command{
		Use:   "adjust <color>",
		Short: "Transform a color in HSL space",
		Long: `adjust applies, in order: lighten, darken, saturate, desaturate,
spin, blend, and invert. Amounts are absolute HSL percentages, except for
spin, which is in degrees.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colors.FromString(args[0])
			if err != nil {
				return err
			}
			c, err = aj.apply(c)
			if err != nil {
				return err
			}
			a.printColor(cmd.OutOrStdout(), "", c)
			return nil
		},
	}
	f := cmd.Flags()
	f.Float32Var(&aj.lighten, "lighten", 0, "increase lightness by this amount (0-100)")
	f.Float32Var(&aj.darken, "darken", 0, "decrease lightness by this amount (0-100)")
	f.Float32Var(&aj.saturate, "saturate", 0, "increase saturation by this amount (0-100)")
	f.Float32Var(&aj.desaturate, "desaturate", 0, "decrease saturation by this amount (0-100)")
	f.Float32Var(&aj.spin, "spin", 0, "rotate the hue by this many degrees")
	f.Float32Var(&aj.blend, "blend", 50, "percent of the --with color to blend in")
	f.StringVar(&aj.blendWith, "with", "", "color to blend with")
	f.BoolVar(&aj.invert, "invert", false, "invert the color")
	return cmd
}

func (a *app) newNearestCmd() *cobra.Command {
	var file string
	var metric palette.Metric
	cmd := &cobra.Command{
		Use:   "nearest <color>...",
		Short: "Find the nearest palette color to each color",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("palette") {
				file = a.cfg.Palette
			}
			if !cmd.Flags().Changed("metric") {
				metric = a.cfg.Metric
			}
			p, err := a.openPalette(file)
			if err != nil {
				return err
			}
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, c := range cs {
				e, d, ok := p.Nearest(c, metric)
				if !ok {
					return fmt.Errorf("palette %q has no colors", p.Name)
				}
				fmt.Fprintf(w, "%s  %s  %s  %.3f\n", args[i], e.Name, strings.ToLower(e.Color), d)
				a.last = colors.MustFromString(e.Color)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "palette", "p", "", "palette file (.toml, .yaml); default is the CSS named colors")
	cmd.Flags().VarP(&metric, "metric", "m", "distance metric: euclidean or ciede2000")
	return cmd
}
