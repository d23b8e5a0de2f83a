// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"cogentcore.org/colorpicker/colors"
	"github.com/spf13/cobra"
)

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <color>...",
		Short: "Print colors in hex, RGB, and HSL",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			for i, c := range cs {
				a.printColor(cmd.OutOrStdout(), args[i], c)
			}
			return nil
		},
	}
}

func (a *app) newConvertCmd() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert <color>...",
		Short: "Convert colors to a single format",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var format func(c *colors.Color) string
			switch to {
			case "hex":
				format = (*colors.Color).HexString
			case "rgb":
				format = (*colors.Color).RGBString
			case "hsl":
				format = (*colors.Color).HSLString
			default:
				return fmt.Errorf("unknown format %q; must be hex, rgb, or hsl", to)
			}
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			for _, c := range cs {
				fmt.Fprintln(cmd.OutOrStdout(), format(c))
				a.last = c
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&to, "to", "t", "hex", "output format: hex, rgb, or hsl")
	return cmd
}

func (a *app) newHSLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hsl <hue> <saturation> <lightness>",
		Short: "Print the color with the given HSL values",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v [3]float64
			for i, arg := range args {
				f, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid HSL value %q: %w", arg, err)
				}
				v[i] = f
			}
			a.printColor(cmd.OutOrStdout(), "", colors.FromHSL(v[0], v[1], v[2]))
			return nil
		},
	}
}

func (a *app) newDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <color> <color>",
		Short: "Print the RGB and perceptual distances between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "euclidean  %.3f\n", cs[0].Distance(cs[1]))
			fmt.Fprintf(w, "ciede2000  %.4f\n", cs[0].DeltaE(cs[1]))
			return nil
		},
	}
}
