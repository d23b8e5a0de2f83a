// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/palette"
	"github.com/spf13/cobra"
)

func (a *app) newRampCmd() *cobra.Command {
	var steps int
	var h, s, l float64
	cmd := &cobra.Command{
		Use:       "ramp hue|lightness|saturation|spaced",
		Short:     "Print a ramp of colors varying one HSL value",
		Long:      `ramp prints colors varying the named HSL value, holding the others at the values given by --hue, --saturation, and --lightness. A spaced ramp varies the hue in a binary spaced order.`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"hue", "lightness", "saturation", "spaced"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("steps must be at least 1, not %d", steps)
			}
			var cs []*colors.Color
			switch args[0] {
			case "hue":
				cs = palette.HueRamp(steps, s, l)
			case "lightness":
				cs = palette.LightnessRamp(h, s, steps)
			case "saturation":
				cs = palette.SaturationRamp(h, l, steps)
			case "spaced":
				var err error
				cs, err = palette.SpacedList(steps, s, l).Colors()
				if err != nil {
					return err
				}
			}
			for i, c := range cs {
				a.printColor(cmd.OutOrStdout(), fmt.Sprintf("%3d", i), c)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&steps, "steps", "n", 12, "number of colors")
	f.Float64Var(&h, "hue", 0, "hue (0-360)")
	f.Float64Var(&s, "saturation", 100, "saturation (0-100)")
	f.Float64Var(&l, "lightness", 50, "lightness (0-100)")
	return cmd
}
