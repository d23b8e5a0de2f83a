// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"math/bits"

	"cogentcore.org/colorpicker/colors"
	"golang.org/x/image/colornames"
)

// CSS returns a palette containing all of the CSS standard named colors,
// in alphabetical order.
func CSS() *Palette {
	p := New("css")
	for _, nm := range colornames.Names {
		p.Add(nm, colors.FromColor(colornames.Map[nm]))
	}
	return p
}

// BinarySpacedNumber returns a floating point number in the 0-1 range based on the
// binary representation of the given input number, such that the biggest differences
// are in the lowest-order bits, with progressively smaller differences for higher powers.
// 0 = 0; 1 = 0.5; 2 = 0.25; 3 = 0.75; 4 = 0.125; 5 = 0.625...
func BinarySpacedNumber(idx int) float64 {
	if idx <= 0 {
		return 0
	}
	rv := 0.0
	for i := 0; i < bits.Len(uint(idx)); i++ {
		pbase := 1 << i
		base := 1 << (i + 1)
		dv := (idx % base) / pbase
		rv += float64(dv) / float64(base)
	}
	return rv
}

// Spaced returns a maximally widely spaced sequence of colors
// for progressive values of the index, varying the hue with
// the given saturation and lightness. This is useful, for
// example, for assigning colors in graphs.
func Spaced(idx int, s, l float64) *colors.Color {
	return colors.FromHSL(colors.HueMax*BinarySpacedNumber(idx), s, l)
}

// SpacedList returns a palette of the first n [Spaced] colors.
func SpacedList(n int, s, l float64) *Palette {
	p := New("spaced")
	for i := 0; i < n; i++ {
		p.Add(fmt.Sprintf("spaced-%d", i), Spaced(i, s, l))
	}
	return p
}

// HueRamp returns n colors with evenly spaced hues around the hue
// circle, starting at 0, with the given saturation and lightness.
func HueRamp(n int, s, l float64) []*colors.Color {
	cs := make([]*colors.Color, n)
	for i := range cs {
		cs[i] = colors.FromHSL(colors.HueMax*float64(i)/float64(n), s, l)
	}
	return cs
}

// LightnessRamp returns n colors with the given hue and saturation and
// lightness evenly spaced from 0 to 100 inclusive.
func LightnessRamp(h, s float64, n int) []*colors.Color {
	cs := make([]*colors.Color, n)
	for i := range cs {
		cs[i] = colors.FromHSL(h, s, rampStep(i, n, colors.LightnessMax))
	}
	return cs
}

// SaturationRamp returns n colors with the given hue and lightness and
// saturation evenly spaced from 0 to 100 inclusive.
func SaturationRamp(h, l float64, n int) []*colors.Color {
	cs := make([]*colors.Color, n)
	for i := range cs {
		cs[i] = colors.FromHSL(h, rampStep(i, n, colors.SaturationMax), l)
	}
	return cs
}

// rampStep returns the value of step i of n from 0 to mx inclusive.
// A single step is at the midpoint.
func rampStep(i, n int, mx float64) float64 {
	if n == 1 {
		return mx / 2
	}
	return mx * float64(i) / float64(n-1)
}
