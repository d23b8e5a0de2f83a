// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"github.com/chewxy/math32"
)

// hslf is an unrounded float32 HSL color, used as the
// working space for the transformation functions.
type hslf struct {
	H, S, L float32
}

// toHSLF returns the unrounded HSL values of the given color.
func toHSLF(c *Color) hslf {
	h, s, l := RGBToHSL(float64(c.rgb[0]), float64(c.rgb[1]), float64(c.rgb[2]))
	return hslf{float32(h), float32(s), float32(l)}
}

// color returns the color corresponding to h, clamping S and L.
func (h hslf) color() *Color {
	h.S = clamp32(h.S, 0, SaturationMax)
	h.L = clamp32(h.L, 0, LightnessMax)
	return FromHSL(float64(h.H), float64(h.S), float64(h.L))
}

func clamp32(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(v, hi))
}

// Lighten returns a color that is lighter by the
// given absolute HSL lightness amount (0-100, ranges enforced)
func Lighten(c *Color, amount float32) *Color {
	h := toHSLF(c)
	h.L += amount
	return h.color()
}

// Darken returns a color that is darker by the
// given absolute HSL lightness amount (0-100, ranges enforced)
func Darken(c *Color, amount float32) *Color {
	h := toHSLF(c)
	h.L -= amount
	return h.color()
}

// Highlight returns a color that is lighter or darker by the
// given absolute HSL lightness amount (0-100, ranges enforced),
// making the color darker if it is light (lightness >= 50) and
// lighter otherwise. It is the opposite of [Samelight].
func Highlight(c *Color, amount float32) *Color {
	h := toHSLF(c)
	if h.L >= LightnessMax/2 {
		h.L -= amount
	} else {
		h.L += amount
	}
	return h.color()
}

// Samelight returns a color that is lighter or darker by the
// given absolute HSL lightness amount (0-100, ranges enforced),
// making the color lighter if it is light (lightness >= 50) and
// darker otherwise. It is the opposite of [Highlight].
func Samelight(c *Color, amount float32) *Color {
	h := toHSLF(c)
	if h.L >= LightnessMax/2 {
		h.L += amount
	} else {
		h.L -= amount
	}
	return h.color()
}

// Saturate returns a color that is more saturated by the
// given absolute HSL saturation amount (0-100, ranges enforced)
func Saturate(c *Color, amount float32) *Color {
	h := toHSLF(c)
	h.S += amount
	return h.color()
}

// Desaturate returns a color that is less saturated by the
// given absolute HSL saturation amount (0-100, ranges enforced)
func Desaturate(c *Color, amount float32) *Color {
	h := toHSLF(c)
	h.S -= amount
	return h.color()
}

// Spin returns a color that has a different hue by the given
// amount in degrees, wrapping around the hue circle.
func Spin(c *Color, amount float32) *Color {
	h := toHSLF(c)
	h.H = math32.Mod(h.H+amount, HueMax)
	if h.H < 0 {
		h.H += HueMax
	}
	return h.color()
}

// IsLight returns whether the given color is light
// (has an HSL lightness greater than or equal to 60)
func IsLight(c *Color) bool {
	return toHSLF(c).L >= 60
}

// IsDark returns whether the given color is dark
// (has an HSL lightness less than 60)
func IsDark(c *Color) bool {
	return !IsLight(c)
}

// ContrastColor returns the color that should
// be used to contrast this color (white or black),
// based on the result of [IsLight].
func ContrastColor(c *Color) *Color {
	if IsLight(c) {
		return New(0, 0, 0)
	}
	return New(ChannelMax, ChannelMax, ChannelMax)
}

// Inverse returns the inverse of the given color
// (255 - each channel).
func Inverse(c *Color) *Color {
	return New(float64(ChannelMax-c.rgb[0]), float64(ChannelMax-c.rgb[1]), float64(ChannelMax-c.rgb[2]))
}

// Blend returns a color that is the given percent blend between the first
// and second color; 10 = 10% of the second and 90% of the first, etc.
// Blending is done directly on the RGB channels.
func Blend(pct float32, x, y *Color) *Color {
	pct = clamp32(pct, 0, 100)
	oth := pct / 100
	me := 1 - oth
	var rgb [3]float64
	for i := range rgb {
		rgb[i] = float64(me*float32(x.rgb[i]) + oth*float32(y.rgb[i]))
	}
	return New(rgb[0], rgb[1], rgb[2])
}
