// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "math"

const (
	// ChannelMin is the minimum value of an RGB channel.
	ChannelMin = 0

	// ChannelMax is the maximum value of an RGB channel.
	ChannelMax = 255

	// HueMax is the maximum value of the HSL hue, in degrees.
	HueMax = 360

	// SaturationMax is the maximum value of the HSL saturation, in percent.
	SaturationMax = 100

	// LightnessMax is the maximum value of the HSL lightness, in percent.
	LightnessMax = 100
)

// RGBToHSL converts the given RGB channel values (0-255) into
// HSL values, with hue in the range 0-360 and saturation and
// lightness in the range 0-100. The results are not rounded.
// Achromatic colors have a hue and saturation of 0.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	r /= ChannelMax
	g /= ChannelMax
	b /= ChannelMax

	mx := max(r, g, b)
	mn := min(r, g, b)
	d := mx - mn
	l = (mx + mn) / 2

	if d == 0 {
		return 0, 0, l * LightnessMax
	}

	if l > 0.5 {
		s = d / (2 - mx - mn)
	} else {
		s = d / (mx + mn)
	}

	// ties go to red, then green
	switch mx {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6

	return h * HueMax, s * SaturationMax, l * LightnessMax
}

// HSLToRGB converts the given HSL values (hue 0-360, saturation
// and lightness 0-100) into RGB channel values, each rounded to
// the nearest integer and clamped to 0-255.
func HSLToRGB(h, s, l float64) (r, g, b uint8) {
	h /= HueMax
	s /= SaturationMax
	l /= LightnessMax

	if s == 0 {
		v := clampChannel(math.Round(l * ChannelMax))
		return v, v, v
	}

	var t2 float64
	if l < 0.5 {
		t2 = l * (1 + s)
	} else {
		t2 = l + s - l*s
	}
	t1 := 2*l - t2

	r = clampChannel(math.Round(hueToRGB(t1, t2, h+1.0/3) * ChannelMax))
	g = clampChannel(math.Round(hueToRGB(t1, t2, h) * ChannelMax))
	b = clampChannel(math.Round(hueToRGB(t1, t2, h-1.0/3) * ChannelMax))
	return
}

// hueToRGB returns the normalized value of one RGB channel for the
// given hue h, offset for the channel by the caller.
func hueToRGB(t1, t2, h float64) float64 {
	if h < 0 {
		h++
	}
	if h > 1 {
		h--
	}
	switch {
	case h < 1.0/6:
		return t1 + (t2-t1)*6*h
	case h < 1.0/2:
		return t2
	case h < 2.0/3:
		return t1 + (t2-t1)*(2.0/3-h)*6
	}
	return t1
}

// isFinite returns whether v is neither NaN nor an infinity.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// clampChannel converts v into an 8-bit channel value. Values out of
// range are clamped, non-finite values become 0, and fractional values
// are rounded half to even.
func clampChannel(v float64) uint8 {
	switch {
	case !isFinite(v):
		return ChannelMin
	case v <= ChannelMin:
		return ChannelMin
	case v >= ChannelMax:
		return ChannelMax
	}
	return uint8(math.RoundToEven(v))
}

// clampHSL converts v into an HSL component bounded by mx. Values out
// of range are clamped, non-finite values become 0, and fractional
// values are truncated.
func clampHSL(v float64, mx uint16) uint16 {
	switch {
	case !isFinite(v):
		return 0
	case v <= 0:
		return 0
	case v >= float64(mx):
		return mx
	}
	return uint16(v)
}
