// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides a color type that holds a color in both
// the RGB and HSL color spaces at once, keeping the two in sync
// whenever either one is changed, along with conversion, parsing,
// formatting, and transformation functions.
package colors

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"cogentcore.org/colorpicker/base/errors"
)

// ErrBufferShape is returned when a value supplied as an RGB or HSL
// buffer does not have three channels of the required type.
var ErrBufferShape = errors.New("colors: wrong buffer shape")

// RGB contains the red, green, and blue channels of a color (0-255).
type RGB [3]uint8

// HSL contains the hue (0-360), saturation (0-100),
// and lightness (0-100) of a color.
type HSL [3]uint16

// Color is a color represented simultaneously in the RGB and HSL color
// spaces. Setting any channel of one space recomputes the other space
// from scratch, so both always describe the same color. The zero value
// is black.
//
// A Color is not safe for concurrent use; callers that share one
// must serialize writes. Copy a Color with [Color.Clone].
type Color struct {
	rgb RGB
	hsl HSL
}

// New returns a new color with the given RGB channel values,
// which are clamped to 0-255. Non-finite values become 0.
func New(r, g, b float64) *Color {
	c := &Color{}
	c.rgb = RGB{clampChannel(r), clampChannel(g), clampChannel(b)}
	c.updateHSL()
	return c
}

// FromHSL returns a new color from the given hue (0-360),
// saturation (0-100), and lightness (0-100).
func FromHSL(h, s, l float64) *Color {
	r, g, b := HSLToRGB(h, s, l)
	return New(float64(r), float64(g), float64(b))
}

// FromColor returns a new color from the given standard [color.Color].
// Any alpha is discarded after removing the alpha premultiplication.
func FromColor(c color.Color) *Color {
	if cc, ok := c.(*Color); ok {
		return cc.Clone()
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return New(float64(n.R), float64(n.G), float64(n.B))
}

// Model is the [color.Model] for converting colors to [*Color] values.
var Model color.Model = color.ModelFunc(colorModel)

func colorModel(c color.Color) color.Color {
	if _, ok := c.(*Color); ok {
		return c
	}
	return FromColor(c)
}

// Clone returns a copy of the color that shares no state with it.
func (c *Color) Clone() *Color {
	nc := *c
	return &nc
}

// Equal returns whether the two colors have the same RGB values.
func (c *Color) Equal(o *Color) bool {
	return c.rgb == o.rgb
}

// R returns the red channel (0-255).
func (c *Color) R() uint8 { return c.rgb[0] }

// G returns the green channel (0-255).
func (c *Color) G() uint8 { return c.rgb[1] }

// B returns the blue channel (0-255).
func (c *Color) B() uint8 { return c.rgb[2] }

// H returns the hue (0-360).
func (c *Color) H() uint16 { return c.hsl[0] }

// S returns the saturation (0-100).
func (c *Color) S() uint16 { return c.hsl[1] }

// L returns the lightness (0-100).
func (c *Color) L() uint16 { return c.hsl[2] }

// SetR sets the red channel and recomputes the HSL values.
// Non-finite values are ignored.
func (c *Color) SetR(v float64) { c.setRGB(0, v) }

// SetG sets the green channel and recomputes the HSL values.
// Non-finite values are ignored.
func (c *Color) SetG(v float64) { c.setRGB(1, v) }

// SetB sets the blue channel and recomputes the HSL values.
// Non-finite values are ignored.
func (c *Color) SetB(v float64) { c.setRGB(2, v) }

// SetH sets the hue and recomputes the RGB values.
// Non-finite values are ignored.
func (c *Color) SetH(v float64) { c.setHSL(0, v) }

// SetS sets the saturation and recomputes the RGB values.
// Non-finite values are ignored.
func (c *Color) SetS(v float64) { c.setHSL(1, v) }

// SetL sets the lightness and recomputes the RGB values.
// Non-finite values are ignored.
func (c *Color) SetL(v float64) { c.setHSL(2, v) }

func (c *Color) setRGB(i int, v float64) {
	if !isFinite(v) {
		return
	}
	c.rgb[i] = clampChannel(v)
	c.updateHSL()
}

func (c *Color) setHSL(i int, v float64) {
	if !isFinite(v) {
		return
	}
	c.hsl[i] = clampHSL(v, hslMax[i])
	c.updateRGB()
}

var hslMax = HSL{HueMax, SaturationMax, LightnessMax}

// RGB returns a copy of the RGB channels of the color.
func (c *Color) RGB() RGB { return c.rgb }

// HSL returns a copy of the HSL values of the color.
func (c *Color) HSL() HSL { return c.hsl }

// SetRGB sets all of the RGB channels and recomputes the HSL values.
func (c *Color) SetRGB(rgb RGB) {
	c.rgb = rgb
	c.updateHSL()
}

// SetHSL sets all of the HSL values, clamping each to its range,
// and recomputes the RGB channels.
func (c *Color) SetHSL(hsl HSL) {
	for i, v := range hsl {
		c.hsl[i] = min(v, hslMax[i])
	}
	c.updateRGB()
}

// SetRGBValues sets the RGB channels from the given value, which must be
// an [RGB], a [3]uint8, or a []uint8 of length 3. Any other value is
// rejected with an error wrapping [ErrBufferShape] and the color is left
// unchanged.
func (c *Color) SetRGBValues(v any) error {
	switch vv := v.(type) {
	case RGB:
		c.SetRGB(vv)
	case [3]uint8:
		c.SetRGB(vv)
	case []uint8:
		if len(vv) != 3 {
			return fmt.Errorf("colors.SetRGBValues: %w: need 3 channels, got %d", ErrBufferShape, len(vv))
		}
		c.SetRGB(RGB(vv))
	default:
		return fmt.Errorf("colors.SetRGBValues: %w: need 3 uint8 channels, got %T", ErrBufferShape, v)
	}
	return nil
}

// SetHSLValues sets the HSL values from the given value, which must be
// an [HSL], a [3]uint16, or a []uint16 of length 3. Any other value is
// rejected with an error wrapping [ErrBufferShape] and the color is left
// unchanged.
func (c *Color) SetHSLValues(v any) error {
	switch vv := v.(type) {
	case HSL:
		c.SetHSL(vv)
	case [3]uint16:
		c.SetHSL(vv)
	case []uint16:
		if len(vv) != 3 {
			return fmt.Errorf("colors.SetHSLValues: %w: need 3 channels, got %d", ErrBufferShape, len(vv))
		}
		c.SetHSL(HSL(vv))
	default:
		return fmt.Errorf("colors.SetHSLValues: %w: need 3 uint16 channels, got %T", ErrBufferShape, v)
	}
	return nil
}

// updateHSL recomputes the HSL values from the RGB channels.
func (c *Color) updateHSL() {
	h, s, l := RGBToHSL(float64(c.rgb[0]), float64(c.rgb[1]), float64(c.rgb[2]))
	c.hsl = HSL{clampHSL(h, HueMax), clampHSL(s, SaturationMax), clampHSL(l, LightnessMax)}
}

// updateRGB recomputes the RGB channels from the HSL values.
func (c *Color) updateRGB() {
	r, g, b := HSLToRGB(float64(c.hsl[0]), float64(c.hsl[1]), float64(c.hsl[2]))
	c.rgb = RGB{r, g, b}
}

// Distance returns the Euclidean distance between the two colors
// in RGB space. A color compared with itself (the same pointer)
// always has a distance of 0 without any computation.
func (c *Color) Distance(o *Color) float64 {
	if c == o {
		return 0
	}
	dr := float64(c.rgb[0]) - float64(o.rgb[0])
	dg := float64(c.rgb[1]) - float64(o.rgb[1])
	db := float64(c.rgb[2]) - float64(o.rgb[2])
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// RGBString returns the color formatted as "rgb(R, G, B)".
func (c *Color) RGBString() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.rgb[0], c.rgb[1], c.rgb[2])
}

// HSLString returns the color formatted as "hsl(H, S%, L%)".
func (c *Color) HSLString() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.hsl[0], c.hsl[1], c.hsl[2])
}

// HexString returns the color formatted as "#rrggbb" with
// lower-case hexadecimal digits.
func (c *Color) HexString() string {
	v := 1<<24 | int64(c.rgb[0])<<16 | int64(c.rgb[1])<<8 | int64(c.rgb[2])
	return "#" + strconv.FormatInt(v, 16)[1:]
}

// String returns the color as a hex string; see [Color.HexString].
func (c *Color) String() string {
	return c.HexString()
}

// RGBA implements the [color.Color] interface. The color is always opaque.
func (c *Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.rgb[0])
	r |= r << 8
	g = uint32(c.rgb[1])
	g |= g << 8
	b = uint32(c.rgb[2])
	b |= b << 8
	a = 0xffff
	return
}

// AsRGBA returns the color as an opaque [color.RGBA].
func (c *Color) AsRGBA() color.RGBA {
	return color.RGBA{c.rgb[0], c.rgb[1], c.rgb[2], 255}
}
