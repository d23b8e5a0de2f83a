// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertNear asserts that each channel of got is within tol of want.
func assertNear(t *testing.T, want, got RGB, tol int, msgAndArgs ...any) {
	t.Helper()
	for i := range want {
		d := int(want[i]) - int(got[i])
		if d < -tol || d > tol {
			assert.Fail(t, fmt.Sprintf("channel %d: expected %v within %d of %v", i, got, tol, want), msgAndArgs...)
			return
		}
	}
}

// assertBounds asserts that the HSL values of c are within range.
func assertBounds(t *testing.T, c *Color) {
	t.Helper()
	assert.LessOrEqual(t, c.H(), uint16(HueMax))
	assert.LessOrEqual(t, c.S(), uint16(SaturationMax))
	assert.LessOrEqual(t, c.L(), uint16(LightnessMax))
}

func TestNew(t *testing.T) {
	tests := []struct {
		r, g, b float64
		rgb     RGB
		hsl     HSL
	}{
		{0, 0, 0, RGB{0, 0, 0}, HSL{0, 0, 0}},
		{255, 0, 0, RGB{255, 0, 0}, HSL{0, 100, 50}},
		{0, 255, 0, RGB{0, 255, 0}, HSL{120, 100, 50}},
		{0, 0, 255, RGB{0, 0, 255}, HSL{240, 100, 50}},
		{255, 255, 255, RGB{255, 255, 255}, HSL{0, 0, 100}},
		{128, 128, 128, RGB{128, 128, 128}, HSL{0, 0, 50}},
		{0, 128, 255, RGB{0, 128, 255}, HSL{209, 100, 50}},
		{51, 102, 153, RGB{51, 102, 153}, HSL{210, 49, 40}},
		{-20, 300, 1e9, RGB{0, 255, 255}, HSL{180, 100, 50}},
		{math.NaN(), math.Inf(1), math.Inf(-1), RGB{0, 0, 0}, HSL{0, 0, 0}},
		{10.5, 11.5, 12.4, RGB{10, 12, 12}, HSL{180, 9, 4}},
	}
	for _, test := range tests {
		c := New(test.r, test.g, test.b)
		assert.Equal(t, test.rgb, c.RGB(), "rgb for %v %v %v", test.r, test.g, test.b)
		assert.Equal(t, test.hsl, c.HSL(), "hsl for %v %v %v", test.r, test.g, test.b)
	}
}

func TestZeroValue(t *testing.T) {
	var c Color
	assert.Equal(t, RGB{}, c.RGB())
	assert.Equal(t, HSL{}, c.HSL())
	assert.Equal(t, "#000000", c.HexString())
}

func TestFromHSL(t *testing.T) {
	assert.Equal(t, RGB{51, 102, 153}, FromHSL(210, 50, 40).RGB())
	assert.Equal(t, RGB{128, 128, 128}, FromHSL(0, 0, 50).RGB())
	assert.Equal(t, RGB{128, 128, 128}, FromHSL(300, 0, 50).RGB())

	// the stored HSL is derived back from the RGB channels
	c := FromHSL(210, 50, 40)
	assert.Equal(t, HSL{210, 49, 40}, c.HSL())
}

func TestSetHue(t *testing.T) {
	c := New(255, 0, 0)
	c.SetH(120)
	assertNear(t, RGB{0, 255, 0}, c.RGB(), 1)
	assert.Equal(t, uint16(120), c.H())
	assert.Equal(t, uint16(100), c.S())
	assert.Equal(t, uint16(50), c.L())
}

func TestSetChannels(t *testing.T) {
	c := New(255, 0, 0)

	c.SetG(255)
	assert.Equal(t, RGB{255, 255, 0}, c.RGB())
	assert.Equal(t, HSL{60, 100, 50}, c.HSL())

	c.SetR(0)
	assert.Equal(t, HSL{120, 100, 50}, c.HSL())

	c.SetB(400)
	assert.Equal(t, RGB{0, 255, 255}, c.RGB())
	assert.Equal(t, HSL{180, 100, 50}, c.HSL())

	c.SetS(0)
	assert.Equal(t, RGB{128, 128, 128}, c.RGB())
	assert.Equal(t, uint16(180), c.H())

	c.SetL(100)
	assert.Equal(t, RGB{255, 255, 255}, c.RGB())

	c.SetL(0)
	assert.Equal(t, RGB{0, 0, 0}, c.RGB())

	c.SetH(1000)
	assert.Equal(t, uint16(HueMax), c.H())
	c.SetS(-5)
	assert.Equal(t, uint16(0), c.S())
	assertBounds(t, c)
}

func TestSetNonFinite(t *testing.T) {
	c := New(10, 20, 30)
	rgb, hsl := c.RGB(), c.HSL()
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		c.SetR(v)
		c.SetG(v)
		c.SetB(v)
		c.SetH(v)
		c.SetS(v)
		c.SetL(v)
	}
	assert.Equal(t, rgb, c.RGB())
	assert.Equal(t, hsl, c.HSL())
}

func TestBulkCopies(t *testing.T) {
	c := New(255, 0, 0)
	rgb := c.RGB()
	rgb[1] = 255
	hsl := c.HSL()
	hsl[0] = 240
	assert.Equal(t, RGB{255, 0, 0}, c.RGB())
	assert.Equal(t, HSL{0, 100, 50}, c.HSL())
}

func TestSetBulk(t *testing.T) {
	c := &Color{}
	c.SetRGB(RGB{0, 0, 255})
	assert.Equal(t, HSL{240, 100, 50}, c.HSL())

	c.SetHSL(HSL{120, 100, 25})
	assert.Equal(t, RGB{0, 128, 0}, c.RGB())
	assert.Equal(t, HSL{120, 100, 25}, c.HSL())

	c.SetHSL(HSL{400, 200, 300})
	assert.Equal(t, HSL{360, 100, 100}, c.HSL())
	assert.Equal(t, RGB{255, 255, 255}, c.RGB())
}

func TestSetValues(t *testing.T) {
	c := New(1, 2, 3)
	require.NoError(t, c.SetRGBValues([]uint8{255, 0, 0}))
	assert.Equal(t, HSL{0, 100, 50}, c.HSL())
	require.NoError(t, c.SetRGBValues([3]uint8{0, 255, 0}))
	assert.Equal(t, HSL{120, 100, 50}, c.HSL())
	require.NoError(t, c.SetHSLValues(HSL{240, 100, 50}))
	assert.Equal(t, RGB{0, 0, 255}, c.RGB())
	require.NoError(t, c.SetHSLValues([]uint16{0, 0, 100}))
	assert.Equal(t, RGB{255, 255, 255}, c.RGB())

	bad := []any{[]uint8{1, 2}, []uint8{1, 2, 3, 4}, []int{1, 2, 3}, HSL{1, 2, 3}, "red", nil}
	for _, v := range bad {
		err := c.SetRGBValues(v)
		assert.ErrorIs(t, err, ErrBufferShape, "%#v", v)
	}
	badHSL := []any{[]uint16{1}, RGB{1, 2, 3}, []float64{1, 2, 3}, [3]int{1, 2, 3}}
	for _, v := range badHSL {
		err := c.SetHSLValues(v)
		assert.ErrorIs(t, err, ErrBufferShape, "%#v", v)
	}
	assert.Equal(t, RGB{255, 255, 255}, c.RGB())
}

func TestClone(t *testing.T) {
	c := New(10, 20, 30)
	d := c.Clone()
	d.SetR(200)
	assert.Equal(t, uint8(10), c.R())
	assert.Equal(t, uint8(200), d.R())
	assert.False(t, c.Equal(d))
	assert.True(t, c.Equal(New(10, 20, 30)))
}

func TestDistance(t *testing.T) {
	red := New(255, 0, 0)
	assert.Equal(t, 0.0, red.Distance(red))
	assert.Equal(t, 0.0, red.Distance(New(255, 0, 0)))
	assert.InDelta(t, 255*math.Sqrt2, red.Distance(New(0, 255, 0)), 1e-9)
	assert.Equal(t, 5.0, New(0, 0, 0).Distance(New(3, 4, 0)))
	assert.Equal(t, red.Distance(New(0, 0, 255)), New(0, 0, 255).Distance(red))
}

func TestDeltaE(t *testing.T) {
	red := New(255, 0, 0)
	assert.InDelta(t, 0, red.DeltaE(New(255, 0, 0)), 1e-9)
	near := red.DeltaE(New(250, 5, 5))
	far := red.DeltaE(New(0, 0, 255))
	assert.Greater(t, near, 0.0)
	assert.Greater(t, far, near)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "#ff0000", New(255, 0, 0).HexString())
	assert.Equal(t, "#000000", New(0, 0, 0).HexString())
	assert.Equal(t, "#0a0b0c", New(10, 11, 12).HexString())
	assert.Equal(t, "rgb(0, 128, 255)", New(0, 128, 255).RGBString())
	assert.Equal(t, "hsl(209, 100%, 50%)", New(0, 128, 255).HSLString())
	assert.Equal(t, "#0080ff", fmt.Sprint(New(0, 128, 255)))
}

func TestImageColor(t *testing.T) {
	c := New(255, 128, 0)
	assert.Equal(t, color.RGBA{255, 128, 0, 255}, c.AsRGBA())
	assert.Equal(t, color.RGBA{255, 128, 0, 255}, color.RGBAModel.Convert(c))

	fc := FromColor(color.NRGBA{10, 20, 30, 128})
	assert.Equal(t, RGB{10, 20, 30}, fc.RGB())

	assert.Same(t, c, Model.Convert(c))
	m := Model.Convert(color.Gray{200}).(*Color)
	assert.Equal(t, RGB{200, 200, 200}, m.RGB())

	cl := FromColor(c)
	assert.NotSame(t, c, cl)
	assert.True(t, c.Equal(cl))
}

func ExampleColor_SetH() {
	c := New(255, 0, 0)
	c.SetH(240)
	fmt.Println(c.RGBString(), c.HSLString())
	// Output: rgb(0, 0, 255) hsl(240, 100%, 50%)
}

func ExampleNew() {
	c := New(51, 102, 153)
	fmt.Println(c.HexString(), c.HSL())
	// Output: #336699 [210 49 40]
}
