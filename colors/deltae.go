// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"github.com/lucasb-eyer/go-colorful"
)

// DeltaE returns the perceptual CIEDE2000 color difference between the
// two colors. Unlike [Color.Distance], it weights the channels by how
// differences are perceived; a difference below about 0.01 is not
// visible.
func (c *Color) DeltaE(o *Color) float64 {
	return c.colorful().DistanceCIEDE2000(o.colorful())
}

// colorful returns the color as a [colorful.Color] in sRGB.
func (c *Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.rgb[0]) / ChannelMax,
		G: float64(c.rgb[1]) / ChannelMax,
		B: float64(c.rgb[2]) / ChannelMax,
	}
}
