// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"strings"

	"cogentcore.org/colorpicker/colors"
)

// Metric is a way of measuring the distance between two colors.
type Metric int32

const (
	// Euclidean is the straight line distance in RGB space
	// (see [colors.Color.Distance]).
	Euclidean Metric = iota

	// CIEDE2000 is the perceptual color difference
	// (see [colors.Color.DeltaE]).
	CIEDE2000
)

var metricNames = []string{"euclidean", "ciede2000"}

// Distance returns the distance between the two colors under the metric.
func (m Metric) Distance(a, b *colors.Color) float64 {
	if m == CIEDE2000 {
		return a.DeltaE(b)
	}
	return a.Distance(b)
}

// String returns the name of the metric.
func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("Metric(%d)", int32(m))
	}
	return metricNames[m]
}

// SetString sets the metric from its name, in any case.
func (m *Metric) SetString(s string) error {
	for i, nm := range metricNames {
		if strings.EqualFold(nm, s) {
			*m = Metric(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Metric; valid values: %s", s, strings.Join(metricNames, ", "))
}

// Set implements the pflag.Value interface.
func (m *Metric) Set(s string) error { return m.SetString(s) }

// Type implements the pflag.Value interface.
func (m *Metric) Type() string { return "metric" }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m Metric) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *Metric) UnmarshalText(text []byte) error { return m.SetString(string(text)) }
