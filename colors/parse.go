// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"cogentcore.org/colorpicker/base/errors"
	"golang.org/x/image/colornames"
)

// ErrParse is wrapped by all errors returned when a color string
// cannot be parsed.
var ErrParse = errors.New("colors: invalid color string")

var (
	rgbPattern = regexp.MustCompile(`(?i)^\s*` + rgbExpr + `\s*$`)
	hexPattern = regexp.MustCompile(`(?i)^\s*` + hexExpr + `\s*$`)
	hslPattern = regexp.MustCompile(`(?i)^\s*hsla?\(\s*(\d{1,3}(?:\.\d+)?)(?:deg)?\s*,\s*(\d{1,3}(?:\.\d+)?)%?\s*,\s*(\d{1,3}(?:\.\d+)?)%?\s*(?:,\s*(?:\d{1,3}|\d*\.\d+)%?\s*)?\)\s*$`)

	// rgbSearch and hexSearch find the first color anywhere in a string.
	rgbSearch = regexp.MustCompile(`(?i)` + rgbExpr)
	hexSearch = regexp.MustCompile(`(?i)` + hexExpr)
)

const (
	rgbExpr = `rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*(\d{1,3}|\d*\.\d+)\s*)?\)`
	hexExpr = `#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})`
)

// FromRGBString returns the color given by the first "rgb(R, G, B)" or
// "rgba(R, G, B, A)" found in the given string, so "color: rgb(1,2,3);"
// is accepted. The alpha value is ignored. If there is no match, it
// returns black; see [ParseRGBString] for a stricter version that
// reports the failure.
func FromRGBString(s string) *Color {
	m := rgbSearch.FindStringSubmatch(s)
	if m == nil {
		return New(0, 0, 0)
	}
	return rgbFromMatch(m)
}

// ParseRGBString returns the color given by a string that is exactly of
// the form "rgb(R, G, B)" or "rgba(R, G, B, A)", apart from surrounding
// space. It returns black and an error wrapping [ErrParse] if the string
// does not match.
func ParseRGBString(s string) (*Color, error) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return New(0, 0, 0), fmt.Errorf("colors.ParseRGBString: %w: %q", ErrParse, s)
	}
	return rgbFromMatch(m), nil
}

func rgbFromMatch(m []string) *Color {
	return New(atof(m[1]), atof(m[2]), atof(m[3]))
}

// FromHexString returns the color given by the first six hex digits,
// optionally preceded by "#", found in the given string, in any case.
// Extra digits are ignored, so "#ff0000ff" is red. If there is no match,
// it returns black; see [ParseHexString] for a stricter version that
// reports the failure.
func FromHexString(s string) *Color {
	m := hexSearch.FindStringSubmatch(s)
	if m == nil {
		return New(0, 0, 0)
	}
	return hexFromMatch(m)
}

// ParseHexString returns the color given by a string that is exactly of
// the form "#RRGGBB" or "RRGGBB", apart from surrounding space, in any
// case. It returns black and an error wrapping [ErrParse] if the string
// does not match.
func ParseHexString(s string) (*Color, error) {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return New(0, 0, 0), fmt.Errorf("colors.ParseHexString: %w: %q", ErrParse, s)
	}
	return hexFromMatch(m), nil
}

func hexFromMatch(m []string) *Color {
	var rgb RGB
	for i := range rgb {
		v, _ := strconv.ParseUint(m[i+1], 16, 8)
		rgb[i] = uint8(v)
	}
	c := &Color{}
	c.SetRGB(rgb)
	return c
}

// ParseHSLString returns the color specified by the given string of the
// form "hsl(H, S%, L%)" or "hsla(H, S%, L%, A)". The alpha value is
// ignored. It returns black and an error wrapping [ErrParse] if the
// string does not match.
func ParseHSLString(s string) (*Color, error) {
	m := hslPattern.FindStringSubmatch(s)
	if m == nil {
		return New(0, 0, 0), fmt.Errorf("colors.ParseHSLString: %w: %q", ErrParse, s)
	}
	h, sat, l := atof(m[1]), atof(m[2]), atof(m[3])
	return FromHSL(min(h, HueMax), min(sat, SaturationMax), min(l, LightnessMax)), nil
}

// FromName returns the color with the given CSS standard color name,
// in any case. It returns black and an error wrapping [ErrParse] if the
// name is not found.
func FromName(name string) (*Color, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return New(0, 0, 0), fmt.Errorf("colors.FromName: %w: name not found: %q", ErrParse, name)
	}
	return FromColor(c), nil
}

// FromString returns a color value from the given string.
// It returns any resulting error; see [MustFromString] and
// [LogFromString] for versions that do not return an error.
// FromString accepts the following types of strings: hex values
// ("#RRGGBB", "RRGGBB", or "#RGB"), "rgb(R, G, B)", "rgba(R, G, B, A)",
// "hsl(H, S%, L%)", "hsla(H, S%, L%, A)", standard color names, and
// "none" or "transparent", which are treated as black since [Color]
// has no alpha. Parsing is case insensitive.
func FromString(str string) (*Color, error) {
	lstr := strings.ToLower(strings.TrimSpace(str))
	switch {
	case lstr == "", lstr == "none", lstr == "transparent":
		return New(0, 0, 0), nil
	case strings.HasPrefix(lstr, "#"):
		if len(lstr) == 4 {
			return ParseHexString(expandShortHex(lstr[1:]))
		}
		return ParseHexString(lstr)
	case strings.HasPrefix(lstr, "rgb"):
		return ParseRGBString(lstr)
	case strings.HasPrefix(lstr, "hsl"):
		return ParseHSLString(lstr)
	}
	if c, err := ParseHexString(lstr); err == nil {
		return c, nil
	}
	c, err := FromName(lstr)
	if err != nil {
		return c, fmt.Errorf("colors.FromString: %w: %q", ErrParse, str)
	}
	return c, nil
}

// MustFromString returns a color value from the given string.
// It panics on any resulting error; see [FromString] for
// more information and a version that returns an error.
func MustFromString(str string) *Color {
	return errors.Must1(FromString(str))
}

// LogFromString returns a color value from the given string.
// It logs any resulting error; see [FromString] for
// more information and a version that returns an error.
func LogFromString(str string) *Color {
	return errors.Log1(FromString(str))
}

// expandShortHex expands a three digit hex color into six digits.
func expandShortHex(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteRune(r)
		b.WriteRune(r)
	}
	return b.String()
}

// atof parses a decimal string that has already been validated.
func atof(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
