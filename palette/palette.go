// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides named sets of colors that can be saved to
// and loaded from files, with nearest color matching for snapping an
// arbitrary color to the closest palette entry, and functions for
// generating evenly spaced colors and color ramps.
package palette

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"cogentcore.org/colorpicker/base/errors"
	"cogentcore.org/colorpicker/base/iox/tomlx"
	"cogentcore.org/colorpicker/base/iox/yamlx"
	"cogentcore.org/colorpicker/colors"
)

// ErrFormat is returned when a palette file has an unsupported extension.
var ErrFormat = errors.New("palette: unsupported file format")

// Entry is one named color in a [Palette].
type Entry struct {

	// Name is the name of the color, which should be unique within the palette.
	Name string `toml:"name" yaml:"name"`

	// Color is the color in any format accepted by [colors.FromString].
	Color string `toml:"color" yaml:"color"`
}

// Palette is a named, ordered set of colors.
type Palette struct {

	// Name is the name of the palette.
	Name string `toml:"name" yaml:"name"`

	// Entries are the colors in the palette.
	Entries []Entry `toml:"entries" yaml:"entries"`
}

// New returns a new empty palette with the given name.
func New(name string) *Palette {
	return &Palette{Name: name}
}

// Add adds the given color to the palette under the given name,
// storing it as a hex string.
func (p *Palette) Add(name string, c *colors.Color) {
	p.Entries = append(p.Entries, Entry{Name: name, Color: c.HexString()})
}

// Len returns the number of entries in the palette.
func (p *Palette) Len() int {
	return len(p.Entries)
}

// Lookup returns the color with the given name, and whether it was found.
// Names are compared without regard to case.
func (p *Palette) Lookup(name string) (*colors.Color, bool) {
	for _, e := range p.Entries {
		if strings.EqualFold(e.Name, name) {
			c, err := colors.FromString(e.Color)
			return c, err == nil
		}
	}
	return nil, false
}

// Colors returns the colors of all of the entries, in order.
// It returns an error naming the first entry that can not be parsed.
func (p *Palette) Colors() ([]*colors.Color, error) {
	cs := make([]*colors.Color, len(p.Entries))
	for i, e := range p.Entries {
		c, err := colors.FromString(e.Color)
		if err != nil {
			return nil, fmt.Errorf("palette %q: entry %d (%q): %w", p.Name, i, e.Name, err)
		}
		cs[i] = c
	}
	return cs, nil
}

// Validate returns an error if any entry has an invalid color
// or if any two entries have the same name.
func (p *Palette) Validate() error {
	var errs []error
	seen := map[string]bool{}
	for i, e := range p.Entries {
		if _, err := colors.FromString(e.Color); err != nil {
			errs = append(errs, fmt.Errorf("palette %q: entry %d (%q): %w", p.Name, i, e.Name, err))
		}
		key := strings.ToLower(e.Name)
		if seen[key] {
			errs = append(errs, fmt.Errorf("palette %q: entry %d: duplicate name %q", p.Name, i, e.Name))
		}
		seen[key] = true
	}
	return errors.Join(errs...)
}

// Nearest returns the entry closest to the given color under the given
// metric, along with its distance. It returns false if the palette has no
// entries. Entries that can not be parsed are skipped.
func (p *Palette) Nearest(c *colors.Color, metric Metric) (Entry, float64, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, e := range p.Entries {
		ec, err := colors.FromString(e.Color)
		if err != nil {
			continue
		}
		d := metric.Distance(c, ec)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Entry{}, 0, false
	}
	return p.Entries[best], bestDist, true
}

// Open reads the palette from the given file, using the file
// extension to determine the format (.toml, .yaml, or .yml).
// A palette that reads successfully is returned along with any
// error from [Palette.Validate].
func Open(filename string) (*Palette, error) {
	p := &Palette{}
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = tomlx.Open(p, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(p, filename)
	default:
		return nil, fmt.Errorf("palette.Open %q: %w", filename, ErrFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("palette.Open %q: %w", filename, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return p, p.Validate()
}

// Save writes the palette to the given file, using the file
// extension to determine the format (.toml, .yaml, or .yml).
func (p *Palette) Save(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlx.Save(p, filename)
	case ".yaml", ".yml":
		return yamlx.Save(p, filename)
	}
	return fmt.Errorf("palette.Save %q: %w", filename, ErrFormat)
}
