/*
Copyright © 2019 the Geostamp authors.
This file is part of Geostamp.

Geostamp is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Geostamp is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Geostamp.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package stampgen generates batches of stamp definitions scattered
// over a geographic region. The geometric engine itself is pure and
// stateless; all concurrency and configuration policy lives here.
package stampgen

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Bounds is a geographic bounding box in degrees.
type Bounds struct {
	MinLon, MinLat, MaxLon, MaxLat float64
}

// Config controls batch stamp generation. It is normally decoded from
// a TOML file supplied by the caller rather than held as package
// state.
type Config struct {
	// Count is the number of stamps to generate.
	Count int
	// EdgeLengthKm is the approximate side length of each stamp [km].
	EdgeLengthKm float64
	// Bounds is the geographic region stamp centers are scattered
	// over.
	Bounds Bounds
	// Angle, if non-nil, fixes the rotation of every stamp [degrees].
	// When nil each stamp gets a uniformly random angle in [0, 360).
	Angle *float64
	// Width, Height are the per-stamp raster dimensions [pixels].
	// Both default to 500.
	Width, Height int
	// Workers is the number of stamps built concurrently. Defaults
	// to 1.
	Workers int
	// Seed seeds the random scatter of centers and angles, so a run
	// can be reproduced.
	Seed int64
}

// ReadConfig decodes a TOML configuration, applies defaults, and
// validates it.
func ReadConfig(r io.Reader) (*Config, error) {
	c := new(Config)
	if _, err := toml.DecodeReader(r, c); err != nil {
		return nil, fmt.Errorf("stampgen: decoding configuration: %v", err)
	}
	if err := c.setDefaults(); err != nil {
		return nil, err
	}
	return c, nil
}

// setDefaults fills in defaulted fields and checks the rest.
func (c *Config) setDefaults() error {
	if c.Width == 0 {
		c.Width = 500
	}
	if c.Height == 0 {
		c.Height = 500
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
	if c.Count <= 0 {
		return fmt.Errorf("stampgen: Count must be positive (got %d)", c.Count)
	}
	if c.EdgeLengthKm <= 0 {
		return fmt.Errorf("stampgen: EdgeLengthKm must be positive (got %g)", c.EdgeLengthKm)
	}
	if c.Bounds.MaxLon <= c.Bounds.MinLon || c.Bounds.MaxLat <= c.Bounds.MinLat {
		return fmt.Errorf("stampgen: Bounds %+v are empty", c.Bounds)
	}
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("stampgen: raster must be at least 2x2 pixels (got %dx%d)", c.Width, c.Height)
	}
	if c.Workers < 1 {
		return fmt.Errorf("stampgen: Workers must be positive (got %d)", c.Workers)
	}
	return nil
}
