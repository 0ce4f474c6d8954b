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

package geostamp

import (
	"fmt"

	"github.com/ctessum/geom"
)

// MakeStamp returns a box with sides of approximately edgeLengthKm
// constructed about center and rotated about it by angleDegrees.
// center is in geographic coordinates, as is the result.
func MakeStamp(center geom.Point, angleDegrees, edgeLengthKm float64) (geom.Geom, error) {
	box, err := MakeBox(center, edgeLengthKm, nil, nil, 2)
	if err != nil {
		return nil, err
	}
	return Rotate(box, center, angleDegrees)
}

// A Stamp describes a rotated square region around a center point
// together with the raster grid used to sample data inside it. It
// carries everything downstream raster tooling needs to crop and align
// a tile: the rotated outline in geographic coordinates, a local CRS
// centered on the stamp, and the pixel grid transform in that CRS.
type Stamp struct {
	// Lon, Lat are the geographic coordinates of the stamp center
	// [degrees].
	Lon, Lat float64
	// Angle is the rotation of the stamp about its center [degrees].
	Angle float64
	// EdgeLength is the approximate side length of the stamp [km].
	EdgeLength float64
	// Width, Height are the raster dimensions [pixels].
	Width, Height int

	// Geometry is the rotated stamp outline in geographic coordinates.
	Geometry geom.Geom
}

// NewStamp creates a stamp centered at geographic coordinates
// (lon, lat), rotated by angleDegrees, with sides of approximately
// edgeLengthKm, sampled on a width × height pixel grid. The rotated
// outline is computed once at construction.
func NewStamp(lon, lat, angleDegrees, edgeLengthKm float64, width, height int) (*Stamp, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("geostamp: stamp raster must be at least 2x2 pixels (got %dx%d)", width, height)
	}
	g, err := MakeStamp(geom.Point{X: lon, Y: lat}, angleDegrees, edgeLengthKm)
	if err != nil {
		return nil, err
	}
	return &Stamp{
		Lon:        lon,
		Lat:        lat,
		Angle:      angleDegrees,
		EdgeLength: edgeLengthKm,
		Width:      width,
		Height:     height,
		Geometry:   g,
	}, nil
}

// CRS returns a PROJ.4 definition of the local oblique Mercator system
// centered on the stamp and aligned with its rotation. Distances in
// this system are in metres with the origin at the stamp center. The
// definition is intended for downstream raster tooling; the bundled
// projection library does not implement oblique Mercator itself.
func (s *Stamp) CRS() string {
	return fmt.Sprintf("+proj=omerc +lat_0=%v +lonc=%v +alpha=%v "+
		"+k=1 +x_0=0 +y_0=0 +gamma=0 "+
		"+ellps=WGS84 +towgs84=0,0,0,0,0,0,0 +units=m +no_defs",
		s.Lat, s.Lon, s.Angle)
}

// GridTransform returns the affine transform mapping pixel
// (column, row) coordinates to the stamp's local CRS, as the row-major
// 2x3 matrix [a b c; d e f]: x = a*col + b*row + c and
// y = d*col + e*row + f. The origin is the north-west corner of the
// stamp and the pixel sizes are chosen so the last column and row fall
// exactly on the eastern and southern edges.
func (s *Stamp) GridTransform() [6]float64 {
	half := s.EdgeLength * 1000 / 2
	xsize := s.EdgeLength * 1000 / float64(s.Width-1)
	ysize := s.EdgeLength * 1000 / float64(s.Height-1)
	return [6]float64{xsize, 0, -half, 0, -ysize, half}
}
