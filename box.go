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
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/unit"
	"gonum.org/v1/gonum/floats"
)

var earthRadius = unit.New(EarthRadius, unit.Dimensions{unit.LengthDim: 1})

// interpolate returns a line of n points evenly spaced between a and b,
// linearly in each coordinate rather than along the geodesic.
func interpolate(a, b geom.Point, n int) geom.LineString {
	xs := floats.Span(make([]float64, n), a.X, b.X)
	ys := floats.Span(make([]float64, n), a.Y, b.Y)
	l := make(geom.LineString, n)
	for i := range l {
		l[i] = geom.Point{X: xs[i], Y: ys[i]}
	}
	return l
}

// MakeBox constructs a quadrilateral with sides of approximately
// edgeLengthKm about a center point on the surface of the Earth.
// Because the box lies on a sphere it is not a Euclidean square: the
// longitude width is scaled by 1/cos(latitude) separately at the
// northern and southern edges, trading exact squareness for
// approximately equal side lengths and area near the center.
//
// inCRS gives the coordinate reference system of center; nil means
// geographic (longitude, latitude in degrees). The result is returned
// in outCRS when given, otherwise in inCRS, otherwise in geographic
// coordinates.
//
// pointsPerSide must be at least 2. With 2, exactly the four corners
// are produced; larger values interpolate additional points along each
// edge (linearly in degrees), which improves fidelity under later
// reprojection. The result is always a single closed ring with no
// holes.
func MakeBox(center geom.Point, edgeLengthKm float64, inCRS, outCRS CRS, pointsPerSide int) (geom.Polygon, error) {
	if pointsPerSide < 2 {
		return nil, fmt.Errorf("geostamp: pointsPerSide must be at least 2 (got %d)", pointsPerSide)
	}

	// The angular distance subtended at the center of the Earth
	// (small-angle great-circle approximation) must come out
	// dimensionless.
	edge := unit.New(edgeLengthKm*1000, unit.Dimensions{unit.LengthDim: 1})
	angular := unit.Div(edge, earthRadius)
	if err := angular.Check(nil); err != nil {
		return nil, err
	}
	a := angular.Value()

	if inCRS != nil {
		c, err := Reproject(center, inCRS, nil)
		if err != nil {
			return nil, err
		}
		center = c.(geom.Point)
	}
	lon0 := center.X * deg2rad
	lat0 := center.Y * deg2rad

	// The latitude spread is independent of longitude.
	south := lat0 - a/2
	north := lat0 + a/2

	// Longitude half-width at a given latitude, compensating for
	// meridian convergence.
	halfWidth := func(lat float64) float64 { return a / math.Cos(lat) / 2 }

	sw := geom.Point{X: (lon0 - halfWidth(south)) * rad2deg, Y: south * rad2deg}
	se := geom.Point{X: (lon0 + halfWidth(south)) * rad2deg, Y: south * rad2deg}
	ne := geom.Point{X: (lon0 + halfWidth(north)) * rad2deg, Y: north * rad2deg}
	nw := geom.Point{X: (lon0 - halfWidth(north)) * rad2deg, Y: north * rad2deg}

	// Assemble the four interpolated edges into a single closed
	// counterclockwise ring, dropping the duplicated corner at the
	// start of each edge after the first.
	ring := interpolate(sw, se, pointsPerSide)
	for _, side := range []geom.LineString{
		interpolate(se, ne, pointsPerSide),
		interpolate(ne, nw, pointsPerSide),
		interpolate(nw, sw, pointsPerSide),
	} {
		ring = append(ring, side[1:]...)
	}
	box := geom.Polygon{geom.Path(ring)}

	switch {
	case outCRS != nil:
		o, err := Reproject(box, nil, outCRS)
		if err != nil {
			return nil, err
		}
		return o.(geom.Polygon), nil
	case inCRS != nil:
		o, err := Reproject(box, nil, inCRS)
		if err != nil {
			return nil, err
		}
		return o.(geom.Polygon), nil
	}
	return box, nil
}
