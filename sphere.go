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

/*
Package geostamp builds small, arbitrarily rotated "stamp" regions on
the surface of the Earth, and applies rigid sphere rotations and
coordinate-reference-system changes to arbitrary 2-D geometries while
preserving topology, part order, and ring winding.

All operations are pure functions of their inputs with no shared state,
so they are safe to call concurrently without synchronization.
*/
package geostamp

import (
	"math"

	"github.com/ctessum/geom"
)

// EarthRadius is the radius of the spherical Earth used for angular
// distance calculations [m].
const EarthRadius = 6.3781e6

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// GeographicToSpherical converts a geographic (longitude, latitude)
// point in degrees to spherical (inclination, azimuth) coordinates in
// radians.
//
// The physics/ISO convention is used: the inclination runs from 0 at
// the north pole to π at the south pole, and the azimuth is measured
// from the -x axis so that it lies in [0, 2π) for all valid longitudes.
func GeographicToSpherical(p geom.Point) (inclination, azimuth float64) {
	inclination = (90 - p.Y) * deg2rad
	azimuth = (p.X + 180) * deg2rad
	return inclination, azimuth
}

// SphericalToGeographic is the inverse of GeographicToSpherical.
func SphericalToGeographic(inclination, azimuth float64) geom.Point {
	return geom.Point{
		X: azimuth*rad2deg - 180,
		Y: 90 - inclination*rad2deg,
	}
}

// SphericalToCartesian converts spherical (inclination, azimuth)
// coordinates in radians to cartesian (x, y, z) coordinates on the
// unit sphere.
func SphericalToCartesian(inclination, azimuth float64) (x, y, z float64) {
	x = math.Sin(inclination) * math.Cos(azimuth)
	y = math.Sin(inclination) * math.Sin(azimuth)
	z = math.Cos(inclination)
	return x, y, z
}

// CartesianToSpherical converts a cartesian (x, y, z) vector to
// spherical (inclination, azimuth) coordinates in radians, assuming a
// unit sphere. Negative azimuths are wrapped into [0, 2π). The result
// is undefined for the zero vector.
func CartesianToSpherical(x, y, z float64) (inclination, azimuth float64) {
	r := math.Sqrt(x*x + y*y + z*z)
	inclination = math.Acos(z / r)
	azimuth = math.Atan2(y, x)
	if azimuth < 0 {
		azimuth += 2 * math.Pi
	}
	return inclination, azimuth
}

// GeographicToCartesian converts a geographic (longitude, latitude)
// point in degrees to a cartesian unit vector.
func GeographicToCartesian(p geom.Point) [3]float64 {
	x, y, z := SphericalToCartesian(GeographicToSpherical(p))
	return [3]float64{x, y, z}
}

// CartesianToGeographic converts a cartesian vector to a geographic
// (longitude, latitude) point in degrees, assuming a unit sphere.
func CartesianToGeographic(v [3]float64) geom.Point {
	return SphericalToGeographic(CartesianToSpherical(v[0], v[1], v[2]))
}
