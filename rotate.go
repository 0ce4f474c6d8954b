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
	"math"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/mat"
)

// RotationMatrix returns the Rodrigues rotation matrix for a rotation
// of angle radians (counterclockwise, right-handed) about axis. The
// axis need not be normalized, but must be non-zero.
//
// The matrix is the exponential of the cross-product matrix of the
// unit axis scaled by the angle, so it is orthogonal with determinant
// +1 for every non-zero axis and any real angle.
func RotationMatrix(axis [3]float64, angle float64) *mat.Dense {
	n := math.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	ux := axis[0] / n * angle
	uy := axis[1] / n * angle
	uz := axis[2] / n * angle
	skew := mat.NewDense(3, 3, []float64{
		0, -uz, uy,
		uz, 0, -ux,
		-uy, ux, 0,
	})
	var m mat.Dense
	m.Exp(skew)
	return &m
}

// Rotate rotates a geometry through angleDegrees about the axis
// passing through pole and the center of the Earth. Both the geometry
// and the pole are in geographic (longitude, latitude) coordinates in
// degrees, as is the result.
//
// Rotation is rigid: rotating a geometry about its own centroid leaves
// the centroid in place, and rotating by θ then -θ about the same pole
// restores the original coordinates to floating point tolerance.
func Rotate(g geom.Geom, pole geom.Point, angleDegrees float64) (geom.Geom, error) {
	m := RotationMatrix(GeographicToCartesian(pole), angleDegrees*deg2rad)
	rotator := func(x, y float64) (float64, float64, error) {
		v := GeographicToCartesian(geom.Point{X: x, Y: y})
		var r mat.VecDense
		r.MulVec(m, mat.NewVecDense(3, v[:]))
		p := CartesianToGeographic([3]float64{r.AtVec(0), r.AtVec(1), r.AtVec(2)})
		return p.X, p.Y, nil
	}
	return transformGeom(g, rotator)
}
