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
	"github.com/ctessum/geom/proj"
)

// NotAGeometryError is returned when a value lacks geometry-kind
// information (for example, a nil geometry).
type NotAGeometryError struct {
	Value interface{}
}

func (e NotAGeometryError) Error() string {
	return fmt.Sprintf("geostamp: %v does not appear to be a geometry", e.Value)
}

// UnsupportedGeometryError is returned when a geometry kind is outside
// the supported set of point, line, and polygon variants. Geometry
// collections are explicitly unsupported.
type UnsupportedGeometryError struct {
	Geom geom.Geom
}

func (e UnsupportedGeometryError) Error() string {
	return fmt.Sprintf("geostamp: unsupported geometry type %T", e.Geom)
}

// transformGeom applies t to every coordinate of g, returning a new
// geometry of the same kind and never mutating the input. It is the
// single dispatch mechanism shared by Rotate and Reproject, so holes,
// part ordering, and error kinds behave identically for both.
//
// The first error from t aborts the whole call; a partially transformed
// geometry is never returned. A standalone linear ring is represented
// as a closed LineString.
func transformGeom(g geom.Geom, t proj.Transformer) (geom.Geom, error) {
	switch g := g.(type) {
	case geom.Point:
		return transformPoint(g, t)
	case geom.MultiPoint:
		o := make(geom.MultiPoint, len(g))
		for i, p := range g {
			p2, err := transformPoint(p, t)
			if err != nil {
				return nil, err
			}
			o[i] = p2
		}
		return o, nil
	case geom.LineString:
		r, err := transformRing(g, t)
		if err != nil {
			return nil, err
		}
		return geom.LineString(r), nil
	case geom.MultiLineString:
		o := make(geom.MultiLineString, len(g))
		for i, l := range g {
			r, err := transformRing(l, t)
			if err != nil {
				return nil, err
			}
			o[i] = geom.LineString(r)
		}
		return o, nil
	case geom.Polygon:
		return transformPolygon(g, t)
	case geom.MultiPolygon:
		o := make(geom.MultiPolygon, len(g))
		for i, p := range g {
			p2, err := transformPolygon(p, t)
			if err != nil {
				return nil, err
			}
			o[i] = p2
		}
		return o, nil
	case nil:
		return nil, NotAGeometryError{Value: g}
	default:
		return nil, UnsupportedGeometryError{Geom: g}
	}
}

func transformPoint(p geom.Point, t proj.Transformer) (geom.Point, error) {
	x, y, err := t(p.X, p.Y)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Point{X: x, Y: y}, nil
}

// transformRing transforms a coordinate sequence, preserving point
// order and therefore ring closure.
func transformRing(r []geom.Point, t proj.Transformer) ([]geom.Point, error) {
	o := make([]geom.Point, len(r))
	for i, p := range r {
		p2, err := transformPoint(p, t)
		if err != nil {
			return nil, err
		}
		o[i] = p2
	}
	return o, nil
}

// transformPolygon transforms the shell (ring 0) and each hole of p
// independently, reassembling with the same ring order.
func transformPolygon(p geom.Polygon, t proj.Transformer) (geom.Polygon, error) {
	o := make(geom.Polygon, len(p))
	for i, r := range p {
		r2, err := transformRing(r, t)
		if err != nil {
			return nil, err
		}
		o[i] = r2
	}
	return o, nil
}
