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
	"testing"

	"github.com/ctessum/geom"
)

func identityTransform(x, y float64) (float64, float64, error) {
	return x, y, nil
}

func TestTransformGeomErrors(t *testing.T) {
	if _, err := transformGeom(nil, identityTransform); err == nil {
		t.Error("nil geometry: want error, got nil")
	} else if _, ok := err.(NotAGeometryError); !ok {
		t.Errorf("nil geometry: want NotAGeometryError, got %T", err)
	}

	for _, g := range []geom.Geom{
		geom.GeometryCollection{},
		geom.GeometryCollection{geom.Point{X: 1, Y: 2}},
	} {
		if _, err := transformGeom(g, identityTransform); err == nil {
			t.Errorf("%T: want error, got nil", g)
		} else if _, ok := err.(UnsupportedGeometryError); !ok {
			t.Errorf("%T: want UnsupportedGeometryError, got %T", g, err)
		}
	}
}

// A failing transform must abort the whole call; a partially
// transformed geometry is never returned.
func TestTransformGeomAbortsOnError(t *testing.T) {
	calls := 0
	failing := func(x, y float64) (float64, float64, error) {
		calls++
		if calls > 1 {
			return 0, 0, fmt.Errorf("transform failure")
		}
		return x, y, nil
	}
	mp := geom.MultiPoint{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	g, err := transformGeom(mp, failing)
	if err == nil {
		t.Fatal("want error, got nil")
	}
	if g != nil {
		t.Fatalf("want no partial geometry, got %v", g)
	}
}

func TestTransformGeomDoesNotMutateInput(t *testing.T) {
	shift := func(x, y float64) (float64, float64, error) {
		return x + 1, y + 1, nil
	}
	p := geom.Polygon{
		{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0}},
		{{X: 0.5, Y: 0.5}, {X: 1, Y: 0.5}, {X: 1, Y: 1}, {X: 0.5, Y: 0.5}},
	}
	orig := geom.Polygon{
		{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0}},
		{{X: 0.5, Y: 0.5}, {X: 1, Y: 0.5}, {X: 1, Y: 1}, {X: 0.5, Y: 0.5}},
	}
	g, err := transformGeom(p, shift)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Similar(orig, 1e-12) {
		t.Error("input polygon was mutated")
	}
	p2 := g.(geom.Polygon)
	if len(p2) != 2 {
		t.Fatalf("want 2 rings, got %d", len(p2))
	}
	if p2[0][0].X != 1 || p2[0][0].Y != 1 {
		t.Errorf("shell not transformed: %v", p2[0][0])
	}
}

// Ring closure and part order must survive a transform.
func TestTransformGeomPreservesStructure(t *testing.T) {
	shift := func(x, y float64) (float64, float64, error) {
		return x + 0.5, y - 0.5, nil
	}

	ring := geom.LineString{
		{X: -1, Y: -1}, {X: -1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: -1}, {X: -1, Y: -1},
	}
	g, err := transformGeom(ring, shift)
	if err != nil {
		t.Fatal(err)
	}
	r := g.(geom.LineString)
	if r[0] != r[len(r)-1] {
		t.Error("ring closure lost")
	}

	a := geom.Polygon{{{X: 130, Y: -30}, {X: 131, Y: -30}, {X: 131, Y: -29}, {X: 130, Y: -30}}}
	b := geom.Polygon{{{X: 140, Y: -20}, {X: 141, Y: -20}, {X: 141, Y: -19}, {X: 140, Y: -20}}}
	mp := geom.MultiPolygon{a, b}
	g, err = transformGeom(mp, shift)
	if err != nil {
		t.Fatal(err)
	}
	mp2 := g.(geom.MultiPolygon)
	if len(mp2) != 2 {
		t.Fatalf("want 2 parts, got %d", len(mp2))
	}
	ga, err := transformGeom(a, shift)
	if err != nil {
		t.Fatal(err)
	}
	gb, err := transformGeom(b, shift)
	if err != nil {
		t.Fatal(err)
	}
	if !mp2[0].Similar(ga, 1e-12) || !mp2[1].Similar(gb, 1e-12) {
		t.Error("part order not preserved")
	}
}
