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
	"sort"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"
)

// GeographicCRS is the default coordinate reference system: geographic
// longitude and latitude in degrees on the WGS84 datum, the only CRS
// used by GeoJSON.
const GeographicCRS = "EPSG:4326"

// A CRS specifies a coordinate reference system. It may be:
//
//	- an EPSG-style code string such as "EPSG:3577" (case-insensitive),
//	- a raw PROJ.4 ("+proj=...") or WKT definition string, or
//	- a map[string]interface{} of PROJ.4 parameters.
//
// A nil CRS means geographic coordinates (EPSG:4326).
type CRS interface{}

// epsgDefs holds PROJ.4 definitions for the EPSG codes the resolver
// recognizes. The projection library only parses PROJ.4 and WKT
// definitions, so codes are looked up here before parsing.
var epsgDefs = map[int]string{
	// WGS84 longitude/latitude
	4326: "+proj=longlat +datum=WGS84 +no_defs",
	// Web Mercator
	3857: "+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +nadgrids=@null +no_defs",
	// GDA94 / Geoscience Australia Lambert
	3112: "+proj=lcc +lat_1=-18 +lat_2=-36 +lat_0=0 +lon_0=134 +x_0=0 +y_0=0 +ellps=GRS80 +towgs84=0,0,0,0,0,0,0 +units=m +no_defs",
	// GDA94 / Australian Albers (equal-area)
	3577: "+proj=aea +lat_1=-18 +lat_2=-36 +lat_0=0 +lon_0=132 +x_0=0 +y_0=0 +ellps=GRS80 +towgs84=0,0,0,0,0,0,0 +units=m +no_defs",
}

func init() {
	// GDA94 / MGA zones 50-56 cover the Australian mainland and Tasmania.
	for zone := 50; zone <= 56; zone++ {
		epsgDefs[28300+zone] = fmt.Sprintf("+proj=utm +zone=%d +south "+
			"+ellps=GRS80 +towgs84=0,0,0,0,0,0,0 +units=m +no_defs", zone)
	}
}

// UnresolvableCRSError is returned when a CRS specifier cannot be
// resolved into a spatial reference.
type UnresolvableCRSError struct {
	Spec CRS
	Err  error
}

func (e UnresolvableCRSError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geostamp: cannot resolve CRS %v: %v", e.Spec, e.Err)
	}
	return fmt.Sprintf("geostamp: cannot resolve CRS %v", e.Spec)
}

// resolveCRS resolves a CRS specifier into a spatial reference.
func resolveCRS(crs CRS) (*proj.SR, error) {
	switch c := crs.(type) {
	case nil:
		return resolveCRS(GeographicCRS)
	case string:
		if strings.HasPrefix(strings.ToLower(c), "epsg:") {
			code, err := strconv.Atoi(strings.TrimSpace(c[len("epsg:"):]))
			if err != nil {
				return nil, UnresolvableCRSError{Spec: crs, Err: err}
			}
			def, ok := epsgDefs[code]
			if !ok {
				return nil, UnresolvableCRSError{Spec: crs,
					Err: fmt.Errorf("no definition for EPSG code %d", code)}
			}
			c = def
		}
		sr, err := proj.Parse(c)
		if err != nil {
			return nil, UnresolvableCRSError{Spec: crs, Err: err}
		}
		return sr, nil
	case map[string]interface{}:
		sr, err := proj.Parse(projParams(c))
		if err != nil {
			return nil, UnresolvableCRSError{Spec: crs, Err: err}
		}
		return sr, nil
	default:
		return nil, UnresolvableCRSError{Spec: crs}
	}
}

// projParams formats a PROJ.4 parameter map as a definition string
// with deterministic term order. Boolean true values become bare flags
// (e.g. "+no_defs"); false values are omitted.
func projParams(params map[string]interface{}) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	terms := make([]string, 0, len(keys))
	for _, k := range keys {
		switch v := params[k].(type) {
		case bool:
			if v {
				terms = append(terms, "+"+k)
			}
		case nil:
			terms = append(terms, "+"+k)
		default:
			terms = append(terms, fmt.Sprintf("+%s=%v", k, v))
		}
	}
	return strings.Join(terms, " ")
}

// GetProjector returns a transform function mapping coordinates in the
// from system to the to system. When the two specifiers resolve to the
// same spatial reference, the exact identity transform is returned so
// that a no-op projection pair introduces no numerical drift.
func GetProjector(from, to CRS) (proj.Transformer, error) {
	src, err := resolveCRS(from)
	if err != nil {
		return nil, err
	}
	dst, err := resolveCRS(to)
	if err != nil {
		return nil, err
	}
	const ulpTolerance = 3
	if src.Equal(dst, ulpTolerance) {
		return func(x, y float64) (float64, float64, error) {
			return x, y, nil
		}, nil
	}
	t, err := src.NewTransform(dst)
	if err != nil {
		return nil, UnresolvableCRSError{Spec: to, Err: err}
	}
	return t, nil
}

// Reproject transforms a geometry from one coordinate reference system
// to another. A nil from or to means geographic coordinates
// (EPSG:4326). Geometry collections are unsupported; see transformGeom
// for the full dispatch rules.
func Reproject(g geom.Geom, from, to CRS) (geom.Geom, error) {
	t, err := GetProjector(from, to)
	if err != nil {
		return nil, err
	}
	return transformGeom(g, t)
}

// ReprojectTransform transforms a geometry using an already-resolved
// transform function (see GetProjector), avoiding repeated CRS
// resolution when reprojecting many geometries between the same pair
// of systems.
func ReprojectTransform(g geom.Geom, t proj.Transformer) (geom.Geom, error) {
	return transformGeom(g, t)
}
