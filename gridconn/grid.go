// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package gridconn connects the points of a latitude/longitude grid to the
// vertices of a triangular sphere mesh.
package gridconn

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

// Grid is the implicit Lat x Lon grid defined by two coordinate axes, in
// degrees. Grid points are numbered row-major over latitude:
// latIdx*len(Lon) + lonIdx.
type Grid struct {
	Lat []float64
	Lon []float64
}

// NewGrid returns the grid spanned by lat and lon.
// Both axes must be non-empty and finite, and latitudes must lie in [-90, 90].
func NewGrid(lat, lon []float64) (*Grid, error) {
	if len(lat) == 0 || len(lon) == 0 {
		return nil, fmt.Errorf("gridconn: empty grid axis (lat %d, lon %d): %w",
			len(lat), len(lon), ErrInvalidConfig)
	}
	for i, v := range lat {
		if math.IsNaN(v) || v < -90 || v > 90 {
			return nil, fmt.Errorf("gridconn: latitude[%d] = %v out of range [-90 90]: %w",
				i, v, ErrInvalidConfig)
		}
	}
	for i, v := range lon {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("gridconn: longitude[%d] = %v is not finite: %w",
				i, v, ErrInvalidConfig)
		}
	}
	return &Grid{Lat: lat, Lon: lon}, nil
}

// NumPoints returns the number of grid points.
func (g *Grid) NumPoints() int {
	return len(g.Lat) * len(g.Lon)
}

// Index returns the flat index of the grid point (latIdx, lonIdx).
// It panics if either index is out of range.
func (g *Grid) Index(latIdx, lonIdx int) int {
	if latIdx < 0 || latIdx >= len(g.Lat) || lonIdx < 0 || lonIdx >= len(g.Lon) {
		panic("Index: grid index out of range")
	}
	return latIdx*len(g.Lon) + lonIdx
}

// Points returns the grid points on the unit sphere in flat index order.
//
// Longitude is the azimuthal angle and 90-latitude the polar angle, so a
// point is (cos(lon)cos(lat), sin(lon)cos(lat), sin(lat)).
func (g *Grid) Points() s2.PointVector {
	points := make(s2.PointVector, 0, g.NumPoints())
	for _, lat := range g.Lat {
		for _, lon := range g.Lon {
			points = append(points, s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon)))
		}
	}
	return points
}

// MeshLatLon returns the latitude and longitude, in degrees, of every vertex.
func MeshLatLon(vertices s2.PointVector) (lat, lon []float64) {
	lat = make([]float64, len(vertices))
	lon = make([]float64, len(vertices))
	for i, v := range vertices {
		ll := s2.LatLngFromPoint(v)
		lat[i] = ll.Lat.Degrees()
		lon[i] = ll.Lng.Degrees()
	}
	return lat, lon
}
