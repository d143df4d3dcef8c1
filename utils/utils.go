// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides helpers for generating points and grids on the sphere.

package utils

import (
	"math"
	"math/rand"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// GenerateRandomPoints generates a vector of random points on the S2 sphere.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) s2.PointVector {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	sites := make(s2.PointVector, cnt)

	for i := range cnt {
		sites[i] = s2.PointFromLatLng(s2.LatLng{
			Lat: s1.Angle((random.Float64() - 0.5) * math.Pi),
			Lng: s1.Angle((random.Float64()*2 - 1) * math.Pi),
		})
	}

	return sites
}

// EquiangularGrid returns the axes of a regular latitude/longitude grid in
// degrees. Latitudes run from -90 to 90 inclusive, longitudes from 0 up to
// but excluding 360. A single latitude is placed on the equator.
func EquiangularGrid(numLat, numLon int) (lat, lon []float64) {
	lat = make([]float64, numLat)
	switch {
	case numLat == 1:
		lat[0] = 0
	case numLat > 1:
		step := 180 / float64(numLat-1)
		for i := range numLat {
			lat[i] = -90 + float64(i)*step
		}
	}

	lon = make([]float64, numLon)
	for i := range numLon {
		lon[i] = float64(i) * 360 / float64(numLon)
	}
	return lat, lon
}
