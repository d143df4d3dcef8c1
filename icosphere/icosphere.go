// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package icosphere builds icosahedral triangulations of the unit sphere and
// derives edge lists from their faces.
package icosphere

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// TriangularMesh is a triangulation of the unit sphere.
type TriangularMesh struct {
	Vertices s2.PointVector
	// NOTE: Vertices of each face are in CCW order(look out of sphere)
	Faces [][3]int
}

// NumVertices returns the number of vertices in the mesh.
func (m *TriangularMesh) NumVertices() int {
	return len(m.Vertices)
}

// NumFaces returns the number of faces in the mesh.
func (m *TriangularMesh) NumFaces() int {
	return len(m.Faces)
}

// FaceVertices returns the three vertices of the face at index fIdx.
// It panics if fIdx is out of range.
func (m *TriangularMesh) FaceVertices(fIdx int) (s2.Point, s2.Point, s2.Point) {
	if fIdx < 0 || fIdx >= len(m.Faces) {
		panic("FaceVertices: fIdx out of range")
	}
	f := m.Faces[fIdx]
	return m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
}

// Validate checks that every face references an existing vertex and that
// every vertex lies on the unit sphere within eps.
func (m *TriangularMesh) Validate(eps float64) error {
	for i, v := range m.Vertices {
		if n := v.Norm(); math.Abs(n-1) > eps {
			return fmt.Errorf("icosphere: vertex %d norm %v is not unit", i, n)
		}
	}
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return fmt.Errorf("icosphere: face %d references vertex %d out of range [0 %d)", i, idx, n)
			}
		}
	}
	return nil
}

// Icosahedron returns the regular icosahedron with circumscribed unit sphere:
// 12 vertices and 20 faces.
//
// Vertices come from the three golden-ratio rectangles and the whole solid is
// rotated about the y axis so that two faces are parallel to the xy plane.
func Icosahedron() *TriangularMesh {
	phi := (1 + math.Sqrt(5)) / 2
	scale := 1 / math.Hypot(1, phi)

	angleBetweenFaces := 2 * math.Asin(phi/math.Sqrt(3))
	angle := (math.Pi - angleBetweenFaces) / 2
	sin, cos := math.Sincos(angle)

	vertices := make(s2.PointVector, 0, 12)
	for _, c1 := range [2]float64{1, -1} {
		for _, c2 := range [2]float64{phi, -phi} {
			for _, v := range [3]r3.Vector{
				{X: c1, Y: c2, Z: 0},
				{X: 0, Y: c1, Z: c2},
				{X: c2, Y: 0, Z: c1},
			} {
				v = v.Mul(scale)
				vertices = append(vertices, s2.Point{Vector: r3.Vector{
					X: v.X*cos - v.Z*sin,
					Y: v.Y,
					Z: v.X*sin + v.Z*cos,
				}})
			}
		}
	}

	faces := [][3]int{
		{0, 1, 2},
		{0, 6, 1},
		{8, 0, 2},
		{8, 4, 0},
		{3, 8, 2},
		{3, 2, 7},
		{7, 2, 1},
		{0, 4, 6},
		{4, 11, 6},
		{6, 11, 5},
		{1, 5, 7},
		{4, 10, 11},
		{4, 8, 10},
		{10, 8, 3},
		{10, 3, 9},
		{11, 10, 9},
		{11, 9, 5},
		{5, 9, 7},
		{9, 3, 7},
		{1, 6, 5},
	}

	return &TriangularMesh{Vertices: vertices, Faces: faces}
}
