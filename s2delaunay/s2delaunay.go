// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package s2delaunay triangulates arbitrary points on the unit sphere, giving
// meshes that are not derived from the icosahedron.
package s2delaunay

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"github.com/markus-wa/quickhull-go/v2"

	"github.com/2dChan/s2gridmesh/icosphere"
)

const (
	defaultEps = 1e-12
)

// TriangulationOptions configures NewTriangulation.
type TriangulationOptions struct {
	Eps float64
}

// TriangulationOption sets a field of TriangulationOptions.
type TriangulationOption func(*TriangulationOptions) error

// WithEps sets the tolerance of the convex hull construction.
func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps %v must be positive", eps)
		}
		o.Eps = eps
		return nil
	}
}

// NewTriangulation returns the Delaunay triangulation of vertices as a
// TriangularMesh. On the sphere this is the convex hull of the points.
// Faces are in CCW order when looking out of the sphere.
//
// NOTE: All vertices must lie on the unit sphere.
func NewTriangulation(vertices s2.PointVector, setters ...TriangulationOption) (*icosphere.TriangularMesh, error) {
	opts := TriangulationOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numVertices := len(vertices)
	if numVertices < 4 {
		return nil,
			errors.New("s2delaunay: insufficient vertices for triangulation (minimum 4 required)")
	}
	numFaces := 2 * (numVertices - 2)

	r3vertices := make([]r3.Vector, numVertices)
	for i, p := range vertices {
		r3vertices[i] = p.Vector
	}
	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(r3vertices, true, true, opts.Eps)
	if len(ch.Indices) != numFaces*3 {
		return nil, errors.New("s2delaunay: inconsistent number of indices returned from QuickHull")
	}

	m := &icosphere.TriangularMesh{
		Vertices: vertices,
		Faces:    make([][3]int, numFaces),
	}
	for i := range numFaces {
		base := i * 3
		m.Faces[i] = [3]int{ch.Indices[base], ch.Indices[base+1], ch.Indices[base+2]}
		sortFaceVerticesCCW(&m.Faces[i], vertices)
	}

	return m, nil
}

func sortFaceVerticesCCW(f *[3]int, v s2.PointVector) {
	p0, p1, p2 := v[f[0]], v[f[1]], v[f[2]]
	norm := p1.Sub(p0.Vector).Cross(p2.Sub(p0.Vector))
	if norm.Dot(p0.Vector) < 0 {
		f[1], f[2] = f[2], f[1]
	}
}
