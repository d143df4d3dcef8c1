// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridconn

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/2dChan/s2gridmesh/icosphere"
)

// boundSlack widens the candidate search radius against rounding.
const boundSlack = 1e-9

// faceLocator finds the face of a triangular mesh closest to a query point.
//
// Candidates come from a k-d tree over face centroids. The closest face is at
// most as far as the nearest centroid, and no point of a face is farther than
// maxRadius from its centroid, so every face whose centroid lies within
// nearest+maxRadius of the query is tested exactly.
type faceLocator struct {
	mesh      *icosphere.TriangularMesh
	tree      *kdtree.Tree
	maxRadius float64
}

func newFaceLocator(m *icosphere.TriangularMesh) *faceLocator {
	centroids := make([]r3.Vector, len(m.Faces))
	var maxRadius float64
	for i := range m.Faces {
		a, b, c := m.FaceVertices(i)
		centroid := a.Add(b.Vector).Add(c.Vector).Mul(1.0 / 3)
		centroids[i] = centroid
		for _, v := range [3]r3.Vector{a.Vector, b.Vector, c.Vector} {
			maxRadius = max(maxRadius, v.Sub(centroid).Norm())
		}
	}
	return &faceLocator{
		mesh:      m,
		tree:      newIndexedTree(centroids),
		maxRadius: maxRadius,
	}
}

// locate returns the index of the face closest to p. Among faces at the same
// distance the lowest index wins. ok is false if no face could be found.
func (l *faceLocator) locate(p r3.Vector) (fIdx int, ok bool) {
	q := indexedPoint{idx: -1, pos: p}
	nearest, dist2 := l.tree.Nearest(q)
	if nearest == nil || math.IsNaN(dist2) || math.IsInf(dist2, 0) {
		return -1, false
	}

	bound := (math.Sqrt(dist2) + l.maxRadius) * (1 + boundSlack)
	keep := kdtree.NewDistKeeper(bound * bound)
	l.tree.NearestSet(keep, q)

	fIdx = -1
	best := math.Inf(1)
	for _, c := range keep.Heap {
		if c.Comparable == nil {
			continue
		}
		idx := c.Comparable.(indexedPoint).idx
		a, b, v := l.mesh.FaceVertices(idx)
		d := p.Sub(closestPointOnTriangle(p, a.Vector, b.Vector, v.Vector)).Norm2()
		if d < best || (d == best && idx < fIdx) {
			best, fIdx = d, idx
		}
	}
	return fIdx, fIdx >= 0
}

// ContainedQuery connects every grid point to the three vertices of the mesh
// face that contains its closest point on the mesh surface.
//
// The result always has exactly 3*g.NumPoints() edges, ordered by grid index
// and then by position within the face. A grid point lying on a shared edge or
// vertex is assigned to the lowest-indexed of the equally close faces.
//
// It returns ErrDegenerateGeometry if the mesh has no faces or no face can be
// found for some grid point.
func ContainedQuery(g *Grid, m *icosphere.TriangularMesh) (EdgeIndex, error) {
	if len(m.Faces) == 0 {
		return EdgeIndex{}, fmt.Errorf("gridconn: mesh has no faces: %w", ErrDegenerateGeometry)
	}
	loc := newFaceLocator(m)

	numPoints := g.NumPoints()
	e := EdgeIndex{
		GridIndices: make([]int, 0, 3*numPoints),
		MeshIndices: make([]int, 0, 3*numPoints),
	}
	for gIdx, p := range g.Points() {
		fIdx, ok := loc.locate(p.Vector)
		if !ok {
			return EdgeIndex{}, fmt.Errorf("gridconn: no face contains grid point %d (%v): %w",
				gIdx, p, ErrDegenerateGeometry)
		}
		for _, vIdx := range m.Faces[fIdx] {
			e.GridIndices = append(e.GridIndices, gIdx)
			e.MeshIndices = append(e.MeshIndices, vIdx)
		}
	}
	return e, nil
}

// closestPointOnTriangle returns the point of triangle abc closest to p.
// See Ericson, Real-Time Collision Detection, 5.1.5.
func closestPointOnTriangle(p, a, b, c r3.Vector) r3.Vector {
	ab := b.Sub(a)
	ac := c.Sub(a)

	ap := p.Sub(a)
	d1, d2 := ab.Dot(ap), ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := p.Sub(b)
	d3, d4 := ab.Dot(bp), ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		return a.Add(ab.Mul(d1 / (d1 - d3)))
	}

	cp := p.Sub(c)
	d5, d6 := ab.Dot(cp), ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		return a.Add(ac.Mul(d2 / (d2 - d6)))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		return b.Add(c.Sub(b).Mul((d4 - d3) / ((d4 - d3) + (d5 - d6))))
	}

	denom := 1 / (va + vb + vc)
	return a.Add(ab.Mul(vb * denom)).Add(ac.Mul(vc * denom))
}
