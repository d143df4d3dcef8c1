// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package icosphere

import (
	"fmt"
	"math"
	"slices"

	"github.com/golang/geo/s2"
)

const unitNormEps = 1e-6

// edgeKey identifies an undirected edge by its sorted vertex indices.
type edgeKey struct {
	lo, hi int
}

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{lo: a, hi: b}
}

// childVertexCache hands out midpoint vertices for split edges so that two
// faces sharing an edge get the same child vertex. It lives for one split.
type childVertexCache struct {
	index    map[edgeKey]int
	vertices s2.PointVector
	// Only parent vertices may be split.
	numParents int
}

func newChildVertexCache(vertices s2.PointVector, numFaces int) *childVertexCache {
	// Closed meshes have 3F/2 edges.
	numEdges := 3 * numFaces / 2
	return &childVertexCache{
		index:      make(map[edgeKey]int, numEdges),
		vertices:   slices.Grow(vertices, numEdges),
		numParents: len(vertices),
	}
}

// childVertex returns the index of the midpoint of the edge (a, b), creating
// it on first use.
func (c *childVertexCache) childVertex(a, b int) int {
	key := newEdgeKey(a, b)
	if idx, ok := c.index[key]; ok {
		return idx
	}

	if key.lo < 0 || key.hi >= c.numParents {
		panic(fmt.Sprintf("SplitFaces: edge (%d, %d) out of range [0 %d)", a, b, c.numParents))
	}
	pa, pb := c.vertices[key.lo], c.vertices[key.hi]
	if !onSphere(pa) || !onSphere(pb) {
		panic(fmt.Sprintf("SplitFaces: edge (%d, %d) has a vertex off the unit sphere", a, b))
	}
	mid := s2.Point{Vector: pa.Add(pb.Vector).Mul(0.5).Normalize()}

	idx := len(c.vertices)
	c.vertices = append(c.vertices, mid)
	c.index[key] = idx
	return idx
}

func onSphere(p s2.Point) bool {
	return math.Abs(p.Norm2()-1) <= unitNormEps
}

// SplitFaces splits every face into 4 faces keeping the orientation. Child
// vertices are appended to vertices; the grown slice is returned with the new
// faces. Existing entries of vertices are never modified, so indices of the
// parent mesh stay valid.
//
// It panics if a face references a vertex outside vertices or a vertex that
// is not of unit length.
func SplitFaces(vertices s2.PointVector, faces [][3]int) (s2.PointVector, [][3]int) {
	cache := newChildVertexCache(vertices, len(faces))
	newFaces := make([][3]int, 0, 4*len(faces))
	for _, f := range faces {
		v1, v2, v3 := f[0], f[1], f[2]
		m12 := cache.childVertex(v1, v2)
		m23 := cache.childVertex(v2, v3)
		m31 := cache.childVertex(v3, v1)
		newFaces = append(newFaces,
			[3]int{v1, m12, m31},
			[3]int{m12, v2, m23},
			[3]int{m31, m23, v3},
			[3]int{m12, m23, m31},
		)
	}
	return cache.vertices, newFaces
}

// Subdivide returns the mesh obtained by splitting each face of m into 4,
// with the new vertices projected back onto the unit sphere. m is not
// modified.
func Subdivide(m *TriangularMesh) *TriangularMesh {
	vertices, faces := SplitFaces(slices.Clone(m.Vertices), m.Faces)
	return &TriangularMesh{Vertices: vertices, Faces: faces}
}
