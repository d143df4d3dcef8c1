// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridconn

import (
	"slices"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/2dChan/s2gridmesh/icosphere"
)

// RadiusQuery connects every grid point to every mesh vertex whose
// straight-line (not geodesic) distance is at most radius.
//
// Grid points may get any number of edges, including none. Edges are ordered
// by grid index, then by mesh index. A larger radius never yields fewer edges.
func RadiusQuery(g *Grid, m *icosphere.TriangularMesh, radius float64) EdgeIndex {
	tree := newIndexedTree(vectors(m.Vertices))

	var e EdgeIndex
	neighbors := make([]int, 0, 8)
	for gIdx, p := range g.Points() {
		keep := kdtree.NewDistKeeper(radius * radius)
		tree.NearestSet(keep, indexedPoint{idx: -1, pos: p.Vector})

		neighbors = neighbors[:0]
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue
			}
			neighbors = append(neighbors, c.Comparable.(indexedPoint).idx)
		}
		slices.Sort(neighbors)

		for _, mIdx := range neighbors {
			e.GridIndices = append(e.GridIndices, gIdx)
			e.MeshIndices = append(e.MeshIndices, mIdx)
		}
	}
	return e
}

// KNearestQuery connects every grid point to its k nearest mesh vertices,
// nearest first. Among vertices at the same distance the lower mesh index is
// kept. When the mesh has fewer than k vertices every vertex is used.
func KNearestQuery(g *Grid, m *icosphere.TriangularMesh, k int) EdgeIndex {
	tree := newIndexedTree(vectors(m.Vertices))

	k = min(k, len(m.Vertices))
	numPoints := g.NumPoints()
	e := EdgeIndex{
		GridIndices: make([]int, 0, k*numPoints),
		MeshIndices: make([]int, 0, k*numPoints),
	}
	if k <= 0 {
		return e
	}
	for gIdx, p := range g.Points() {
		q := indexedPoint{idx: -1, pos: p.Vector}
		nearest := kdtree.NewNKeeper(k)
		tree.NearestSet(nearest, q)

		// NKeeper drops vertices tied with the k-th one depending on the
		// traversal; collect every vertex up to that distance instead.
		kth := nearest.Heap.Max().Dist
		keep := kdtree.NewDistKeeper(kth)
		tree.NearestSet(keep, q)
		for _, c := range keptIndices(keep.Heap)[:k] {
			e.GridIndices = append(e.GridIndices, gIdx)
			e.MeshIndices = append(e.MeshIndices, c.Comparable.(indexedPoint).idx)
		}
	}
	return e
}

func vectors(points s2.PointVector) []r3.Vector {
	v := make([]r3.Vector, len(points))
	for i, p := range points {
		v[i] = p.Vector
	}
	return v
}
