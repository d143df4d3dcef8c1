// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridconn

import (
	"cmp"
	"slices"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// indexedPoint is a point in R3 that remembers its position in the input it
// was built from. kdtree.New reorders its input, so the index is carried along.
type indexedPoint struct {
	idx int
	pos r3.Vector
}

func (p indexedPoint) coord(d kdtree.Dim) float64 {
	switch d {
	case 0:
		return p.pos.X
	case 1:
		return p.pos.Y
	case 2:
		return p.pos.Z
	}
	panic("coord: illegal dimension")
}

// Compare returns the signed distance of p from the plane through c
// perpendicular to dimension d.
func (p indexedPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(indexedPoint)
	return p.coord(d) - q.coord(d)
}

func (p indexedPoint) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between p and c.
func (p indexedPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(indexedPoint)
	return p.pos.Sub(q.pos).Norm2()
}

// indexedPoints implements kdtree.Interface.
type indexedPoints []indexedPoint

func (p indexedPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p indexedPoints) Len() int                      { return len(p) }
func (p indexedPoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}

// Pivot sorts p along d and returns the median. Coordinate ties are ordered
// by index so that equal inputs always build the same tree.
func (p indexedPoints) Pivot(d kdtree.Dim) int {
	slices.SortFunc(p, func(a, b indexedPoint) int {
		return cmp.Or(cmp.Compare(a.coord(d), b.coord(d)), cmp.Compare(a.idx, b.idx))
	})
	return len(p) / 2
}

// newIndexedTree builds a k-d tree over positions. The tree owns its own copy
// of the points, positions is not reordered.
func newIndexedTree(positions []r3.Vector) *kdtree.Tree {
	points := make(indexedPoints, len(positions))
	for i, v := range positions {
		points[i] = indexedPoint{idx: i, pos: v}
	}
	return kdtree.New(points, false)
}

// keptIndices returns the kept points of heap ordered by distance, nearest
// first, and by index on ties. The keepers' sentinel entries are dropped.
func keptIndices(heap kdtree.Heap) []kdtree.ComparableDist {
	kept := make([]kdtree.ComparableDist, 0, len(heap))
	for _, c := range heap {
		if c.Comparable == nil {
			continue
		}
		kept = append(kept, c)
	}
	slices.SortFunc(kept, func(a, b kdtree.ComparableDist) int {
		return cmp.Or(
			cmp.Compare(a.Dist, b.Dist),
			cmp.Compare(a.Comparable.(indexedPoint).idx, b.Comparable.(indexedPoint).idx),
		)
	})
	return kept
}
