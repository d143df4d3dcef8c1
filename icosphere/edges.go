// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package icosphere

import (
	"cmp"
	"slices"
)

// Edges is a directed edge list: edge i runs from Senders[i] to Receivers[i].
type Edges struct {
	Senders   []int
	Receivers []int
}

// Len returns the number of directed edges.
func (e Edges) Len() int {
	return len(e.Senders)
}

// Index returns the edges in [2, E] form.
func (e Edges) Index() [2][]int {
	return [2][]int{e.Senders, e.Receivers}
}

// FacesToEdges turns every face (a, b, c) into the directed edges a->b, b->c
// and c->a.
//
// Edges are grouped by position within the face: first the a->b edge of every
// face, then every b->c edge, then every c->a edge. The result has exactly
// 3*len(faces) edges; edges shared by adjacent faces are not deduplicated.
func FacesToEdges(faces [][3]int) Edges {
	n := len(faces)
	e := Edges{
		Senders:   make([]int, 3*n),
		Receivers: make([]int, 3*n),
	}
	for i, f := range faces {
		for j := range 3 {
			e.Senders[j*n+i] = f[j]
			e.Receivers[j*n+i] = f[(j+1)%3]
		}
	}
	return e
}

// UndirectedEdges returns every distinct edge of faces exactly once in each
// direction.
//
// Each edge is canonicalized as (min, max), duplicates are removed and the
// canonical edges are sorted. Every edge is immediately followed by its
// reverse: a->b, b->a, a'->b', b'->a', ...
func UndirectedEdges(faces [][3]int) Edges {
	raw := FacesToEdges(faces)
	keys := make([]edgeKey, raw.Len())
	for i := range keys {
		keys[i] = newEdgeKey(raw.Senders[i], raw.Receivers[i])
	}
	slices.SortFunc(keys, func(a, b edgeKey) int {
		return cmp.Or(cmp.Compare(a.lo, b.lo), cmp.Compare(a.hi, b.hi))
	})
	keys = slices.Compact(keys)

	e := Edges{
		Senders:   make([]int, 2*len(keys)),
		Receivers: make([]int, 2*len(keys)),
	}
	for i, k := range keys {
		e.Senders[2*i], e.Receivers[2*i] = k.lo, k.hi
		e.Senders[2*i+1], e.Receivers[2*i+1] = k.hi, k.lo
	}
	return e
}

// MaxEdgeLength returns the largest straight-line distance between the end
// points of any edge of m.
func MaxEdgeLength(m *TriangularMesh) float64 {
	e := FacesToEdges(m.Faces)
	var maxLen float64
	for i := range e.Len() {
		d := m.Vertices[e.Senders[i]].Sub(m.Vertices[e.Receivers[i]].Vector).Norm()
		maxLen = max(maxLen, d)
	}
	return maxLen
}
