// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2gridmesh

import (
	"fmt"
	"slices"

	"github.com/golang/geo/s2"

	"github.com/2dChan/s2gridmesh/gridconn"
	"github.com/2dChan/s2gridmesh/icosphere"
)

// ErrInvalidConfig is returned for invalid splits, level selections and graph
// options. It is the same sentinel as gridconn.ErrInvalidConfig.
var ErrInvalidConfig = gridconn.ErrInvalidConfig

// Hierarchy is a sequence of icosahedral meshes of increasing resolution.
// Level 0 is the icosahedron and level i is level i-1 split once.
//
// All levels share one vertex arena: level i uses the first VertexCounts[i]
// entries of Vertices, so vertex indices of a level stay valid at every finer
// level.
type Hierarchy struct {
	Vertices s2.PointVector
	// NOTE: Faces of all levels, level i is Faces[FaceOffsets[i]:FaceOffsets[i+1]]
	Faces        [][3]int
	FaceOffsets  []int
	VertexCounts []int
}

// NewHierarchy builds the icosahedron and splits it splits times.
func NewHierarchy(splits int) (*Hierarchy, error) {
	if splits < 0 {
		return nil, fmt.Errorf("s2gridmesh: splits %d must be non-negative: %w", splits, ErrInvalidConfig)
	}

	ico := icosphere.Icosahedron()
	h := &Hierarchy{
		Vertices:     ico.Vertices,
		Faces:        ico.Faces,
		FaceOffsets:  make([]int, 1, splits+2),
		VertexCounts: make([]int, 0, splits+1),
	}
	h.FaceOffsets = append(h.FaceOffsets, len(ico.Faces))
	h.VertexCounts = append(h.VertexCounts, len(ico.Vertices))

	faces := ico.Faces
	for range splits {
		h.Vertices, faces = icosphere.SplitFaces(h.Vertices, faces)
		h.Faces = append(h.Faces, faces...)
		h.FaceOffsets = append(h.FaceOffsets, len(h.Faces))
		h.VertexCounts = append(h.VertexCounts, len(h.Vertices))
	}

	return h, nil
}

// NumLevels returns the number of levels, splits+1.
func (h *Hierarchy) NumLevels() int {
	return len(h.VertexCounts)
}

// Level returns the view of level i.
// It returns an error if i is out of range.
func (h *Hierarchy) Level(i int) (Level, error) {
	if i < 0 || i >= h.NumLevels() {
		return Level{}, fmt.Errorf("s2gridmesh: level %d out of range [0 %d): %w", i, h.NumLevels(), ErrInvalidConfig)
	}
	return Level{idx: i, h: h}, nil
}

// Finest returns the view of the highest resolution level.
func (h *Hierarchy) Finest() Level {
	return Level{idx: h.NumLevels() - 1, h: h}
}

// Meshes returns every level as a TriangularMesh, from lowest to highest
// resolution. The meshes share the hierarchy's storage.
func (h *Hierarchy) Meshes() []*icosphere.TriangularMesh {
	meshes := make([]*icosphere.TriangularMesh, h.NumLevels())
	for i := range meshes {
		meshes[i] = Level{idx: i, h: h}.Mesh()
	}
	return meshes
}

// SelectLevels merges the requested levels into one multi-level mesh.
//
// The result uses the vertices of the highest requested level and the faces
// of every requested level, concatenated from the highest level down.
// Repeated levels are merged. All levels are checked before any faces are
// copied; an empty selection or an out-of-range level is an error.
func (h *Hierarchy) SelectLevels(levels []int) (*icosphere.TriangularMesh, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("s2gridmesh: no mesh levels selected: %w", ErrInvalidConfig)
	}
	for _, l := range levels {
		if l < 0 || l >= h.NumLevels() {
			return nil, fmt.Errorf("s2gridmesh: mesh level %d out of range [0 %d): %w", l, h.NumLevels(), ErrInvalidConfig)
		}
	}

	sorted := slices.Clone(levels)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	slices.Reverse(sorted)

	numFaces := 0
	for _, l := range sorted {
		numFaces += h.FaceOffsets[l+1] - h.FaceOffsets[l]
	}
	faces := make([][3]int, 0, numFaces)
	for _, l := range sorted {
		faces = append(faces, h.Faces[h.FaceOffsets[l]:h.FaceOffsets[l+1]]...)
	}

	finest := Level{idx: sorted[0], h: h}
	return &icosphere.TriangularMesh{Vertices: finest.Vertices(), Faces: faces}, nil
}
