// Package s2gridmesh builds multi-resolution icosahedral meshes of the sphere
// and the graphs that connect them to latitude/longitude grids.

package s2gridmesh

import (
	"fmt"

	"github.com/golang/geo/s2"

	"github.com/2dChan/s2gridmesh/icosphere"
)

// Level represents one mesh of a Hierarchy. It is a view structure: it holds
// no geometry of its own and reads the Hierarchy's shared storage.
type Level struct {
	idx int
	h   *Hierarchy
}

// Index returns the number of splits that produced the level.
func (l Level) Index() int {
	return l.idx
}

// NumVertices returns the number of vertices of the level.
func (l Level) NumVertices() int {
	return l.h.VertexCounts[l.idx]
}

// NumFaces returns the number of faces of the level.
func (l Level) NumFaces() int {
	return l.h.FaceOffsets[l.idx+1] - l.h.FaceOffsets[l.idx]
}

// Vertices returns the vertices of the level, a prefix of the Hierarchy's
// vertices. The slice is capped so appending to it cannot overwrite finer
// levels.
func (l Level) Vertices() s2.PointVector {
	n := l.NumVertices()
	return l.h.Vertices[:n:n]
}

// Faces returns the faces of the level, in CCW order when looking out of the
// sphere.
func (l Level) Faces() [][3]int {
	start := l.h.FaceOffsets[l.idx]
	end := l.h.FaceOffsets[l.idx+1]
	return l.h.Faces[start:end:end]
}

// Face returns the face at the specified index.
// It returns an error if the index is out of range.
func (l Level) Face(i int) ([3]int, error) {
	if i < 0 || i >= l.NumFaces() {
		return [3]int{}, fmt.Errorf("Face: index %d out of range [0 %d)", i, l.NumFaces())
	}
	return l.h.Faces[l.h.FaceOffsets[l.idx]+i], nil
}

// Mesh returns the level as a TriangularMesh sharing the Hierarchy's storage.
func (l Level) Mesh() *icosphere.TriangularMesh {
	return &icosphere.TriangularMesh{Vertices: l.Vertices(), Faces: l.Faces()}
}

// Edges returns the undirected edges of the level.
func (l Level) Edges() icosphere.Edges {
	return icosphere.UndirectedEdges(l.Faces())
}
