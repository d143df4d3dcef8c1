// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridconn

import (
	"fmt"
	"math"

	"github.com/2dChan/s2gridmesh/icosphere"
)

// Method selects how grid points are connected to mesh vertices.
type Method string

const (
	// MethodRadius connects a grid point to every mesh vertex within a
	// straight-line radius.
	MethodRadius Method = "radius"
	// MethodKNearest connects a grid point to its K nearest mesh vertices.
	MethodKNearest Method = "k_nearest"
	// MethodContained connects a grid point to the three vertices of the
	// mesh face that contains it.
	MethodContained Method = "contained"
)

// Strategy is a connection method together with its parameters.
// Radius is only used by MethodRadius and K only by MethodKNearest.
type Strategy struct {
	Method Method
	Radius float64
	K      int
}

// Radius returns a MethodRadius strategy.
func Radius(r float64) Strategy {
	return Strategy{Method: MethodRadius, Radius: r}
}

// KNearest returns a MethodKNearest strategy.
func KNearest(k int) Strategy {
	return Strategy{Method: MethodKNearest, K: k}
}

// Contained returns a MethodContained strategy.
func Contained() Strategy {
	return Strategy{Method: MethodContained}
}

// Validate reports whether the strategy can be evaluated.
func (s Strategy) Validate() error {
	switch s.Method {
	case MethodRadius:
		if math.IsNaN(s.Radius) || math.IsInf(s.Radius, 0) || s.Radius < 0 {
			return fmt.Errorf("gridconn: radius %v must be finite and non-negative: %w",
				s.Radius, ErrInvalidConfig)
		}
	case MethodKNearest:
		if s.K <= 0 {
			return fmt.Errorf("gridconn: k %d must be positive: %w", s.K, ErrInvalidConfig)
		}
	case MethodContained:
	default:
		return fmt.Errorf("gridconn: unsupported method %q: %w", s.Method, ErrInvalidConfig)
	}
	return nil
}

// EdgeIndex lists grid-mesh edges: edge i joins grid point GridIndices[i] and
// mesh vertex MeshIndices[i].
type EdgeIndex struct {
	GridIndices []int
	MeshIndices []int
}

// Len returns the number of edges.
func (e EdgeIndex) Len() int {
	return len(e.GridIndices)
}

// Stacked returns the edges in [2, E] form over a node space in which the
// numGrid grid nodes come first, followed by the mesh nodes.
func (e EdgeIndex) Stacked(numGrid int) [2][]int {
	mesh := make([]int, len(e.MeshIndices))
	for i, idx := range e.MeshIndices {
		mesh[i] = idx + numGrid
	}
	grid := make([]int, len(e.GridIndices))
	copy(grid, e.GridIndices)
	return [2][]int{grid, mesh}
}

// Connect builds the grid-mesh edges of g and m with the given strategy.
// The strategy is validated before any geometry is computed.
func Connect(g *Grid, m *icosphere.TriangularMesh, s Strategy) (EdgeIndex, error) {
	if err := s.Validate(); err != nil {
		return EdgeIndex{}, err
	}
	switch s.Method {
	case MethodRadius:
		return RadiusQuery(g, m, s.Radius), nil
	case MethodKNearest:
		return KNearestQuery(g, m, s.K), nil
	default:
		return ContainedQuery(g, m)
	}
}
