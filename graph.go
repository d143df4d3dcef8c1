// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2gridmesh

import (
	"fmt"
	"math"
	"sync"

	"github.com/2dChan/s2gridmesh/gridconn"
	"github.com/2dChan/s2gridmesh/icosphere"
)

const (
	defaultRadiusFactor = 0.6
)

// GraphOptions configures NewGraph.
type GraphOptions struct {
	// Levels selects the mesh levels of the processing graph. Empty means all.
	Levels []int
	// Encoder connects grid points to mesh vertices.
	Encoder gridconn.Strategy
	// RadiusFactor, when positive and Encoder is a radius strategy, replaces
	// Encoder.Radius by RadiusFactor times the longest finest-mesh edge.
	RadiusFactor float64
	// Decoder connects mesh vertices back to grid points.
	Decoder gridconn.Strategy
}

// GraphOption sets a field of GraphOptions.
type GraphOption func(*GraphOptions) error

// WithLevels selects the mesh levels merged into the processing graph.
func WithLevels(levels ...int) GraphOption {
	return func(o *GraphOptions) error {
		if len(levels) == 0 {
			return fmt.Errorf("WithLevels: no levels: %w", ErrInvalidConfig)
		}
		o.Levels = levels
		return nil
	}
}

// WithEncoder sets the grid to mesh strategy. Radius strategies use their
// radius as is.
func WithEncoder(s gridconn.Strategy) GraphOption {
	return func(o *GraphOptions) error {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("WithEncoder: %w", err)
		}
		o.Encoder = s
		o.RadiusFactor = 0
		return nil
	}
}

// WithRadiusFactor sets a radius grid to mesh strategy whose radius is factor
// times the longest edge of the finest mesh. Values between 0.6 and 1 are
// reasonable: smaller values give fewer edges, larger ones better coverage.
func WithRadiusFactor(factor float64) GraphOption {
	return func(o *GraphOptions) error {
		if !(factor > 0) || math.IsInf(factor, 0) {
			return fmt.Errorf("WithRadiusFactor: factor %v must be positive and finite: %w", factor, ErrInvalidConfig)
		}
		o.Encoder = gridconn.Strategy{Method: gridconn.MethodRadius}
		o.RadiusFactor = factor
		return nil
	}
}

// WithDecoder sets the mesh to grid strategy.
func WithDecoder(s gridconn.Strategy) GraphOption {
	return func(o *GraphOptions) error {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("WithDecoder: %w", err)
		}
		o.Decoder = s
		return nil
	}
}

// Graph holds the three edge sets consumed by a grid/mesh message passing
// model.
type Graph struct {
	// Mesh is the finest mesh; mesh indices of all edge sets refer to it.
	Mesh *icosphere.TriangularMesh
	// Processing holds the mesh-only edges of the selected levels.
	Processing icosphere.Edges
	// Encoder holds the grid to mesh edges.
	Encoder gridconn.EdgeIndex
	// Decoder holds the mesh to grid edges.
	Decoder gridconn.EdgeIndex

	NumGridNodes int
}

// NumMeshNodes returns the number of mesh vertices.
func (g *Graph) NumMeshNodes() int {
	return len(g.Mesh.Vertices)
}

// NewGraph builds the processing, encoder and decoder graphs of h and grid.
//
// By default every level is used for processing, the encoder is a radius
// strategy with factor 0.6 and the decoder is the contained strategy. All
// options are validated before any geometry is computed.
func NewGraph(h *Hierarchy, grid *gridconn.Grid, setters ...GraphOption) (*Graph, error) {
	opts := GraphOptions{
		Encoder:      gridconn.Strategy{Method: gridconn.MethodRadius},
		RadiusFactor: defaultRadiusFactor,
		Decoder:      gridconn.Contained(),
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}
	if len(opts.Levels) == 0 {
		opts.Levels = make([]int, h.NumLevels())
		for i := range opts.Levels {
			opts.Levels[i] = i
		}
	}

	multi, err := h.SelectLevels(opts.Levels)
	if err != nil {
		return nil, err
	}

	finest := h.Finest().Mesh()
	encoder := opts.Encoder
	if encoder.Method == gridconn.MethodRadius && opts.RadiusFactor > 0 {
		encoder.Radius = opts.RadiusFactor * icosphere.MaxEdgeLength(finest)
	}

	g := &Graph{
		Mesh:         finest,
		Processing:   icosphere.UndirectedEdges(multi.Faces),
		NumGridNodes: grid.NumPoints(),
	}

	var (
		wg                 sync.WaitGroup
		encErr, decErr     error
		encEdges, decEdges gridconn.EdgeIndex
	)
	wg.Go(func() {
		encEdges, encErr = gridconn.Connect(grid, finest, encoder)
	})
	wg.Go(func() {
		decEdges, decErr = gridconn.Connect(grid, finest, opts.Decoder)
	})
	wg.Wait()

	if encErr != nil {
		return nil, fmt.Errorf("s2gridmesh: encoder: %w", encErr)
	}
	if decErr != nil {
		return nil, fmt.Errorf("s2gridmesh: decoder: %w", decErr)
	}
	g.Encoder, g.Decoder = encEdges, decEdges
	return g, nil
}
