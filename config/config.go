// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package config loads graph building parameters from TOML.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/2dChan/s2gridmesh"
	"github.com/2dChan/s2gridmesh/gridconn"
	"github.com/2dChan/s2gridmesh/utils"
)

// GraphConfig holds the parameters for building the mesh hierarchy, the grid
// and the three graphs.
//
// An example file:
//
//	mesh_size = 4
//	mesh_levels = [0, 2, 4]
//	grid2mesh_edge_creation = "radius"
//	grid2mesh_radius_query = 0.6
//	mesh2grid_edge_creation = "contained"
//	num_latitudes = 91
//	num_longitudes = 180
type GraphConfig struct {
	// MeshSize is the number of times the icosahedron is split.
	MeshSize int `toml:"mesh_size"`
	// MeshLevels selects the levels of the processing graph.
	MeshLevels []int `toml:"mesh_levels"`

	Grid2MeshEdgeCreation gridconn.Method `toml:"grid2mesh_edge_creation"`
	// Grid2MeshRadiusQuery multiplies the longest finest-mesh edge to give
	// the connection radius. Required for the radius method.
	Grid2MeshRadiusQuery *float64 `toml:"grid2mesh_radius_query"`
	// Grid2MeshK is the number of mesh neighbors. Required for k_nearest.
	Grid2MeshK *int `toml:"grid2mesh_k"`

	Mesh2GridEdgeCreation gridconn.Method `toml:"mesh2grid_edge_creation"`

	// Either an equiangular grid size or explicit axes, in degrees.
	NumLatitudes  int       `toml:"num_latitudes"`
	NumLongitudes int       `toml:"num_longitudes"`
	Latitudes     []float64 `toml:"latitudes"`
	Longitudes    []float64 `toml:"longitudes"`
}

// Load decodes a GraphConfig from r and validates it.
func Load(r io.Reader) (*GraphConfig, error) {
	var c GraphConfig
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: unknown key %q: %w", undecoded[0].String(), gridconn.ErrInvalidConfig)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile decodes and validates the GraphConfig stored at path.
func LoadFile(path string) (*GraphConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks the configuration without building any geometry.
func (c *GraphConfig) Validate() error {
	if c.MeshSize < 0 {
		return invalidf("mesh_size %d must be non-negative", c.MeshSize)
	}
	if len(c.MeshLevels) == 0 {
		return invalidf("mesh_levels must not be empty")
	}
	for _, l := range c.MeshLevels {
		if l < 0 || l > c.MeshSize {
			return invalidf("mesh level %d out of range [0 %d]", l, c.MeshSize)
		}
	}

	enc, err := c.EncoderOption()
	if err != nil {
		return err
	}
	var opts s2gridmesh.GraphOptions
	if err := enc(&opts); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Mesh2GridEdgeCreation != gridconn.MethodContained {
		return invalidf("unsupported mesh2grid_edge_creation %q", c.Mesh2GridEdgeCreation)
	}

	if len(c.Latitudes) > 0 || len(c.Longitudes) > 0 {
		if _, err := gridconn.NewGrid(c.Latitudes, c.Longitudes); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		return nil
	}
	if c.NumLatitudes <= 0 || c.NumLongitudes <= 0 {
		return invalidf("grid size %dx%d must be positive", c.NumLatitudes, c.NumLongitudes)
	}
	return nil
}

// EncoderOption returns the graph option for the grid to mesh strategy.
func (c *GraphConfig) EncoderOption() (s2gridmesh.GraphOption, error) {
	switch c.Grid2MeshEdgeCreation {
	case gridconn.MethodRadius:
		if c.Grid2MeshRadiusQuery == nil {
			return nil, invalidf("grid2mesh_radius_query is required for %q", gridconn.MethodRadius)
		}
		return s2gridmesh.WithRadiusFactor(*c.Grid2MeshRadiusQuery), nil
	case gridconn.MethodKNearest:
		if c.Grid2MeshK == nil {
			return nil, invalidf("grid2mesh_k is required for %q", gridconn.MethodKNearest)
		}
		return s2gridmesh.WithEncoder(gridconn.KNearest(*c.Grid2MeshK)), nil
	default:
		return nil, invalidf("unsupported grid2mesh_edge_creation %q", c.Grid2MeshEdgeCreation)
	}
}

// Decoder returns the mesh to grid strategy. Only the contained method is
// supported for decoding.
func (c *GraphConfig) Decoder() gridconn.Strategy {
	return gridconn.Strategy{Method: c.Mesh2GridEdgeCreation}
}

// Grid returns the configured grid.
func (c *GraphConfig) Grid() (*gridconn.Grid, error) {
	lat, lon := c.Latitudes, c.Longitudes
	if len(lat) == 0 && len(lon) == 0 {
		lat, lon = utils.EquiangularGrid(c.NumLatitudes, c.NumLongitudes)
	}
	return gridconn.NewGrid(lat, lon)
}

// GraphOptions returns the options for s2gridmesh.NewGraph.
func (c *GraphConfig) GraphOptions() ([]s2gridmesh.GraphOption, error) {
	enc, err := c.EncoderOption()
	if err != nil {
		return nil, err
	}
	return []s2gridmesh.GraphOption{
		s2gridmesh.WithLevels(c.MeshLevels...),
		enc,
		s2gridmesh.WithDecoder(c.Decoder()),
	}, nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("config: "+format+": %w", append(args, gridconn.ErrInvalidConfig)...)
}
