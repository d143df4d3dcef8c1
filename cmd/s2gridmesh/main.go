// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command s2gridmesh builds icosahedral mesh hierarchies and grid/mesh graphs
// and reports their sizes.
package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/2dChan/s2gridmesh"
	"github.com/2dChan/s2gridmesh/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("s2gridmesh failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "s2gridmesh",
		Short:         "Build icosahedral mesh hierarchies and grid/mesh graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log per-level details")
	root.AddCommand(newBuildCmd(), newMeshCmd())
	return root
}

func newBuildCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the processing, encoder and decoder graphs from a TOML config",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(path)
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "path to the TOML graph config")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func runBuild(path string) error {
	start := time.Now()
	c, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	log := logrus.WithField("config", path)
	log.WithFields(logrus.Fields{
		"mesh_size":   c.MeshSize,
		"mesh_levels": c.MeshLevels,
		"encoder":     c.Grid2MeshEdgeCreation,
		"decoder":     c.Mesh2GridEdgeCreation,
	}).Debug("config loaded")

	h, err := s2gridmesh.NewHierarchy(c.MeshSize)
	if err != nil {
		return err
	}
	grid, err := c.Grid()
	if err != nil {
		return err
	}
	opts, err := c.GraphOptions()
	if err != nil {
		return err
	}
	g, err := s2gridmesh.NewGraph(h, grid, opts...)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"grid_nodes":       g.NumGridNodes,
		"mesh_nodes":       g.NumMeshNodes(),
		"mesh_faces":       g.Mesh.NumFaces(),
		"processing_edges": g.Processing.Len(),
		"encoder_edges":    g.Encoder.Len(),
		"decoder_edges":    g.Decoder.Len(),
		"elapsed":          time.Since(start),
	}).Info("graph built")
	return nil
}

func newMeshCmd() *cobra.Command {
	var splits int
	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "Build a mesh hierarchy and report per-level sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMesh(splits)
		},
	}
	cmd.Flags().IntVarP(&splits, "splits", "s", 3, "number of icosahedron splits")
	return cmd
}

func runMesh(splits int) error {
	start := time.Now()
	h, err := s2gridmesh.NewHierarchy(splits)
	if err != nil {
		return err
	}
	for _, m := range h.Meshes() {
		logrus.WithFields(logrus.Fields{
			"vertices": m.NumVertices(),
			"faces":    m.NumFaces(),
		}).Debug("level")
	}

	finest := h.Finest()
	logrus.WithFields(logrus.Fields{
		"levels":   h.NumLevels(),
		"vertices": finest.NumVertices(),
		"faces":    finest.NumFaces(),
		"edges":    finest.Edges().Len(),
		"elapsed":  time.Since(start),
	}).Info("hierarchy built")
	return nil
}
