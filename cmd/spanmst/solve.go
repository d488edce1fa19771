package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/spanmst/cluster"
	"github.com/katalvlaran/spanmst/config"
	"github.com/katalvlaran/spanmst/core"
	"github.com/katalvlaran/spanmst/maze"
	"github.com/katalvlaran/spanmst/mst"
)

// solve is the per-rank program: receive the configuration, let rank 0
// prepare the graph, run the selected kernel on every rank, and let
// rank 0 report.
func solve(cl *cluster.Cluster, cfg config.Config) error {
	// Rank 0's resolved configuration wins everywhere.
	var wire []byte
	var err error
	if cl.Rank() == 0 {
		if wire, err = cfg.MarshalBinary(); err != nil {
			return err
		}
	}
	if wire, err = cl.BroadcastBytes(0, wire); err != nil {
		return err
	}
	if err = cfg.UnmarshalBinary(wire); err != nil {
		return err
	}
	algorithm, err := mst.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}

	graph := core.NewWeightedGraph(0, 0)
	if cl.Rank() == 0 {
		fmt.Println("Starting")

		if cfg.Create {
			if err = maze.WriteFile(cfg.Rows, cfg.Columns, cfg.GraphFile); err != nil {
				return err
			}
		}
		if graph, err = maze.ReadGraphFile(cfg.GraphFile); err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"vertices":  graph.Vertices,
			"edges":     graph.Edges,
			"algorithm": algorithm.String(),
		}).Debug("graph loaded")

		if cfg.Verbose {
			fmt.Println("Graph:")
			fmt.Print(graph.String())
		}
	}

	start := time.Now()
	result, err := mst.Compute(cl, graph, mst.WithAlgorithm(algorithm))
	if err != nil {
		return err
	}

	if cl.Rank() == 0 {
		fmt.Printf("Time elapsed: %f s\n", time.Since(start).Seconds())

		if cfg.Verbose {
			fmt.Println("MST:")
			fmt.Print(result.String())
		}
		fmt.Printf("MST weight: %d\n", result.TotalWeight())

		if cfg.Maze {
			rendered, renderErr := maze.Render(result, cfg.Rows, cfg.Columns)
			if renderErr != nil {
				return renderErr
			}
			fmt.Println("Maze:")
			fmt.Print(rendered)
		}

		fmt.Println("Finished")
	}

	return nil
}
