package main

import (
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spanmst/cluster"
	"github.com/katalvlaran/spanmst/config"
)

// Execute is the entry point to running the CLI.
func Execute(version string) {
	cfg, err := config.FromEnv()
	if err != nil {
		log.WithError(err).Error("invalid environment configuration")
		os.Exit(1)
	}

	if err = newRootCmd(cfg, version).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd binds the flag surface over the env-resolved defaults.
func newRootCmd(cfg config.Config, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spanmst",
		Short: "Solve minimum spanning trees of grid-maze graphs over a message-passing cluster",
		Long: "spanmst reads a weighted graph file on rank 0, solves its minimum\n" +
			"spanning tree with the selected kernel, and reports the total weight.\n" +
			"Kruskal and Boruvka distribute their work across all ranks; the Prim\n" +
			"variants compute on rank 0 only.",
		Args:         cobra.NoArgs,
		Version:      version,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&cfg.Algorithm, "algorithm", "a", cfg.Algorithm,
		"algorithm: 0 Kruskal, 1 Prim (Fibonacci), 2 Prim (binary), 3 Boruvka")
	flags.IntVarP(&cfg.Columns, "columns", "c", cfg.Columns, "number of maze columns")
	flags.IntVarP(&cfg.Rows, "rows", "r", cfg.Rows, "number of maze rows")
	flags.StringVarP(&cfg.GraphFile, "file", "f", cfg.GraphFile, "path to the graph file")
	flags.BoolVarP(&cfg.Create, "new-maze", "n", cfg.Create, "create a new maze file before solving")
	flags.BoolVarP(&cfg.Maze, "maze", "m", cfg.Maze,
		"print the resulting maze at the end (matching rows and columns needed)")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "print the graph and MST edge lists")
	flags.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "in-process rank count")
	flags.StringVarP(&cfg.Topology, "topology", "t", cfg.Topology,
		"YAML rank-address file; switches to one-process-per-rank TCP mode")
	flags.IntVarP(&cfg.Rank, "rank", "R", cfg.Rank, "this process's rank in TCP mode")
	flags.StringVarP(&cfg.MetricsAddr, "metrics", "M", cfg.MetricsAddr,
		"expose Prometheus metrics on this address")

	return cmd
}

// run assembles the cluster and executes the solver program on it.
func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr)
	}

	if cfg.Topology != "" {
		topo, err := cluster.LoadTopology(cfg.Topology)
		if err != nil {
			return err
		}
		transport, err := cluster.NewTCPTransport(cfg.Rank, topo)
		if err != nil {
			return err
		}
		cl := cluster.New(transport)
		defer func() { _ = cl.Close() }()

		return solve(cl, cfg)
	}

	return cluster.Run(cfg.Workers, func(cl *cluster.Cluster) error {
		return solve(cl, cfg)
	})
}

// serveMetrics exposes the Prometheus registry over HTTP.
func serveMetrics(addr string) {
	log.WithField("address", addr).Info("serving metrics")
	http.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.WithError(err).Error("metrics server stopped")
	}
}
