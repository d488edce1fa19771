package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces the engine's environment variables.
const envPrefix = "spanmst"

// Config validation errors.
var (
	ErrBadAlgorithm   = errors.New("config: algorithm must be 0 (kruskal), 1 (prim/fibonacci), 2 (prim/binary) or 3 (boruvka)")
	ErrBadColumns     = errors.New("config: columns must be at least 1")
	ErrBadRows        = errors.New("config: rows must be at least 1")
	ErrEmptyGraphFile = errors.New("config: graph file path cannot be empty")
	ErrBadWorkers     = errors.New("config: workers must be at least 1")
	ErrBadRank        = errors.New("config: rank must be non-negative")
)

// Config is the full run configuration. The solver fields mirror the
// classic maze-solver handle; the launcher fields choose how the
// cluster itself is assembled.
type Config struct {
	// Algorithm selects the MST kernel by its CLI number.
	Algorithm int `envconfig:"ALGORITHM" default:"0"`

	// Columns is the maze width used by the generator and renderer.
	Columns int `envconfig:"COLUMNS" default:"3"`

	// Rows is the maze height used by the generator and renderer.
	Rows int `envconfig:"ROWS" default:"2"`

	// GraphFile is the graph file path read by rank 0.
	GraphFile string `envconfig:"GRAPH_FILE" default:"maze.csv"`

	// Create regenerates the maze file before solving.
	Create bool `envconfig:"CREATE"`

	// Maze renders the MST as an ASCII maze after solving.
	Maze bool `envconfig:"MAZE"`

	// Verbose prints the graph and MST edge lists and raises the log
	// level to debug.
	Verbose bool `envconfig:"VERBOSE"`

	// Workers is the number of in-process ranks when no topology file
	// is given.
	Workers int `envconfig:"WORKERS" default:"1"`

	// Topology is the path of a YAML rank-address file; non-empty
	// switches the engine to one-process-per-rank TCP mode.
	Topology string `envconfig:"TOPOLOGY"`

	// Rank is this process's rank in TCP mode; ignored otherwise.
	Rank int `envconfig:"RANK" default:"0"`

	// MetricsAddr exposes Prometheus metrics over HTTP when non-empty.
	MetricsAddr string `envconfig:"METRICS_ADDR"`
}

// Default returns the configuration with struct defaults only.
func Default() Config {
	return Config{
		Algorithm: 0,
		Columns:   3,
		Rows:      2,
		GraphFile: "maze.csv",
		Workers:   1,
	}
}

// FromEnv resolves the configuration from struct defaults overlaid
// with SPANMST_* environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: process environment: %w", err)
	}

	return cfg, nil
}

// Validate checks every field against its sentinel.
func (c Config) Validate() error {
	if c.Algorithm < 0 || c.Algorithm > 3 {
		return ErrBadAlgorithm
	}
	if c.Columns < 1 {
		return ErrBadColumns
	}
	if c.Rows < 1 {
		return ErrBadRows
	}
	if c.GraphFile == "" {
		return ErrEmptyGraphFile
	}
	if c.Workers < 1 {
		return ErrBadWorkers
	}
	if c.Rank < 0 {
		return ErrBadRank
	}

	return nil
}
