package cluster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Topology lists the TCP listen address of every rank, index == rank.
// It is the on-disk counterpart of a ChannelTransport mesh:
//
//	ranks:
//	  - "127.0.0.1:7600"
//	  - "127.0.0.1:7601"
type Topology struct {
	// Ranks holds one host:port per rank, in rank order.
	Ranks []string `yaml:"ranks"`
}

// LoadTopology reads and validates a YAML topology file.
func LoadTopology(path string) (*Topology, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cluster: read topology: %w", err)
	}

	var topo Topology
	if err = yaml.Unmarshal(raw, &topo); err != nil {
		return nil, fmt.Errorf("cluster: parse topology: %w", err)
	}
	if err = topo.Validate(); err != nil {
		return nil, err
	}

	return &topo, nil
}

// Validate checks the topology lists at least one rank and no empty
// addresses.
func (t *Topology) Validate() error {
	if len(t.Ranks) == 0 {
		return ErrTopologySize
	}
	for _, addr := range t.Ranks {
		if addr == "" {
			return ErrTopologyAddr
		}
	}

	return nil
}

// Size returns the rank count.
func (t *Topology) Size() int { return len(t.Ranks) }

// Addr returns the listen address of the given rank.
func (t *Topology) Addr(rank int) (string, error) {
	if rank < 0 || rank >= len(t.Ranks) {
		return "", ErrRankRange
	}

	return t.Ranks[rank], nil
}
