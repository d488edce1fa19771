// Package config carries the engine's run configuration from the
// environment and the CLI to every rank.
//
// Sources, lowest precedence first:
//
//  1. Struct defaults (the classic maze-solver defaults: Kruskal, a
//     2×3 grid, maze.csv).
//  2. SPANMST_* environment variables via envconfig (a .env file
//     loaded by the binary feeds these too).
//  3. Command-line flags bound by cmd/spanmst.
//
// Rank 0 owns the resolved configuration and broadcasts it to the
// other ranks as a small fixed-format little-endian buffer
// (MarshalBinary / UnmarshalBinary) rather than relying on any native
// struct layout. Launcher-local fields (worker count, topology path,
// rank id, metrics address) stay out of the wire format: each process
// resolves them itself before the cluster exists.
package config
