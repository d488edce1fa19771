package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanmst/config"
)

// TestDefault mirrors the classic maze-solver defaults.
func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 0, cfg.Algorithm)
	assert.Equal(t, 3, cfg.Columns)
	assert.Equal(t, 2, cfg.Rows)
	assert.Equal(t, "maze.csv", cfg.GraphFile)
	assert.Equal(t, 1, cfg.Workers)
	assert.False(t, cfg.Create)
	assert.False(t, cfg.Maze)
	assert.False(t, cfg.Verbose)
	require.NoError(t, cfg.Validate())
}

// TestFromEnv_Overrides: SPANMST_* variables overlay the defaults.
func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("SPANMST_ALGORITHM", "3")
	t.Setenv("SPANMST_ROWS", "7")
	t.Setenv("SPANMST_GRAPH_FILE", "grid.csv")
	t.Setenv("SPANMST_VERBOSE", "true")
	t.Setenv("SPANMST_WORKERS", "4")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Algorithm)
	assert.Equal(t, 7, cfg.Rows)
	assert.Equal(t, 3, cfg.Columns) // untouched default
	assert.Equal(t, "grid.csv", cfg.GraphFile)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 4, cfg.Workers)
}

// TestValidate_Sentinels: one sentinel per bad field.
func TestValidate_Sentinels(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"algorithm low", func(c *config.Config) { c.Algorithm = -1 }, config.ErrBadAlgorithm},
		{"algorithm high", func(c *config.Config) { c.Algorithm = 4 }, config.ErrBadAlgorithm},
		{"columns", func(c *config.Config) { c.Columns = 0 }, config.ErrBadColumns},
		{"rows", func(c *config.Config) { c.Rows = 0 }, config.ErrBadRows},
		{"graph file", func(c *config.Config) { c.GraphFile = "" }, config.ErrEmptyGraphFile},
		{"workers", func(c *config.Config) { c.Workers = 0 }, config.ErrBadWorkers},
		{"rank", func(c *config.Config) { c.Rank = -1 }, config.ErrBadRank},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}
}

// TestCodec_RoundTrip: solver fields survive the wire format exactly;
// launcher-local fields on the receiver stay untouched.
func TestCodec_RoundTrip(t *testing.T) {
	src := config.Default()
	src.Algorithm = 2
	src.Columns = 11
	src.Rows = 9
	src.GraphFile = "some/dir/maze.csv"
	src.Create = true
	src.Verbose = true
	src.Workers = 8 // launcher-local: must not travel

	buf, err := src.MarshalBinary()
	require.NoError(t, err)

	dst := config.Default()
	dst.Workers = 2
	require.NoError(t, dst.UnmarshalBinary(buf))

	assert.Equal(t, 2, dst.Algorithm)
	assert.Equal(t, 11, dst.Columns)
	assert.Equal(t, 9, dst.Rows)
	assert.Equal(t, "some/dir/maze.csv", dst.GraphFile)
	assert.True(t, dst.Create)
	assert.False(t, dst.Maze)
	assert.True(t, dst.Verbose)
	assert.Equal(t, 2, dst.Workers, "launcher-local field must not travel")
}

// TestCodec_EmptyPath: a zero-length path round-trips.
func TestCodec_EmptyPath(t *testing.T) {
	src := config.Default()
	src.GraphFile = ""
	buf, err := src.MarshalBinary()
	require.NoError(t, err)

	var dst config.Config
	require.NoError(t, dst.UnmarshalBinary(buf))
	assert.Empty(t, dst.GraphFile)
}

// TestCodec_Truncated: short buffers fail with ErrCodecShort.
func TestCodec_Truncated(t *testing.T) {
	buf, err := config.Default().MarshalBinary()
	require.NoError(t, err)

	var dst config.Config
	assert.ErrorIs(t, dst.UnmarshalBinary(buf[:5]), config.ErrCodecShort)
	assert.ErrorIs(t, dst.UnmarshalBinary(buf[:len(buf)-1]), config.ErrCodecShort)
}
