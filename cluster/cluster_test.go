package cluster_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanmst/cluster"
)

// TestChannelMesh_SendRecv exchanges a payload between two in-process
// ranks and checks per-pair ordering.
func TestChannelMesh_SendRecv(t *testing.T) {
	err := cluster.Run(2, func(cl *cluster.Cluster) error {
		if cl.Rank() == 0 {
			if err := cl.SendInts(1, []int32{1, 2, 3}); err != nil {
				return err
			}

			return cl.SendInts(1, []int32{4})
		}

		first, err := cl.RecvInts(0)
		if err != nil {
			return err
		}
		second, err := cl.RecvInts(0)
		if err != nil {
			return err
		}
		assert.Equal(t, []int32{1, 2, 3}, first)
		assert.Equal(t, []int32{4}, second)

		return nil
	})
	require.NoError(t, err)
}

// TestBroadcast_AllRanksReceive broadcasts from rank 0 across four
// ranks and collects every rank's view.
func TestBroadcast_AllRanksReceive(t *testing.T) {
	const size = 4
	var mu sync.Mutex
	views := make(map[int][]int32)

	err := cluster.Run(size, func(cl *cluster.Cluster) error {
		var data []int32
		if cl.Rank() == 0 {
			data = []int32{10, 20, 30}
		}
		got, err := cl.Broadcast(0, data)
		if err != nil {
			return err
		}

		mu.Lock()
		views[cl.Rank()] = got
		mu.Unlock()

		return nil
	})
	require.NoError(t, err)
	require.Len(t, views, size)
	for rank := 0; rank < size; rank++ {
		assert.Equal(t, []int32{10, 20, 30}, views[rank], "rank %d view", rank)
	}
}

// TestScatter_ChunksByRank scatters 8 values over 4 ranks in 2-value
// chunks and verifies each rank gets its own slice.
func TestScatter_ChunksByRank(t *testing.T) {
	const size = 4
	var mu sync.Mutex
	chunks := make(map[int][]int32)

	err := cluster.Run(size, func(cl *cluster.Cluster) error {
		var data []int32
		if cl.Rank() == 0 {
			data = []int32{0, 1, 10, 11, 20, 21, 30, 31}
		}
		part, err := cl.Scatter(0, data, 2)
		if err != nil {
			return err
		}

		mu.Lock()
		chunks[cl.Rank()] = part
		mu.Unlock()

		return nil
	})
	require.NoError(t, err)
	for rank := 0; rank < size; rank++ {
		want := []int32{int32(rank * 10), int32(rank*10 + 1)}
		assert.Equal(t, want, chunks[rank], "rank %d chunk", rank)
	}
}

// TestScatter_ShortBuffer: the root rejects a buffer smaller than
// chunk·Size. Run with a single rank so no peer blocks on the failure.
func TestScatter_ShortBuffer(t *testing.T) {
	err := cluster.Run(1, func(cl *cluster.Cluster) error {
		_, err := cl.Scatter(0, []int32{1}, 2)

		return err
	})
	require.ErrorIs(t, err, cluster.ErrScatterLength)
}

// TestRun_JoinsRankErrors: a failing rank surfaces wrapped with its
// rank, and peers blocked on it fail with ErrClosed instead of
// deadlocking.
func TestRun_JoinsRankErrors(t *testing.T) {
	err := cluster.Run(2, func(cl *cluster.Cluster) error {
		if cl.Rank() == 1 {
			return cluster.ErrTopologySize // stand-in failure
		}
		_, recvErr := cl.RecvInts(1)

		return recvErr
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, cluster.ErrTopologySize)
	assert.ErrorIs(t, err, cluster.ErrClosed)
}

// TestSend_RankValidation covers the range and self-message sentinels.
func TestSend_RankValidation(t *testing.T) {
	err := cluster.Run(1, func(cl *cluster.Cluster) error {
		assert.ErrorIs(t, cl.SendInts(5, []int32{1}), cluster.ErrRankRange)
		assert.ErrorIs(t, cl.SendInts(0, []int32{1}), cluster.ErrSelfMessage)
		_, recvErr := cl.RecvInts(0)
		assert.ErrorIs(t, recvErr, cluster.ErrSelfMessage)

		return nil
	})
	require.NoError(t, err)
}

// TestTopology_Validation exercises the YAML loader and its sentinels.
func TestTopology_Validation(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "topo.yaml")
	require.NoError(t, os.WriteFile(good, []byte("ranks:\n  - \"127.0.0.1:7600\"\n  - \"127.0.0.1:7601\"\n"), 0o644))
	topo, err := cluster.LoadTopology(good)
	require.NoError(t, err)
	assert.Equal(t, 2, topo.Size())
	addr, err := topo.Addr(1)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7601", addr)
	_, err = topo.Addr(2)
	assert.ErrorIs(t, err, cluster.ErrRankRange)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("ranks: []\n"), 0o644))
	_, err = cluster.LoadTopology(empty)
	assert.ErrorIs(t, err, cluster.ErrTopologySize)

	blank := filepath.Join(dir, "blank.yaml")
	require.NoError(t, os.WriteFile(blank, []byte("ranks:\n  - \"\"\n"), 0o644))
	_, err = cluster.LoadTopology(blank)
	assert.ErrorIs(t, err, cluster.ErrTopologyAddr)

	_, err = cluster.LoadTopology(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

// TestTCPTransport_Exchange runs a two-rank broadcast plus reply over
// loopback TCP.
func TestTCPTransport_Exchange(t *testing.T) {
	topo := &cluster.Topology{Ranks: []string{"127.0.0.1:47311", "127.0.0.1:47312"}}

	var wg sync.WaitGroup
	errs := make([]error, topo.Size())
	replies := make([][]int32, topo.Size())

	for rank := 0; rank < topo.Size(); rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			transport, err := cluster.NewTCPTransport(rank, topo)
			if err != nil {
				errs[rank] = err

				return
			}
			cl := cluster.New(transport)
			defer func() { _ = cl.Close() }()

			var data []int32
			if rank == 0 {
				data = []int32{7, 8, 9}
			}
			got, err := cl.Broadcast(0, data)
			if err != nil {
				errs[rank] = err

				return
			}
			replies[rank] = got

			// Echo back so rank 0 also exercises Recv over TCP.
			if rank == 0 {
				echoed, echoErr := cl.RecvInts(1)
				if echoErr != nil {
					errs[rank] = echoErr

					return
				}
				replies[rank] = echoed
			} else {
				errs[rank] = cl.SendInts(0, got)
			}
		}(rank)
	}
	wg.Wait()

	for rank, err := range errs {
		require.NoError(t, err, "rank %d", rank)
	}
	assert.Equal(t, []int32{7, 8, 9}, replies[0])
	assert.Equal(t, []int32{7, 8, 9}, replies[1])
}
