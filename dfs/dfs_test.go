package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shelternet/dfs"
	"github.com/katalvlaran/shelternet/topology"
)

// sampleNetwork builds the 15-node city used throughout the shelter tests.
func sampleNetwork(t testing.TB) *topology.Graph {
	t.Helper()
	b, err := topology.NewBuilder(15)
	require.NoError(t, err)
	for _, e := range []topology.EdgeSpec{
		{From: 0, To: 1, Weight: 5}, {From: 0, To: 2, Weight: 10},
		{From: 1, To: 3, Weight: 7}, {From: 1, To: 4, Weight: 12},
		{From: 2, To: 5, Weight: 8}, {From: 3, To: 6, Weight: 6},
		{From: 4, To: 7, Weight: 9}, {From: 5, To: 8, Weight: 11},
		{From: 6, To: 9, Weight: 4}, {From: 7, To: 10, Weight: 7},
		{From: 8, To: 11, Weight: 5}, {From: 9, To: 12, Weight: 8},
		{From: 10, To: 13, Weight: 6}, {From: 11, To: 14, Weight: 10},
	} {
		require.NoError(t, b.AddBidirectional(e.From, e.To, e.Weight))
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// buildChain creates a directed chain 0→1→…→n-1.
func buildChain(t testing.TB, n int) *topology.Graph {
	t.Helper()
	b, err := topology.NewBuilder(n)
	require.NoError(t, err)
	for i := 0; i < n-1; i++ {
		require.NoError(t, b.AddEdge(topology.Node(i), topology.Node(i+1), 1))
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	ok, err := dfs.Connected(nil, 0)
	assert.False(t, ok)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(sampleNetwork(t), 99)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, topology.ErrInvalidNode)
}

func TestDFS_SingleNode(t *testing.T) {
	g, err := topology.New(1, nil)
	require.NoError(t, err)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []topology.Node{0}, res.Order)
	assert.True(t, res.Visited[0])
	assert.Equal(t, 0, res.Depth[0])
	_, hasParent := res.Parent[0]
	assert.False(t, hasParent, "start node should have no parent")
}

func TestDFS_SampleNetworkPostOrder(t *testing.T) {
	res, err := dfs.DFS(sampleNetwork(t), 0)
	require.NoError(t, err)

	want := []topology.Node{12, 9, 6, 3, 13, 10, 7, 4, 1, 14, 11, 8, 5, 2, 0}
	assert.Equal(t, want, res.Order)
	assert.Equal(t, 15, res.Count())
	assert.Equal(t, 5, res.Depth[13])
	assert.Equal(t, topology.Node(10), res.Parent[13])
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS(sampleNetwork(t), 0, dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, 6, res.Count())
	for n, d := range res.Depth {
		assert.LessOrEqual(t, d, 2, "node %d too deep", n)
	}

	res, err = dfs.DFS(sampleNetwork(t), 0, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []topology.Node{0}, res.Order)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	light := func(_ topology.Node, e topology.Edge) bool { return e.Weight <= 9 }
	res, err := dfs.DFS(sampleNetwork(t), 0, dfs.WithFilterNeighbor(light))
	require.NoError(t, err)
	assert.Equal(t, []topology.Node{12, 9, 6, 3, 1, 0}, res.Order)
	assert.Equal(t, 2, res.SkippedNeighbors)
}

func TestDFS_Hooks(t *testing.T) {
	var pre, post []topology.Node
	_, err := dfs.DFS(buildChain(t, 4), 0,
		dfs.WithOnVisit(func(n topology.Node) error { pre = append(pre, n); return nil }),
		dfs.WithOnExit(func(n topology.Node) error { post = append(post, n); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []topology.Node{0, 1, 2, 3}, pre)
	assert.Equal(t, []topology.Node{3, 2, 1, 0}, post)
}

func TestDFS_HookErrors(t *testing.T) {
	boom := errors.New("boom")

	res, err := dfs.DFS(buildChain(t, 4), 0, dfs.WithOnVisit(func(n topology.Node) error {
		if n == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)

	res, err = dfs.DFS(buildChain(t, 4), 0, dfs.WithOnExit(func(n topology.Node) error {
		if n == 1 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)
}

func TestDFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(sampleNetwork(t), 0, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_FullTraversal(t *testing.T) {
	// two components: 0→1 and 2→3, plus isolated 4
	g, err := topology.New(5, []topology.EdgeSpec{{From: 0, To: 1, Weight: 1}, {From: 2, To: 3, Weight: 1}})
	require.NoError(t, err)

	res, err := dfs.DFS(g, 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []topology.Node{1, 0, 3, 2, 4}, res.Order)
	assert.Equal(t, 5, res.Count())
	_, rooted := res.Parent[2]
	assert.False(t, rooted, "second tree root has no parent")
}

// TestDFS_DeepChain walks a corridor far deeper than a recursive walk could
// comfortably handle.
func TestDFS_DeepChain(t *testing.T) {
	const n = 200000
	res, err := dfs.DFS(buildChain(t, n), 0)
	require.NoError(t, err)
	assert.Equal(t, n, res.Count())
	assert.Equal(t, topology.Node(n-1), res.Order[0])
	assert.Equal(t, n-1, res.Depth[topology.Node(n-1)])
}

func TestConnected(t *testing.T) {
	ok, err := dfs.Connected(sampleNetwork(t), 4)
	require.NoError(t, err)
	assert.True(t, ok)

	// one-way chain reaches everything from the head only
	chain := buildChain(t, 5)
	ok, err = dfs.Connected(chain, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = dfs.Connected(chain, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	split, err := topology.New(3, []topology.EdgeSpec{{From: 0, To: 1, Weight: 1}, {From: 1, To: 0, Weight: 1}})
	require.NoError(t, err)
	ok, err = dfs.Connected(split, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}
