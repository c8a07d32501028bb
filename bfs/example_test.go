package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/shelternet/bfs"
	"github.com/katalvlaran/shelternet/topology"
)

// ExampleBFS lists the areas within two hops of a station, layer by layer.
func ExampleBFS() {
	//	0 - 1 - 3 - 6
	//	|    \
	//	2     4 - 7
	b, _ := topology.NewBuilder(8)
	for _, e := range [][2]topology.Node{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {3, 6}, {4, 7}} {
		_ = b.AddBidirectional(e[0], e[1], 1)
	}
	g, _ := b.Build()

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, n := range res.Order {
		fmt.Printf("area %d at %d hops\n", n, res.Depth[n])
	}
	// Output:
	// area 0 at 0 hops
	// area 1 at 1 hops
	// area 2 at 1 hops
	// area 3 at 2 hops
	// area 4 at 2 hops
}
