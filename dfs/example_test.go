package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/shelternet/dfs"
	"github.com/katalvlaran/shelternet/topology"
)

// ExampleDFS demonstrates a post-order traversal on a diamond of one-way roads.
//
//	  0
//	 / \
//	1   2
//	 \ /
//	  3
//	 / \
//	4   5
func ExampleDFS() {
	g, _ := topology.New(6, []topology.EdgeSpec{
		{From: 0, To: 1, Weight: 1}, {From: 0, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 1}, {From: 2, To: 3, Weight: 1},
		{From: 3, To: 4, Weight: 1}, {From: 3, To: 5, Weight: 1},
	})

	res, err := dfs.DFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output: [4 5 3 1 2 0]
}

// ExampleConnected checks whether every area is reachable from a shelter.
func ExampleConnected() {
	g, _ := topology.New(3, []topology.EdgeSpec{{From: 0, To: 1, Weight: 4}, {From: 1, To: 0, Weight: 4}})

	ok, _ := dfs.Connected(g, 0)
	fmt.Println(ok)
	// Output: false
}
