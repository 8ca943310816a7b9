// SPDX-License-Identifier: MIT
package bfs_test

import (
	"fmt"

	"github.com/RonaldPonguillo/mumoro/bfs"
	"github.com/RonaldPonguillo/mumoro/core"
)

// ExampleBFS lists the stops reachable on foot only.
func ExampleBFS() {
	g := core.NewGraph()
	_, _ = g.AddEdge("Home", "Park", core.Constant(300), core.WithMode(core.Foot))
	_, _ = g.AddEdge("Park", "Museum", core.Constant(240), core.WithMode(core.Foot))
	_, _ = g.AddEdge("Home", "Airport", core.Constant(1800), core.WithMode(core.Rail))

	all, _ := bfs.BFS(g, "Home")
	walk, _ := bfs.BFS(g, "Home", bfs.WithModes(core.Foot))
	fmt.Println(all.Order)
	fmt.Println(walk.Order, walk.Depth["Museum"])

	// Output:
	// [Home Park Airport Museum]
	// [Home Park Museum] 2
}
