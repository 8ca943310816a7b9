// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/RonaldPonguillo/mumoro/core"
)

// ExampleGraph builds a two-mode network: a walk and a scheduled bus.
func ExampleGraph() {
	// 1) Declare the attribute schema shared by every edge.
	g := core.NewGraph(core.WithAttributes("fare"))

	// 2) Walking takes a constant 15 minutes and costs nothing.
	_, _ = g.AddEdge("Home", "Office", core.Constant(15), core.WithMode(core.Foot))

	// 3) The bus leaves at minute 5 and 20, rides 6 minutes, and costs 2.
	tt, _ := core.NewTimetable(core.Departure{At: 5, Ride: 6}, core.Departure{At: 20, Ride: 6})
	_, _ = g.AddEdge("Home", "Office", tt.Func(), core.WithMode(core.Bus), core.WithAttribute("fare", 2))

	// 4) Inspect the alternatives when leaving home at minute 0.
	edges, _ := g.Neighbors("Home")
	for _, e := range edges {
		fmt.Printf("%s arrive=%.0f fare=%.0f\n", e.Mode, e.Travel(0), e.Attr(0))
	}

	// Output:
	// foot arrive=15 fare=0
	// bus arrive=11 fare=2
}
