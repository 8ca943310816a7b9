// SPDX-License-Identifier: MIT

// Package bfs answers "which stops can be reached at all" on a core.Graph.
//
// What
//
//   - Explores vertices in non-decreasing leg count from a start vertex,
//     following out-edges only (edges are one-way).
//   - Ignores travel functions and timetables: an edge with no remaining
//     departure still counts as a leg.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: vertex → number of legs from the start
//   - Parent: vertex → predecessor in the BFS tree
//   - OnVisit hook (may abort with an error), MaxDepth limit (d>0) or explicit
//     "no limit" (d==0), per-edge filtering via WithFilterEdge or WithModes.
//
// Why
//
//   - Sanity-check a network before searching it: a stop missing from the
//     BFS tree is unreachable under any schedule and any objective.
//   - Lower bound for itineraries: no path to a stop has fewer legs than
//     its Depth.
//
// Determinism
//
//	core.Graph.OutEdges returns edges in insertion order and BFS enqueues
//	them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "Home",
//	    bfs.WithContext(ctx),
//	    bfs.WithModes(core.Foot, core.Bike),
//	    bfs.WithMaxDepth(3),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // ctx.Err() or an OnVisit error
//	}
//	path, _ := res.PathTo("Office")
package bfs
