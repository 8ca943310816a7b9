// SPDX-License-Identifier: MIT

// Package martins computes Pareto-optimal itineraries in a multimodal,
// time-dependent transport network with a generalized Martins label-setting
// algorithm.
//
// Overview:
//
//   - Every partial path is a Label: a node, an N-dimensional Cost vector,
//     and a (predecessor node, predecessor index) backpointer.
//   - Cost dimension 0 is the arrival time, produced by each edge's
//     core.TravelFunc (constant walks or timetabled services). Dimensions
//     1..N-1 accumulate caller-selected Objectives (fare, transfers, ...).
//   - The open frontier is dual-indexed: a red-black tree keyed by
//     lexicographic cost for extract-min, and a per-node map for dominance
//     scans. Both views always hold the same live set.
//   - Settled labels go into one append-only list per node. Their positions
//     never change, so (node, index) pairs are stable backpointers and the
//     store doubles as the path-reconstruction arena.
//
// Dominance:
//
//   - Strict (default): Pareto dominance, all dimensions minimized.
//   - Relaxed: epsilon-dominance over three objectives with configurable
//     TimeSlack, SecondSlack and TradeRatio thresholds; see Relaxed.
//   - Any Dominance implementation (or DominanceFunc) may be supplied.
//   - Equal cost vectors always count as covered, so at most one of several
//     equal-cost alternatives is kept.
//
// Destinations:
//
//   - Target(id): candidates covered by the target's settled labels are
//     pruned early; Result.Paths holds the target's Pareto set.
//   - No target: every node is a destination, no global pruning is done and
//     paths are reconstructed on demand via Result.PathsTo and Result.All.
//
// API reference:
//
//	func Search(g *core.Graph, opts ...Option) (*Result, error)
//	func SearchMany(ctx context.Context, g *core.Graph, qs []Query, opts ...Option) ([]*Result, error)
//
//	  – Source(id), Target(id), StartTime(t)
//	  – WithObjectives(objs...)     Attribute(i), Named(g, names...), EdgeCount(), ModeChange(m)
//	  – WithDominance(d)            Strict{}, DefaultRelaxed(), DominanceFunc
//	  – WithMaxLabels(n), WithContext(ctx), WithOnSettle(fn), WithLogger(l), WithParallelism(n)
//
// Thread safety:
//
//   - A single search runs on the calling goroutine with no internal
//     concurrency. The graph is only read, so any number of searches (for
//     example through SearchMany) may share one *core.Graph.
//   - Cancellation is checked only between two extractions.
//
// Example usage:
//
//	res, err := martins.Search(g,
//	    martins.Source("A"),
//	    martins.Target("D"),
//	    martins.WithObjectives(martins.Attribute(0)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range res.Paths {
//	    fmt.Println(p.Nodes, p.Cost)
//	}
package martins
