// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: Result and path reconstruction over the settled store.

package martins

import (
	"github.com/RonaldPonguillo/mumoro/core"
)

// Result is the outcome of a search. It keeps the settled store so that, in
// all-destinations mode, paths to any node can be reconstructed on demand.
// A Result is safe for concurrent reads.
type Result struct {
	// Paths holds the Pareto set at the target in settlement order.
	// Nil in all-destinations mode.
	Paths []Path

	// Stats counts extractions, insertions and prunings.
	Stats Stats

	g      *core.Graph
	source int
	target int
	dims   int
	store  *settledStore
}

// Dims returns N, the number of cost dimensions of the search.
func (res *Result) Dims() int { return res.dims }

// PathsTo reconstructs the Pareto set at vertex id, in settlement order.
// Unknown or unreached vertices yield an empty slice.
func (res *Result) PathsTo(id string) []Path {
	i, ok := res.g.Index(id)
	if !ok {
		return []Path{}
	}

	return res.reconstruct(i)
}

// All reconstructs the Pareto sets of every reached vertex, keyed by ID.
// The source is included with its single zero-length path.
func (res *Result) All() map[string][]Path {
	nodes := res.store.nodes()
	out := make(map[string][]Path, len(nodes))
	for _, n := range nodes {
		out[res.id(n)] = res.reconstruct(n)
	}

	return out
}

// Reached returns the IDs of vertices with at least one settled label, in
// ascending index order.
func (res *Result) Reached() []string {
	nodes := res.store.nodes()
	out := make([]string, len(nodes))
	for k, n := range nodes {
		out[k] = res.id(n)
	}

	return out
}

// Settled returns a copy of the settled labels of vertex id in settlement
// order. Unknown vertices yield nil.
func (res *Result) Settled(id string) []Label {
	i, ok := res.g.Index(id)
	if !ok {
		return nil
	}
	src := res.store.labels(i)
	out := make([]Label, len(src))
	copy(out, src)

	return out
}

// reconstruct walks backpointers for every settled label of node.
func (res *Result) reconstruct(node int) []Path {
	labels := res.store.labels(node)
	paths := make([]Path, 0, len(labels))
	for _, l := range labels {
		paths = append(paths, res.walk(l))
	}

	return paths
}

// walk follows (Pred, PredIdx) from l back to the seed label and returns the
// path in source → destination order. Backpointers always reference labels
// settled earlier, so the walk takes at most store.size() steps.
func (res *Result) walk(l Label) Path {
	var nodes []int
	var arrivals []float64
	cur := l
	for steps := 0; steps <= res.store.size(); steps++ {
		nodes = append(nodes, cur.Node)
		arrivals = append(arrivals, cur.Cost[0])
		if cur.IsRoot() {
			break
		}
		prev, ok := res.store.at(cur.Pred, cur.PredIdx)
		if !ok {
			break
		}
		cur = prev
	}

	// reverse to get source → destination
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
		arrivals[i], arrivals[j] = arrivals[j], arrivals[i]
	}
	ids := make([]string, len(nodes))
	for k, n := range nodes {
		ids[k] = res.id(n)
	}

	return Path{Nodes: ids, Arrivals: arrivals, Cost: l.Cost.Slice(res.dims)}
}

// id maps a dense index back to its vertex ID.
func (res *Result) id(node int) string {
	v, err := res.g.VertexAt(node)
	if err != nil {
		return ""
	}

	return v.ID
}
