// SPDX-License-Identifier: MIT

// Package bfs provides schedule-free breadth-first reachability over a
// core.Graph, returning leg counts, parent links and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/RonaldPonguillo/mumoro/core"
)

// queueItem pairs a vertex index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation, or any
// OnVisit error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, ok := g.Index(startID)
	if !ok {
		return nil, ErrStartVertexNotFound
	}

	n := g.Order()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// id maps a dense index back to its vertex ID.
func (w *walker) id(i int) string {
	v, err := w.graph.VertexAt(i)
	if err != nil {
		return ""
	}
	return v.ID
}

// enqueue marks i visited at depth d and records its parent.
func (w *walker) enqueue(i, d, parent int) {
	w.visited[i] = true
	id := w.id(i)
	w.res.Depth[id] = d
	if parent >= 0 {
		w.res.Parent[id] = w.id(parent)
	}
	w.queue = append(w.queue, queueItem{idx: i, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		id := w.id(item.idx)
		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, e := range w.graph.OutEdges(item.idx) {
			if w.visited[e.Head] || !w.opts.FilterEdge(e) {
				continue
			}
			w.enqueue(e.Head, next, item.idx)
		}
	}

	return nil
}
