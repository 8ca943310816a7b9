// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Vertex and edge lifecycle plus catalog queries.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - OutEdges()/Neighbors() return edges in insertion order.
//   - Edge IDs are monotonic ("e" + decimal).
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix of generated edge identifiers.
const edgeIDPrefix = "e"

// AddVertex inserts a vertex if missing and returns its dense index.
//
// Options are applied only when the vertex is created; adding an existing
// vertex is a no-op that returns the existing index.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) (int, error) {
	if id == "" {
		return -1, ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.ensureVertex(id, opts...), nil
}

// ensureVertex returns the index of id, creating the vertex when absent.
// Caller must hold the write lock.
func (g *Graph) ensureVertex(id string, opts ...VertexOption) int {
	if i, ok := g.byID[id]; ok {
		return i
	}
	v := &Vertex{ID: id, Index: len(g.vertices), Metadata: make(map[string]interface{})}
	for _, opt := range opts {
		opt(v)
	}
	g.vertices = append(g.vertices, v)
	g.out = append(g.out, nil)
	g.byID[id] = v.Index

	return v.Index
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.Index(id)
	return ok
}

// Index returns the dense index of the vertex id.
// Complexity: O(1).
func (g *Graph) Index(id string) (int, bool) {
	if id == "" {
		return -1, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.byID[id]
	if !ok {
		return -1, false
	}

	return i, true
}

// VertexAt returns the vertex stored at index i.
// Returns ErrVertexNotFound if i is out of range.
// Complexity: O(1).
func (g *Graph) VertexAt(i int) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.vertices) {
		return nil, fmt.Errorf("%w: index %d", ErrVertexNotFound, i)
	}

	return g.vertices[i], nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, len(g.vertices))
	for i, v := range g.vertices {
		ids[i] = v.ID
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Size returns the number of edges.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// AddEdge creates a one-way edge from → to and returns its ID.
//
// Steps:
//  1. Validate IDs, travel function and loop constraint.
//  2. Lock, ensure both endpoints exist.
//  3. Build the Edge with a zeroed attribute vector and apply opts.
//  4. Store in the catalog and append to the tail's out-list.
//
// Errors: ErrEmptyVertexID, ErrNilTravel, ErrLoopNotAllowed, and any error
// recorded by an EdgeOption (ErrAttributeNotFound, ErrAttributeArity).
// A failing option leaves the graph unchanged.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, travel TravelFunc, opts ...EdgeOption) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if travel == nil {
		return "", ErrNilTravel
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Build and configure the edge before touching the catalog
	e := &Edge{
		From:       from,
		To:         to,
		Mode:       Foot,
		Travel:     travel,
		Attributes: make([]float64, len(g.attrNames)),
	}
	for _, opt := range opts {
		if err := opt(g, e); err != nil {
			return "", fmt.Errorf("edge %s→%s: %w", from, to, err)
		}
	}

	// 3) Endpoints are created on demand
	e.Tail = g.ensureVertex(from)
	e.Head = g.ensureVertex(to)

	// 4) Register
	g.nextEdgeID++
	e.ID = edgeIDPrefix + strconv.FormatUint(g.nextEdgeID, 10)
	g.edges[e.ID] = e
	g.out[e.Tail] = append(g.out[e.Tail], e)

	return e.ID, nil
}

// Edge returns the edge with the given ID.
// Complexity: O(1).
func (g *Graph) Edge(id string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// OutEdges returns the outgoing edges of the vertex at index i, in insertion
// order. Out-of-range indices yield nil. The returned slice must not be
// modified.
// Complexity: O(1).
func (g *Graph) OutEdges(i int) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.out) {
		return nil
	}

	return g.out[i]
}

// Neighbors returns the outgoing edges of vertex id as a fresh slice.
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.byID[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, len(g.out[i]))
	copy(out, g.out[i])

	return out, nil
}

// Attributes returns a copy of the edge attribute schema.
func (g *Graph) Attributes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.attrNames))
	copy(out, g.attrNames)

	return out
}

// AttributeIndex returns the schema position of the attribute name.
func (g *Graph) AttributeIndex(name string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.attrIndex[name]

	return i, ok
}
