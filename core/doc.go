// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, in-memory multimodal transport
// network consumed by the mumoro search algorithms.
//
// The Graph G = (V,E) is directed. Every vertex carries a string ID and a
// dense integer index assigned in insertion order; algorithms address
// vertices by index so that per-vertex state can live in plain slices.
//
// Every Edge carries:
//
//   - a TravelFunc mapping a departure time to an arrival time, which lets a
//     single edge model walking (Constant) or a scheduled service (Timetable);
//   - an ordered list of numeric Attributes following the graph-wide schema
//     declared with WithAttributes (fare, transfers, comfort, ...);
//   - a Mode (foot, bus, rail, ...) for display and filtering.
//
// Configuration Options (GraphOption):
//
//	– WithAttributes(names ...string)
//	    Declares the ordered edge attribute schema. Edges store one value per name.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, opts ...VertexOption) (int, error) // O(1), idempotent
//	HasVertex(id string) bool                              // O(1)
//	Index(id string) (int, bool)                           // O(1)
//	VertexAt(i int) (*Vertex, error)                       // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, travel TravelFunc, opts ...EdgeOption) (edgeID string, err error) // O(1)†
//	Edge(id string) (*Edge, error)                         // O(1)
//
//	// Query
//	OutEdges(i int) []*Edge                                // O(1), insertion order
//	Neighbors(id string) ([]*Edge, error)                  // O(d), insertion order
//	Vertices() []string                                    // O(V·log V), sorted
//	Order() int / Size() int                               // O(1)
//	Attributes() []string / AttributeIndex(name) (int, bool)
//
// Concurrency:
//
//	A single sync.RWMutex guards the catalog. Any number of searches may read
//	the same Graph concurrently; mutations take the write lock. Edges returned
//	by OutEdges are shared pointers and must be treated as read-only.
//
// Errors:
//
//	ErrEmptyVertexID      – zero-length vertex ID
//	ErrVertexNotFound     – missing vertex or index out of range
//	ErrEdgeNotFound       – missing edge
//	ErrLoopNotAllowed     – self-loop when loops disabled
//	ErrNilTravel          – edge without a travel function
//	ErrAttributeNotFound  – attribute name outside the schema
//	ErrAttributeArity     – wrong number of positional attribute values
//	ErrBadTimetable       – malformed timetable entry
//
//	† amortized constant time: atomic ID generation + slice append.
package core
