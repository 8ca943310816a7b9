// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, Mode, options and sentinel errors.

package core

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNilTravel indicates that an edge was added without a travel function.
	ErrNilTravel = errors.New("core: travel function is nil")

	// ErrAttributeNotFound indicates an attribute name outside the graph schema.
	ErrAttributeNotFound = errors.New("core: attribute not found")

	// ErrAttributeArity indicates a positional attribute list whose length
	// does not match the graph schema.
	ErrAttributeArity = errors.New("core: attribute count does not match schema")

	// ErrNonFiniteAttribute indicates a NaN or infinite attribute value.
	ErrNonFiniteAttribute = errors.New("core: attribute value is not finite")
)

// Mode names the transport mode an edge belongs to.
type Mode string

// Known transport modes. Any other non-empty string is accepted as well.
const (
	Foot     Mode = "foot"
	Bike     Mode = "bike"
	Car      Mode = "car"
	Bus      Mode = "bus"
	Tram     Mode = "tram"
	Metro    Mode = "metro"
	Rail     Mode = "rail"
	Transfer Mode = "transfer"
)

// Vertex represents a stop, intersection or station of the network.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Index is the dense position of the vertex, assigned in insertion order.
	Index int

	// Lon and Lat are optional WGS84 coordinates.
	Lon, Lat float64

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge represents a one-way connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From and To are the endpoint vertex IDs.
	From, To string

	// Tail and Head are the dense indices of From and To.
	Tail, Head int

	// Mode is the transport mode of the edge.
	Mode Mode

	// Travel maps a departure time to the arrival time at Head.
	Travel TravelFunc

	// Attributes holds one value per name of the graph schema, in schema order.
	Attributes []float64
}

// Attr returns the i-th attribute, or 0 if the edge carries fewer values.
func (e *Edge) Attr(i int) float64 {
	if i < 0 || i >= len(e.Attributes) {
		return 0
	}

	return e.Attributes[i]
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithAttributes declares the ordered edge attribute schema.
// Duplicate names keep their first position.
func WithAttributes(names ...string) GraphOption {
	return func(g *Graph) {
		for _, name := range names {
			if _, ok := g.attrIndex[name]; ok {
				continue
			}
			g.attrIndex[name] = len(g.attrNames)
			g.attrNames = append(g.attrNames, name)
		}
	}
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// VertexOption configures a vertex when it is first created.
type VertexOption func(v *Vertex)

// WithCoordinates sets the longitude and latitude of a vertex.
func WithCoordinates(lon, lat float64) VertexOption {
	return func(v *Vertex) { v.Lon, v.Lat = lon, lat }
}

// WithMetadata stores one key-value pair on the vertex.
func WithMetadata(key string, value interface{}) VertexOption {
	return func(v *Vertex) { v.Metadata[key] = value }
}

// EdgeOption configures properties of individual edges when added.
// It may record an error, which AddEdge reports.
type EdgeOption func(g *Graph, e *Edge) error

// WithMode sets the transport mode of the edge.
func WithMode(m Mode) EdgeOption {
	return func(_ *Graph, e *Edge) error {
		e.Mode = m
		return nil
	}
}

// WithAttribute sets a single named attribute of the edge.
func WithAttribute(name string, value float64) EdgeOption {
	return func(g *Graph, e *Edge) error {
		i, ok := g.attrIndex[name]
		if !ok {
			return ErrAttributeNotFound
		}
		if !finite(value) {
			return fmt.Errorf("%w: %s=%v", ErrNonFiniteAttribute, name, value)
		}
		e.Attributes[i] = value
		return nil
	}
}

// WithAttributeValues sets all attributes positionally, in schema order.
func WithAttributeValues(values ...float64) EdgeOption {
	return func(g *Graph, e *Edge) error {
		if len(values) != len(g.attrNames) {
			return ErrAttributeArity
		}
		for i, v := range values {
			if !finite(v) {
				return fmt.Errorf("%w: %s=%v", ErrNonFiniteAttribute, g.attrNames[i], v)
			}
		}
		copy(e.Attributes, values)
		return nil
	}
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Graph is the in-memory multimodal network.
//
// mu guards every field below it. nextEdgeID is only touched under the write lock.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool

	attrNames []string
	attrIndex map[string]int

	nextEdgeID uint64
	vertices   []*Vertex        // index → Vertex
	byID       map[string]int   // vertex ID → index
	out        [][]*Edge        // index → outgoing edges, insertion order
	edges      map[string]*Edge // edge ID → Edge
}

// NewGraph creates an empty Graph with the given options.
// By default the graph has no edge attributes and rejects self-loops.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		attrIndex: make(map[string]int),
		byID:      make(map[string]int),
		edges:     make(map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
