// SPDX-License-Identifier: MIT
// Package core_test verifies vertex and edge lifecycle of core.Graph.
package core_test

import (
	"math"
	"testing"

	"github.com/RonaldPonguillo/mumoro/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
)

func TestAddVertex_IndicesAreDenseAndStable(t *testing.T) {
	g := core.NewGraph()

	ia, err := g.AddVertex(VertexA, core.WithCoordinates(2.35, 48.85))
	require.NoError(t, err)
	ib, err := g.AddVertex(VertexB)
	require.NoError(t, err)
	again, err := g.AddVertex(VertexA, core.WithCoordinates(0, 0))
	require.NoError(t, err)

	assert.Equal(t, 0, ia)
	assert.Equal(t, 1, ib)
	assert.Equal(t, ia, again, "re-adding must return the existing index")
	assert.Equal(t, 2, g.Order())

	v, err := g.VertexAt(ia)
	require.NoError(t, err)
	assert.Equal(t, VertexA, v.ID)
	assert.Equal(t, 2.35, v.Lon, "options apply only on creation")
	assert.NotNil(t, v.Metadata)
}

func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddVertex("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	assert.False(t, g.HasVertex(""))
}

func TestVertexAt_OutOfRange(t *testing.T) {
	g := core.NewGraph()
	_, err := g.VertexAt(0)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.VertexAt(-1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestAddEdge_AutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph(core.WithAttributes("fare", "transfers"))

	eid, err := g.AddEdge(VertexA, VertexB, core.Constant(10),
		core.WithMode(core.Bus),
		core.WithAttribute("fare", 2.5),
	)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)
	assert.True(t, g.HasVertex(VertexA))
	assert.True(t, g.HasVertex(VertexB))
	assert.Equal(t, 1, g.Size())

	e, err := g.Edge(eid)
	require.NoError(t, err)
	assert.Equal(t, core.Bus, e.Mode)
	assert.Equal(t, []float64{2.5, 0}, e.Attributes)
	assert.Equal(t, 0, e.Tail)
	assert.Equal(t, 1, e.Head)
	assert.Equal(t, 17.0, e.Travel(7))
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph(core.WithAttributes("fare"))

	_, err := g.AddEdge("", VertexB, core.Constant(1))
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge(VertexA, VertexB, nil)
	assert.ErrorIs(t, err, core.ErrNilTravel)

	_, err = g.AddEdge(VertexA, VertexA, core.Constant(1))
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge(VertexA, VertexB, core.Constant(1), core.WithAttribute("comfort", 1))
	assert.ErrorIs(t, err, core.ErrAttributeNotFound)

	_, err = g.AddEdge(VertexA, VertexB, core.Constant(1), core.WithAttributeValues(1, 2))
	assert.ErrorIs(t, err, core.ErrAttributeArity)

	_, err = g.AddEdge(VertexA, VertexB, core.Constant(1), core.WithAttribute("fare", math.NaN()))
	assert.ErrorIs(t, err, core.ErrNonFiniteAttribute)

	_, err = g.AddEdge(VertexA, VertexB, core.Constant(1), core.WithAttributeValues(math.Inf(1)))
	assert.ErrorIs(t, err, core.ErrNonFiniteAttribute)

	// Failed options must not leave vertices or edges behind.
	assert.Zero(t, g.Order())
	assert.Zero(t, g.Size())
}

func TestAddEdge_LoopsAllowed(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge(VertexA, VertexA, core.Constant(1))
	require.NoError(t, err)

	nbs, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	require.Len(t, nbs, 1)
	assert.Equal(t, VertexA, nbs[0].To)
}

func TestOutEdges_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(VertexA, VertexC, core.Constant(1))
	_, _ = g.AddEdge(VertexA, VertexB, core.Constant(2))

	ia, ok := g.Index(VertexA)
	require.True(t, ok)
	out := g.OutEdges(ia)
	require.Len(t, out, 2)
	assert.Equal(t, VertexC, out[0].To)
	assert.Equal(t, VertexB, out[1].To)

	assert.Nil(t, g.OutEdges(42))

	_, err := g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{VertexC, VertexA, VertexB} {
		_, err := g.AddVertex(id)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{VertexA, VertexB, VertexC}, g.Vertices())
}

func TestAttributes_Schema(t *testing.T) {
	g := core.NewGraph(core.WithAttributes("fare", "transfers", "fare"))
	assert.Equal(t, []string{"fare", "transfers"}, g.Attributes())

	i, ok := g.AttributeIndex("transfers")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = g.AttributeIndex("comfort")
	assert.False(t, ok)

	e := &core.Edge{Attributes: []float64{3}}
	assert.Equal(t, 3.0, e.Attr(0))
	assert.Zero(t, e.Attr(5))
}

func TestEdge_NotFound(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Edge("e9")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}
