// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Document → *core.Graph conversion.

package netfile

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/RonaldPonguillo/mumoro/core"
)

// Build creates a graph from the document.
//
// Nodes are added first, in document order, so their indices follow the
// document; edges then add any missing endpoints. A bidirectional edge adds
// the reverse edge with the same travel function and attributes.
//
// Errors: ErrInvalidDocument wrapping the offending node or edge and the
// underlying core error.
func (doc *Document) Build() (*core.Graph, error) {
	g := core.NewGraph(core.WithAttributes(doc.Attributes...))

	for i, n := range doc.Nodes {
		if _, err := g.AddVertex(n.ID, core.WithCoordinates(n.Lon, n.Lat)); err != nil {
			return nil, fmt.Errorf("%w: node %d: %w", ErrInvalidDocument, i, err)
		}
	}

	for i, e := range doc.Edges {
		travel, err := e.travel()
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d (%s→%s): %w", ErrInvalidDocument, i, e.From, e.To, err)
		}
		opts := e.options()
		if _, err := g.AddEdge(e.From, e.To, travel, opts...); err != nil {
			return nil, fmt.Errorf("%w: edge %d (%s→%s): %w", ErrInvalidDocument, i, e.From, e.To, err)
		}
		if e.Bidirectional {
			if _, err := g.AddEdge(e.To, e.From, travel, opts...); err != nil {
				return nil, fmt.Errorf("%w: edge %d (%s→%s): %w", ErrInvalidDocument, i, e.To, e.From, err)
			}
		}
	}

	return g, nil
}

// travel returns the edge's TravelFunc.
func (e Edge) travel() (core.TravelFunc, error) {
	switch {
	case e.Duration != nil && len(e.Departures) > 0:
		return nil, errors.New("both duration and departures set")
	case e.Duration != nil:
		if d := *e.Duration; d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("duration %v must be finite and non-negative", d)
		}
		return core.Constant(*e.Duration), nil
	case len(e.Departures) > 0:
		runs := make([]core.Departure, len(e.Departures))
		for i, d := range e.Departures {
			runs[i] = core.Departure{At: d.At, Ride: d.Ride}
		}
		tt, err := core.NewTimetable(runs...)
		if err != nil {
			return nil, err
		}
		return tt.Func(), nil
	default:
		return nil, errors.New("neither duration nor departures set")
	}
}

// options converts mode and attributes to edge options. Attribute keys are
// applied in sorted order so that errors are reproducible.
func (e Edge) options() []core.EdgeOption {
	opts := make([]core.EdgeOption, 0, len(e.Attrs)+1)
	if e.Mode != "" {
		opts = append(opts, core.WithMode(core.Mode(e.Mode)))
	}
	keys := make([]string, 0, len(e.Attrs))
	for k := range e.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		opts = append(opts, core.WithAttribute(k, e.Attrs[k]))
	}

	return opts
}
