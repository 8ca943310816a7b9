// SPDX-License-Identifier: MIT
//
// File: objective.go
// Role: Edge selectors mapping cost dimensions 1..N-1 to edge data.

package martins

import (
	"fmt"

	"github.com/RonaldPonguillo/mumoro/core"
)

// Objective returns the amount an edge adds to one cost dimension.
// Values should be non-negative for the Pareto set to stay meaningful.
type Objective func(e *core.Edge) float64

// Attribute selects the i-th edge attribute of the graph schema.
func Attribute(i int) Objective {
	return func(e *core.Edge) float64 { return e.Attr(i) }
}

// EdgeCount adds 1 per traversed edge (a hop count).
func EdgeCount() Objective {
	return func(*core.Edge) float64 { return 1 }
}

// ModeChange adds 1 per edge of mode m, e.g. core.Transfer to count transfers.
func ModeChange(m core.Mode) Objective {
	return func(e *core.Edge) float64 {
		if e.Mode == m {
			return 1
		}
		return 0
	}
}

// Named resolves attribute names of g's schema to objectives, in order.
// Errors: core.ErrAttributeNotFound wrapped with the offending name.
func Named(g *core.Graph, names ...string) ([]Objective, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	objs := make([]Objective, 0, len(names))
	for _, name := range names {
		i, ok := g.AttributeIndex(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", core.ErrAttributeNotFound, name)
		}
		objs = append(objs, Attribute(i))
	}

	return objs, nil
}
