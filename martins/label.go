// SPDX-License-Identifier: MIT
//
// File: label.go
// Role: Label, a candidate path terminus at a node.

package martins

import "fmt"

// rootIdx marks the seed label, which has no settled predecessor.
const rootIdx = -1

// Label is one Pareto candidate arrival at a node.
//
// Pred and PredIdx form the backpointer: the label that produced this one is
// the PredIdx-th settled label of node Pred. The seed label points at itself
// (Pred == Node) with PredIdx == -1.
type Label struct {
	Node    int  // node this label arrives at
	Cost    Cost // accumulated cost vector
	Pred    int  // predecessor node
	PredIdx int  // position in the predecessor's settled list
}

// Equal reports whether both labels share predecessor and cost vector.
func (l Label) Equal(o Label) bool { return l.Pred == o.Pred && l.Cost == o.Cost }

// Less orders labels purely by cost vector.
func (l Label) Less(o Label) bool { return l.Cost.Less(o.Cost) }

// IsRoot reports whether l is the seed label of a search.
func (l Label) IsRoot() bool { return l.PredIdx == rootIdx }

// String renders the label with its cost up to the last non-zero
// dimension; trailing zero objectives are omitted.
func (l Label) String() string {
	return fmt.Sprintf("Label[%d-%d] %s", l.Node, l.Pred, l.Cost.format(l.Cost.used()))
}
