// SPDX-License-Identifier: MIT
//
// File: settled.go
// Role: Append-only per-node store of finalized labels; doubles as the
//       path-reconstruction arena through (node, index) backpointers.

package martins

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// settledStore holds one append-only list of settled labels per node.
// Indices returned by append stay valid for the lifetime of the store.
type settledStore struct {
	lists   [][]Label
	reached *roaring.Bitmap // nodes with at least one settled label
	total   int
}

// newSettledStore sizes the store for order nodes. It grows on demand.
func newSettledStore(order int) *settledStore {
	return &settledStore{
		lists:   make([][]Label, order),
		reached: roaring.New(),
	}
}

// grow makes node addressable.
func (s *settledStore) grow(node int) {
	if node < len(s.lists) {
		return
	}
	bigger := make([][]Label, node+1)
	copy(bigger, s.lists)
	s.lists = bigger
}

// append settles l and returns its stable index in the list of l.Node.
func (s *settledStore) append(l Label) int {
	s.grow(l.Node)
	s.lists[l.Node] = append(s.lists[l.Node], l)
	s.reached.Add(uint32(l.Node))
	s.total++

	return len(s.lists[l.Node]) - 1
}

// at returns the idx-th settled label of node. ok is false if no such label exists.
func (s *settledStore) at(node, idx int) (Label, bool) {
	if node < 0 || node >= len(s.lists) || idx < 0 || idx >= len(s.lists[node]) {
		return Label{}, false
	}

	return s.lists[node][idx], true
}

// labels returns the settled labels of node in settlement order.
// The slice aliases the store and must not be modified.
func (s *settledStore) labels(node int) []Label {
	if node < 0 || node >= len(s.lists) {
		return nil
	}

	return s.lists[node]
}

// coveredAt reports whether some settled label at node covers cost c.
func (s *settledStore) coveredAt(node int, c Cost, d Dominance) bool {
	for _, l := range s.labels(node) {
		if covers(d, l.Cost, c) {
			return true
		}
	}

	return false
}

// nodes returns the nodes holding settled labels, ascending.
func (s *settledStore) nodes() []int {
	out := make([]int, 0, s.reached.GetCardinality())
	it := s.reached.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}

// size returns the total number of settled labels across all nodes.
func (s *settledStore) size() int { return s.total }
