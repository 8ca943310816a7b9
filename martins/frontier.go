// SPDX-License-Identifier: MIT
//
// File: frontier.go
// Role: Open frontier of tentative labels, indexed by cost and by node.
// Invariant: tree and byNode always hold exactly the same set of entries.

package martins

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// frontierKey orders entries of the cost index. seq breaks ties between
// equal cost vectors so that every entry has a distinct key.
type frontierKey struct {
	cost Cost
	seq  uint64
}

// compareKeys is the red-black tree comparator: lexicographic cost, then seq.
func compareKeys(a, b interface{}) int {
	ka := a.(frontierKey)
	kb := b.(frontierKey)
	if c := ka.cost.Compare(kb.cost); c != 0 {
		return c
	}
	switch {
	case ka.seq < kb.seq:
		return -1
	case ka.seq > kb.seq:
		return 1
	}

	return 0
}

// frontier is the open set Q of the label-setting search.
//
//   - tree:   frontierKey → Label, ordered for extract-min in O(log n).
//   - byNode: node → seq → Label, for per-node dominance scans in O(1) lookup.
//
// Entries are never mutated; replacing one means remove + insert.
type frontier struct {
	tree    *redblacktree.Tree
	byNode  map[int]map[uint64]Label
	nextSeq uint64
}

// newFrontier returns an empty frontier.
func newFrontier() *frontier {
	return &frontier{
		tree:   redblacktree.NewWith(compareKeys),
		byNode: make(map[int]map[uint64]Label),
	}
}

// len returns the number of tentative labels.
func (f *frontier) len() int { return f.tree.Size() }

// insert adds l and returns the sequence number identifying its entry.
func (f *frontier) insert(l Label) uint64 {
	f.nextSeq++
	seq := f.nextSeq
	f.tree.Put(frontierKey{cost: l.Cost, seq: seq}, l)

	bucket, ok := f.byNode[l.Node]
	if !ok {
		bucket = make(map[uint64]Label)
		f.byNode[l.Node] = bucket
	}
	bucket[seq] = l

	return seq
}

// extractMin removes and returns the lexicographically smallest label.
// ok is false when the frontier is empty.
func (f *frontier) extractMin() (l Label, ok bool) {
	n := f.tree.Left()
	if n == nil {
		return Label{}, false
	}
	key := n.Key.(frontierKey)
	l = n.Value.(Label)
	f.tree.Remove(key)
	f.dropFromNode(l.Node, key.seq)

	return l, true
}

// remove deletes the entry seq at node. It reports whether an entry was removed.
func (f *frontier) remove(node int, seq uint64) bool {
	l, ok := f.byNode[node][seq]
	if !ok {
		return false
	}
	f.tree.Remove(frontierKey{cost: l.Cost, seq: seq})
	f.dropFromNode(node, seq)

	return true
}

// dropFromNode removes seq from the node index, releasing empty buckets.
func (f *frontier) dropFromNode(node int, seq uint64) {
	bucket := f.byNode[node]
	delete(bucket, seq)
	if len(bucket) == 0 {
		delete(f.byNode, node)
	}
}

// labelsAt calls fn for every tentative label at node until fn returns false.
// Iteration order is unspecified. fn must not mutate the frontier.
func (f *frontier) labelsAt(node int, fn func(seq uint64, l Label) bool) {
	for seq, l := range f.byNode[node] {
		if !fn(seq, l) {
			return
		}
	}
}

// coveredAt reports whether some tentative label at node covers cost c.
func (f *frontier) coveredAt(node int, c Cost, d Dominance) bool {
	covered := false
	f.labelsAt(node, func(_ uint64, l Label) bool {
		covered = covers(d, l.Cost, c)
		return !covered
	})

	return covered
}

// evictDominated removes every tentative label at l.Node that l dominates
// and returns how many were removed.
func (f *frontier) evictDominated(l Label, d Dominance) int {
	var victims []uint64
	f.labelsAt(l.Node, func(seq uint64, other Label) bool {
		if d.Dominates(l.Cost, other.Cost) {
			victims = append(victims, seq)
		}
		return true
	})
	for _, seq := range victims {
		f.remove(l.Node, seq)
	}

	return len(victims)
}
