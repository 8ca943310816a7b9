// SPDX-License-Identifier: MIT

// Package martins implements a generalized Martins label-setting search.
//
// Labels are settled in lexicographic cost order, which settles arrival
// time monotonically. Every settled label is appended to its node's list in
// an append-only store; new candidates point back into that store with a
// (node, index) pair, so no parent-pointer object graph is ever built.
//
// Notes on implementation choices:
//
//   - Candidates covered by a tentative or settled label at the same node are
//     dropped; with a target, candidates covered by the target's settled
//     labels are dropped as well (global pruning).
//   - Admitted candidates evict the tentative labels they dominate
//     (lazy cleanup) before entering the frontier.
//   - An edge returning +Inf from its travel function is skipped.
package martins

import (
	"fmt"
	"math"
	"time"

	"github.com/RonaldPonguillo/mumoro/core"
)

// noTarget is the internal sentinel for all-destinations mode.
const noTarget = -1

// Search computes the Pareto set of paths from Options.Source.
//
// With Target set, Result.Paths holds one Path per settled label at the
// target, in settlement order (empty, not nil, when the target is
// unreachable). Without Target, every node is a destination: Result.Paths is
// nil and Result.PathsTo / Result.All reconstruct on demand.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must be non-empty (ErrEmptySource) and present (ErrSourceNotFound).
//  4. A non-empty Target must be present (ErrTargetNotFound).
//  5. At most MaxDims-1 objectives (ErrTooManyObjectives), none nil (ErrNilObjective).
//
// Runtime errors: ErrNonMonotoneTravel, ErrNonFiniteObjective, ErrLabelLimit,
// ctx.Err(), or an OnSettle error.
//
// Complexity: each label is extracted once in O(log |Q|); each relaxation
// scans the labels of its head node in Q and P (and of the target).
func Search(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph and endpoints
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	src, ok := g.Index(cfg.Source)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, cfg.Source)
	}
	dst := noTarget
	if cfg.Target != "" {
		if dst, ok = g.Index(cfg.Target); !ok {
			return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, cfg.Target)
		}
	}

	// 3) Validate objectives
	if len(cfg.Objectives) > MaxDims-1 {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyObjectives, len(cfg.Objectives), MaxDims-1)
	}
	for i, obj := range cfg.Objectives {
		if obj == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilObjective, i)
		}
	}

	// 4) Run
	r := &runner{
		g:      g,
		opts:   cfg,
		dims:   len(cfg.Objectives) + 1,
		source: src,
		target: dst,
		q:      newFrontier(),
		p:      newSettledStore(g.Order()),
	}
	start := time.Now()
	if err := r.run(); err != nil {
		return nil, err
	}

	res := r.result()
	if cfg.Logger != nil {
		cfg.Logger.Debug("search finished",
			"source", cfg.Source,
			"target", cfg.Target,
			"dims", r.dims,
			"paths", len(res.Paths),
			"extracted", r.stats.Extracted,
			"inserted", r.stats.Inserted,
			"discarded", r.stats.Discarded,
			"evicted", r.stats.Evicted,
			"skipped", r.stats.Skipped,
			"elapsed", time.Since(start).Round(time.Microsecond),
		)
	}

	return res, nil
}

// runner holds the mutable state for a single search. It owns q and p.
type runner struct {
	g      *core.Graph
	opts   Options
	dims   int
	source int
	target int // noTarget in all-destinations mode
	q      *frontier
	p      *settledStore
	stats  Stats
}

// run seeds the frontier and processes it until empty.
func (r *runner) run() error {
	seed := Label{Node: r.source, Pred: r.source, PredIdx: rootIdx}
	seed.Cost[0] = r.opts.StartTime
	r.q.insert(seed)
	r.stats.Inserted++

	for r.q.len() > 0 {
		// cancellation check, only between two extractions
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		// 1) Extract the lexicographically smallest label
		l, _ := r.q.extractMin()

		// 2) Settle it
		idx := r.p.append(l)
		r.stats.Extracted++
		if r.opts.MaxLabels > 0 && r.p.size() > r.opts.MaxLabels {
			return fmt.Errorf("%w: %d", ErrLabelLimit, r.opts.MaxLabels)
		}
		if err := r.opts.OnSettle(l); err != nil {
			return fmt.Errorf("martins: OnSettle error at node %d: %w", l.Node, err)
		}

		// 3) Expand its outgoing edges
		if err := r.expand(l, idx); err != nil {
			return err
		}
	}

	return nil
}

// expand builds one candidate per outgoing edge of l and admits the
// non-covered ones into the frontier.
func (r *runner) expand(l Label, idx int) error {
	d := r.opts.Dominance
	for _, e := range r.g.OutEdges(l.Node) {
		arrive := e.Travel(l.Cost[0])
		if math.IsInf(arrive, 1) {
			r.stats.Skipped++
			continue
		}
		if math.IsNaN(arrive) || arrive < l.Cost[0] {
			return fmt.Errorf("%w: edge %s %s→%s depart=%v arrive=%v",
				ErrNonMonotoneTravel, e.ID, e.From, e.To, l.Cost[0], arrive)
		}

		l2 := Label{Node: e.Head, Pred: l.Node, PredIdx: idx}
		l2.Cost[0] = arrive
		for i, obj := range r.opts.Objectives {
			v := obj(e)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: objective %d on edge %s %s→%s is %v",
					ErrNonFiniteObjective, i, e.ID, e.From, e.To, v)
			}
			l2.Cost[i+1] = l.Cost[i+1] + v
		}

		if !r.admissible(l2) {
			r.stats.Discarded++
			continue
		}
		r.stats.Evicted += r.q.evictDominated(l2, d)
		r.q.insert(l2)
		r.stats.Inserted++
	}

	return nil
}

// admissible reports whether no tentative label at the head, no settled label
// at the head and, with a target, no settled label at the target covers l2.
func (r *runner) admissible(l2 Label) bool {
	d := r.opts.Dominance
	if r.q.coveredAt(l2.Node, l2.Cost, d) {
		return false
	}
	if r.p.coveredAt(l2.Node, l2.Cost, d) {
		return false
	}
	if r.target != noTarget && r.p.coveredAt(r.target, l2.Cost, d) {
		return false
	}

	return true
}

// result packages the settled store for reconstruction.
func (r *runner) result() *Result {
	res := &Result{
		Stats:  r.stats,
		g:      r.g,
		source: r.source,
		target: r.target,
		dims:   r.dims,
		store:  r.p,
	}
	if r.target != noTarget {
		res.Paths = res.reconstruct(r.target)
	}

	return res
}
