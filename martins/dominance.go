// SPDX-License-Identifier: MIT
//
// File: dominance.go
// Role: Pluggable dominance predicates (strict Pareto and relaxed epsilon).

package martins

// Dominance decides whether cost vector a subsumes cost vector b, in which
// case a label carrying b is pruned. All dimensions are minimized.
type Dominance interface {
	Dominates(a, b Cost) bool
}

// DominanceFunc adapts a plain function to the Dominance interface.
type DominanceFunc func(a, b Cost) bool

// Dominates calls f(a, b).
func (f DominanceFunc) Dominates(a, b Cost) bool { return f(a, b) }

// Strict is standard Pareto dominance: a is no worse than b in every
// dimension and strictly better in at least one. It is the default.
type Strict struct{}

// Dominates implements Dominance.
func (Strict) Dominates(a, b Cost) bool {
	strict := false
	for i := range a {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			strict = true
		}
	}

	return strict
}

// Relaxed is an epsilon-dominance over three objectives (time, a second
// objective such as fare, and a third such as transfers) that discards
// marginal alternatives to keep the Pareto set small.
//
// With gains g_i = b[i] - a[i], a subsumes b when:
//
//	(a) g0 >= 0 && g1 >= 0 && g2 >= 0                      (plain dominance)
//	(b) g0 > -TimeSlack && g1 >= -SecondSlack && g2 >= 0    (b is barely faster)
//	(c) g2 < 0 && g0 > 0 && -g2/g0 < TradeRatio && g1 != 0  (a is faster and only
//	    slightly worse in dimension 2 per unit of time saved)
//
// Branch (c) uses a true fractional ratio. Setting TradeRatio to 0 disables
// it, which matches the behaviour of earlier releases where the ratio
// truncated to zero. Its last condition only asks that dimension 1 differ,
// in either direction; a tie in dimension 1 never takes this branch.
//
// Dimensions above 2 are ignored. Relaxed is not a partial order, so the
// result set under Relaxed is not guaranteed to be an antichain.
type Relaxed struct {
	TimeSlack   float64 // tolerated loss in dimension 0 (time units)
	SecondSlack float64 // tolerated loss in dimension 1
	TradeRatio  float64 // max dimension-2 loss per time unit gained; 0 disables branch (c)
}

// DefaultRelaxed returns the thresholds used by the reference deployment:
// 60 seconds, 2 currency units and 1 transfer per 25 seconds saved.
func DefaultRelaxed() Relaxed {
	return Relaxed{TimeSlack: 60, SecondSlack: 2, TradeRatio: 1.0 / 25}
}

// Dominates implements Dominance.
func (r Relaxed) Dominates(a, b Cost) bool {
	g0 := b[0] - a[0]
	g1 := b[1] - a[1]
	g2 := b[2] - a[2]

	if g0 >= 0 && g1 >= 0 && g2 >= 0 {
		return true
	}
	if g0 > -r.TimeSlack && g1 >= -r.SecondSlack && g2 >= 0 {
		return true
	}
	if g2 < 0 && g0 > 0 && -g2/g0 < r.TradeRatio && g1 != 0 {
		return true
	}

	return false
}

// covers reports whether a label with cost a makes a new label with cost b
// redundant. Equal vectors are always covered, whatever the predicate, so at
// most one equal-cost alternative survives.
func covers(d Dominance, a, b Cost) bool {
	return a == b || d.Dominates(a, b)
}
