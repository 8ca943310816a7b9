// SPDX-License-Identifier: MIT

// Package martins defines configuration options, sentinel errors and result
// types for the multi-objective label-setting search.
//
// Options:
//
//	– Source:       ID of the starting vertex (required, must exist).
//	– Target:       ID of the destination; empty means all destinations.
//	– StartTime:    value of cost dimension 0 at the source.
//	– Objectives:   edge selectors for cost dimensions 1..N-1.
//	– Dominance:    pruning predicate (Strict by default).
//	– MaxLabels:    cap on settled labels (0 = unlimited).
//	– Ctx:          cancellation, checked before each extraction.
//	– OnSettle:     hook called for each settled label.
//	– Logger:       optional charmbracelet logger for a debug summary.
//	– Parallelism:  worker limit for SearchMany.
//
// Errors (sentinel):
//
//	– ErrNilGraph, ErrEmptySource, ErrSourceNotFound, ErrTargetNotFound,
//	  ErrTooManyObjectives, ErrNilObjective, ErrOptionViolation,
//	  ErrNonMonotoneTravel, ErrNonFiniteObjective, ErrLabelLimit.
package martins

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/log"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("martins: graph is nil")

	// ErrEmptySource indicates that no source vertex was given.
	ErrEmptySource = errors.New("martins: source vertex ID is empty")

	// ErrSourceNotFound indicates that the source vertex does not exist.
	ErrSourceNotFound = errors.New("martins: source vertex not found in graph")

	// ErrTargetNotFound indicates that a non-empty target does not exist.
	ErrTargetNotFound = errors.New("martins: target vertex not found in graph")

	// ErrTooManyObjectives indicates more than MaxDims-1 objectives.
	ErrTooManyObjectives = errors.New("martins: too many objectives")

	// ErrNilObjective indicates a nil entry in the objective list.
	ErrNilObjective = errors.New("martins: objective is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("martins: invalid option supplied")

	// ErrNonMonotoneTravel indicates an edge whose travel function returned
	// NaN or an arrival earlier than the departure.
	ErrNonMonotoneTravel = errors.New("martins: travel function went back in time")

	// ErrNonFiniteObjective indicates an objective that returned NaN or an
	// infinite value for an edge.
	ErrNonFiniteObjective = errors.New("martins: objective value is not finite")

	// ErrLabelLimit indicates that the search settled more labels than MaxLabels.
	ErrLabelLimit = errors.New("martins: settled label limit exceeded")
)

// Options configures a search.
type Options struct {
	Source      string
	Target      string // "" selects all-destinations mode
	StartTime   float64
	Objectives  []Objective
	Dominance   Dominance
	MaxLabels   int
	Ctx         context.Context
	OnSettle    func(l Label) error
	Logger      *log.Logger
	Parallelism int

	// internal error recorded during option parsing
	err error
}

// Option configures Options via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when the search starts.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
//   - no source or target, start time 0, no objectives (N = 1)
//   - Strict dominance, no label cap
//   - context.Background(), no-op OnSettle, no logger
//   - Parallelism 0 (GOMAXPROCS in SearchMany)
func DefaultOptions() Options {
	return Options{
		Dominance: Strict{},
		Ctx:       context.Background(),
		OnSettle:  func(Label) error { return nil },
	}
}

// Source sets the ID of the starting vertex.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// Target sets the ID of the destination vertex. An empty ID selects
// all-destinations mode, in which destination-based pruning is skipped.
func Target(id string) Option {
	return func(o *Options) { o.Target = id }
}

// StartTime sets the departure time at the source. It must be finite.
func StartTime(t float64) Option {
	return func(o *Options) {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			o.err = fmt.Errorf("%w: start time must be finite (%v)", ErrOptionViolation, t)
			return
		}
		o.StartTime = t
	}
}

// WithObjectives sets the edge selectors for cost dimensions 1..N-1.
// Repeated use replaces the previous list.
func WithObjectives(objs ...Objective) Option {
	return func(o *Options) {
		o.Objectives = append([]Objective(nil), objs...)
	}
}

// WithDominance sets the pruning predicate.
func WithDominance(d Dominance) Option {
	return func(o *Options) {
		if d == nil {
			o.err = fmt.Errorf("%w: dominance is nil", ErrOptionViolation)
			return
		}
		o.Dominance = d
	}
}

// WithMaxLabels aborts the search with ErrLabelLimit once more than n labels
// have been settled. n == 0 means no limit; n < 0 is invalid.
func WithMaxLabels(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLabels cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLabels = n
	}
}

// WithContext sets a context whose cancellation stops the search between
// two extractions.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnSettle registers a hook called for every settled label; returning an
// error aborts the search. In SearchMany the hook runs concurrently.
func WithOnSettle(fn func(l Label) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithLogger enables a debug-level summary line per search.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithParallelism limits the number of concurrent searches in SearchMany.
// n == 0 means runtime.GOMAXPROCS(0); n < 0 is invalid.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Parallelism cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Parallelism = n
	}
}

// Path is one Pareto-optimal itinerary.
//
//	Nodes    – vertex IDs from source to destination.
//	Arrivals – cost dimension 0 at each vertex of Nodes.
//	Cost     – the N-dimensional cost vector at the destination.
type Path struct {
	Nodes    []string
	Arrivals []float64
	Cost     []float64
}

// Stats counts what a search did.
type Stats struct {
	Extracted int // labels settled
	Inserted  int // candidates admitted into the frontier (seed included)
	Discarded int // candidates rejected as covered
	Evicted   int // frontier entries removed by a dominating candidate
	Skipped   int // edges with no service (+Inf arrival)
}
