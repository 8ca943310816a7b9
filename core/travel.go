// SPDX-License-Identifier: MIT
//
// File: travel.go
// Role: Time-dependent traversal functions (constant and scheduled).

package core

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrBadTimetable indicates a timetable entry with a negative ride duration
// or a non-finite departure time.
var ErrBadTimetable = errors.New("core: invalid timetable entry")

// TravelFunc maps a departure time at the tail of an edge to the arrival
// time at its head. Returning +Inf means the edge cannot be used from that
// departure time (for example, no later service runs). Implementations must
// never return a value smaller than the departure time.
type TravelFunc func(depart float64) float64

// Constant returns a TravelFunc that always takes d time units.
func Constant(d float64) TravelFunc {
	return func(t float64) float64 { return t + d }
}

// Departure is a single scheduled run of a service along one edge.
type Departure struct {
	At   float64 // departure time at the tail
	Ride float64 // in-vehicle duration to the head
}

// Timetable is an immutable set of scheduled departures along one edge.
// Arrive returns the earliest arrival over all departures not before t.
type Timetable struct {
	runs []Departure // sorted by At
	// best[i] is the earliest arrival among runs[i:], so overtaking services
	// are handled without scanning.
	best []float64
}

// NewTimetable builds a Timetable from departures in any order.
// Errors: ErrBadTimetable for a negative Ride or a non-finite At/Ride.
// Complexity: O(n log n).
func NewTimetable(runs ...Departure) (*Timetable, error) {
	sorted := make([]Departure, len(runs))
	copy(sorted, runs)
	for _, r := range sorted {
		if !finite(r.At) || !finite(r.Ride) || r.Ride < 0 {
			return nil, fmt.Errorf("%w: at=%v ride=%v", ErrBadTimetable, r.At, r.Ride)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].At < sorted[j].At })

	best := make([]float64, len(sorted))
	next := math.Inf(1)
	for i := len(sorted) - 1; i >= 0; i-- {
		next = math.Min(next, sorted[i].At+sorted[i].Ride)
		best[i] = next
	}

	return &Timetable{runs: sorted, best: best}, nil
}

// Len returns the number of scheduled departures.
func (tt *Timetable) Len() int { return len(tt.runs) }

// Arrive returns the earliest arrival time when reaching the tail at t.
// Complexity: O(log n).
func (tt *Timetable) Arrive(t float64) float64 {
	i := sort.Search(len(tt.runs), func(i int) bool { return tt.runs[i].At >= t })
	if i == len(tt.runs) {
		return math.Inf(1)
	}

	return tt.best[i]
}

// Func adapts the timetable to a TravelFunc.
func (tt *Timetable) Func() TravelFunc { return tt.Arrive }
