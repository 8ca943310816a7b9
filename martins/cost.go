// SPDX-License-Identifier: MIT
//
// File: cost.go
// Role: Fixed-dimension cost vector with lexicographic order.

package martins

import (
	"strconv"
	"strings"
)

// MaxDims is the largest number of cost dimensions a search can use:
// arrival time plus up to MaxDims-1 objectives.
const MaxDims = 8

// Cost is a fixed-size cost vector with value semantics.
//
// Dimension 0 is the arrival time; dimensions 1..N-1 hold the accumulated
// objectives selected for the search. Dimensions at or beyond N stay zero for
// the whole search, so comparisons over the full array agree with
// comparisons over the first N dimensions.
type Cost [MaxDims]float64

// Compare orders two cost vectors lexicographically, dimension 0 first.
// It returns -1, 0 or +1.
func (c Cost) Compare(o Cost) int {
	for i := range c {
		switch {
		case c[i] < o[i]:
			return -1
		case c[i] > o[i]:
			return 1
		}
	}

	return 0
}

// Less reports whether c sorts before o lexicographically.
func (c Cost) Less(o Cost) bool { return c.Compare(o) < 0 }

// Slice returns a copy of the first n dimensions. n is clamped to [0, MaxDims].
func (c Cost) Slice(n int) []float64 {
	if n < 0 {
		n = 0
	}
	if n > MaxDims {
		n = MaxDims
	}
	out := make([]float64, n)
	copy(out, c[:n])

	return out
}

// used returns the number of leading dimensions up to the last non-zero one,
// at least 1. Dimensions past the search's N are always zero.
func (c Cost) used() int {
	n := MaxDims
	for n > 1 && c[n-1] == 0 {
		n--
	}

	return n
}

// format renders the first n dimensions as "{a b c}".
func (c Cost) format(n int) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range c.Slice(n) {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte('}')

	return b.String()
}
