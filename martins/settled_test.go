// SPDX-License-Identifier: MIT
package martins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettledStore_AppendIndicesAreStable(t *testing.T) {
	s := newSettledStore(2)

	assert.Equal(t, 0, s.append(lbl(1, 1)))
	assert.Equal(t, 0, s.append(lbl(0, 2)))
	assert.Equal(t, 1, s.append(lbl(1, 3)))
	assert.Equal(t, 3, s.size())

	l, ok := s.at(1, 0)
	require.True(t, ok)
	assert.Equal(t, 1.0, l.Cost[0])
	l, ok = s.at(1, 1)
	require.True(t, ok)
	assert.Equal(t, 3.0, l.Cost[0])

	_, ok = s.at(1, 2)
	assert.False(t, ok)
	_, ok = s.at(-1, 0)
	assert.False(t, ok)
}

func TestSettledStore_GrowsBeyondInitialOrder(t *testing.T) {
	s := newSettledStore(0)
	idx := s.append(lbl(5, 1))
	assert.Equal(t, 0, idx)
	assert.Len(t, s.labels(5), 1)
	assert.Nil(t, s.labels(6))
	assert.Empty(t, s.labels(3))
}

func TestSettledStore_NodesAscending(t *testing.T) {
	s := newSettledStore(10)
	for _, n := range []int{9, 2, 4, 2} {
		s.append(lbl(n, 0))
	}
	assert.Equal(t, []int{2, 4, 9}, s.nodes())
}

func TestSettledStore_CoveredAt(t *testing.T) {
	s := newSettledStore(1)
	s.append(lbl(0, 10, 10))

	assert.True(t, s.coveredAt(0, lbl(0, 10, 10).Cost, Strict{}))
	assert.True(t, s.coveredAt(0, lbl(0, 10, 11).Cost, Strict{}))
	assert.False(t, s.coveredAt(0, lbl(0, 11, 9).Cost, Strict{}))
	assert.False(t, s.coveredAt(3, lbl(3, 0).Cost, Strict{}))
}
