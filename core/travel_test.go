// SPDX-License-Identifier: MIT
package core_test

import (
	"math"
	"testing"

	"github.com/RonaldPonguillo/mumoro/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstant(t *testing.T) {
	f := core.Constant(90)
	assert.Equal(t, 90.0, f(0))
	assert.Equal(t, 1090.0, f(1000))
}

func TestTimetable_WaitsForNextDeparture(t *testing.T) {
	tt, err := core.NewTimetable(
		core.Departure{At: 600, Ride: 300},
		core.Departure{At: 0, Ride: 300},
		core.Departure{At: 1200, Ride: 300},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, tt.Len())

	assert.Equal(t, 300.0, tt.Arrive(0), "departure exactly at t is catchable")
	assert.Equal(t, 900.0, tt.Arrive(1), "missed the first run, wait for the second")
	assert.Equal(t, 1500.0, tt.Arrive(601))
	assert.True(t, math.IsInf(tt.Arrive(1201), 1), "no service after the last run")
}

func TestTimetable_OvertakingService(t *testing.T) {
	// The 100 slow train arrives after the 200 express.
	tt, err := core.NewTimetable(
		core.Departure{At: 100, Ride: 500},
		core.Departure{At: 200, Ride: 100},
	)
	require.NoError(t, err)
	assert.Equal(t, 300.0, tt.Func()(50))
}

func TestTimetable_Invalid(t *testing.T) {
	_, err := core.NewTimetable(core.Departure{At: 0, Ride: -1})
	assert.ErrorIs(t, err, core.ErrBadTimetable)

	_, err = core.NewTimetable(core.Departure{At: math.NaN(), Ride: 1})
	assert.ErrorIs(t, err, core.ErrBadTimetable)
}

func TestTimetable_Empty(t *testing.T) {
	tt, err := core.NewTimetable()
	require.NoError(t, err)
	assert.True(t, math.IsInf(tt.Arrive(0), 1))
}
