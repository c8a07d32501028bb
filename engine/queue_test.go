package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shelternet/engine"
)

func pendingIDs(e *engine.Engine) []int {
	var ids []int
	for _, c := range e.PendingEmergencies() {
		ids = append(ids, c.RequestID)
	}
	return ids
}

func TestAddRequest_AutoEnqueue(t *testing.T) {
	e := newCityWithPeople(t)
	assert.Equal(t, []int{105, 102, 103}, pendingIDs(e))

	strict := newCityWithPeople(t, engine.WithEmergencyThreshold(160))
	assert.Equal(t, []int{105}, pendingIDs(strict), "score must exceed the threshold")
}

func TestEnqueueEmergency(t *testing.T) {
	e := newCityWithPeople(t)

	c, err := e.EnqueueEmergency(ctx, 104)
	require.NoError(t, err)
	assert.Equal(t, 104, c.RequestID)
	assert.Zero(t, c.Score)
	assert.False(t, c.EnqueuedAt.IsZero())
	assert.Equal(t, []int{105, 102, 103, 104}, pendingIDs(e))

	_, err = e.EnqueueEmergency(ctx, 4242)
	assert.ErrorIs(t, err, engine.ErrNotFound)

	_, err = e.Allocate(ctx, 101)
	require.NoError(t, err)
	_, err = e.EnqueueEmergency(ctx, 101)
	assert.ErrorIs(t, err, engine.ErrAlreadyAllocated)
}

func TestNextEmergency(t *testing.T) {
	e := newCityWithPeople(t)

	c, a, err := e.NextEmergency(ctx)
	require.NoError(t, err)
	assert.Equal(t, 105, c.RequestID)
	assert.Equal(t, 250, c.Score)
	assert.Equal(t, 105, a.RequestID)
	assert.Equal(t, 1, a.ShelterID)

	empty := newCity(t)
	_, _, err = empty.NextEmergency(ctx)
	assert.ErrorIs(t, err, engine.ErrEmpty)
}

func TestDrainEmergencyQueue(t *testing.T) {
	e := newCityWithPeople(t)

	// 103 is placed by hand before the drain, so its queued case is stale.
	_, err := e.Allocate(ctx, 103)
	require.NoError(t, err)

	rep, err := e.DrainEmergencyQueue(ctx)
	require.NoError(t, err)

	var placed []int
	for _, a := range rep.Allocations {
		placed = append(placed, a.RequestID)
	}
	assert.Equal(t, []int{105, 102}, placed)
	require.Len(t, rep.Skipped, 1)
	assert.Equal(t, 103, rep.Skipped[0].Case.RequestID)
	assert.ErrorIs(t, rep.Skipped[0].Err, engine.ErrAlreadyAllocated)
	assert.Empty(t, rep.Failed)
	assert.Empty(t, e.PendingEmergencies())
	requireConsistent(t, e)
}

func TestDrainEmergencyQueue_Failures(t *testing.T) {
	e := newCityWithPeople(t)
	for id := 1; id <= 4; id++ {
		require.NoError(t, e.SetShelterCapacity(ctx, id, 0))
	}
	require.NoError(t, e.SetShelterCapacity(ctx, 3, 1))

	rep, err := e.DrainEmergencyQueue(ctx)
	require.NoError(t, err)
	require.Len(t, rep.Allocations, 1)
	assert.Equal(t, 105, rep.Allocations[0].RequestID)
	assert.Equal(t, 3, rep.Allocations[0].ShelterID)
	require.Len(t, rep.Failed, 2)
	for _, f := range rep.Failed {
		assert.ErrorIs(t, f.Err, engine.ErrNoAvailableShelter)
	}
	requireConsistent(t, e)
}

func TestDrainEmergencyQueue_Cancelled(t *testing.T) {
	e := newCityWithPeople(t)
	c, cancel := context.WithCancel(ctx)
	cancel()

	rep, err := e.DrainEmergencyQueue(c)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rep.Allocations)
	assert.Len(t, e.PendingEmergencies(), 3, "nothing popped")
}
