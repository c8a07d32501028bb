package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shelternet/engine"
	"github.com/katalvlaran/shelternet/registry"
	"github.com/katalvlaran/shelternet/topology"
)

var (
	ctx   = context.Background()
	epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
)

// stepClock returns a clock that advances one second per call.
func stepClock() func() time.Time {
	n := 0
	return func() time.Time {
		n++
		return epoch.Add(time.Duration(n) * time.Second)
	}
}

// cityEdges is the 15-node sample network.
var cityEdges = []topology.EdgeSpec{
	{From: 0, To: 1, Weight: 5}, {From: 0, To: 2, Weight: 10},
	{From: 1, To: 3, Weight: 7}, {From: 1, To: 4, Weight: 12},
	{From: 2, To: 5, Weight: 8}, {From: 3, To: 6, Weight: 6},
	{From: 4, To: 7, Weight: 9}, {From: 5, To: 8, Weight: 11},
	{From: 6, To: 9, Weight: 4}, {From: 7, To: 10, Weight: 7},
	{From: 8, To: 11, Weight: 5}, {From: 9, To: 12, Weight: 8},
	{From: 10, To: 13, Weight: 6}, {From: 11, To: 14, Weight: 10},
}

// buildGraph inserts every edge in both directions.
func buildGraph(t testing.TB, n int, edges []topology.EdgeSpec) *topology.Graph {
	t.Helper()
	b, err := topology.NewBuilder(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, b.AddBidirectional(e.From, e.To, e.Weight))
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

var sampleShelters = []registry.Shelter{
	{ID: 1, Name: "Hope Shelter", Node: 4, Capacity: 50, Contact: "9876543210"},
	{ID: 2, Name: "Care Center", Node: 7, Capacity: 40, Contact: "9876543211"},
	{ID: 3, Name: "Safe Haven", Node: 10, Capacity: 60, Contact: "9876543212"},
	{ID: 4, Name: "Community Home", Node: 13, Capacity: 30, Contact: "9876543213"},
}

var samplePeople = []engine.RequestInput{
	{ID: 101, Name: "Ramesh Kumar", Age: 45, Gender: "Male", Location: 0, Complaint: "Need food urgently"},
	{ID: 102, Name: "Lakshmi Devi", Age: 65, Gender: "Female", Location: 1, MedicalNeed: true, Complaint: "Medical help needed"},
	{ID: 103, Name: "Anita", Age: 8, Gender: "Female", Location: 2, Complaint: "Child alone, scared"},
	{ID: 104, Name: "Suresh", Age: 32, Gender: "Male", Location: 3, Complaint: "Looking for shelter"},
	{ID: 105, Name: "Meera", Age: 70, Gender: "Female", Location: 5, MedicalNeed: true, Complaint: "Emergency medical case"},
}

// newCity returns an engine over the sample city with its four shelters.
func newCity(t testing.TB, opts ...engine.Option) *engine.Engine {
	t.Helper()
	opts = append([]engine.Option{engine.WithClock(stepClock())}, opts...)
	e, err := engine.New(buildGraph(t, 15, cityEdges), opts...)
	require.NoError(t, err)
	for _, s := range sampleShelters {
		require.NoError(t, e.RegisterShelter(ctx, s))
	}

	return e
}

// newCityWithPeople additionally registers the five sample people.
func newCityWithPeople(t testing.TB, opts ...engine.Option) *engine.Engine {
	t.Helper()
	e := newCity(t, opts...)
	for _, p := range samplePeople {
		_, err := e.AddRequest(ctx, p)
		require.NoError(t, err)
	}

	return e
}

// requireConsistent checks occupancy and binding invariants across the engine.
func requireConsistent(t testing.TB, e *engine.Engine) {
	t.Helper()
	housed := map[int]int{}
	for _, s := range e.Shelters() {
		require.GreaterOrEqual(t, s.Occupied, 0)
		require.LessOrEqual(t, s.Occupied, s.Capacity, "shelter %d over capacity", s.ID)
		require.Len(t, s.Occupants, s.Occupied)
		for _, id := range s.Occupants {
			_, dup := housed[id]
			require.False(t, dup, "request %d housed twice", id)
			housed[id] = s.ID
		}
	}
	for _, r := range e.Requests() {
		where, ok := housed[r.ID]
		require.Equal(t, ok, r.Allocated, "request %d binding mismatch", r.ID)
		if ok {
			require.Equal(t, where, r.ShelterID)
		} else {
			require.Equal(t, engine.NoShelter, r.ShelterID)
		}
	}
}
