package emergency_test

import (
	"math/rand"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shelternet/emergency"
)

// fixedClock returns a clock frozen at t0.
func fixedClock(t0 time.Time) func() time.Time {
	return func() time.Time { return t0 }
}

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func TestQueue_Empty(t *testing.T) {
	q := emergency.New()
	_, err := q.PopMax()
	assert.ErrorIs(t, err, emergency.ErrEmpty)
	_, err = q.Peek()
	assert.ErrorIs(t, err, emergency.ErrEmpty)
	assert.Zero(t, q.Len())
	assert.Empty(t, q.Snapshot())
}

func TestQueue_PopMaxOrder(t *testing.T) {
	q := emergency.New(emergency.WithClock(fixedClock(t0)))
	for _, c := range []emergency.Case{
		{RequestID: 102, Score: 160},
		{RequestID: 103, Score: 120},
		{RequestID: 105, Score: 250},
	} {
		stored := q.Enqueue(c)
		assert.Equal(t, t0, stored.EnqueuedAt)
	}

	top, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 105, top.RequestID)
	assert.Equal(t, 3, q.Len(), "Peek must not remove")

	var got []int
	for q.Len() > 0 {
		c, err := q.PopMax()
		require.NoError(t, err)
		got = append(got, c.RequestID)
	}
	assert.Equal(t, []int{105, 102, 103}, got)
}

func TestQueue_TieBreaks(t *testing.T) {
	q := emergency.New(emergency.WithClock(fixedClock(t0)))
	q.Enqueue(emergency.Case{RequestID: 9, Score: 100, EnqueuedAt: t0.Add(time.Second)})
	q.Enqueue(emergency.Case{RequestID: 7, Score: 100})
	q.Enqueue(emergency.Case{RequestID: 3, Score: 100})
	q.Enqueue(emergency.Case{RequestID: 3, Score: 100})
	q.Enqueue(emergency.Case{RequestID: 1, Score: 100, EnqueuedAt: t0.Add(time.Second)})

	var got []int
	for _, c := range q.Snapshot() {
		got = append(got, c.RequestID)
	}
	// earlier stamp first, then lower id; duplicates keep insertion order
	assert.Equal(t, []int{3, 3, 7, 1, 9}, got)

	for _, want := range got {
		c, err := q.PopMax()
		require.NoError(t, err)
		assert.Equal(t, want, c.RequestID)
	}
}

func TestQueue_SnapshotIsNonDestructive(t *testing.T) {
	q := emergency.New()
	q.Enqueue(emergency.Case{RequestID: 1, Score: 90})
	q.Enqueue(emergency.Case{RequestID: 2, Score: 95})

	snap := q.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, 2, snap[0].RequestID)
	assert.Equal(t, 2, q.Len())
}

// TestQueue_MaxProperty checks PopMax always yields the highest remaining score
// under a random interleaving of pushes and pops.
func TestQueue_MaxProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	q := emergency.New(emergency.WithClock(fixedClock(t0)))
	var model []int
	for i := 0; i < 1000; i++ {
		if rng.Intn(3) > 0 || len(model) == 0 {
			s := rng.Intn(300)
			q.Enqueue(emergency.Case{RequestID: i, Score: s})
			model = append(model, s)
			continue
		}
		sort.Sort(sort.Reverse(sort.IntSlice(model)))
		c, err := q.PopMax()
		require.NoError(t, err)
		require.Equal(t, model[0], c.Score)
		model = model[1:]
	}
	require.Equal(t, len(model), q.Len())
}

func TestQueue_ConcurrentEnqueuePop(t *testing.T) {
	q := emergency.New()
	const producers, perProducer = 8, 250

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Enqueue(emergency.Case{RequestID: p*perProducer + i, Score: i % 17})
			}
		}(p)
	}
	wg.Wait()
	require.Equal(t, producers*perProducer, q.Len())

	seen := make(map[int]bool, producers*perProducer)
	var mu sync.Mutex
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				c, err := q.PopMax()
				if err != nil {
					return
				}
				mu.Lock()
				seen[c.RequestID] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, producers*perProducer)
}
