package emergency

import (
	"container/heap"
	"sort"
	"sync"
	"time"
)

// item is one heap entry; seq records insertion order for the final tie-break.
type item struct {
	c   Case
	seq uint64
}

// before reports whether a outranks b: higher score, then earlier
// timestamp, then lower request id, then earlier insertion.
func before(a, b item) bool {
	if a.c.Score != b.c.Score {
		return a.c.Score > b.c.Score
	}
	if !a.c.EnqueuedAt.Equal(b.c.EnqueuedAt) {
		return a.c.EnqueuedAt.Before(b.c.EnqueuedAt)
	}
	if a.c.RequestID != b.c.RequestID {
		return a.c.RequestID < b.c.RequestID
	}

	return a.seq < b.seq
}

// caseHeap is a max-heap by rank.
type caseHeap []item

func (h caseHeap) Len() int           { return len(h) }
func (h caseHeap) Less(i, j int) bool { return before(h[i], h[j]) }
func (h caseHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *caseHeap) Push(x interface{}) {
	*h = append(*h, x.(item))
}
func (h *caseHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// Queue is a concurrency-safe max-priority queue of emergency cases.
type Queue struct {
	mu    sync.Mutex
	h     caseHeap
	seq   uint64
	clock func() time.Time
}

// New returns an empty Queue.
func New(opts ...Option) *Queue {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Queue{clock: o.Clock}
}

// Enqueue adds c. A zero EnqueuedAt is stamped with the queue clock.
// It returns the case as stored.
func (q *Queue) Enqueue(c Case) Case {
	q.mu.Lock()
	defer q.mu.Unlock()

	if c.EnqueuedAt.IsZero() {
		c.EnqueuedAt = q.clock()
	}
	heap.Push(&q.h, item{c: c, seq: q.seq})
	q.seq++

	return c
}

// PopMax removes and returns the highest-ranked case.
func (q *Queue) PopMax() (Case, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.h) == 0 {
		return Case{}, ErrEmpty
	}

	return heap.Pop(&q.h).(item).c, nil
}

// Peek returns the highest-ranked case without removing it.
func (q *Queue) Peek() (Case, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.h) == 0 {
		return Case{}, ErrEmpty
	}

	return q.h[0].c, nil
}

// Len returns the number of pending cases.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.h)
}

// Snapshot returns all pending cases highest-first without modifying the queue.
func (q *Queue) Snapshot() []Case {
	q.mu.Lock()
	items := append(caseHeap(nil), q.h...)
	q.mu.Unlock()

	sort.Slice(items, func(i, j int) bool { return before(items[i], items[j]) })
	out := make([]Case, len(items))
	for i, it := range items {
		out[i] = it.c
	}

	return out
}
