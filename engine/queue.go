package engine

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/shelternet/emergency"
	"github.com/katalvlaran/shelternet/priority"
)

// EnqueueEmergency rescores request id and adds it to the emergency queue
// regardless of threshold.
// Errors: ErrNotFound, ErrAlreadyAllocated, ctx.Err().
func (e *Engine) EnqueueEmergency(ctx context.Context, id int) (emergency.Case, error) {
	if err := ctx.Err(); err != nil {
		return emergency.Case{}, err
	}

	e.mu.Lock()
	r, ok := e.requests[id]
	if !ok {
		e.mu.Unlock()
		return emergency.Case{}, fmt.Errorf("%w: request %d", ErrNotFound, id)
	}
	if r.Allocated {
		e.mu.Unlock()
		return emergency.Case{}, fmt.Errorf("%w: request %d", ErrAlreadyAllocated, id)
	}
	r.Score = priority.Score(r.attributes())
	score := r.Score
	e.mu.Unlock()

	c := e.queue.Enqueue(emergency.Case{RequestID: id, Score: score})
	e.metrics.queueDepth.Set(float64(e.queue.Len()))
	e.logger.Info("request enqueued as emergency", zap.Int("request_id", id), zap.Int("score", score))

	return c, nil
}

// PendingEmergencies returns the queued cases highest-first.
func (e *Engine) PendingEmergencies() []emergency.Case { return e.queue.Snapshot() }

// NextEmergency pops the highest-ranked case and tries to allocate it,
// re-validating the request inside the allocation transaction.
// Errors: ErrEmpty, plus anything Allocate returns for the popped request.
func (e *Engine) NextEmergency(ctx context.Context) (emergency.Case, Allocation, error) {
	if err := ctx.Err(); err != nil {
		return emergency.Case{}, Allocation{}, err
	}
	c, err := e.queue.PopMax()
	if err != nil {
		return emergency.Case{}, Allocation{}, err
	}
	e.metrics.queueDepth.Set(float64(e.queue.Len()))

	e.mu.Lock()
	defer e.mu.Unlock()
	a, err := e.allocateLocked(c.RequestID)

	return c, a, err
}

// DrainEmergencyQueue pops every pending case highest-first and allocates
// each request that still needs a bed. Cases whose request vanished or was
// allocated meanwhile are skipped. Cancellation is honoured between cases;
// the report covers the cases handled before it.
func (e *Engine) DrainEmergencyQueue(ctx context.Context) (DrainReport, error) {
	var rep DrainReport
	for {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		c, a, err := e.NextEmergency(ctx)
		switch {
		case errors.Is(err, ErrEmpty):
			e.logger.Info("emergency queue drained",
				zap.Int("allocated", len(rep.Allocations)),
				zap.Int("skipped", len(rep.Skipped)),
				zap.Int("failed", len(rep.Failed)))
			return rep, nil
		case err == nil:
			rep.Allocations = append(rep.Allocations, a)
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrAlreadyAllocated):
			rep.Skipped = append(rep.Skipped, DrainOutcome{Case: c, Err: err})
		default:
			rep.Failed = append(rep.Failed, DrainOutcome{Case: c, Err: err})
		}
	}
}
