package engine

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/shelternet/dijkstra"
	"github.com/katalvlaran/shelternet/registry"
)

// Allocate assigns request id to the nearest reachable shelter with a free
// bed, ties broken by lower shelter id. The whole read-select-commit runs
// under the engine lock; on error nothing changes.
// Errors: ErrNotFound, ErrAlreadyAllocated, ErrNoAvailableShelter, ctx.Err().
func (e *Engine) Allocate(ctx context.Context, id int) (Allocation, error) {
	if err := ctx.Err(); err != nil {
		e.metrics.allocations.WithLabelValues(outcomeCancelled).Inc()
		return Allocation{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.allocateLocked(id)
}

// allocateLocked is the allocation transaction body; e.mu must be held.
func (e *Engine) allocateLocked(id int) (a Allocation, err error) {
	timer := prometheus.NewTimer(e.metrics.latency)
	defer func() {
		timer.ObserveDuration()
		e.metrics.allocations.WithLabelValues(allocationOutcome(err)).Inc()
	}()

	r, ok := e.requests[id]
	if !ok {
		return Allocation{}, fmt.Errorf("%w: request %d", ErrNotFound, id)
	}
	if r.Allocated {
		return Allocation{}, fmt.Errorf("%w: request %d in shelter %d", ErrAlreadyAllocated, id, r.ShelterID)
	}

	dist, err := e.dist.from(r.Location)
	if err != nil {
		return Allocation{}, fmt.Errorf("engine: distances from %d: %w", r.Location, err)
	}
	best, found := nearest(e.shelters.List(), dist)
	if !found {
		e.logger.Warn("no available shelter", zap.Int("request_id", id), zap.Int("node", int(r.Location)))
		return Allocation{}, fmt.Errorf("%w: request %d at node %d", ErrNoAvailableShelter, id, r.Location)
	}

	ticket, err := e.newTicket()
	if err != nil {
		return Allocation{}, fmt.Errorf("engine: ticket: %w", err)
	}
	if err = e.shelters.Occupy(best.ID, id); err != nil {
		return Allocation{}, fmt.Errorf("engine: occupy shelter %d: %w", best.ID, err)
	}
	r.Allocated = true
	r.ShelterID = best.ID
	r.Ticket = ticket

	e.metrics.setShelter(best.ID, best.Occupied+1, best.Capacity)
	a = Allocation{Ticket: ticket, RequestID: id, ShelterID: best.ID, Distance: dist[best.Node]}
	e.logger.Info("request allocated",
		zap.Int("request_id", id),
		zap.Int("shelter_id", best.ID),
		zap.Int64("distance", a.Distance),
		zap.Int("score", r.Score),
		zap.Stringer("ticket", ticket))

	return a, nil
}

// nearest picks the shelter with a free bed at minimum finite distance.
// shelters must be ordered by id so that ties resolve to the lower id.
func nearest(shelters []registry.Shelter, dist []int64) (registry.Shelter, bool) {
	var best registry.Shelter
	bestDist := dijkstra.Unreachable
	found := false
	for _, s := range shelters {
		if s.Full() {
			continue
		}
		d := dist[s.Node]
		if d == dijkstra.Unreachable {
			continue
		}
		if !found || d < bestDist {
			best, bestDist, found = s, d, true
		}
	}

	return best, found
}

// Release frees the bed held by request id and clears its binding.
// Errors: ErrNotFound, ErrNotAllocated, ctx.Err().
func (e *Engine) Release(ctx context.Context, id int) (err error) {
	if err = ctx.Err(); err != nil {
		e.metrics.releases.WithLabelValues(outcomeCancelled).Inc()
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() { e.metrics.releases.WithLabelValues(releaseOutcome(err)).Inc() }()

	r, ok := e.requests[id]
	if !ok {
		return fmt.Errorf("%w: request %d", ErrNotFound, id)
	}
	if !r.Allocated {
		return fmt.Errorf("%w: request %d", ErrNotAllocated, id)
	}
	shelterID, ticket := r.ShelterID, r.Ticket
	if err = e.shelters.Release(shelterID, id); err != nil {
		return fmt.Errorf("engine: release from shelter %d: %w", shelterID, err)
	}
	r.unbind()

	if s, gerr := e.shelters.Get(shelterID); gerr == nil {
		e.metrics.setShelter(shelterID, s.Occupied, s.Capacity)
	}
	e.logger.Info("request released",
		zap.Int("request_id", id),
		zap.Int("shelter_id", shelterID),
		zap.Stringer("ticket", ticket))

	return nil
}

// Candidates evaluates every shelter for request id without allocating.
// Rows follow shelter id order; at most one row is StatusSelected, and it
// is the shelter Allocate would choose right now.
func (e *Engine) Candidates(ctx context.Context, id int) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.requests[id]
	if !ok {
		return nil, fmt.Errorf("%w: request %d", ErrNotFound, id)
	}
	dist, err := e.dist.from(r.Location)
	if err != nil {
		return nil, fmt.Errorf("engine: distances from %d: %w", r.Location, err)
	}
	shelters := e.shelters.List()
	best, found := nearest(shelters, dist)

	out := make([]Candidate, 0, len(shelters))
	for _, s := range shelters {
		c := Candidate{ShelterID: s.ID, Name: s.Name, Distance: dist[s.Node], Free: s.Free()}
		switch {
		case found && s.ID == best.ID:
			c.Status = StatusSelected
		case s.Full():
			c.Status = StatusFull
		case c.Distance == dijkstra.Unreachable:
			c.Status = StatusUnreachable
		default:
			c.Status = StatusAvailable
		}
		out = append(out, c)
	}
	e.logger.Debug("candidates evaluated", zap.Int("request_id", id), zap.Int("shelters", len(out)))

	return out, nil
}
