package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/shelternet/emergency"
	"github.com/katalvlaran/shelternet/priority"
)

// attributes extracts the scoring inputs of r.
func (r *Request) attributes() priority.Attributes {
	return priority.Attributes{
		Age:         r.Age,
		Gender:      r.Gender,
		MedicalNeed: r.MedicalNeed,
		Complaint:   r.Complaint,
	}
}

// AddRequest registers a request, scores it and, when the score exceeds the
// emergency threshold, enqueues it for expedited allocation.
// Errors: ErrDuplicateID, ErrInvalidLocation, ctx.Err().
func (e *Engine) AddRequest(ctx context.Context, in RequestInput) (Request, error) {
	if err := ctx.Err(); err != nil {
		return Request{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.requests[in.ID]; ok {
		return Request{}, fmt.Errorf("%w: request %d", ErrDuplicateID, in.ID)
	}
	if err := e.graph.Validate(in.Location); err != nil {
		return Request{}, fmt.Errorf("%w: request %d: %w", ErrInvalidLocation, in.ID, err)
	}

	r := &Request{
		ID:          in.ID,
		Name:        in.Name,
		Age:         in.Age,
		Gender:      in.Gender,
		Location:    in.Location,
		MedicalNeed: in.MedicalNeed,
		Complaint:   in.Complaint,
		ReportedAt:  in.ReportedAt,
		ShelterID:   NoShelter,
	}
	if r.ReportedAt.IsZero() {
		r.ReportedAt = e.clock()
	}
	r.Score = priority.Score(r.attributes())
	e.requests[r.ID] = r
	e.metrics.requests.Set(float64(len(e.requests)))

	log := e.logger.With(zap.Int("request_id", r.ID), zap.Int("score", r.Score))
	log.Info("request registered", zap.Int("node", int(r.Location)))

	if r.Score > e.threshold {
		e.queue.Enqueue(emergency.Case{RequestID: r.ID, Score: r.Score})
		e.metrics.queueDepth.Set(float64(e.queue.Len()))
		log.Info("request enqueued as emergency", zap.Int("threshold", e.threshold))
	}

	return *r, nil
}

// RecomputeScore re-evaluates the score of request id and stores it.
// Errors: ErrNotFound, ctx.Err().
func (e *Engine) RecomputeScore(ctx context.Context, id int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.requests[id]
	if !ok {
		return 0, fmt.Errorf("%w: request %d", ErrNotFound, id)
	}
	prev := r.Score
	r.Score = priority.Score(r.attributes())
	e.logger.Debug("score recomputed", zap.Int("request_id", id), zap.Int("previous", prev), zap.Int("score", r.Score))

	return r.Score, nil
}

// Request returns a copy of request id.
func (e *Engine) Request(id int) (Request, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.requests[id]
	if !ok {
		return Request{}, fmt.Errorf("%w: request %d", ErrNotFound, id)
	}

	return *r, nil
}

// Requests returns copies of all requests ordered by id.
func (e *Engine) Requests() []Request {
	e.mu.Lock()
	out := make([]Request, 0, len(e.requests))
	for _, r := range e.requests {
		out = append(out, *r)
	}
	e.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// HighPriority returns requests scoring strictly above threshold,
// highest score first, ties by id.
func (e *Engine) HighPriority(threshold int) []Request {
	all := e.Requests()
	out := all[:0]
	for _, r := range all {
		if r.Score > threshold {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	return out
}

// Classify returns the complaint category label of request id.
func (e *Engine) Classify(id int) (string, error) {
	r, err := e.Request(id)
	if err != nil {
		return "", err
	}

	return priority.Classify(r.Complaint), nil
}

// Explain lists the scoring rules that fired for request id.
func (e *Engine) Explain(id int) ([]priority.Match, error) {
	r, err := e.Request(id)
	if err != nil {
		return nil, err
	}

	return priority.Breakdown(r.attributes()), nil
}

// unbind clears the allocation fields of r.
func (r *Request) unbind() {
	r.Allocated = false
	r.ShelterID = NoShelter
	r.Ticket = uuid.Nil
}
