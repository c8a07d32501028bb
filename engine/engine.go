package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/shelternet/emergency"
	"github.com/katalvlaran/shelternet/registry"
	"github.com/katalvlaran/shelternet/topology"
)

// Engine owns every piece of mutable allocation state. All transactions
// that touch requests or shelter occupancy run under mu; the emergency
// queue synchronizes itself.
type Engine struct {
	mu       sync.Mutex
	graph    *topology.Graph
	shelters *registry.Registry
	queue    *emergency.Queue
	requests map[int]*Request
	stations []Station

	dist      *distanceCache
	logger    *zap.Logger
	metrics   *metrics
	threshold int
	clock     func() time.Time
	newTicket func() (uuid.UUID, error)
}

// New builds an Engine over g with no shelters or requests.
// Errors: ErrNilGraph, ErrBadOption, ErrInvalidLocation (station outside g),
// or a metrics registration failure.
func New(g *topology.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.EmergencyThreshold < 0 {
		return nil, fmt.Errorf("%w: emergency threshold %d", ErrBadOption, o.EmergencyThreshold)
	}
	if o.DistanceCacheSize < 0 {
		return nil, fmt.Errorf("%w: distance cache size %d", ErrBadOption, o.DistanceCacheSize)
	}
	for _, st := range o.Stations {
		if err := g.Validate(st.Node); err != nil {
			return nil, fmt.Errorf("%w: station %d: %w", ErrInvalidLocation, st.ID, err)
		}
	}

	dc, err := newDistanceCache(g, o.DistanceCacheSize)
	if err != nil {
		return nil, err
	}
	m, err := newMetrics(o.Registerer)
	if err != nil {
		return nil, err
	}

	return &Engine{
		graph:     g,
		shelters:  registry.New(),
		queue:     emergency.New(emergency.WithClock(o.Clock)),
		requests:  make(map[int]*Request),
		stations:  append([]Station(nil), o.Stations...),
		dist:      dc,
		logger:    o.Logger.Named("engine"),
		metrics:   m,
		threshold: o.EmergencyThreshold,
		clock:     o.Clock,
		newTicket: o.NewTicket,
	}, nil
}

// Graph returns the engine's read-only topology.
func (e *Engine) Graph() *topology.Graph { return e.graph }

// Stations returns a copy of the configured stations.
func (e *Engine) Stations() []Station {
	return append([]Station(nil), e.stations...)
}

// RegisterShelter adds a shelter located at a valid topology node.
// Errors: ErrInvalidLocation, ErrDuplicateID, ErrBadCapacity.
func (e *Engine) RegisterShelter(ctx context.Context, s registry.Shelter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := e.graph.Validate(s.Node); err != nil {
		return fmt.Errorf("%w: shelter %d: %w", ErrInvalidLocation, s.ID, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.shelters.Register(s); err != nil {
		return wrapShelterErr(err)
	}
	e.metrics.setShelter(s.ID, 0, s.Capacity)
	e.logger.Info("shelter registered",
		zap.Int("shelter_id", s.ID),
		zap.String("name", s.Name),
		zap.Int("node", int(s.Node)),
		zap.Int("capacity", s.Capacity))

	return nil
}

// SetShelterCapacity changes a shelter's total beds.
// Errors: ErrNotFound, ErrBadCapacity, ErrCapacityBelowOccupancy.
func (e *Engine) SetShelterCapacity(ctx context.Context, id, total int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.shelters.SetCapacity(id, total); err != nil {
		e.logger.Debug("capacity change rejected", zap.Int("shelter_id", id), zap.Int("capacity", total), zap.Error(err))
		return wrapShelterErr(err)
	}
	s, _ := e.shelters.Get(id)
	e.metrics.setShelter(id, s.Occupied, s.Capacity)
	e.logger.Info("shelter capacity changed", zap.Int("shelter_id", id), zap.Int("capacity", total))

	return nil
}

// Shelter returns a copy of shelter id.
func (e *Engine) Shelter(id int) (registry.Shelter, error) {
	s, err := e.shelters.Get(id)
	if err != nil {
		return registry.Shelter{}, wrapShelterErr(err)
	}

	return s, nil
}

// Shelters returns copies of all shelters ordered by id.
func (e *Engine) Shelters() []registry.Shelter { return e.shelters.List() }

// SheltersByAvailability returns copies ordered by free beds descending, then id.
func (e *Engine) SheltersByAvailability() []registry.Shelter { return e.shelters.ByAvailability() }

// ShortestDistances returns distances from node to every node, with
// dijkstra.Unreachable for nodes that cannot be reached.
func (e *Engine) ShortestDistances(node topology.Node) ([]int64, error) {
	if err := e.graph.Validate(node); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLocation, err)
	}

	return e.dist.from(node)
}

// Summary counts the current engine state.
func (e *Engine) Summary() Summary {
	e.mu.Lock()
	s := Summary{Requests: len(e.requests)}
	for _, r := range e.requests {
		if r.Allocated {
			s.Allocated++
		}
	}
	shelters := e.shelters.List()
	e.mu.Unlock()

	s.Unallocated = s.Requests - s.Allocated
	s.PendingEmergencies = e.queue.Len()
	s.Shelters = len(shelters)
	for _, sh := range shelters {
		s.TotalBeds += sh.Capacity
		s.FreeBeds += sh.Free()
		if sh.Full() {
			s.SheltersFull++
		}
	}

	return s
}

// wrapShelterErr maps registry sentinels onto engine sentinels while
// keeping the original in the chain.
func wrapShelterErr(err error) error {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, registry.ErrDuplicateID):
		return fmt.Errorf("%w: %w", ErrDuplicateID, err)
	default:
		return err
	}
}
