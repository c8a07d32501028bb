package engine

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values for the allocation and release counters.
const (
	outcomeOK          = "ok"
	outcomeNotFound    = "not_found"
	outcomeAllocated   = "already_allocated"
	outcomeUnallocated = "not_allocated"
	outcomeNoShelter   = "no_shelter"
	outcomeCancelled   = "cancelled"
	outcomeError       = "error"
)

// metrics holds the engine's Prometheus collectors. They are always
// created so the engine can update them unconditionally; registration
// happens only when a Registerer is configured.
type metrics struct {
	allocations *prometheus.CounterVec
	releases    *prometheus.CounterVec
	occupied    *prometheus.GaugeVec
	capacity    *prometheus.GaugeVec
	requests    prometheus.Gauge
	queueDepth  prometheus.Gauge
	latency     prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		allocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shelternet_allocations_total",
				Help: "Allocation attempts by outcome",
			},
			[]string{"outcome"},
		),
		releases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shelternet_releases_total",
				Help: "Release attempts by outcome",
			},
			[]string{"outcome"},
		),
		occupied: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "shelternet_shelter_occupied",
				Help: "Occupied beds per shelter",
			},
			[]string{"shelter_id"},
		),
		capacity: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "shelternet_shelter_capacity",
				Help: "Total beds per shelter",
			},
			[]string{"shelter_id"},
		),
		requests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shelternet_requests_registered",
			Help: "Registered requests",
		}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shelternet_emergency_queue_depth",
			Help: "Pending emergency cases",
		}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "shelternet_allocation_duration_seconds",
			Help:    "Time spent inside allocation transactions",
			Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{
		m.allocations, m.releases, m.occupied, m.capacity, m.requests, m.queueDepth, m.latency,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("engine: register metrics: %w", err)
		}
	}

	return m, nil
}

// allocationOutcome maps an Allocate error to its counter label.
func allocationOutcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, ErrAlreadyAllocated):
		return outcomeAllocated
	case errors.Is(err, ErrNoAvailableShelter):
		return outcomeNoShelter
	default:
		return outcomeError
	}
}

// releaseOutcome maps a Release error to its counter label.
func releaseOutcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, ErrNotAllocated):
		return outcomeUnallocated
	default:
		return outcomeError
	}
}

// setShelter records a shelter's occupancy and capacity.
func (m *metrics) setShelter(id, occupied, capacity int) {
	label := strconv.Itoa(id)
	m.occupied.WithLabelValues(label).Set(float64(occupied))
	m.capacity.WithLabelValues(label).Set(float64(capacity))
}
