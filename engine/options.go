package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Defaults applied by DefaultOptions.
const (
	DefaultEmergencyThreshold = 80
	DefaultDistanceCacheSize  = 128
)

// Option configures an Engine.
type Option func(*Options)

// Options holds Engine configuration.
type Options struct {
	// Logger receives structured engine logs; nil means zap.NewNop().
	Logger *zap.Logger

	// Registerer, if non-nil, receives the engine's Prometheus collectors.
	Registerer prometheus.Registerer

	// EmergencyThreshold: AddRequest enqueues requests scoring strictly above it.
	EmergencyThreshold int

	// DistanceCacheSize bounds the per-source distance cache; 0 disables it.
	DistanceCacheSize int

	// Clock stamps requests and emergency cases.
	Clock func() time.Time

	// NewTicket generates allocation tickets.
	NewTicket func() (uuid.UUID, error)

	// Stations are named reference nodes validated against the topology.
	Stations []Station
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		Logger:             zap.NewNop(),
		EmergencyThreshold: DefaultEmergencyThreshold,
		DistanceCacheSize:  DefaultDistanceCacheSize,
		Clock:              time.Now,
		NewTicket:          uuid.NewRandom,
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRegisterer registers engine metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *Options) { o.Registerer = reg }
}

// WithEmergencyThreshold sets the auto-enqueue threshold. Negative values are rejected by New.
func WithEmergencyThreshold(t int) Option {
	return func(o *Options) { o.EmergencyThreshold = t }
}

// WithDistanceCacheSize sets the distance cache size. Negative values are rejected by New.
func WithDistanceCacheSize(n int) Option {
	return func(o *Options) { o.DistanceCacheSize = n }
}

// WithClock overrides the time source. A nil clock is ignored.
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		if clock != nil {
			o.Clock = clock
		}
	}
}

// WithTicketSource overrides ticket generation. A nil source is ignored.
func WithTicketSource(fn func() (uuid.UUID, error)) Option {
	return func(o *Options) {
		if fn != nil {
			o.NewTicket = fn
		}
	}
}

// WithStations installs the named reference nodes.
func WithStations(stations ...Station) Option {
	return func(o *Options) {
		o.Stations = append(o.Stations, stations...)
	}
}
