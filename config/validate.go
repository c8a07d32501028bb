package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Validate reports every structural problem at once, each wrapped in ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		add("log.level %q", c.Log.Level)
	}
	if c.Engine.EmergencyThreshold < 0 {
		add("engine.emergency_threshold %d is negative", c.Engine.EmergencyThreshold)
	}
	if c.Engine.DistanceCacheSize < 0 {
		add("engine.distance_cache_size %d is negative", c.Engine.DistanceCacheSize)
	}

	n := c.Topology.Nodes
	if n <= 0 {
		add("topology.nodes must be positive, got %d", n)
	}
	inRange := func(v int) bool { return v >= 0 && v < n }

	for i, e := range c.Topology.Edges {
		switch {
		case !inRange(e.From) || !inRange(e.To):
			add("topology.edges[%d] %d→%d outside [0,%d)", i, e.From, e.To, n)
		case e.From == e.To:
			add("topology.edges[%d] is a self-loop on %d", i, e.From)
		case e.Weight < 0:
			add("topology.edges[%d] has negative weight %d", i, e.Weight)
		}
	}

	stationIDs := map[int]bool{}
	for i, s := range c.Stations {
		if stationIDs[s.ID] {
			add("stations[%d] duplicate id %d", i, s.ID)
		}
		stationIDs[s.ID] = true
		if !inRange(s.Node) {
			add("stations[%d] node %d outside [0,%d)", i, s.Node, n)
		}
	}

	shelterIDs := map[int]bool{}
	for i, s := range c.Shelters {
		if shelterIDs[s.ID] {
			add("shelters[%d] duplicate id %d", i, s.ID)
		}
		shelterIDs[s.ID] = true
		if !inRange(s.Node) {
			add("shelters[%d] node %d outside [0,%d)", i, s.Node, n)
		}
		if s.Capacity < 0 {
			add("shelters[%d] negative capacity %d", i, s.Capacity)
		}
	}

	requestIDs := map[int]bool{}
	for i, r := range c.Requests {
		if requestIDs[r.ID] {
			add("requests[%d] duplicate id %d", i, r.ID)
		}
		requestIDs[r.ID] = true
		if !inRange(r.Node) {
			add("requests[%d] node %d outside [0,%d)", i, r.Node, n)
		}
	}

	return errors.Join(errs...)
}
