package config

import (
	"fmt"

	"github.com/katalvlaran/shelternet/engine"
	"github.com/katalvlaran/shelternet/registry"
	"github.com/katalvlaran/shelternet/topology"
)

// BuildTopology builds the road graph. Edges are inserted in file order;
// a bidirectional road inserts from→to then to→from.
func (c *Config) BuildTopology() (*topology.Graph, error) {
	b, err := topology.NewBuilder(c.Topology.Nodes)
	if err != nil {
		return nil, fmt.Errorf("config: topology: %w", err)
	}
	for i, e := range c.Topology.Edges {
		from, to := topology.Node(e.From), topology.Node(e.To)
		if e.Bidirectional {
			err = b.AddBidirectional(from, to, e.Weight)
		} else {
			err = b.AddEdge(from, to, e.Weight)
		}
		if err != nil {
			return nil, fmt.Errorf("config: topology.edges[%d]: %w", i, err)
		}
	}

	return b.Build()
}

// BuildStations converts the station list.
func (c *Config) BuildStations() []engine.Station {
	out := make([]engine.Station, len(c.Stations))
	for i, s := range c.Stations {
		out[i] = engine.Station{ID: s.ID, Name: s.Name, Node: topology.Node(s.Node)}
	}

	return out
}

// BuildShelters converts the shelter list.
func (c *Config) BuildShelters() []registry.Shelter {
	out := make([]registry.Shelter, len(c.Shelters))
	for i, s := range c.Shelters {
		out[i] = registry.Shelter{
			ID:       s.ID,
			Name:     s.Name,
			Node:     topology.Node(s.Node),
			Capacity: s.Capacity,
			Contact:  s.Contact,
		}
	}

	return out
}

// BuildRequests converts the seed request list.
func (c *Config) BuildRequests() []engine.RequestInput {
	out := make([]engine.RequestInput, len(c.Requests))
	for i, r := range c.Requests {
		out[i] = engine.RequestInput{
			ID:          r.ID,
			Name:        r.Name,
			Age:         r.Age,
			Gender:      r.Gender,
			Location:    topology.Node(r.Node),
			MedicalNeed: r.MedicalNeed,
			Complaint:   r.Complaint,
		}
	}

	return out
}

// EngineOptions translates the engine section and stations into engine options.
func (c *Config) EngineOptions() []engine.Option {
	return []engine.Option{
		engine.WithEmergencyThreshold(c.Engine.EmergencyThreshold),
		engine.WithDistanceCacheSize(c.Engine.DistanceCacheSize),
		engine.WithStations(c.BuildStations()...),
	}
}
