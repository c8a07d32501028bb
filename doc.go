// Package shelternet is an in-memory shelter allocation engine for a city
// road network: it scores incoming requests for help, queues emergencies
// and places people in the nearest shelter with a free bed.
//
// Layout
//
//	topology/   immutable weighted road graph (nodes 0..N-1, directed edges)
//	dijkstra/   single-source shortest travel distances with path recovery
//	bfs/        hop-ordered exploration, used for nearby-area listings
//	dfs/        iterative depth-first traversal and reachability checks
//	priority/   rule-based scoring, Rabin–Karp keyword matching, categories
//	registry/   thread-safe shelter capacity and occupancy bookkeeping
//	emergency/  max-priority emergency queue with deterministic tie-breaks
//	engine/     the façade tying the above together, with zap logging
//	            and Prometheus metrics
//	config/     YAML configuration, environment overrides, validation
//
// Quick start
//
//	g, _ := topology.New(3, []topology.EdgeSpec{{From: 0, To: 1, Weight: 4}, {From: 1, To: 2, Weight: 2}})
//	e, _ := engine.New(g)
//	_ = e.RegisterShelter(ctx, registry.Shelter{ID: 1, Name: "Hall", Node: 2, Capacity: 10})
//	_, _ = e.AddRequest(ctx, engine.RequestInput{ID: 7, Age: 70, Location: 0, Complaint: "urgent"})
//	a, _ := e.Allocate(ctx, 7) // a.ShelterID == 1, a.Distance == 6
//
// The cmd/shelternet binary runs the same flow from a YAML file.
package shelternet
