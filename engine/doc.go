// Package engine is the allocation orchestrator: it owns the request table
// and the shelter registry, and composes the shortest-path resolver, the
// priority scorer and the emergency queue into atomic transactions.
//
// Transactions
//
//	Allocate(ctx, id)  read distances → filter shelters with a free bed and a
//	                   finite distance → pick the minimum (ties: lower shelter
//	                   id) → occupy and bind, all under one mutex.
//	Release(ctx, id)   free the bed and clear the binding under the same mutex.
//
// A failed transaction leaves no trace. A context that is already done when
// a call starts returns ctx.Err() without side effects; once the lock is
// held the transaction runs to completion.
//
// Emergency handling
//
// AddRequest scores every request and enqueues it when the score exceeds the
// configured threshold (80 by default). DrainEmergencyQueue pops cases
// highest-first and re-checks each request inside the allocation
// transaction, since a queued case is only a snapshot.
//
// Observability
//
// Logs go to the injected *zap.Logger (named "engine"): Debug for reads,
// Info for committed changes, Warn when no shelter is available. Prometheus
// collectors are registered when WithRegisterer is supplied.
//
// Distances from a source node are cached in a bounded LRU; the topology is
// immutable, so cached vectors never need invalidation.
package engine
