// Package registry holds the capacity-tracked pool of shelters.
//
// A Registry maps shelter ids to records carrying total capacity, the
// occupied count and the ordered list of housed request ids. Every mutation
// keeps 0 ≤ Occupied ≤ Capacity and len(Occupants) == Occupied, and a request
// can hold at most one bed across the whole registry.
//
// The registry knows nothing about the road graph or request records; the
// engine validates shelter nodes and binds requests. It is still safe for
// concurrent use on its own, and all read methods return copies.
//
// Errors are package-prefixed sentinels wrapped with context:
//
//	ErrNotFound, ErrDuplicateID, ErrBadCapacity, ErrCapacityBelowOccupancy,
//	ErrShelterFull, ErrAlreadyOccupant, ErrNotOccupant
package registry
