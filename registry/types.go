// File: types.go
// Role: Shelter record, sentinel errors and the Registry container.
// Concurrency:
//   - Registry guards all state with one RWMutex; readers receive copies.
// Invariants (hold after every exported call returns):
//   - 0 ≤ Occupied ≤ Capacity for every shelter.
//   - len(Occupants) == Occupied.
//   - A request id appears in at most one shelter's Occupants.

package registry

import (
	"errors"
	"sync"

	"github.com/katalvlaran/shelternet/topology"
)

// Sentinel errors for registry operations.
var (
	// ErrNotFound indicates an unknown shelter id.
	ErrNotFound = errors.New("registry: shelter not found")

	// ErrDuplicateID indicates Register was called with an id already present.
	ErrDuplicateID = errors.New("registry: duplicate shelter id")

	// ErrBadCapacity indicates a negative capacity.
	ErrBadCapacity = errors.New("registry: capacity must be non-negative")

	// ErrCapacityBelowOccupancy indicates SetCapacity would drop below the occupied count.
	ErrCapacityBelowOccupancy = errors.New("registry: capacity below current occupancy")

	// ErrShelterFull indicates Occupy on a shelter with no free bed.
	ErrShelterFull = errors.New("registry: shelter is full")

	// ErrAlreadyOccupant indicates the request already holds a bed somewhere.
	ErrAlreadyOccupant = errors.New("registry: request already occupies a bed")

	// ErrNotOccupant indicates Release for a request not housed in that shelter.
	ErrNotOccupant = errors.New("registry: request is not an occupant")
)

// Shelter is a capacity-bounded resource located at a topology node.
// Values handed out by the Registry are copies; mutating them has no effect.
type Shelter struct {
	ID       int
	Name     string
	Node     topology.Node
	Capacity int
	Occupied int
	Contact  string

	// Occupants lists housed request ids in admission order.
	Occupants []int
}

// Free returns the number of unoccupied beds.
func (s Shelter) Free() int { return s.Capacity - s.Occupied }

// Full reports whether no bed is free.
func (s Shelter) Full() bool { return s.Occupied >= s.Capacity }

// clone returns a deep copy of s.
func (s *Shelter) clone() Shelter {
	c := *s
	c.Occupants = append([]int(nil), s.Occupants...)

	return c
}

// Registry is the mutable pool of shelters keyed by id.
// The zero value is not usable; construct with New.
type Registry struct {
	mu       sync.RWMutex
	shelters map[int]*Shelter
	// housedIn maps request id → shelter id for every occupant.
	housedIn map[int]int
}
