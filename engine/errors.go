package engine

import (
	"errors"

	"github.com/katalvlaran/shelternet/emergency"
	"github.com/katalvlaran/shelternet/registry"
	"github.com/katalvlaran/shelternet/topology"
)

// Engine-level sentinels. Shelter-side failures are wrapped so that both the
// engine sentinel and the underlying registry sentinel match with errors.Is.
var (
	// ErrNilGraph is returned by New when no topology is supplied.
	ErrNilGraph = errors.New("engine: topology is nil")

	// ErrBadOption is returned by New for an invalid Option value.
	ErrBadOption = errors.New("engine: invalid option")

	// ErrNotFound indicates an unknown request or shelter id.
	ErrNotFound = errors.New("engine: not found")

	// ErrDuplicateID indicates a request or shelter id is already registered.
	ErrDuplicateID = errors.New("engine: duplicate id")

	// ErrInvalidLocation indicates a node outside the topology.
	ErrInvalidLocation = errors.New("engine: invalid location")

	// ErrAlreadyAllocated indicates the request already holds a bed.
	ErrAlreadyAllocated = errors.New("engine: request already allocated")

	// ErrNotAllocated indicates Release on a request without a bed.
	ErrNotAllocated = errors.New("engine: request not allocated")

	// ErrNoAvailableShelter indicates no reachable shelter has a free bed.
	ErrNoAvailableShelter = errors.New("engine: no available shelter")
)

// Re-exported sentinels so callers only need this package.
var (
	ErrCapacityBelowOccupancy = registry.ErrCapacityBelowOccupancy
	ErrBadCapacity            = registry.ErrBadCapacity
	ErrShelterFull            = registry.ErrShelterFull
	ErrAlreadyOccupant        = registry.ErrAlreadyOccupant
	ErrNotOccupant            = registry.ErrNotOccupant
	ErrInvalidNode            = topology.ErrInvalidNode
	ErrEmpty                  = emergency.ErrEmpty
)
