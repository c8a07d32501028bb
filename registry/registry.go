// File: registry.go
// Role: Registration, capacity changes and occupancy mutations.
// Determinism:
//   - List orders by id; ByAvailability by free beds desc, then id asc.

package registry

import (
	"fmt"
	"sort"
)

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		shelters: make(map[int]*Shelter),
		housedIn: make(map[int]int),
	}
}

// Register adds a shelter. Only ID, Name, Node, Capacity and Contact are
// taken from s; occupancy always starts empty.
// Errors: ErrDuplicateID, ErrBadCapacity.
func (r *Registry) Register(s Shelter) error {
	if s.Capacity < 0 {
		return fmt.Errorf("%w: shelter %d capacity %d", ErrBadCapacity, s.ID, s.Capacity)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.shelters[s.ID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateID, s.ID)
	}
	r.shelters[s.ID] = &Shelter{
		ID:       s.ID,
		Name:     s.Name,
		Node:     s.Node,
		Capacity: s.Capacity,
		Contact:  s.Contact,
	}

	return nil
}

// SetCapacity changes a shelter's total beds. Lowering below the occupied
// count is rejected and leaves the capacity unchanged.
// Errors: ErrNotFound, ErrBadCapacity, ErrCapacityBelowOccupancy.
func (r *Registry) SetCapacity(id, total int) error {
	if total < 0 {
		return fmt.Errorf("%w: shelter %d capacity %d", ErrBadCapacity, id, total)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.shelters[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if total < s.Occupied {
		return fmt.Errorf("%w: shelter %d has %d occupants, requested %d", ErrCapacityBelowOccupancy, id, s.Occupied, total)
	}
	s.Capacity = total

	return nil
}

// Occupy houses requestID in shelter id.
// Errors: ErrNotFound, ErrShelterFull, ErrAlreadyOccupant.
func (r *Registry) Occupy(id, requestID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.shelters[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if where, housed := r.housedIn[requestID]; housed {
		return fmt.Errorf("%w: request %d in shelter %d", ErrAlreadyOccupant, requestID, where)
	}
	if s.Full() {
		return fmt.Errorf("%w: %d (%d/%d)", ErrShelterFull, id, s.Occupied, s.Capacity)
	}
	s.Occupied++
	s.Occupants = append(s.Occupants, requestID)
	r.housedIn[requestID] = id

	return nil
}

// Release frees the bed held by requestID in shelter id.
// Errors: ErrNotFound, ErrNotOccupant.
func (r *Registry) Release(id, requestID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.shelters[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	idx := -1
	for i, occ := range s.Occupants {
		if occ == requestID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: request %d in shelter %d", ErrNotOccupant, requestID, id)
	}
	s.Occupants = append(s.Occupants[:idx], s.Occupants[idx+1:]...)
	s.Occupied--
	delete(r.housedIn, requestID)

	return nil
}

// Get returns a copy of shelter id.
func (r *Registry) Get(id int) (Shelter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.shelters[id]
	if !ok {
		return Shelter{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	return s.clone(), nil
}

// ShelterOf reports which shelter houses requestID.
func (r *Registry) ShelterOf(requestID int) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.housedIn[requestID]

	return id, ok
}

// Len returns the number of registered shelters.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.shelters)
}

// List returns copies of all shelters ordered by id ascending.
func (r *Registry) List() []Shelter {
	r.mu.RLock()
	out := make([]Shelter, 0, len(r.shelters))
	for _, s := range r.shelters {
		out = append(out, s.clone())
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// ByAvailability returns copies ordered by free beds descending, ties by id ascending.
func (r *Registry) ByAvailability() []Shelter {
	out := r.List()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Free() > out[j].Free() })

	return out
}

// FreeBeds returns the total number of unoccupied beds.
func (r *Registry) FreeBeds() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, s := range r.shelters {
		total += s.Free()
	}

	return total
}
