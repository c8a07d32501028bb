package registry_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/shelternet/registry"
)

// RegistrySuite runs against the four sample shelters.
type RegistrySuite struct {
	suite.Suite
	reg *registry.Registry
}

func (s *RegistrySuite) SetupTest() {
	s.reg = registry.New()
	for _, sh := range []registry.Shelter{
		{ID: 1, Name: "Hope Shelter", Node: 4, Capacity: 50, Contact: "9876543210"},
		{ID: 2, Name: "Care Center", Node: 7, Capacity: 40, Contact: "9876543211"},
		{ID: 3, Name: "Safe Haven", Node: 10, Capacity: 60, Contact: "9876543212"},
		{ID: 4, Name: "Community Home", Node: 13, Capacity: 30, Contact: "9876543213"},
	} {
		s.Require().NoError(s.reg.Register(sh))
	}
}

// checkInvariants asserts the occupancy invariants for every shelter.
func (s *RegistrySuite) checkInvariants() {
	seen := map[int]int{}
	for _, sh := range s.reg.List() {
		s.GreaterOrEqual(sh.Occupied, 0)
		s.LessOrEqual(sh.Occupied, sh.Capacity)
		s.Len(sh.Occupants, sh.Occupied)
		for _, occ := range sh.Occupants {
			prev, dup := seen[occ]
			s.False(dup, "request %d in shelters %d and %d", occ, prev, sh.ID)
			seen[occ] = sh.ID
		}
	}
}

func (s *RegistrySuite) TestRegisterRejectsDuplicateAndNegative() {
	s.ErrorIs(s.reg.Register(registry.Shelter{ID: 1, Capacity: 5}), registry.ErrDuplicateID)
	s.ErrorIs(s.reg.Register(registry.Shelter{ID: 9, Capacity: -1}), registry.ErrBadCapacity)
	s.Equal(4, s.reg.Len())
}

func (s *RegistrySuite) TestRegisterIgnoresIncomingOccupancy() {
	s.Require().NoError(s.reg.Register(registry.Shelter{ID: 5, Capacity: 3, Occupied: 2, Occupants: []int{7, 8}}))
	got, err := s.reg.Get(5)
	s.Require().NoError(err)
	s.Zero(got.Occupied)
	s.Empty(got.Occupants)
}

func (s *RegistrySuite) TestOccupyAndRelease() {
	s.Require().NoError(s.reg.Occupy(1, 101))
	s.Require().NoError(s.reg.Occupy(1, 102))

	got, _ := s.reg.Get(1)
	s.Equal(2, got.Occupied)
	s.Equal([]int{101, 102}, got.Occupants)
	where, ok := s.reg.ShelterOf(102)
	s.True(ok)
	s.Equal(1, where)

	s.Require().NoError(s.reg.Release(1, 101))
	got, _ = s.reg.Get(1)
	s.Equal(1, got.Occupied)
	s.Equal([]int{102}, got.Occupants)
	_, ok = s.reg.ShelterOf(101)
	s.False(ok)
	s.checkInvariants()
}

func (s *RegistrySuite) TestOccupyErrors() {
	s.ErrorIs(s.reg.Occupy(99, 1), registry.ErrNotFound)

	s.Require().NoError(s.reg.Occupy(2, 101))
	s.ErrorIs(s.reg.Occupy(2, 101), registry.ErrAlreadyOccupant)
	s.ErrorIs(s.reg.Occupy(3, 101), registry.ErrAlreadyOccupant, "one bed per request across shelters")

	s.Require().NoError(s.reg.Register(registry.Shelter{ID: 7, Capacity: 1}))
	s.Require().NoError(s.reg.Occupy(7, 500))
	s.ErrorIs(s.reg.Occupy(7, 501), registry.ErrShelterFull)
	s.checkInvariants()
}

func (s *RegistrySuite) TestReleaseErrors() {
	s.ErrorIs(s.reg.Release(99, 1), registry.ErrNotFound)
	s.ErrorIs(s.reg.Release(1, 101), registry.ErrNotOccupant)

	s.Require().NoError(s.reg.Occupy(1, 101))
	s.ErrorIs(s.reg.Release(2, 101), registry.ErrNotOccupant)
}

func (s *RegistrySuite) TestSetCapacity() {
	for i := 0; i < 5; i++ {
		s.Require().NoError(s.reg.Occupy(4, 200+i))
	}
	s.ErrorIs(s.reg.SetCapacity(4, 4), registry.ErrCapacityBelowOccupancy)
	got, _ := s.reg.Get(4)
	s.Equal(30, got.Capacity, "rejected change leaves capacity unchanged")

	s.Require().NoError(s.reg.SetCapacity(4, 5))
	got, _ = s.reg.Get(4)
	s.True(got.Full())

	s.ErrorIs(s.reg.SetCapacity(4, -1), registry.ErrBadCapacity)
	s.ErrorIs(s.reg.SetCapacity(42, 10), registry.ErrNotFound)
	s.checkInvariants()
}

func (s *RegistrySuite) TestReadsReturnCopies() {
	s.Require().NoError(s.reg.Occupy(1, 101))
	got, _ := s.reg.Get(1)
	got.Occupants[0] = 999
	got.Capacity = 0

	again, _ := s.reg.Get(1)
	s.Equal([]int{101}, again.Occupants)
	s.Equal(50, again.Capacity)
}

func (s *RegistrySuite) TestOrdering() {
	ids := func(list []registry.Shelter) []int {
		out := make([]int, len(list))
		for i, sh := range list {
			out[i] = sh.ID
		}
		return out
	}
	s.Equal([]int{1, 2, 3, 4}, ids(s.reg.List()))
	s.Equal([]int{3, 1, 2, 4}, ids(s.reg.ByAvailability()))

	// equalize shelters 1 and 3 at 50 free beds: tie resolves by id
	for i := 0; i < 10; i++ {
		s.Require().NoError(s.reg.Occupy(3, 300+i))
	}
	s.Equal([]int{1, 3, 2, 4}, ids(s.reg.ByAvailability()))
	s.Equal(50+40+50+30, s.reg.FreeBeds())
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

// TestRegistry_ConcurrentOccupy never admits more occupants than capacity.
func TestRegistry_ConcurrentOccupy(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(registry.Shelter{ID: 1, Capacity: 25}))

	const workers = 100
	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(req int) {
			defer wg.Done()
			if reg.Occupy(1, req) == nil {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	got, err := reg.Get(1)
	require.NoError(t, err)
	require.Equal(t, 25, admitted)
	require.Equal(t, 25, got.Occupied)
	require.Len(t, got.Occupants, 25)
}
