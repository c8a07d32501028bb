package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/shelternet/emergency"
	"github.com/katalvlaran/shelternet/topology"
)

// NoShelter is the ShelterID of an unallocated request.
const NoShelter = -1

// RequestInput is what a caller supplies to register a request.
type RequestInput struct {
	ID          int
	Name        string
	Age         int
	Gender      string
	Location    topology.Node
	MedicalNeed bool
	Complaint   string

	// ReportedAt defaults to the engine clock when zero.
	ReportedAt time.Time
}

// Request is a registered person needing shelter.
// Values returned by the Engine are copies.
type Request struct {
	ID          int
	Name        string
	Age         int
	Gender      string
	Location    topology.Node
	MedicalNeed bool
	Complaint   string
	Score       int
	ReportedAt  time.Time

	// Allocated is true iff the request's id is an occupant of ShelterID.
	Allocated bool
	ShelterID int
	Ticket    uuid.UUID
}

// Station is a named reference node such as a railway station or junction.
type Station struct {
	ID   int
	Name string
	Node topology.Node
}

// Allocation is the result of one committed allocation transaction.
type Allocation struct {
	Ticket    uuid.UUID
	RequestID int
	ShelterID int
	Distance  int64
}

// CandidateStatus describes how a shelter fared during selection.
type CandidateStatus string

// Candidate statuses.
const (
	StatusSelected    CandidateStatus = "selected"
	StatusAvailable   CandidateStatus = "available"
	StatusFull        CandidateStatus = "full"
	StatusUnreachable CandidateStatus = "unreachable"
)

// Candidate is one row of a shelter evaluation for a request.
type Candidate struct {
	ShelterID int
	Name      string
	Distance  int64
	Free      int
	Status    CandidateStatus
}

// Area is one node reached by a nearby-area walk.
type Area struct {
	Node topology.Node
	Hops int
}

// Connectivity reports which shelters are reachable from the origin shelter.
type Connectivity struct {
	// Origin is the lowest-id shelter; OriginNode its location.
	Origin     int
	OriginNode topology.Node

	// Order lists nodes in depth-first discovery order from OriginNode.
	Order []topology.Node

	// Unreachable lists shelter ids whose node was not reached, ascending.
	Unreachable []int
}

// Connected reports whether every shelter was reached.
func (c Connectivity) Connected() bool { return len(c.Unreachable) == 0 }

// DrainOutcome pairs a popped case with why it was not allocated.
type DrainOutcome struct {
	Case emergency.Case
	Err  error
}

// DrainReport summarises one DrainEmergencyQueue call.
type DrainReport struct {
	Allocations []Allocation
	// Skipped cases no longer needed a bed (allocated or unknown request).
	Skipped []DrainOutcome
	// Failed cases were valid but could not be placed.
	Failed []DrainOutcome
}

// Summary is a point-in-time count of engine state.
type Summary struct {
	Requests           int
	Allocated          int
	Unallocated        int
	PendingEmergencies int
	Shelters           int
	SheltersFull       int
	TotalBeds          int
	FreeBeds           int
}
