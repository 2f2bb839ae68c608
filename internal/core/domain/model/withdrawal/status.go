package withdrawal

import (
	"errors"
	"fmt"

	"backoffice/internal/pkg/errs"
)

// ErrInvalidTransition is returned when an illegal arbitration edge is
// attempted. The request is left unchanged.
var ErrInvalidTransition = errors.New("invalid withdrawal status transition")

// Status represents the arbitration state of a withdrawal request.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status; the amount is already reserved.
	StatusPending

	// StatusApproved means an admin accepted the request; the reservation is
	// kept while the bank transfer runs.
	StatusApproved

	// StatusRejected is terminal; the reservation is released.
	StatusRejected

	// StatusProcessed is terminal; the bank transfer completed and the funds
	// are gone.
	StatusProcessed
)

// legalEdges is the closed set of arbitration transitions.
var legalEdges = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusProcessed},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusApproved:  "Approved",
		StatusRejected:  "Rejected",
		StatusProcessed: "Processed",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusProcessed {
		return errs.NewValueIsInvalidErrorWithCause("withdrawal status is invalid",
			fmt.Errorf("%d is not a valid withdrawal status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether the edge s -> to is in the legal set.
func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range legalEdges[s] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionTo returns the target status when the edge is legal,
// or ErrInvalidTransition (with the attempted edge) otherwise.
func (s Status) TransitionTo(to Status) (Status, error) {
	if !s.CanTransitionTo(to) {
		return StatusUnknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, to)
	}
	return to, nil
}

// CountsTowardCommitted reports whether a request in this status reserves
// its amount against the seller's available balance. Only rejection releases
// the reservation; processed funds stay counted because they are truly gone.
func (s Status) CountsTowardCommitted() bool {
	return s == StatusPending || s == StatusApproved || s == StatusProcessed
}
