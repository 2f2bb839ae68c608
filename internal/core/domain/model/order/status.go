package order

import (
	"errors"
	"fmt"

	"backoffice/internal/pkg/errs"
)

// ErrInvalidTransition is returned when an illegal fulfillment edge is
// attempted. The order is left unchanged.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the fulfillment state of an order.
// Transitions are driven by an explicit edge table so that illegal edges are
// a data concern rather than scattered comparisons.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status set by the upstream checkout.
	StatusPending

	// StatusProcessing indicates the order passed admin validation and stock
	// was reserved.
	StatusProcessing

	// StatusShipped indicates the order was handed to a carrier.
	StatusShipped

	// StatusDelivered is terminal; delivery triggers revenue recognition.
	StatusDelivered

	// StatusCancelled is terminal.
	StatusCancelled
)

// legalEdges is the closed set of fulfillment transitions.
var legalEdges = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusPending:    "Pending",
		StatusProcessing: "Processing",
		StatusShipped:    "Shipped",
		StatusDelivered:  "Delivered",
		StatusCancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
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

// IsTerminal reports whether no edges leave the status.
func (s Status) IsTerminal() bool {
	return len(legalEdges[s]) == 0
}
