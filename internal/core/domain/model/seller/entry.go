package seller

import (
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// EntryKind distinguishes settlement entry directions.
type EntryKind int

const (
	// EntryUnknown represents an invalid or undefined kind.
	EntryUnknown EntryKind = iota

	// EntryDelivery recognizes a delivered order's total as revenue.
	EntryDelivery

	// EntryRefund reverses previously recognized revenue and its commission
	// proportionally.
	EntryRefund
)

func getEntryKindStrings() map[EntryKind]string {
	return map[EntryKind]string{
		EntryUnknown:  "Unknown",
		EntryDelivery: "Delivery",
		EntryRefund:   "Refund",
	}
}

// Validate checks if the EntryKind value is valid.
func (k EntryKind) Validate() error {
	if k != EntryDelivery && k != EntryRefund {
		return errs.NewValueIsInvalidErrorWithCause("entry kind is invalid",
			fmt.Errorf("%d is not a valid entry kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
func (k EntryKind) String() string {
	if str, ok := getEntryKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Entry is one append-only settlement ledger record. Delivery entries add
// gross revenue and commission; refund entries subtract both. Entries are
// never mutated or deleted.
type Entry struct {
	id         kernel.UUID
	orderID    kernel.UUID
	kind       EntryKind
	gross      kernel.Money
	commission kernel.Money
	createdAt  time.Time
}

// RestoreEntry reconstructs a settlement entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	kind EntryKind,
	gross kernel.Money,
	commission kernel.Money,
	createdAt time.Time,
) (Entry, error) {
	if err := id.Validate(); err != nil {
		return Entry{}, err
	}
	if err := orderID.Validate(); err != nil {
		return Entry{}, err
	}
	if err := kind.Validate(); err != nil {
		return Entry{}, err
	}

	return Entry{
		id:         id,
		orderID:    orderID,
		kind:       kind,
		gross:      gross,
		commission: commission,
		createdAt:  createdAt,
	}, nil
}

// ID returns the entry identifier.
func (e Entry) ID() kernel.UUID { return e.id }

// OrderID returns the order this entry settles. For delivery entries it is
// also the idempotency key.
func (e Entry) OrderID() kernel.UUID { return e.orderID }

// Kind returns the entry direction.
func (e Entry) Kind() EntryKind { return e.kind }

// Gross returns the gross amount moved by this entry.
func (e Entry) Gross() kernel.Money { return e.gross }

// Commission returns the commission portion of the gross amount.
func (e Entry) Commission() kernel.Money { return e.commission }

// CreatedAt returns the entry creation time.
func (e Entry) CreatedAt() time.Time { return e.createdAt }
