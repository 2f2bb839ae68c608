package order

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
)

// ErrInvalidRefundAmount is returned when a refund is non-positive, exceeds
// the remaining refundable amount, or the order is not in a refundable
// payment state.
var ErrInvalidRefundAmount = errors.New("invalid refund amount")

// RefundRecord is an append-only record of money returned to the buyer for
// an order. Records are created by the refund operation and never mutated or
// deleted; the cumulative sum for an order can never exceed its total.
type RefundRecord struct {
	id           kernel.UUID
	amount       kernel.Money
	reason       string
	restockItems bool
	createdAt    time.Time
}

// RestoreRefundRecord reconstructs a refund record from persistence.
func RestoreRefundRecord(
	id kernel.UUID,
	amount kernel.Money,
	reason string,
	restockItems bool,
	createdAt time.Time,
) (RefundRecord, error) {
	if err := id.Validate(); err != nil {
		return RefundRecord{}, err
	}

	return RefundRecord{
		id:           id,
		amount:       amount,
		reason:       reason,
		restockItems: restockItems,
		createdAt:    createdAt,
	}, nil
}

// ID returns the record identifier.
func (r RefundRecord) ID() kernel.UUID {
	return r.id
}

// Amount returns the refunded amount.
func (r RefundRecord) Amount() kernel.Money {
	return r.amount
}

// Reason returns the admin-supplied reason.
func (r RefundRecord) Reason() string {
	return r.reason
}

// RestockItems reports whether inventory should be restored for this refund.
func (r RefundRecord) RestockItems() bool {
	return r.restockItems
}

// CreatedAt returns the record creation time.
func (r RefundRecord) CreatedAt() time.Time {
	return r.createdAt
}
