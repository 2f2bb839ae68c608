package order

import (
	"errors"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root for a marketplace order. It owns the line
// items, shipping and carrier details, the fulfillment status machine, and
// the append-only refund and flag records.
//
// Invariants:
//   - TotalAmount equals the sum of item line totals (by construction).
//   - Cumulative refunds never exceed TotalAmount.
//   - Status only moves along the legal edge table; failed transitions leave
//     the aggregate untouched.
type Order struct {
	id              kernel.UUID
	sellerID        kernel.UUID
	buyerID         kernel.UUID
	items           []Item
	shippingAddress string
	carrier         *CarrierAssignment
	status          Status
	paymentStatus   PaymentStatus
	totalAmount     kernel.Money
	refunds         []RefundRecord
	flags           []FlagRecord
	createdAt       time.Time

	isConstructed bool
}

// NewOrder creates an order in Pending fulfillment status with payment
// awaiting gateway confirmation. The total is computed from the items, which
// must be non-empty and individually valid.
func NewOrder(
	id kernel.UUID,
	sellerID kernel.UUID,
	buyerID kernel.UUID,
	items []Item,
	shippingAddress string,
) (*Order, error) {
	if err := errors.Join(id.Validate(), sellerID.Validate(), buyerID.Validate()); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if shippingAddress == "" {
		return nil, errs.NewValueIsRequiredError("shippingAddress")
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		total = total.Add(item.LineTotal())
	}

	return &Order{
		id:              id,
		sellerID:        sellerID,
		buyerID:         buyerID,
		items:           items,
		shippingAddress: shippingAddress,
		status:          StatusPending,
		paymentStatus:   PaymentPending,
		totalAmount:     total,
		createdAt:       time.Now().UTC(),
		isConstructed:   true,
	}, nil
}

// RestoreOrder reconstructs an order aggregate from persistence.
// The total is recomputed from the items rather than trusted from storage.
func RestoreOrder(
	id kernel.UUID,
	sellerID kernel.UUID,
	buyerID kernel.UUID,
	items []Item,
	shippingAddress string,
	carrier *CarrierAssignment,
	status Status,
	paymentStatus PaymentStatus,
	refunds []RefundRecord,
	flags []FlagRecord,
	createdAt time.Time,
) (*Order, error) {
	restored, err := NewOrder(id, sellerID, buyerID, items, shippingAddress)
	if err != nil {
		return nil, err
	}
	if err = errors.Join(status.Validate(), paymentStatus.Validate()); err != nil {
		return nil, err
	}

	restored.carrier = carrier
	restored.status = status
	restored.paymentStatus = paymentStatus
	restored.refunds = refunds
	restored.flags = flags
	restored.createdAt = createdAt
	return restored, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// SellerID returns the owning seller's identifier.
func (o *Order) SellerID() kernel.UUID { return o.sellerID }

// BuyerID returns the buyer's identifier.
func (o *Order) BuyerID() kernel.UUID { return o.buyerID }

// Items returns the order lines.
func (o *Order) Items() []Item { return o.items }

// ShippingAddress returns the delivery address.
func (o *Order) ShippingAddress() string { return o.shippingAddress }

// Carrier returns the carrier assignment, or nil before shipping.
func (o *Order) Carrier() *CarrierAssignment { return o.carrier }

// Status returns the current fulfillment status.
func (o *Order) Status() Status { return o.status }

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// TotalAmount returns the sum of item line totals.
func (o *Order) TotalAmount() kernel.Money { return o.totalAmount }

// Refunds returns the append-only refund records.
func (o *Order) Refunds() []RefundRecord { return o.refunds }

// Flags returns the append-only flag records.
func (o *Order) Flags() []FlagRecord { return o.flags }

// CreatedAt returns the order creation time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// RefundedAmount returns the cumulative amount refunded so far.
func (o *Order) RefundedAmount() kernel.Money {
	total := kernel.ZeroMoney()
	for _, r := range o.refunds {
		total = total.Add(r.Amount())
	}
	return total
}

// MarkPaid records the payment gateway's charge confirmation.
// Only a payment in Pending state can be confirmed.
func (o *Order) MarkPaid() error {
	if o.paymentStatus != PaymentPending {
		return fmt.Errorf("%w: payment is %s, not Pending", ErrInvalidTransition, o.paymentStatus)
	}
	o.paymentStatus = PaymentPaid
	return nil
}

// StartProcessing validates the order for fulfillment: Pending -> Processing.
// The caller emits the prep slip / stock reservation notification on success.
func (o *Order) StartProcessing() error {
	newStatus, err := o.status.TransitionTo(StatusProcessing)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Ship hands the order to a carrier: Processing -> Shipped.
// A non-empty tracking number is required (ErrMissingTrackingInfo).
func (o *Order) Ship(carrier, trackingNumber, deliveryEstimate string) error {
	assignment, err := NewCarrierAssignment(carrier, trackingNumber, deliveryEstimate)
	if err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(StatusShipped)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.carrier = &assignment
	return nil
}

// Deliver completes fulfillment: Shipped -> Delivered (terminal).
// The caller signals revenue recognition to the settlement ledger on success.
func (o *Order) Deliver() error {
	newStatus, err := o.status.TransitionTo(StatusDelivered)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel aborts fulfillment: Pending or Processing -> Cancelled (terminal).
func (o *Order) Cancel() error {
	newStatus, err := o.status.TransitionTo(StatusCancelled)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// ApplyRefund appends a refund record and updates the payment status.
//
// Preconditions (all reported as ErrInvalidRefundAmount):
//   - the payment state is Paid or PartiallyRefunded
//   - amount is greater than zero
//   - amount does not exceed the remaining refundable amount
//
// When cumulative refunds reach the order total the payment status becomes
// Refunded, otherwise PartiallyRefunded.
func (o *Order) ApplyRefund(
	recordID kernel.UUID,
	amount kernel.Money,
	reason string,
	restockItems bool,
) (RefundRecord, error) {
	if err := recordID.Validate(); err != nil {
		return RefundRecord{}, err
	}
	if !o.paymentStatus.IsRefundable() {
		return RefundRecord{}, fmt.Errorf("%w: payment is %s", ErrInvalidRefundAmount, o.paymentStatus)
	}
	if !amount.IsPositive() {
		return RefundRecord{}, fmt.Errorf("%w: %s is not greater than 0", ErrInvalidRefundAmount, amount)
	}

	remaining, err := o.totalAmount.Sub(o.RefundedAmount())
	if err != nil {
		return RefundRecord{}, err
	}
	if amount.GreaterThan(remaining) {
		return RefundRecord{}, fmt.Errorf("%w: %s exceeds remaining refundable %s",
			ErrInvalidRefundAmount, amount, remaining)
	}

	record := RefundRecord{
		id:           recordID,
		amount:       amount,
		reason:       reason,
		restockItems: restockItems,
		createdAt:    time.Now().UTC(),
	}
	o.refunds = append(o.refunds, record)

	if o.RefundedAmount().IsEqual(o.totalAmount) {
		o.paymentStatus = PaymentRefunded
	} else {
		o.paymentStatus = PaymentPartiallyRefunded
	}

	return record, nil
}

// AttachFlag appends a risk flag record. Flagging always succeeds for a
// valid severity; placing the seller account on hold is the caller's
// responsibility when FreezeFunds is set.
func (o *Order) AttachFlag(
	recordID kernel.UUID,
	severity Severity,
	reason string,
	freezeFunds bool,
) (FlagRecord, error) {
	if err := recordID.Validate(); err != nil {
		return FlagRecord{}, err
	}
	if err := severity.Validate(); err != nil {
		return FlagRecord{}, err
	}

	record := FlagRecord{
		id:          recordID,
		severity:    severity,
		reason:      reason,
		freezeFunds: freezeFunds,
		createdAt:   time.Now().UTC(),
	}
	o.flags = append(o.flags, record)
	return record, nil
}
