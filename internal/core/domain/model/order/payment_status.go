package order

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// PaymentStatus represents the payment state of an order. The initial
// Pending/Paid/Failed values are supplied by the payment gateway collaborator;
// Refunded and PartiallyRefunded are derived from refund records.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending means the gateway has not confirmed the charge yet.
	PaymentPending

	// PaymentPaid means the gateway confirmed the charge; refunds require
	// this state (or a prior partial refund).
	PaymentPaid

	// PaymentFailed means the gateway rejected the charge.
	PaymentFailed

	// PaymentRefunded means cumulative refunds equal the order total.
	PaymentRefunded

	// PaymentPartiallyRefunded means refunds exist but do not cover the total.
	PaymentPartiallyRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:           "Unknown",
		PaymentPending:           "Pending",
		PaymentPaid:              "Paid",
		PaymentFailed:            "Failed",
		PaymentRefunded:          "Refunded",
		PaymentPartiallyRefunded: "PartiallyRefunded",
	}
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if s <= PaymentUnknown || s > PaymentPartiallyRefunded {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsRefundable reports whether refunds may be applied in this state.
func (s PaymentStatus) IsRefundable() bool {
	return s == PaymentPaid || s == PaymentPartiallyRefunded
}
