package order

import "errors"

// ErrMissingTrackingInfo is returned when an order is shipped without a
// tracking number.
var ErrMissingTrackingInfo = errors.New("tracking number is required")

// CarrierAssignment is the carrier handoff recorded when an order ships:
// the carrier name, the mandatory tracking number, and an optional free-form
// delivery estimate supplied by the caller.
type CarrierAssignment struct {
	carrier          string
	trackingNumber   string
	deliveryEstimate string
}

// NewCarrierAssignment creates a carrier assignment.
// The tracking number must be non-empty; carrier and estimate are optional.
func NewCarrierAssignment(carrier, trackingNumber, deliveryEstimate string) (CarrierAssignment, error) {
	if trackingNumber == "" {
		return CarrierAssignment{}, ErrMissingTrackingInfo
	}

	return CarrierAssignment{
		carrier:          carrier,
		trackingNumber:   trackingNumber,
		deliveryEstimate: deliveryEstimate,
	}, nil
}

// Carrier returns the carrier name.
func (c CarrierAssignment) Carrier() string {
	return c.carrier
}

// TrackingNumber returns the carrier tracking identifier.
func (c CarrierAssignment) TrackingNumber() string {
	return c.trackingNumber
}

// DeliveryEstimate returns the free-form delivery estimate, if any.
func (c CarrierAssignment) DeliveryEstimate() string {
	return c.deliveryEstimate
}
