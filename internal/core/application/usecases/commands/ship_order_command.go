package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var (
	ErrShipOrderCommandIsNotConstructed = errors.New(
		"ShipOrderCommand must be created via NewShipOrderCommand constructor",
	)
	ErrCarrierIsRequired = errors.New("carrier is required")
)

// ShipOrderCommand represents a back-office request to hand a processing
// order to a carrier. The tracking number is deliberately not guarded here:
// its absence is a domain rule and surfaces from the order aggregate.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	carrier          string
	trackingNumber   string
	deliveryEstimate string
	notes            string

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship an order with the given
// carrier details.
func NewShipOrderCommand(
	orderID kernel.UUID,
	carrier, trackingNumber, deliveryEstimate, notes string,
) (ShipOrderCommand, error) {
	command := ShipOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCarrier(carrier),
	); err != nil {
		return ShipOrderCommand{}, err
	}

	command.trackingNumber = trackingNumber
	command.deliveryEstimate = deliveryEstimate
	command.notes = notes
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c ShipOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Carrier returns the carrier name.
func (c ShipOrderCommand) Carrier() string {
	return c.carrier
}

// TrackingNumber returns the carrier tracking number, possibly empty.
func (c ShipOrderCommand) TrackingNumber() string {
	return c.trackingNumber
}

// DeliveryEstimate returns the free-form delivery estimate.
func (c ShipOrderCommand) DeliveryEstimate() string {
	return c.deliveryEstimate
}

// Notes returns the optional operator notes.
func (c ShipOrderCommand) Notes() string {
	return c.notes
}

func (c *ShipOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ShipOrderCommand) setCarrier(carrier string) error {
	if carrier == "" {
		return ErrCarrierIsRequired
	}

	c.carrier = carrier
	return nil
}
