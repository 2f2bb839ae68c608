package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents a carrier delivery confirmation for a
// shipped order. Carriers retry their webhooks, so the same confirmation may
// arrive more than once; revenue recognition stays exactly-once regardless.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to confirm an order's delivery.
func NewDeliverOrderCommand(orderID kernel.UUID) (DeliverOrderCommand, error) {
	command := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return DeliverOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *DeliverOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
