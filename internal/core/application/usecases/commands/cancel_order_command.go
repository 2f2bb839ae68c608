package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a back-office request to abort an order
// before it ships. RestockItems is set by flows that cancel after stock was
// already reserved.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restockItems bool

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID kernel.UUID, restockItems bool) (CancelOrderCommand, error) {
	command := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	command.restockItems = restockItems
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestockItems reports whether inventory should be restored.
func (c CancelOrderCommand) RestockItems() bool {
	return c.restockItems
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
