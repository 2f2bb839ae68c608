package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var (
	ErrValidateOrderCommandIsNotConstructed = errors.New(
		"ValidateOrderCommand must be created via NewValidateOrderCommand constructor",
	)
	ErrPriorityIsRequired = errors.New("priority is required")
)

// ValidateOrderCommand represents a back-office request to validate a pending
// order for fulfillment, moving it into Processing and emitting the prep slip
// notification.
type ValidateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	priority string
	notes    string

	guard guard.ConstructorGuard
}

// NewValidateOrderCommand creates a command to validate an order.
// The priority label is required; notes are free-form and optional.
func NewValidateOrderCommand(orderID kernel.UUID, priority, notes string) (ValidateOrderCommand, error) {
	command := ValidateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setPriority(priority),
	); err != nil {
		return ValidateOrderCommand{}, err
	}

	command.notes = notes
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ValidateOrderCommand) Validate() error {
	return c.guard.Validate(ErrValidateOrderCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c ValidateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Priority returns the prep slip priority label.
func (c ValidateOrderCommand) Priority() string {
	return c.priority
}

// Notes returns the optional operator notes.
func (c ValidateOrderCommand) Notes() string {
	return c.notes
}

func (c *ValidateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ValidateOrderCommand) setPriority(priority string) error {
	if priority == "" {
		return ErrPriorityIsRequired
	}

	c.priority = priority
	return nil
}
