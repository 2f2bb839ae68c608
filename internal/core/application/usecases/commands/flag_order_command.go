package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/guard"
)

var ErrFlagOrderCommandIsNotConstructed = errors.New(
	"FlagOrderCommand must be created via NewFlagOrderCommand constructor",
)

// FlagOrderCommand represents a back-office request to attach a risk flag to
// an order, optionally freezing the owning seller's funds.
type FlagOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	severity    order.Severity
	reason      string
	freezeFunds bool
	notifyTeam  bool
	escalate    bool

	guard guard.ConstructorGuard
}

// NewFlagOrderCommand creates a command to flag an order. The severity must
// be a known level and the reason is required.
func NewFlagOrderCommand(
	orderID kernel.UUID,
	severity order.Severity,
	reason string,
	freezeFunds, notifyTeam, escalate bool,
) (FlagOrderCommand, error) {
	command := FlagOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setSeverity(severity),
		command.setReason(reason),
	); err != nil {
		return FlagOrderCommand{}, err
	}

	command.freezeFunds = freezeFunds
	command.notifyTeam = notifyTeam
	command.escalate = escalate
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c FlagOrderCommand) Validate() error {
	return c.guard.Validate(ErrFlagOrderCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c FlagOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Severity returns the flag severity level.
func (c FlagOrderCommand) Severity() order.Severity {
	return c.severity
}

// Reason returns the flag reason.
func (c FlagOrderCommand) Reason() string {
	return c.reason
}

// FreezeFunds reports whether the seller's account should be held.
func (c FlagOrderCommand) FreezeFunds() bool {
	return c.freezeFunds
}

// NotifyTeam reports whether the review team should be alerted.
func (c FlagOrderCommand) NotifyTeam() bool {
	return c.notifyTeam
}

// Escalate reports whether the alert goes to the senior review queue.
func (c FlagOrderCommand) Escalate() bool {
	return c.escalate
}

func (c *FlagOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *FlagOrderCommand) setSeverity(severity order.Severity) error {
	if err := severity.Validate(); err != nil {
		return err
	}

	c.severity = severity
	return nil
}

func (c *FlagOrderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
