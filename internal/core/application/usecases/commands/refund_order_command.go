package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var (
	ErrRefundOrderCommandIsNotConstructed = errors.New(
		"RefundOrderCommand must be created via NewRefundOrderCommand constructor",
	)
	ErrRefundKindIsInvalid = errors.New("refund kind must be full or partial")
	ErrReasonIsRequired    = errors.New("reason is required")
)

// RefundKind distinguishes a full refund, whose amount is derived from the
// order's remaining refundable balance, from a partial refund with an
// explicit amount.
type RefundKind string

const (
	RefundKindFull    RefundKind = "full"
	RefundKindPartial RefundKind = "partial"
)

// RefundOrderCommand represents a back-office request to refund a paid order
// in full or in part.
type RefundOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	kind           RefundKind
	amount         kernel.Money
	reason         string
	restockItems   bool
	notifyCustomer bool

	guard guard.ConstructorGuard
}

// NewRefundOrderCommand creates a refund command. For partial refunds the
// amount is the exact sum to return; for full refunds it is ignored and the
// handler derives the remaining refundable balance instead. Amount
// positivity and the cumulative cap are domain rules checked by the order
// aggregate.
func NewRefundOrderCommand(
	orderID kernel.UUID,
	kind RefundKind,
	amount kernel.Money,
	reason string,
	restockItems bool,
	notifyCustomer bool,
) (RefundOrderCommand, error) {
	command := RefundOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setKind(kind),
		command.setReason(reason),
	); err != nil {
		return RefundOrderCommand{}, err
	}

	command.amount = amount
	command.restockItems = restockItems
	command.notifyCustomer = notifyCustomer
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundOrderCommand) Validate() error {
	return c.guard.Validate(ErrRefundOrderCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c RefundOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Kind returns the refund kind.
func (c RefundOrderCommand) Kind() RefundKind {
	return c.kind
}

// Amount returns the requested amount for partial refunds.
func (c RefundOrderCommand) Amount() kernel.Money {
	return c.amount
}

// Reason returns the operator-supplied refund reason.
func (c RefundOrderCommand) Reason() string {
	return c.reason
}

// RestockItems reports whether inventory should be restored.
func (c RefundOrderCommand) RestockItems() bool {
	return c.restockItems
}

// NotifyCustomer reports whether the buyer should be notified.
func (c RefundOrderCommand) NotifyCustomer() bool {
	return c.notifyCustomer
}

func (c *RefundOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RefundOrderCommand) setKind(kind RefundKind) error {
	if kind != RefundKindFull && kind != RefundKindPartial {
		return ErrRefundKindIsInvalid
	}

	c.kind = kind
	return nil
}

func (c *RefundOrderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
