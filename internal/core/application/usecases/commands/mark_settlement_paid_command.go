package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrMarkSettlementPaidCommandIsNotConstructed = errors.New(
	"MarkSettlementPaidCommand must be created via NewMarkSettlementPaidCommand constructor",
)

// MarkSettlementPaidCommand represents an out-of-band confirmation that a
// seller's settlement was paid. It toggles a presentation flag and nothing
// else.
type MarkSettlementPaidCommand struct { //nolint:recvcheck //using for validation
	sellerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkSettlementPaidCommand creates a command to flag a settlement as
// paid.
func NewMarkSettlementPaidCommand(sellerID kernel.UUID) (MarkSettlementPaidCommand, error) {
	command := MarkSettlementPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSellerID(sellerID); err != nil {
		return MarkSettlementPaidCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkSettlementPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkSettlementPaidCommandIsNotConstructed)
}

// SellerID returns the target seller identifier.
func (c MarkSettlementPaidCommand) SellerID() kernel.UUID {
	return c.sellerID
}

func (c *MarkSettlementPaidCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}

	c.sellerID = sellerID
	return nil
}
