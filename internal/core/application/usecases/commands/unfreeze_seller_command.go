package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrUnfreezeSellerCommandIsNotConstructed = errors.New(
	"UnfreezeSellerCommand must be created via NewUnfreezeSellerCommand constructor",
)

// UnfreezeSellerCommand represents an explicit admin action clearing a
// seller's funds hold. Nothing clears a hold automatically.
type UnfreezeSellerCommand struct { //nolint:recvcheck //using for validation
	sellerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnfreezeSellerCommand creates a command to clear a seller's hold.
func NewUnfreezeSellerCommand(sellerID kernel.UUID) (UnfreezeSellerCommand, error) {
	command := UnfreezeSellerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSellerID(sellerID); err != nil {
		return UnfreezeSellerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UnfreezeSellerCommand) Validate() error {
	return c.guard.Validate(ErrUnfreezeSellerCommandIsNotConstructed)
}

// SellerID returns the target seller identifier.
func (c UnfreezeSellerCommand) SellerID() kernel.UUID {
	return c.sellerID
}

func (c *UnfreezeSellerCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}

	c.sellerID = sellerID
	return nil
}
