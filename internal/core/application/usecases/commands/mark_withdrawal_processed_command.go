package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrMarkWithdrawalProcessedCommandIsNotConstructed = errors.New(
	"MarkWithdrawalProcessedCommand must be created via NewMarkWithdrawalProcessedCommand constructor",
)

// MarkWithdrawalProcessedCommand represents the banking collaborator's
// confirmation that an approved withdrawal's transfer completed.
type MarkWithdrawalProcessedCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkWithdrawalProcessedCommand creates a command to record a completed
// transfer.
func NewMarkWithdrawalProcessedCommand(requestID kernel.UUID) (MarkWithdrawalProcessedCommand, error) {
	command := MarkWithdrawalProcessedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRequestID(requestID); err != nil {
		return MarkWithdrawalProcessedCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkWithdrawalProcessedCommand) Validate() error {
	return c.guard.Validate(ErrMarkWithdrawalProcessedCommandIsNotConstructed)
}

// RequestID returns the target request identifier.
func (c MarkWithdrawalProcessedCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *MarkWithdrawalProcessedCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
