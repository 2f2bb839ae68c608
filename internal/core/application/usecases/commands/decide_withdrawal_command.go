package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var (
	ErrDecideWithdrawalCommandIsNotConstructed = errors.New(
		"DecideWithdrawalCommand must be created via NewDecideWithdrawalCommand constructor",
	)
	ErrDecisionIsInvalid = errors.New("decision must be approve or reject")
)

// Decision is an admin's verdict on a pending withdrawal request.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// DecideWithdrawalCommand represents an admin decision on a pending
// withdrawal request.
type DecideWithdrawalCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	decision  Decision

	guard guard.ConstructorGuard
}

// NewDecideWithdrawalCommand creates a command carrying the admin's verdict.
func NewDecideWithdrawalCommand(requestID kernel.UUID, decision Decision) (DecideWithdrawalCommand, error) {
	command := DecideWithdrawalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequestID(requestID),
		command.setDecision(decision),
	); err != nil {
		return DecideWithdrawalCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DecideWithdrawalCommand) Validate() error {
	return c.guard.Validate(ErrDecideWithdrawalCommandIsNotConstructed)
}

// RequestID returns the target request identifier.
func (c DecideWithdrawalCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Decision returns the admin's verdict.
func (c DecideWithdrawalCommand) Decision() Decision {
	return c.decision
}

func (c *DecideWithdrawalCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *DecideWithdrawalCommand) setDecision(decision Decision) error {
	if decision != DecisionApprove && decision != DecisionReject {
		return ErrDecisionIsInvalid
	}

	c.decision = decision
	return nil
}
