package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/withdrawal"
	"backoffice/internal/pkg/guard"
)

var (
	ErrCreateWithdrawalCommandIsNotConstructed = errors.New(
		"CreateWithdrawalCommand must be created via NewCreateWithdrawalCommand constructor",
	)
	ErrAmountIsInvalid    = errors.New("amount must be greater than 0")
	ErrBankInfoIsRequired = errors.New("bank info is required")
)

// CreateWithdrawalCommand represents a seller's request to withdraw settled
// funds to a bank account.
type CreateWithdrawalCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	sellerID  kernel.UUID
	amount    kernel.Money
	bankInfo  withdrawal.BankInfo

	guard guard.ConstructorGuard
}

// NewCreateWithdrawalCommand creates a command to open a withdrawal request.
func NewCreateWithdrawalCommand(
	requestID kernel.UUID,
	sellerID kernel.UUID,
	amount kernel.Money,
	bankInfo withdrawal.BankInfo,
) (CreateWithdrawalCommand, error) {
	command := CreateWithdrawalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequestID(requestID),
		command.setSellerID(sellerID),
		command.setAmount(amount),
		command.setBankInfo(bankInfo),
	); err != nil {
		return CreateWithdrawalCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWithdrawalCommand) Validate() error {
	return c.guard.Validate(ErrCreateWithdrawalCommandIsNotConstructed)
}

// RequestID returns the identifier for the new request.
func (c CreateWithdrawalCommand) RequestID() kernel.UUID {
	return c.requestID
}

// SellerID returns the requesting seller's identifier.
func (c CreateWithdrawalCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// Amount returns the requested amount.
func (c CreateWithdrawalCommand) Amount() kernel.Money {
	return c.amount
}

// BankInfo returns the payout destination.
func (c CreateWithdrawalCommand) BankInfo() withdrawal.BankInfo {
	return c.bankInfo
}

func (c *CreateWithdrawalCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *CreateWithdrawalCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}

	c.sellerID = sellerID
	return nil
}

func (c *CreateWithdrawalCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *CreateWithdrawalCommand) setBankInfo(bankInfo withdrawal.BankInfo) error {
	if bankInfo.AccountNumber() == "" {
		return ErrBankInfoIsRequired
	}

	c.bankInfo = bankInfo
	return nil
}
