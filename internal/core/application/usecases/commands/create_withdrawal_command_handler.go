package commands

import (
	"context"

	"backoffice/internal/core/domain/model/withdrawal"
	"backoffice/internal/core/domain/services"
)

// CreateWithdrawalCommandHandler arbitrates new withdrawal requests. Checks
// the hold flag and available balance under the seller's row lock, so two
// concurrent requests against the same balance serialize and the second sees
// the first one's reservation.
type CreateWithdrawalCommandHandler struct {
	uowFactory SellerWithdrawalUoWFactory
	ledger     services.SettlementLedger
}

// NewCreateWithdrawalCommandHandler creates a handler for withdrawal
// requests.
func NewCreateWithdrawalCommandHandler(uowFactory SellerWithdrawalUoWFactory) CreateWithdrawalCommandHandler {
	return CreateWithdrawalCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewSettlementLedger(),
	}
}

// Handle processes the withdrawal request. Fails with ErrAccountHeld for a
// held account and ErrInsufficientFunds when the amount exceeds the
// available balance. On success the pending request is persisted and its
// amount is reserved from that moment.
func (h *CreateWithdrawalCommandHandler) Handle(ctx context.Context, cmd CreateWithdrawalCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sellerRepo := uow.SellerRepository()
	account, err := sellerRepo.GetForUpdate(ctx, cmd.SellerID())
	if err != nil {
		return err
	}

	withdrawalRepo := uow.WithdrawalRepository()
	requests, err := withdrawalRepo.GetAllBySeller(ctx, cmd.SellerID())
	if err != nil {
		return err
	}

	if _, err = h.ledger.CanWithdraw(account, requests, cmd.Amount()); err != nil {
		return err
	}

	request, err := withdrawal.NewRequest(cmd.RequestID(), cmd.SellerID(), cmd.Amount(), cmd.BankInfo())
	if err != nil {
		return err
	}

	if err = withdrawalRepo.Add(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
