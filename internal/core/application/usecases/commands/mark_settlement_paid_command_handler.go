package commands

import (
	"context"
)

// MarkSettlementPaidCommandHandler records settlement payment confirmations.
// The flag is pure presentation state; balance derivation never reads it.
type MarkSettlementPaidCommandHandler struct {
	uowFactory SellerUoWFactory
}

// NewMarkSettlementPaidCommandHandler creates a handler for settlement-paid
// confirmations.
func NewMarkSettlementPaidCommandHandler(uowFactory SellerUoWFactory) MarkSettlementPaidCommandHandler {
	return MarkSettlementPaidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets the settlement-paid flag on the seller's account.
func (h *MarkSettlementPaidCommandHandler) Handle(ctx context.Context, cmd MarkSettlementPaidCommand) error {
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

	account.MarkSettlementPaid()
	if err = sellerRepo.Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
