package commands

import (
	"context"
)

// UnfreezeSellerCommandHandler handles the admin unfreeze action.
type UnfreezeSellerCommandHandler struct {
	uowFactory SellerUoWFactory
}

// NewUnfreezeSellerCommandHandler creates a handler for unfreeze operations.
func NewUnfreezeSellerCommandHandler(uowFactory SellerUoWFactory) UnfreezeSellerCommandHandler {
	return UnfreezeSellerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle clears the hold on the seller's account. Clearing an account that
// is not held is a no-op.
func (h *UnfreezeSellerCommandHandler) Handle(ctx context.Context, cmd UnfreezeSellerCommand) error {
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

	account.Release()
	if err = sellerRepo.Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
