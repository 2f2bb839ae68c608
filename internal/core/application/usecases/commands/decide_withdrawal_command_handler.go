package commands

import (
	"context"

	"backoffice/internal/core/domain/model/seller"
)

// DecideWithdrawalCommandHandler applies an admin verdict to a pending
// withdrawal request.
type DecideWithdrawalCommandHandler struct {
	uowFactory SellerWithdrawalUoWFactory
}

// NewDecideWithdrawalCommandHandler creates a handler for withdrawal
// decisions.
func NewDecideWithdrawalCommandHandler(uowFactory SellerWithdrawalUoWFactory) DecideWithdrawalCommandHandler {
	return DecideWithdrawalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decision. Approval re-checks the seller's hold flag
// under the row lock, so a request created before the hold was placed cannot
// slip through. Rejection releases the reservation and needs no hold check.
func (h *DecideWithdrawalCommandHandler) Handle(ctx context.Context, cmd DecideWithdrawalCommand) error {
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

	withdrawalRepo := uow.WithdrawalRepository()
	request, err := withdrawalRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	switch cmd.Decision() {
	case DecisionApprove:
		sellerRepo := uow.SellerRepository()
		account, err := sellerRepo.GetForUpdate(ctx, request.SellerID())
		if err != nil {
			return err
		}
		if account.Held() {
			return seller.ErrAccountHeld
		}
		if err = request.Approve(); err != nil {
			return err
		}
	case DecisionReject:
		if err = request.Reject(); err != nil {
			return err
		}
	}

	if err = withdrawalRepo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
