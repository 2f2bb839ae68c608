package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/ports"
)

// FlagOrderCommandHandler handles risk flagging. Appends the flag record and,
// when funds freezing is requested, places the owning seller's account on
// hold in the same transaction.
type FlagOrderCommandHandler struct {
	uowFactory OrderSellerUoWFactory
	notifier   ports.NotificationDispatcher
}

// NewFlagOrderCommandHandler creates a handler for flag operations.
func NewFlagOrderCommandHandler(
	uowFactory OrderSellerUoWFactory,
	notifier ports.NotificationDispatcher,
) FlagOrderCommandHandler {
	return FlagOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the flag command. Flagging succeeds in any order state.
// The hold takes the seller row lock so it cannot interleave with an
// in-flight withdrawal acceptance for the same seller.
func (h *FlagOrderCommandHandler) Handle(ctx context.Context, cmd FlagOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if _, err = aggregate.AttachFlag(kernel.NewUUID(), cmd.Severity(), cmd.Reason(), cmd.FreezeFunds()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if cmd.FreezeFunds() {
		sellerRepo := uow.SellerRepository()
		account, err := sellerRepo.GetForUpdate(ctx, aggregate.SellerID())
		if err != nil {
			return err
		}

		account.Hold()
		if err = sellerRepo.Update(ctx, account); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cmd.NotifyTeam() || cmd.Escalate() {
		_ = h.notifier.NotifyFlagged(ctx, cmd.OrderID(), cmd.Severity(), cmd.Escalate())
	}
	return nil
}
