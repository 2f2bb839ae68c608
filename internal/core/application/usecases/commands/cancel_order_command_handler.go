package commands

import (
	"context"

	"backoffice/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation. Aborts fulfillment,
// optionally restocks reserved inventory, and requests the cancellation
// notification after commit.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationDispatcher
	inventory  ports.InventoryService
}

// NewCancelOrderCommandHandler creates a handler for cancel operations.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationDispatcher,
	inventory ports.InventoryService,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		inventory:  inventory,
	}
}

// Handle processes the cancel command. Restock and notification run only
// after the cancellation is committed.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cmd.RestockItems() {
		_ = h.inventory.Restock(ctx, aggregate.ID(), aggregate.Items())
	}
	_ = h.notifier.NotifyCancelled(ctx, cmd.OrderID())
	return nil
}
