package commands

import (
	"context"

	"backoffice/internal/core/ports"
)

// ShipOrderCommandHandler handles the business logic for shipping an order.
// Records the carrier assignment, moves the order to Shipped, and requests
// the shipment notification after commit.
type ShipOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationDispatcher
}

// NewShipOrderCommandHandler creates a handler for ship operations.
func NewShipOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationDispatcher,
) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the ship command. A missing tracking number or an illegal
// transition leaves the order untouched and rolls the transaction back.
func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
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

	if err = aggregate.Ship(cmd.Carrier(), cmd.TrackingNumber(), cmd.DeliveryEstimate()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.NotifyShipped(ctx, cmd.OrderID(), cmd.Carrier(), cmd.TrackingNumber())
	return nil
}
