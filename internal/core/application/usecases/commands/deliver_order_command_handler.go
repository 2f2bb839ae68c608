package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
)

// DeliverOrderCommandHandler handles delivery confirmations. Completes the
// order's fulfillment and recognizes the seller's revenue in the same
// transaction, with the seller account row-locked so concurrent
// balance-affecting operations for that seller serialize.
type DeliverOrderCommandHandler struct {
	uowFactory OrderSellerUoWFactory
}

// NewDeliverOrderCommandHandler creates a handler for delivery confirmations.
func NewDeliverOrderCommandHandler(uowFactory OrderSellerUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation.
// The order id keys revenue recognition, so a redelivered webhook that
// already recognized this order appends nothing to the seller's entry log.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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

	if err = aggregate.Deliver(); err != nil {
		return err
	}

	sellerRepo := uow.SellerRepository()
	account, err := sellerRepo.GetForUpdate(ctx, aggregate.SellerID())
	if err != nil {
		return err
	}

	_, recognized, err := account.RecognizeDelivery(kernel.NewUUID(), aggregate.ID(), aggregate.TotalAmount())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if recognized {
		if err = sellerRepo.Update(ctx, account); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
