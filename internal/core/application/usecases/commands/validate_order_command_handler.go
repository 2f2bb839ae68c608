package commands

import (
	"context"

	"backoffice/internal/core/ports"
)

// ValidateOrderCommandHandler handles the business logic for order
// validation. Moves a pending order into Processing and requests the prep
// slip notification after the change is committed.
type ValidateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationDispatcher
}

// NewValidateOrderCommandHandler creates a handler for order validation.
func NewValidateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationDispatcher,
) ValidateOrderCommandHandler {
	return ValidateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order validation command.
// The transition is persisted atomically; the prep slip notification fires
// only after a successful commit and its failure does not fail the command.
func (h *ValidateOrderCommandHandler) Handle(ctx context.Context, cmd ValidateOrderCommand) error {
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

	if err = aggregate.StartProcessing(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.NotifyPrepSlip(ctx, cmd.OrderID(), cmd.Priority(), cmd.Notes())
	return nil
}
