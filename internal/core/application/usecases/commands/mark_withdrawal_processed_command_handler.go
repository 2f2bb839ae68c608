package commands

import (
	"context"
)

// MarkWithdrawalProcessedCommandHandler records completed bank transfers.
type MarkWithdrawalProcessedCommandHandler struct {
	uowFactory WithdrawalUoWFactory
}

// NewMarkWithdrawalProcessedCommandHandler creates a handler for transfer
// confirmations.
func NewMarkWithdrawalProcessedCommandHandler(uowFactory WithdrawalUoWFactory) MarkWithdrawalProcessedCommandHandler {
	return MarkWithdrawalProcessedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves an approved request to Processed and stamps the completion
// time. Only approved requests can be processed.
func (h *MarkWithdrawalProcessedCommandHandler) Handle(ctx context.Context, cmd MarkWithdrawalProcessedCommand) error {
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

	if err = request.MarkProcessed(); err != nil {
		return err
	}

	if err = withdrawalRepo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
