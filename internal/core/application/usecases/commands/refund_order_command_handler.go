package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/core/ports"
)

// RefundOrderCommandHandler handles refunds. Appends the refund record to the
// order and reverses the seller's recognized revenue in the same transaction,
// with the seller account row-locked. The reversal can leave accepted
// withdrawal reservations without cover, so the handler also rejects pending
// requests that no longer fit within the reduced net settled balance.
type RefundOrderCommandHandler struct {
	uowFactory UoWFactory
	ledger     services.SettlementLedger
	notifier   ports.NotificationDispatcher
	inventory  ports.InventoryService
}

// NewRefundOrderCommandHandler creates a handler for refund operations.
func NewRefundOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.NotificationDispatcher,
	inventory ports.InventoryService,
) RefundOrderCommandHandler {
	return RefundOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewSettlementLedger(),
		notifier:   notifier,
		inventory:  inventory,
	}
}

// Handle processes the refund command. A full refund targets the order's
// remaining refundable balance. Order record, ledger reversal and any
// reservation revocations commit together or not at all; restock and the
// customer notification run only after commit.
func (h *RefundOrderCommandHandler) Handle(ctx context.Context, cmd RefundOrderCommand) error {
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

	amount := cmd.Amount()
	if cmd.Kind() == RefundKindFull {
		amount, err = aggregate.TotalAmount().Sub(aggregate.RefundedAmount())
		if err != nil {
			return err
		}
	}

	record, err := aggregate.ApplyRefund(kernel.NewUUID(), amount, cmd.Reason(), cmd.RestockItems())
	if err != nil {
		return err
	}

	sellerRepo := uow.SellerRepository()
	account, err := sellerRepo.GetForUpdate(ctx, aggregate.SellerID())
	if err != nil {
		return err
	}

	if _, err = account.ApplyRefund(kernel.NewUUID(), aggregate.ID(), record.Amount()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = sellerRepo.Update(ctx, account); err != nil {
		return err
	}

	// The seller row lock is still held here, so no new reservation can be
	// accepted between the reversal and the revocation below.
	withdrawalRepo := uow.WithdrawalRepository()
	requests, err := withdrawalRepo.GetAllBySeller(ctx, aggregate.SellerID())
	if err != nil {
		return err
	}

	revoke, err := h.ledger.RequestsToRevoke(account, requests)
	if err != nil {
		return err
	}
	for _, request := range revoke {
		if err = request.Reject(); err != nil {
			return err
		}
		if err = withdrawalRepo.Update(ctx, request); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cmd.RestockItems() {
		_ = h.inventory.Restock(ctx, aggregate.ID(), aggregate.Items())
	}
	if cmd.NotifyCustomer() {
		_ = h.notifier.NotifyRefunded(ctx, aggregate.ID(), record.Amount())
	}
	return nil
}
