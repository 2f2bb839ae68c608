package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// NotificationDispatcher sends operational notifications triggered by order
// and withdrawal workflows. Implementations log their own delivery failures;
// a failed notification never aborts the surrounding workflow.
type NotificationDispatcher interface {
	// NotifyPrepSlip tells the warehouse to start preparing an order.
	NotifyPrepSlip(ctx context.Context, orderID kernel.UUID, priority string, notes string) error

	// NotifyShipped tells the buyer the order left the warehouse.
	NotifyShipped(ctx context.Context, orderID kernel.UUID, carrier string, trackingNumber string) error

	// NotifyCancelled tells the buyer the order was cancelled.
	NotifyCancelled(ctx context.Context, orderID kernel.UUID) error

	// NotifyRefunded tells the buyer a refund was issued.
	NotifyRefunded(ctx context.Context, orderID kernel.UUID, amount kernel.Money) error

	// NotifyFlagged alerts the review team about a flagged order.
	// Escalated flags go to the senior queue.
	NotifyFlagged(ctx context.Context, orderID kernel.UUID, severity order.Severity, escalate bool) error

	// NotifyStaleWithdrawal reminds admins about a pending withdrawal that
	// has waited too long for a decision.
	NotifyStaleWithdrawal(ctx context.Context, requestID kernel.UUID, sellerID kernel.UUID) error
}

// InventoryService restocks items released by cancellations and refunds.
type InventoryService interface {
	// Restock returns the order's items to sellable inventory.
	Restock(ctx context.Context, orderID kernel.UUID, items []order.Item) error
}
