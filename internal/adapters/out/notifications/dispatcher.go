// Package notifications implements the notification dispatcher port.
// The log dispatcher records every notification through structured logging;
// it stands in for a mail or messaging integration behind the same port.
package notifications

import (
	"context"
	"log/slog"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// LogDispatcher writes notifications to the application log.
type LogDispatcher struct {
	logger *slog.Logger
}

// NewLogDispatcher creates a dispatcher that logs notifications.
func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	return &LogDispatcher{
		logger: logger.With("component", "notification_dispatcher"),
	}
}

// NotifyPrepSlip tells the warehouse to start preparing an order.
func (d *LogDispatcher) NotifyPrepSlip(ctx context.Context, orderID kernel.UUID, priority, notes string) error {
	d.logger.InfoContext(ctx, "prep slip issued",
		"order_id", orderID.String(), "priority", priority, "notes", notes)
	return nil
}

// NotifyShipped tells the buyer the order left the warehouse.
func (d *LogDispatcher) NotifyShipped(ctx context.Context, orderID kernel.UUID, carrier, trackingNumber string) error {
	d.logger.InfoContext(ctx, "shipment notification sent",
		"order_id", orderID.String(), "carrier", carrier, "tracking_number", trackingNumber)
	return nil
}

// NotifyCancelled tells the buyer the order was cancelled.
func (d *LogDispatcher) NotifyCancelled(ctx context.Context, orderID kernel.UUID) error {
	d.logger.InfoContext(ctx, "cancellation notification sent", "order_id", orderID.String())
	return nil
}

// NotifyRefunded tells the buyer a refund was issued.
func (d *LogDispatcher) NotifyRefunded(ctx context.Context, orderID kernel.UUID, amount kernel.Money) error {
	d.logger.InfoContext(ctx, "refund notification sent",
		"order_id", orderID.String(), "amount", amount.String())
	return nil
}

// NotifyFlagged alerts the review team about a flagged order.
func (d *LogDispatcher) NotifyFlagged(ctx context.Context, orderID kernel.UUID, severity order.Severity, escalate bool) error {
	d.logger.InfoContext(ctx, "flag alert sent",
		"order_id", orderID.String(), "severity", severity.String(), "escalate", escalate)
	return nil
}

// NotifyStaleWithdrawal reminds admins about a pending withdrawal that has
// waited too long for a decision.
func (d *LogDispatcher) NotifyStaleWithdrawal(ctx context.Context, requestID, sellerID kernel.UUID) error {
	d.logger.WarnContext(ctx, "stale withdrawal reminder sent",
		"request_id", requestID.String(), "seller_id", sellerID.String())
	return nil
}
