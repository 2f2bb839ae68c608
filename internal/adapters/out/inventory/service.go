// Package inventory implements the inventory service port. The log service
// records restock requests through structured logging; it stands in for the
// warehouse system integration behind the same port.
package inventory

import (
	"context"
	"log/slog"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// LogService writes restock requests to the application log.
type LogService struct {
	logger *slog.Logger
}

// NewLogService creates an inventory service that logs restock requests.
func NewLogService(logger *slog.Logger) *LogService {
	return &LogService{
		logger: logger.With("component", "inventory_service"),
	}
}

// Restock returns the order's items to sellable inventory.
func (s *LogService) Restock(ctx context.Context, orderID kernel.UUID, items []order.Item) error {
	for _, item := range items {
		s.logger.InfoContext(ctx, "item restocked",
			"order_id", orderID.String(),
			"product_id", item.ProductID().String(),
			"quantity", item.Quantity())
	}
	return nil
}
