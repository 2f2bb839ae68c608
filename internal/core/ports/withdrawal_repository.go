package ports

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/withdrawal"
)

// WithdrawalRepository defines the persistence contract for withdrawal
// request aggregates.
type WithdrawalRepository interface {
	// Add persists a new withdrawal request to storage.
	Add(ctx context.Context, aggregate *withdrawal.Request) error

	// Update persists changes to an existing withdrawal request.
	Update(ctx context.Context, aggregate *withdrawal.Request) error

	// Get retrieves a withdrawal request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*withdrawal.Request, error)

	// GetAllBySeller retrieves every withdrawal request a seller has ever
	// made, in creation order. Used for committed-amount derivation.
	GetAllBySeller(ctx context.Context, sellerID kernel.UUID) ([]*withdrawal.Request, error)

	// GetAllPendingOlderThan retrieves pending requests created before the
	// given time. Used by the stale-withdrawal review job.
	GetAllPendingOlderThan(ctx context.Context, createdBefore time.Time) ([]*withdrawal.Request, error)
}
