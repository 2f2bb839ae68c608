// Package ports defines repository and collaborator interfaces for the back
// office core. These interfaces establish contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/seller"
)

// SellerRepository defines the persistence contract for seller account
// aggregates and their settlement entry logs.
type SellerRepository interface {
	// Add persists a new seller account to storage.
	// The account must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *seller.Account) error

	// Update persists changes to an existing seller account, including any
	// entries appended since it was loaded.
	Update(ctx context.Context, aggregate *seller.Account) error

	// Get retrieves a seller account by seller id with its full entry log.
	Get(ctx context.Context, sellerID kernel.UUID) (*seller.Account, error)

	// GetForUpdate retrieves a seller account while taking a row lock on it.
	// Every balance-affecting operation for a seller loads the account this
	// way, so concurrent operations on the same seller serialize on the lock
	// and each one sees the committed result of the previous. Must be called
	// inside an open transaction.
	GetForUpdate(ctx context.Context, sellerID kernel.UUID) (*seller.Account, error)
}
