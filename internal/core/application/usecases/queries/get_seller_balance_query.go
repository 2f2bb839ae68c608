// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetSellerBalanceQueryIsNotConstructed = errors.New(
	"GetSellerBalanceQuery must be created via NewGetSellerBalanceQuery constructor",
)

// GetSellerBalanceQuery retrieves the derived balance view for one seller.
type GetSellerBalanceQuery struct {
	sellerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSellerBalanceQuery creates a query for a seller's balance.
func NewGetSellerBalanceQuery(sellerID kernel.UUID) (GetSellerBalanceQuery, error) {
	if err := sellerID.Validate(); err != nil {
		return GetSellerBalanceQuery{}, err
	}

	return GetSellerBalanceQuery{
		sellerID: sellerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSellerBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetSellerBalanceQueryIsNotConstructed)
}

// SellerID returns the target seller identifier.
func (q GetSellerBalanceQuery) SellerID() kernel.UUID {
	return q.sellerID
}

// GetSellerBalanceQueryResponse is the seller balance read model. Every
// figure is derived at read time from the settlement entries and the
// non-rejected withdrawal requests.
type GetSellerBalanceQueryResponse struct {
	SellerID       kernel.UUID
	GrossRevenue   decimal.Decimal
	CommissionOwed decimal.Decimal
	NetSettled     decimal.Decimal
	Committed      decimal.Decimal
	Available      decimal.Decimal
	Held           bool
	SettlementPaid bool
}
