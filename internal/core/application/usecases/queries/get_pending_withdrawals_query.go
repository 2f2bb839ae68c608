package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPendingWithdrawalsQueryIsNotConstructed = errors.New(
	"GetPendingWithdrawalsQuery must be created via NewGetPendingWithdrawalsQuery constructor",
)

// GetPendingWithdrawalsQuery retrieves withdrawal requests awaiting an admin
// decision, oldest first. An optional cutoff restricts the list to requests
// created before that time; the stale-withdrawal review job uses it.
type GetPendingWithdrawalsQuery struct {
	createdBefore *time.Time

	guard guard.ConstructorGuard
}

// NewGetPendingWithdrawalsQuery creates a query for the pending review list.
// Pass a nil cutoff to list every pending request.
func NewGetPendingWithdrawalsQuery(createdBefore *time.Time) GetPendingWithdrawalsQuery {
	return GetPendingWithdrawalsQuery{
		createdBefore: createdBefore,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingWithdrawalsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingWithdrawalsQueryIsNotConstructed)
}

// CreatedBefore returns the optional creation-time cutoff.
func (q GetPendingWithdrawalsQuery) CreatedBefore() *time.Time {
	return q.createdBefore
}

// GetPendingWithdrawalsQueryResponse is one pending request in the admin
// review list.
type GetPendingWithdrawalsQueryResponse struct {
	ID        kernel.UUID
	SellerID  kernel.UUID
	Amount    decimal.Decimal
	BankName  string
	CreatedAt time.Time
}
