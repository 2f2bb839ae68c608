package queries

import (
	"context"

	"backoffice/internal/core/domain/model/seller"
	"backoffice/internal/core/domain/model/withdrawal"
	"backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetSellerBalanceQueryHandler derives a seller's balance straight from the
// database. Uses direct SQL aggregation over the settlement entry log and the
// withdrawal requests for optimal read performance in the CQRS pattern.
type GetSellerBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetSellerBalanceQueryHandler creates a handler for balance queries.
func NewGetSellerBalanceQueryHandler(db *gorm.DB) GetSellerBalanceQueryHandler {
	return GetSellerBalanceQueryHandler{db: db}
}

// Handle executes the balance derivation. Delivery entries add, refund
// entries subtract, and every non-rejected withdrawal counts toward the
// committed amount. The arithmetic mirrors the settlement ledger domain
// service so both views of a seller's balance always agree.
func (h GetSellerBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetSellerBalanceQuery,
) (GetSellerBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSellerBalanceQueryResponse{}, err
	}

	var account struct {
		Held           bool
		SettlementPaid bool
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			held,
			settlement_paid
		FROM seller_accounts
		WHERE seller_id = ?
	`, query.SellerID().Bytes()).Scan(&account)
	if result.Error != nil {
		return GetSellerBalanceQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetSellerBalanceQueryResponse{}, errs.NewObjectNotFoundError("seller", query.SellerID().String())
	}

	var figures struct {
		Gross      decimal.Decimal
		Commission decimal.Decimal
		Committed  decimal.Decimal
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE((
				SELECT SUM(CASE WHEN kind = ? THEN gross ELSE -gross END)
				FROM settlement_entries
				WHERE seller_id = ?
			), 0) AS gross,
			COALESCE((
				SELECT SUM(CASE WHEN kind = ? THEN commission ELSE -commission END)
				FROM settlement_entries
				WHERE seller_id = ?
			), 0) AS commission,
			COALESCE((
				SELECT SUM(amount)
				FROM withdrawal_requests
				WHERE seller_id = ? AND status <> ?
			), 0) AS committed
	`,
		int(seller.EntryDelivery), query.SellerID().Bytes(),
		int(seller.EntryDelivery), query.SellerID().Bytes(),
		query.SellerID().Bytes(), int(withdrawal.StatusRejected),
	).Scan(&figures).Error
	if err != nil {
		return GetSellerBalanceQueryResponse{}, err
	}

	netSettled := figures.Gross.Sub(figures.Commission)
	available := netSettled.Sub(figures.Committed)
	if account.Held || available.IsNegative() {
		available = decimal.Zero
	}

	return GetSellerBalanceQueryResponse{
		SellerID:       query.SellerID(),
		GrossRevenue:   figures.Gross,
		CommissionOwed: figures.Commission,
		NetSettled:     netSettled,
		Committed:      figures.Committed,
		Available:      available,
		Held:           account.Held,
		SettlementPaid: account.SettlementPaid,
	}, nil
}
