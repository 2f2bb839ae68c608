package queries

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/withdrawal"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPendingWithdrawalsQueryHandler lists pending withdrawal requests using
// direct SQL for optimal read performance in the CQRS pattern.
type GetPendingWithdrawalsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingWithdrawalsQueryHandler creates a handler for pending
// withdrawal queries.
func NewGetPendingWithdrawalsQueryHandler(db *gorm.DB) GetPendingWithdrawalsQueryHandler {
	return GetPendingWithdrawalsQueryHandler{db: db}
}

// Handle executes the query. Results come back oldest first so the longest
// waiting sellers surface at the top of the review list.
func (h GetPendingWithdrawalsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingWithdrawalsQuery,
) ([]GetPendingWithdrawalsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			seller_id,
			amount,
			bank_name,
			created_at
		FROM withdrawal_requests
		WHERE status = ?
	`
	args := []any{int(withdrawal.StatusPending)}
	if cutoff := query.CreatedBefore(); cutoff != nil {
		sql += ` AND created_at < ?`
		args = append(args, *cutoff)
	}
	sql += ` ORDER BY created_at`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]GetPendingWithdrawalsQueryResponse, 0)
	for rows.Next() {
		var (
			response  GetPendingWithdrawalsQueryResponse
			id        uuid.UUID
			sellerID  uuid.UUID
			amount    decimal.Decimal
			createdAt time.Time
		)

		if err = rows.Scan(&id, &sellerID, &amount, &response.BankName, &createdAt); err != nil {
			return nil, err
		}

		requestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(sellerID[:])
		if idErr != nil {
			return nil, idErr
		}

		response.ID = requestID
		response.SellerID = ownerID
		response.Amount = amount
		response.CreatedAt = createdAt
		requests = append(requests, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
