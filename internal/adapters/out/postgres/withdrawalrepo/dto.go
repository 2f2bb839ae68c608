// Package withdrawalrepo provides data transfer objects and mapping functions
// for withdrawal request persistence.
package withdrawalrepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/withdrawal"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequestDTO represents the database structure for persisting withdrawal
// requests. Bank details are stored flattened on the request row.
type RequestDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SellerID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount            decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	BankName          string          `gorm:"type:varchar(255)"`
	BankAccountNumber string          `gorm:"type:varchar(255);not null"`
	BankHolderName    string          `gorm:"type:varchar(255)"`
	Status            int             `gorm:"type:int;not null;index"`
	CreatedAt         time.Time       `gorm:"not null"`
	ProcessedAt       *time.Time
}

// TableName specifies the database table name for withdrawal request entities.
func (RequestDTO) TableName() string {
	return "withdrawal_requests"
}

// fromDomain converts a withdrawal request aggregate to its database
// representation.
func fromDomain(request *withdrawal.Request) RequestDTO {
	return RequestDTO{
		ID:                request.ID().Bytes(),
		SellerID:          request.SellerID().Bytes(),
		Amount:            request.Amount().Decimal(),
		BankName:          request.BankInfo().BankName(),
		BankAccountNumber: request.BankInfo().AccountNumber(),
		BankHolderName:    request.BankInfo().HolderName(),
		Status:            int(request.Status()),
		CreatedAt:         request.CreatedAt(),
		ProcessedAt:       request.ProcessedAt(),
	}
}

// toDomain converts a database DTO to a withdrawal request aggregate using
// RestoreRequest.
func toDomain(dto RequestDTO) (*withdrawal.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	bankInfo, err := withdrawal.NewBankInfo(dto.BankName, dto.BankAccountNumber, dto.BankHolderName)
	if err != nil {
		return nil, err
	}

	return withdrawal.RestoreRequest(
		id,
		sellerID,
		amount,
		bankInfo,
		withdrawal.Status(dto.Status),
		dto.CreatedAt,
		dto.ProcessedAt,
	)
}
