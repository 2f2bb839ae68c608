// Package sellerrepo provides data transfer objects and mapping functions for
// seller account persistence. The settlement entry log lives in a child table
// and is append-only; entries are never rewritten once stored.
package sellerrepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/seller"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountDTO represents the database structure for persisting seller accounts.
// Balance figures are not stored; they derive from the settlement entries.
type AccountDTO struct {
	SellerID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CommissionRate decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	Held           bool            `gorm:"not null"`
	SettlementPaid bool            `gorm:"not null"`

	Entries []EntryDTO `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for seller account entities.
func (AccountDTO) TableName() string {
	return "seller_accounts"
}

// EntryDTO represents one settlement log entry.
type EntryDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SellerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind       int             `gorm:"type:int;not null"`
	Gross      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Commission decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for settlement entry entities.
func (EntryDTO) TableName() string {
	return "settlement_entries"
}

// fromDomain converts a seller account aggregate to its database
// representation, including the settlement entry log.
func fromDomain(account *seller.Account) AccountDTO {
	sellerID := account.SellerID().Bytes()

	entries := make([]EntryDTO, 0, len(account.Entries()))
	for _, entry := range account.Entries() {
		entries = append(entries, EntryDTO{
			ID:         entry.ID().Bytes(),
			SellerID:   sellerID,
			OrderID:    entry.OrderID().Bytes(),
			Kind:       int(entry.Kind()),
			Gross:      entry.Gross().Decimal(),
			Commission: entry.Commission().Decimal(),
			CreatedAt:  entry.CreatedAt(),
		})
	}

	return AccountDTO{
		SellerID:       sellerID,
		CommissionRate: account.CommissionRate(),
		Held:           account.Held(),
		SettlementPaid: account.SettlementPaid(),
		Entries:        entries,
	}
}

// toDomain converts a database DTO to a seller account aggregate using
// RestoreAccount.
func toDomain(dto AccountDTO) (*seller.Account, error) {
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	entries := make([]seller.Entry, 0, len(dto.Entries))
	for _, entryDto := range dto.Entries {
		entry, entryErr := entryToDomain(entryDto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return seller.RestoreAccount(sellerID, dto.CommissionRate, dto.Held, dto.SettlementPaid, entries)
}

func entryToDomain(dto EntryDTO) (seller.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return seller.Entry{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return seller.Entry{}, err
	}

	gross, err := kernel.NewMoney(dto.Gross)
	if err != nil {
		return seller.Entry{}, err
	}
	commission, err := kernel.NewMoney(dto.Commission)
	if err != nil {
		return seller.Entry{}, err
	}

	return seller.RestoreEntry(
		id, orderID, seller.EntryKind(dto.Kind), gross, commission, dto.CreatedAt)
}
