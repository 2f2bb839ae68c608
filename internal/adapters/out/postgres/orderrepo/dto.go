// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items, refunds and flags live in child tables keyed by the order id.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	BuyerID         uuid.UUID `gorm:"type:uuid;not null"`
	ShippingAddress string    `gorm:"type:varchar(512);not null"`
	Status          int       `gorm:"type:int;not null;index"`
	PaymentStatus   int       `gorm:"type:int;not null"`

	// Carrier assignment columns. A non-empty tracking number marks the
	// assignment as present; the domain never allows one without it.
	CarrierName      string `gorm:"type:varchar(255)"`
	TrackingNumber   string `gorm:"type:varchar(255)"`
	DeliveryEstimate string `gorm:"type:varchar(255)"`

	CreatedAt time.Time `gorm:"not null"`

	Items   []ItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Refunds []RefundDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Flags   []FlagDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line. The line total is not stored; the
// domain recomputes it from quantity and unit price on restore.
type ItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity  int             `gorm:"type:int;not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// RefundDTO represents one refund applied to an order.
type RefundDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Reason       string          `gorm:"type:varchar(512);not null"`
	RestockItems bool            `gorm:"not null"`
	CreatedAt    time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for refund entities.
func (RefundDTO) TableName() string {
	return "order_refunds"
}

// FlagDTO represents one review flag attached to an order.
type FlagDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Severity    int       `gorm:"type:int;not null"`
	Reason      string    `gorm:"type:varchar(512);not null"`
	FreezeFunds bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for flag entities.
func (FlagDTO) TableName() string {
	return "order_flags"
}

// fromDomain converts an order domain aggregate to its database
// representation, including all child records.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:   orderID,
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
		})
	}

	refunds := make([]RefundDTO, 0, len(aggregate.Refunds()))
	for _, refund := range aggregate.Refunds() {
		refunds = append(refunds, RefundDTO{
			ID:           refund.ID().Bytes(),
			OrderID:      orderID,
			Amount:       refund.Amount().Decimal(),
			Reason:       refund.Reason(),
			RestockItems: refund.RestockItems(),
			CreatedAt:    refund.CreatedAt(),
		})
	}

	flags := make([]FlagDTO, 0, len(aggregate.Flags()))
	for _, flag := range aggregate.Flags() {
		flags = append(flags, FlagDTO{
			ID:          flag.ID().Bytes(),
			OrderID:     orderID,
			Severity:    int(flag.Severity()),
			Reason:      flag.Reason(),
			FreezeFunds: flag.FreezeFunds(),
			CreatedAt:   flag.CreatedAt(),
		})
	}

	dto := OrderDTO{
		ID:              orderID,
		SellerID:        aggregate.SellerID().Bytes(),
		BuyerID:         aggregate.BuyerID().Bytes(),
		ShippingAddress: aggregate.ShippingAddress(),
		Status:          int(aggregate.Status()),
		PaymentStatus:   int(aggregate.PaymentStatus()),
		CreatedAt:       aggregate.CreatedAt(),
		Items:           items,
		Refunds:         refunds,
		Flags:           flags,
	}

	if carrier := aggregate.Carrier(); carrier != nil {
		dto.CarrierName = carrier.Carrier()
		dto.TrackingNumber = carrier.TrackingNumber()
		dto.DeliveryEstimate = carrier.DeliveryEstimate()
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including children using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	refunds := make([]order.RefundRecord, 0, len(dto.Refunds))
	for _, refundDto := range dto.Refunds {
		refund, refundErr := refundToDomain(refundDto)
		if refundErr != nil {
			return nil, refundErr
		}
		refunds = append(refunds, refund)
	}

	flags := make([]order.FlagRecord, 0, len(dto.Flags))
	for _, flagDto := range dto.Flags {
		flag, flagErr := flagToDomain(flagDto)
		if flagErr != nil {
			return nil, flagErr
		}
		flags = append(flags, flag)
	}

	var carrier *order.CarrierAssignment
	if dto.TrackingNumber != "" {
		assignment, carrierErr := order.NewCarrierAssignment(
			dto.CarrierName, dto.TrackingNumber, dto.DeliveryEstimate)
		if carrierErr != nil {
			return nil, carrierErr
		}
		carrier = &assignment
	}

	return order.RestoreOrder(
		id,
		sellerID,
		buyerID,
		items,
		dto.ShippingAddress,
		carrier,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		refunds,
		flags,
		dto.CreatedAt,
	)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, dto.Quantity, unitPrice)
}

func refundToDomain(dto RefundDTO) (order.RefundRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.RefundRecord{}, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return order.RefundRecord{}, err
	}

	return order.RestoreRefundRecord(id, amount, dto.Reason, dto.RestockItems, dto.CreatedAt)
}

func flagToDomain(dto FlagDTO) (order.FlagRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.FlagRecord{}, err
	}

	return order.RestoreFlagRecord(
		id, order.Severity(dto.Severity), dto.Reason, dto.FreezeFunds, dto.CreatedAt)
}
