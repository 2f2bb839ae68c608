package withdrawalrepo

import (
	"context"
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/withdrawal"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWithdrawalRepository implements WithdrawalRepository using GORM.
type GormWithdrawalRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWithdrawalRepository creates a new GORM withdrawal request repository.
func NewGormWithdrawalRepository(db *gorm.DB, tracker aggregateTracker) *GormWithdrawalRepository {
	return &GormWithdrawalRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new withdrawal request to the database.
func (r *GormWithdrawalRepository) Add(ctx context.Context, aggregate *withdrawal.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing withdrawal request to the database.
func (r *GormWithdrawalRepository) Update(ctx context.Context, aggregate *withdrawal.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a withdrawal request by ID.
func (r *GormWithdrawalRepository) Get(ctx context.Context, id kernel.UUID) (*withdrawal.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("withdrawal request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllBySeller retrieves every withdrawal request a seller has made, oldest
// first. The committed-amount derivation needs the full history because even
// processed requests stay committed.
func (r *GormWithdrawalRepository) GetAllBySeller(
	ctx context.Context,
	sellerID kernel.UUID,
) ([]*withdrawal.Request, error) {
	if err := sellerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RequestDTO
	if err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "seller_id = ?", sellerID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllPendingOlderThan retrieves pending requests created before the given
// time, oldest first.
func (r *GormWithdrawalRepository) GetAllPendingOlderThan(
	ctx context.Context,
	createdBefore time.Time,
) ([]*withdrawal.Request, error) {
	var dtos []RequestDTO
	if err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "status = ? AND created_at < ?",
			int(withdrawal.StatusPending), createdBefore).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []RequestDTO) ([]*withdrawal.Request, error) {
	requests := make([]*withdrawal.Request, 0, len(dtos))
	for _, dto := range dtos {
		request, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}
