package sellerrepo

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/seller"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSellerRepository implements SellerRepository using GORM.
type GormSellerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSellerRepository creates a new GORM seller account repository.
func NewGormSellerRepository(db *gorm.DB, tracker aggregateTracker) *GormSellerRepository {
	return &GormSellerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new seller account to the database.
func (r *GormSellerRepository) Add(ctx context.Context, aggregate *seller.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.SellerID(), aggregate)
	return nil
}

// Update saves an existing seller account to the database, persisting any
// settlement entries recognized since the last save.
func (r *GormSellerRepository) Update(ctx context.Context, aggregate *seller.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Session with FullSaveAssociations persists the entry log along with
	// the account row.
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.SellerID(), aggregate)
	return nil
}

// Get retrieves a seller account by seller ID with its settlement entries.
func (r *GormSellerRepository) Get(ctx context.Context, sellerID kernel.UUID) (*seller.Account, error) {
	return r.get(ctx, sellerID, false)
}

// GetForUpdate retrieves a seller account holding a row-level lock until the
// surrounding transaction ends. Balance-affecting operations load the account
// through this method so concurrent workflows for one seller serialize.
func (r *GormSellerRepository) GetForUpdate(ctx context.Context, sellerID kernel.UUID) (*seller.Account, error) {
	return r.get(ctx, sellerID, true)
}

func (r *GormSellerRepository) get(
	ctx context.Context,
	sellerID kernel.UUID,
	forUpdate bool,
) (*seller.Account, error) {
	if err := sellerID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Preload("Entries")
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto AccountDTO
	if err := query.First(&dto, "seller_id = ?", sellerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("seller", sellerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
