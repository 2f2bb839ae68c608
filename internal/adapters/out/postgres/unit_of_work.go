// Package postgres provides the GORM-based Unit of Work implementation.
// A unit of work owns one database transaction and hands out repositories
// bound to it, so every aggregate touched by a business operation commits
// or rolls back together.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Update(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each business operation gets its own instance; instances must not be
// shared between goroutines.
package postgres

import (
	"context"

	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/adapters/out/postgres/sellerrepo"
	"backoffice/internal/adapters/out/postgres/withdrawalrepo"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Kept for implementing patterns like the outbox on top of the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// database connection.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the order, seller
// and withdrawal repositories and tracks the aggregates modified within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a new database transaction. Repeated calls on an instance
// with an active transaction are no-ops.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the current transaction. Returns gorm.ErrInvalidTransaction
// when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction. Returns gorm.ErrInvalidTransaction
// when no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the active transaction,
// or to the main connection when no transaction is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// SellerRepository returns a seller account repository bound to the active
// transaction, or to the main connection when no transaction is open.
func (uow *GormUnitOfWork) SellerRepository() ports.SellerRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return sellerrepo.NewGormSellerRepository(db, uow)
}

// WithdrawalRepository returns a withdrawal request repository bound to the
// active transaction, or to the main connection when no transaction is open.
func (uow *GormUnitOfWork) WithdrawalRepository() ports.WithdrawalRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return withdrawalrepo.NewGormWithdrawalRepository(db, uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repositories call it on every Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
