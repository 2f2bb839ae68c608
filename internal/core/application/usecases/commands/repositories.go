// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"backoffice/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SellerRepoFactory provides access to the seller account repository
	// within a transaction.
	SellerRepoFactory interface {
		SellerRepository() ports.SellerRepository
	}

	// WithdrawalRepoFactory provides access to the withdrawal repository
	// within a transaction.
	WithdrawalRepoFactory interface {
		WithdrawalRepository() ports.WithdrawalRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SellerUoW manages transactions for seller-account-only operations.
	SellerUoW interface {
		TxManager
		SellerRepoFactory
	}

	// SellerUoWFactory creates new seller unit of work instances.
	SellerUoWFactory interface {
		Create() SellerUoW
	}

	// WithdrawalUoW manages transactions for withdrawal-only operations.
	WithdrawalUoW interface {
		TxManager
		WithdrawalRepoFactory
	}

	// WithdrawalUoWFactory creates new withdrawal unit of work instances.
	WithdrawalUoWFactory interface {
		Create() WithdrawalUoW
	}

	// OrderSellerUoW manages transactions that touch an order and its
	// seller's account in one atomic step, such as delivery recognition and
	// refund reversal.
	OrderSellerUoW interface {
		TxManager
		OrderRepoFactory
		SellerRepoFactory
	}

	// OrderSellerUoWFactory creates new order/seller unit of work instances.
	OrderSellerUoWFactory interface {
		Create() OrderSellerUoW
	}

	// SellerWithdrawalUoW manages transactions spanning a seller account and
	// its withdrawal requests. Used by the withdrawal arbitrator, which must
	// see the account and the reservation set under one lock.
	SellerWithdrawalUoW interface {
		TxManager
		SellerRepoFactory
		WithdrawalRepoFactory
	}

	// SellerWithdrawalUoWFactory creates new seller/withdrawal unit of work
	// instances.
	SellerWithdrawalUoWFactory interface {
		Create() SellerWithdrawalUoW
	}

	// UoW manages transactions spanning all three aggregates. The refund
	// workflow needs the full span: reversing recognized revenue can leave
	// pending withdrawal reservations without cover, and those must be
	// rejected in the same transaction that records the reversal.
	UoW interface {
		TxManager
		OrderRepoFactory
		SellerRepoFactory
		WithdrawalRepoFactory
	}

	// UoWFactory creates new full-span unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
