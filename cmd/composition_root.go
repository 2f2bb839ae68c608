package cmd

import (
	"log/slog"
	"time"

	"backoffice/internal/adapters/out/inventory"
	"backoffice/internal/adapters/out/notifications"
	"backoffice/internal/adapters/out/postgres"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/ports"
	"backoffice/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.NotificationDispatcher
	inventory  ports.InventoryService
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifications.NewLogDispatcher(logger),
		inventory:  inventory.NewLogService(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateValidateOrderCommandHandler() commands.ValidateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewValidateOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewShipOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	var f commands.OrderSellerUoWFactory = FuncOrderSellerUoWFactory(func() commands.OrderSellerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.notifier, c.inventory)
}

func (c *CompositionRoot) CreateRefundOrderCommandHandler() commands.RefundOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefundOrderCommandHandler(f, c.notifier, c.inventory)
}

func (c *CompositionRoot) CreateFlagOrderCommandHandler() commands.FlagOrderCommandHandler {
	var f commands.OrderSellerUoWFactory = FuncOrderSellerUoWFactory(func() commands.OrderSellerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFlagOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateUnfreezeSellerCommandHandler() commands.UnfreezeSellerCommandHandler {
	var f commands.SellerUoWFactory = FuncSellerUoWFactory(func() commands.SellerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnfreezeSellerCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkSettlementPaidCommandHandler() commands.MarkSettlementPaidCommandHandler {
	var f commands.SellerUoWFactory = FuncSellerUoWFactory(func() commands.SellerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkSettlementPaidCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateWithdrawalCommandHandler() commands.CreateWithdrawalCommandHandler {
	var f commands.SellerWithdrawalUoWFactory = FuncSellerWithdrawalUoWFactory(func() commands.SellerWithdrawalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWithdrawalCommandHandler(f)
}

func (c *CompositionRoot) CreateDecideWithdrawalCommandHandler() commands.DecideWithdrawalCommandHandler {
	var f commands.SellerWithdrawalUoWFactory = FuncSellerWithdrawalUoWFactory(func() commands.SellerWithdrawalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDecideWithdrawalCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkWithdrawalProcessedCommandHandler() commands.MarkWithdrawalProcessedCommandHandler {
	var f commands.WithdrawalUoWFactory = FuncWithdrawalUoWFactory(func() commands.WithdrawalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkWithdrawalProcessedCommandHandler(f)
}

func (c *CompositionRoot) CreateGetSellerBalanceQueryHandler() queries.GetSellerBalanceQueryHandler {
	return queries.NewGetSellerBalanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingWithdrawalsQueryHandler() queries.GetPendingWithdrawalsQueryHandler {
	return queries.NewGetPendingWithdrawalsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(staleWithdrawalMaxAge time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetPendingWithdrawalsQueryHandler(),
		c.notifier,
		staleWithdrawalMaxAge,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSellerUoWFactory func() commands.SellerUoW

func (f FuncSellerUoWFactory) Create() commands.SellerUoW {
	return f()
}

type FuncWithdrawalUoWFactory func() commands.WithdrawalUoW

func (f FuncWithdrawalUoWFactory) Create() commands.WithdrawalUoW {
	return f()
}

type FuncOrderSellerUoWFactory func() commands.OrderSellerUoW

func (f FuncOrderSellerUoWFactory) Create() commands.OrderSellerUoW {
	return f()
}

type FuncSellerWithdrawalUoWFactory func() commands.SellerWithdrawalUoW

func (f FuncSellerWithdrawalUoWFactory) Create() commands.SellerWithdrawalUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
