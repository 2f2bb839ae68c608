package commands_test

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/seller"
	"backoffice/internal/core/domain/model/withdrawal"
	"backoffice/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockSellerRepository struct{ mock.Mock }

func (m *MockSellerRepository) Add(ctx context.Context, a *seller.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockSellerRepository) Update(ctx context.Context, a *seller.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockSellerRepository) Get(ctx context.Context, sellerID kernel.UUID) (*seller.Account, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*seller.Account), args.Error(1)
}

func (m *MockSellerRepository) GetForUpdate(ctx context.Context, sellerID kernel.UUID) (*seller.Account, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*seller.Account), args.Error(1)
}

type MockWithdrawalRepository struct{ mock.Mock }

func (m *MockWithdrawalRepository) Add(ctx context.Context, r *withdrawal.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockWithdrawalRepository) Update(ctx context.Context, r *withdrawal.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockWithdrawalRepository) Get(ctx context.Context, id kernel.UUID) (*withdrawal.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*withdrawal.Request), args.Error(1)
}

func (m *MockWithdrawalRepository) GetAllBySeller(
	ctx context.Context,
	sellerID kernel.UUID,
) ([]*withdrawal.Request, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*withdrawal.Request), args.Error(1)
}

func (m *MockWithdrawalRepository) GetAllPendingOlderThan(
	ctx context.Context,
	createdBefore time.Time,
) ([]*withdrawal.Request, error) {
	args := m.Called(ctx, createdBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*withdrawal.Request), args.Error(1)
}

// MockUoW implements every unit of work shape the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) SellerRepository() ports.SellerRepository {
	args := m.Called()
	return args.Get(0).(ports.SellerRepository)
}

func (m *MockUoW) WithdrawalRepository() ports.WithdrawalRepository {
	args := m.Called()
	return args.Get(0).(ports.WithdrawalRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSellerUoWFactory struct{ mock.Mock }

func (m *MockSellerUoWFactory) Create() commands.SellerUoW {
	args := m.Called()
	return args.Get(0).(commands.SellerUoW)
}

type MockWithdrawalUoWFactory struct{ mock.Mock }

func (m *MockWithdrawalUoWFactory) Create() commands.WithdrawalUoW {
	args := m.Called()
	return args.Get(0).(commands.WithdrawalUoW)
}

type MockOrderSellerUoWFactory struct{ mock.Mock }

func (m *MockOrderSellerUoWFactory) Create() commands.OrderSellerUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderSellerUoW)
}

type MockSellerWithdrawalUoWFactory struct{ mock.Mock }

func (m *MockSellerWithdrawalUoWFactory) Create() commands.SellerWithdrawalUoW {
	args := m.Called()
	return args.Get(0).(commands.SellerWithdrawalUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockNotificationDispatcher struct{ mock.Mock }

func (m *MockNotificationDispatcher) NotifyPrepSlip(
	ctx context.Context, orderID kernel.UUID, priority, notes string,
) error {
	args := m.Called(ctx, orderID, priority, notes)
	return args.Error(0)
}

func (m *MockNotificationDispatcher) NotifyShipped(
	ctx context.Context, orderID kernel.UUID, carrier, trackingNumber string,
) error {
	args := m.Called(ctx, orderID, carrier, trackingNumber)
	return args.Error(0)
}

func (m *MockNotificationDispatcher) NotifyCancelled(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockNotificationDispatcher) NotifyRefunded(
	ctx context.Context, orderID kernel.UUID, amount kernel.Money,
) error {
	args := m.Called(ctx, orderID, amount)
	return args.Error(0)
}

func (m *MockNotificationDispatcher) NotifyFlagged(
	ctx context.Context, orderID kernel.UUID, severity order.Severity, escalate bool,
) error {
	args := m.Called(ctx, orderID, severity, escalate)
	return args.Error(0)
}

func (m *MockNotificationDispatcher) NotifyStaleWithdrawal(
	ctx context.Context, requestID, sellerID kernel.UUID,
) error {
	args := m.Called(ctx, requestID, sellerID)
	return args.Error(0)
}

type MockInventoryService struct{ mock.Mock }

func (m *MockInventoryService) Restock(ctx context.Context, orderID kernel.UUID, items []order.Item) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

// Test data helpers shared by the handler tests.

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 2, money(t, "500"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, "1 Market Square")
	require.NoError(t, err)
	return o
}

func newProcessingPaidOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newPendingOrder(t)
	require.NoError(t, o.MarkPaid())
	require.NoError(t, o.StartProcessing())
	return o
}

func newShippedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newProcessingPaidOrder(t)
	require.NoError(t, o.Ship("FastShip", "TRK-001", "2 days"))
	return o
}

func newSellerAccount(t *testing.T, sellerID kernel.UUID) *seller.Account {
	t.Helper()
	account, err := seller.NewAccount(sellerID, decimal.NewFromFloat(0.10))
	require.NoError(t, err)
	return account
}

func newBankInfo(t *testing.T) withdrawal.BankInfo {
	t.Helper()
	info, err := withdrawal.NewBankInfo("First National", "DE89370400440532013000", "J. Smith")
	require.NoError(t, err)
	return info
}
