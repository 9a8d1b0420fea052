package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	portsrepo "github.com/SscSPs/wholesale_payments/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock StoreRepository ---
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) SaveStore(ctx context.Context, store domain.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) FindStoreByID(ctx context.Context, storeID string) (*domain.Store, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

func (m *MockStoreRepository) ListStores(ctx context.Context, limit int, offset int) ([]domain.Store, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Store), args.Error(1)
}

var _ portsrepo.StoreRepositoryFacade = (*MockStoreRepository)(nil)

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByStore(ctx context.Context, storeID string, includeDeleted bool) ([]domain.Order, error) {
	args := m.Called(ctx, storeID, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ApplyOrderPayment(ctx context.Context, orderID string, amount decimal.Decimal, updatedAt time.Time, updatedBy string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, amount, updatedAt, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) MarkOrderDeleted(ctx context.Context, orderID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, orderID, deletedAt, deletedBy)
	return args.Error(0)
}

var _ portsrepo.OrderRepositoryFacade = (*MockOrderRepository)(nil)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) LoadPaymentSnapshot(ctx context.Context) (*portsrepo.PaymentSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.PaymentSnapshot), args.Error(1)
}

var _ portsrepo.ReportingReader = (*MockReportingRepository)(nil)
