package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	portssvc "github.com/SscSPs/wholesale_payments/internal/core/ports/services"
	"github.com/SscSPs/wholesale_payments/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock PaymentReportingSvc ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) ListStorePayments(ctx context.Context, params portssvc.ListStorePaymentsParams) (*domain.StorePaymentPage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StorePaymentPage), args.Error(1)
}

func (m *MockPaymentService) GetStorePayment(ctx context.Context, storeID string) (*domain.StorePaymentSummary, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StorePaymentSummary), args.Error(1)
}

func (m *MockPaymentService) GetPaymentOverview(ctx context.Context) (*domain.PaymentOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentOverview), args.Error(1)
}

func (m *MockPaymentService) ClassifyOrders(ctx context.Context, orders []domain.Order) domain.StorePaymentSummary {
	args := m.Called(ctx, orders)
	return args.Get(0).(domain.StorePaymentSummary)
}

var _ portssvc.PaymentReportingSvc = (*MockPaymentService)(nil)

// --- Mock StoreSvcFacade ---
type MockStoreService struct {
	mock.Mock
}

func (m *MockStoreService) CreateStore(ctx context.Context, req dto.CreateStoreRequest, creatorUserID string) (*domain.Store, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

func (m *MockStoreService) GetStoreByID(ctx context.Context, storeID string) (*domain.Store, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

func (m *MockStoreService) ListStores(ctx context.Context, limit int, offset int) ([]domain.Store, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Store), args.Error(1)
}

var _ portssvc.StoreSvcFacade = (*MockStoreService)(nil)

// --- Mock OrderSvcFacade ---
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) ListOrders(ctx context.Context, storeID string, includeDeleted bool) ([]domain.Order, error) {
	args := m.Called(ctx, storeID, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderService) CreateOrder(ctx context.Context, storeID string, req dto.CreateOrderRequest, creatorUserID string) (*domain.Order, error) {
	args := m.Called(ctx, storeID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) RecordPayment(ctx context.Context, orderID string, amount decimal.Decimal, userID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, amount, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) DeleteOrder(ctx context.Context, orderID string, userID string) error {
	args := m.Called(ctx, orderID, userID)
	return args.Error(0)
}

var _ portssvc.OrderSvcFacade = (*MockOrderService)(nil)

// --- Mock AuthSvcFacade ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockAuthService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)
