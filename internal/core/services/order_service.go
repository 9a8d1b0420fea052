package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/wholesale_payments/internal/apperrors"
	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	portsrepo "github.com/SscSPs/wholesale_payments/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wholesale_payments/internal/core/ports/services"
	"github.com/SscSPs/wholesale_payments/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type orderService struct {
	BaseService
	orderRepo portsrepo.OrderRepositoryFacade
	storeRepo portsrepo.StoreReader
	clock     func() time.Time
}

// OrderServiceOption is a functional option for configuring the order service
type OrderServiceOption func(*orderService)

// WithOrderClock sets the time source used for new orders and audit fields.
func WithOrderClock(clock func() time.Time) OrderServiceOption {
	return func(s *orderService) {
		s.clock = clock
	}
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, storeRepo portsrepo.StoreReader, options ...OrderServiceOption) portssvc.OrderSvcFacade {
	svc := &orderService{
		orderRepo: orderRepo,
		storeRepo: storeRepo,
		clock:     time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// validateMoney rejects amounts a NUMERIC(14,2) column would round or overflow.
func validateMoney(field string, d decimal.Decimal) error {
	if !d.Equal(d.Truncate(domain.MoneyScale)) {
		return apperrors.NewValidationError(fmt.Sprintf("%s must have at most %d decimal places", field, domain.MoneyScale))
	}
	if d.Abs().GreaterThan(domain.MaxMoneyAmount) {
		return apperrors.NewValidationError(fmt.Sprintf("%s must not exceed %s", field, domain.MaxMoneyAmount.StringFixed(domain.MoneyScale)))
	}
	return nil
}

func (s *orderService) CreateOrder(ctx context.Context, storeID string, req dto.CreateOrderRequest, creatorUserID string) (*domain.Order, error) {
	if !req.Total.Value.IsPositive() {
		return nil, apperrors.NewValidationError("order total must be greater than zero")
	}
	if err := validateMoney("order total", req.Total.Value); err != nil {
		return nil, err
	}

	// Orders must reference an existing store; ErrNotFound passes through.
	if _, err := s.storeRepo.FindStoreByID(ctx, storeID); err != nil {
		return nil, fmt.Errorf("failed to load store %s: %w", storeID, err)
	}

	now := s.clock()
	createdAt := now
	if req.CreatedAt != nil {
		if req.CreatedAt.After(now) {
			return nil, apperrors.NewValidationError("order date cannot be in the future")
		}
		createdAt = *req.CreatedAt
	}

	order := domain.Order{
		OrderID:       uuid.NewString(),
		StoreID:       storeID,
		OrderNumber:   strings.TrimSpace(req.OrderNumber),
		Total:         req.Total.Value,
		PaymentStatus: domain.OrderUnpaid,
		PaymentAmount: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     createdAt,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save order",
				slog.String("store_id", storeID),
				slog.String("order_number", order.OrderNumber))
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.LogInfo(ctx, "Order created",
		slog.String("store_id", storeID),
		slog.String("order_id", order.OrderID),
		slog.String("total", order.Total.String()))
	return &order, nil
}

func (s *orderService) ListOrders(ctx context.Context, storeID string, includeDeleted bool) ([]domain.Order, error) {
	if _, err := s.storeRepo.FindStoreByID(ctx, storeID); err != nil {
		return nil, fmt.Errorf("failed to load store %s: %w", storeID, err)
	}

	orders, err := s.orderRepo.ListOrdersByStore(ctx, storeID, includeDeleted)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders", slog.String("store_id", storeID))
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// RecordPayment adds amount to what has been collected on the order. The
// order becomes paid once collections reach its total and partial before that.
// Overpayment is capped at the total. The addition happens in the repository
// so concurrent payments on one order are never lost.
func (s *orderService) RecordPayment(ctx context.Context, orderID string, amount decimal.Decimal, userID string) (*domain.Order, error) {
	if !amount.IsPositive() {
		return nil, apperrors.NewValidationError("payment amount must be greater than zero")
	}
	if err := validateMoney("payment amount", amount); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order %s: %w", orderID, err)
	}
	if order.IsDelete {
		return nil, fmt.Errorf("order %s: %w", orderID, apperrors.ErrNotFound)
	}
	if order.IsFullyPaid() {
		return nil, apperrors.NewValidationError("order is already paid")
	}

	updated, err := s.orderRepo.ApplyOrderPayment(ctx, orderID, amount, s.clock(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Paid off or deleted by another request since it was read.
			s.LogInfo(ctx, "Order changed before payment was applied", slog.String("order_id", orderID))
			return nil, apperrors.NewAppError(409, "order was paid or deleted concurrently; reload and retry", nil)
		}
		s.LogError(ctx, err, "Failed to record payment", slog.String("order_id", orderID))
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("order_id", orderID),
		slog.String("amount", amount.String()),
		slog.String("collected", updated.PaymentAmount.String()),
		slog.String("status", string(updated.PaymentStatus)))
	return updated, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID string, userID string) error {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to load order %s: %w", orderID, err)
	}
	if order.IsDelete {
		// Already gone from every report.
		return nil
	}

	if err := s.orderRepo.MarkOrderDeleted(ctx, orderID, s.clock(), userID); err != nil {
		s.LogError(ctx, err, "Failed to delete order", slog.String("order_id", orderID))
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.LogInfo(ctx, "Order deleted", slog.String("order_id", orderID), slog.String("store_id", order.StoreID))
	return nil
}
