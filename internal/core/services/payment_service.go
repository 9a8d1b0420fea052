package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/wholesale_payments/internal/apperrors"
	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	portsrepo "github.com/SscSPs/wholesale_payments/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wholesale_payments/internal/core/ports/services"
	"github.com/SscSPs/wholesale_payments/internal/utils/aging"
	"github.com/SscSPs/wholesale_payments/internal/utils/pagination"
)

// paymentService implements the PaymentReportingSvc interface
type paymentService struct {
	BaseService
	storeRepo     portsrepo.StoreReader
	orderRepo     portsrepo.OrderReader
	reportingRepo portsrepo.ReportingReader
	clock         aging.Clock
}

// PaymentServiceOption is a functional option for configuring the payment service
type PaymentServiceOption func(*paymentService)

// WithClock sets the time source used to age unpaid orders.
func WithClock(clock aging.Clock) PaymentServiceOption {
	return func(s *paymentService) {
		s.clock = clock
	}
}

// NewPaymentService creates a new payment reporting service with the provided options
func NewPaymentService(
	storeRepo portsrepo.StoreReader,
	orderRepo portsrepo.OrderReader,
	reportingRepo portsrepo.ReportingReader,
	options ...PaymentServiceOption,
) portssvc.PaymentReportingSvc {
	svc := &paymentService{
		storeRepo:     storeRepo,
		orderRepo:     orderRepo,
		reportingRepo: reportingRepo,
		clock:         time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.PaymentReportingSvc = (*paymentService)(nil)

// summarizeAll loads one snapshot of stores and live orders and classifies
// every store at one instant.
func (s *paymentService) summarizeAll(ctx context.Context) ([]domain.StorePaymentSummary, time.Time, error) {
	snapshot, err := s.reportingRepo.LoadPaymentSnapshot(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payment report snapshot")
		return nil, time.Time{}, fmt.Errorf("failed to load payment snapshot: %w", err)
	}

	now := s.clock()
	return aging.SummarizeAll(snapshot.Stores, snapshot.Orders, now), now, nil
}

// ListStorePayments classifies all stores and returns one page for the requested status
func (s *paymentService) ListStorePayments(ctx context.Context, params portssvc.ListStorePaymentsParams) (*domain.StorePaymentPage, error) {
	if !params.Status.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown payment status %q", params.Status))
	}
	page, limit := pagination.Normalize(params.Page, params.Limit)

	summaries, _, err := s.summarizeAll(ctx)
	if err != nil {
		return nil, err
	}

	result := aging.Page(summaries, params.Status, page, limit)

	s.LogDebug(ctx, "Store payment page computed",
		slog.String("status", string(params.Status)),
		slog.Int("page", page),
		slog.Int("limit", limit),
		slog.Int("matching_stores", result.Pagination.Total))
	return &result, nil
}

// GetStorePayment classifies a single store including its unpaid orders
func (s *paymentService) GetStorePayment(ctx context.Context, storeID string) (*domain.StorePaymentSummary, error) {
	store, err := s.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load store for payment summary", slog.String("store_id", storeID))
		}
		return nil, fmt.Errorf("failed to load store %s: %w", storeID, err)
	}

	orders, err := s.orderRepo.ListOrdersByStore(ctx, storeID, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to load orders for payment summary", slog.String("store_id", storeID))
		return nil, fmt.Errorf("failed to load orders for store %s: %w", storeID, err)
	}

	summary := aging.Summarize(*store, orders, s.clock())
	return &summary, nil
}

// GetPaymentOverview rolls every store's classification into dashboard counters
func (s *paymentService) GetPaymentOverview(ctx context.Context) (*domain.PaymentOverview, error) {
	summaries, now, err := s.summarizeAll(ctx)
	if err != nil {
		return nil, err
	}

	overview := aging.Overview(summaries, now)

	s.LogInfo(ctx, "Payment overview computed",
		slog.Int("total_stores", overview.TotalStores),
		slog.Int("warning_count", overview.WarningCount),
		slog.Int("overdue_count", overview.OverdueCount))
	return &overview, nil
}

// ClassifyOrders evaluates a caller-supplied order snapshot as one account.
// The snapshot is trusted to belong to a single store; the first order's
// StoreID labels the result.
func (s *paymentService) ClassifyOrders(ctx context.Context, orders []domain.Order) domain.StorePaymentSummary {
	var store domain.Store
	if len(orders) > 0 {
		store.StoreID = orders[0].StoreID
	}
	summary := aging.Summarize(store, orders, s.clock())

	s.LogDebug(ctx, "Order snapshot classified",
		slog.Int("orders", len(orders)),
		slog.String("status", string(summary.PaymentStatus)),
		slog.Int("oldest_unpaid_days", summary.OldestUnpaidDays))
	return summary
}
