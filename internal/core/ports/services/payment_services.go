package services

import (
	"context"

	"github.com/SscSPs/wholesale_payments/internal/core/domain"
)

// ListStorePaymentsParams selects one page of classified stores.
type ListStorePaymentsParams struct {
	Status domain.StandingStatus
	Page   int
	Limit  int
}

// PaymentReportingSvc computes store payment standing from persisted orders.
// Nothing it returns is cached; every call reclassifies from current data.
type PaymentReportingSvc interface {
	// ListStorePayments classifies all stores and returns one page of the
	// stores carrying the requested status, largest balance first.
	ListStorePayments(ctx context.Context, params ListStorePaymentsParams) (*domain.StorePaymentPage, error)

	// GetStorePayment classifies a single store, including its unpaid orders.
	GetStorePayment(ctx context.Context, storeID string) (*domain.StorePaymentSummary, error)

	// GetPaymentOverview rolls every store's classification into dashboard counters.
	GetPaymentOverview(ctx context.Context) (*domain.PaymentOverview, error)

	// ClassifyOrders evaluates a caller-supplied order snapshot for one store.
	ClassifyOrders(ctx context.Context, orders []domain.Order) domain.StorePaymentSummary
}
