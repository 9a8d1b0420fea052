package repositories

import (
	"context"

	"github.com/SscSPs/wholesale_payments/internal/core/domain"
)

// PaymentSnapshot is every store with every live order, read at one instant.
type PaymentSnapshot struct {
	Stores []domain.Store
	Orders []domain.Order
}

// ReportingReader defines reads used by the cross-store payment reports.
type ReportingReader interface {
	// LoadPaymentSnapshot reads all stores and all non-deleted orders from a
	// single consistent snapshot. The reports classify the whole population
	// before filtering, so they cannot page at the database.
	LoadPaymentSnapshot(ctx context.Context) (*PaymentSnapshot, error)
}
