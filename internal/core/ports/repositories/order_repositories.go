package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderReader defines read operations for order data
type OrderReader interface {
	// FindOrderByID retrieves a specific order by its ID, deleted or not.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrdersByStore retrieves a store's orders, newest first.
	ListOrdersByStore(ctx context.Context, storeID string, includeDeleted bool) ([]domain.Order, error)
}

// OrderWriter defines write operations for order data
type OrderWriter interface {
	// SaveOrder persists a new order. A second order with the same number in
	// the same store fails with apperrors.ErrDuplicate.
	SaveOrder(ctx context.Context, order domain.Order) error

	// ApplyOrderPayment adds amount to what has been collected on a live,
	// unpaid order in a single statement and returns the updated order.
	// Collections are capped at the total, which marks the order paid.
	// A deleted or already paid order is untouched and reports ErrNotFound.
	ApplyOrderPayment(ctx context.Context, orderID string, amount decimal.Decimal, updatedAt time.Time, updatedBy string) (*domain.Order, error)
}

// OrderLifecycleManager defines operations for managing order lifecycle
type OrderLifecycleManager interface {
	// MarkOrderDeleted marks an order as deleted (soft delete).
	MarkOrderDeleted(ctx context.Context, orderID string, deletedAt time.Time, deletedBy string) error
}

// OrderRepositoryFacade combines all order-related repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
	OrderLifecycleManager
}
