package services

import (
	"context"

	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	"github.com/SscSPs/wholesale_payments/internal/dto"
	"github.com/shopspring/decimal"
)

// OrderReaderSvc defines read operations for orders
type OrderReaderSvc interface {
	// ListOrders lists a store's orders. Deleted orders are hidden unless asked for.
	ListOrders(ctx context.Context, storeID string, includeDeleted bool) ([]domain.Order, error)
}

// OrderWriterSvc defines write operations for orders
type OrderWriterSvc interface {
	// CreateOrder records a new unpaid order for a store.
	CreateOrder(ctx context.Context, storeID string, req dto.CreateOrderRequest, creatorUserID string) (*domain.Order, error)

	// RecordPayment applies a payment against an order's outstanding amount.
	RecordPayment(ctx context.Context, orderID string, amount decimal.Decimal, userID string) (*domain.Order, error)
}

// OrderLifecycleSvc defines lifecycle operations for orders
type OrderLifecycleSvc interface {
	// DeleteOrder soft-deletes an order so it no longer counts toward standing.
	DeleteOrder(ctx context.Context, orderID string, userID string) error
}

// OrderSvcFacade combines all order-related service interfaces
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
	OrderLifecycleSvc
}
