package dto

import (
	"time"

	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest defines the data needed to record a store order.
type CreateOrderRequest struct {
	OrderNumber string         `json:"orderNumber" binding:"required,max=64"`
	Total       FlexibleAmount `json:"total"`
	// Optional; defaults to now. Back-office imports set it explicitly.
	CreatedAt *time.Time `json:"createdAt"`
}

// RecordPaymentRequest records money collected against an order.
type RecordPaymentRequest struct {
	Amount FlexibleAmount `json:"amount"`
}

// ListOrdersParams defines query parameters for listing a store's orders.
type ListOrdersParams struct {
	IncludeDeleted bool `form:"includeDeleted,default=false"`
}

// OrderResponse defines the data returned for an order.
type OrderResponse struct {
	OrderID       string          `json:"orderID"`
	StoreID       string          `json:"storeID"`
	OrderNumber   string          `json:"orderNumber"`
	Total         decimal.Decimal `json:"total"`
	PaymentStatus string          `json:"paymentStatus"`
	PaymentAmount decimal.Decimal `json:"paymentAmount"`
	Outstanding   decimal.Decimal `json:"outstanding"`
	IsDelete      bool            `json:"isDelete"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListOrdersResponse wraps a list of orders.
type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// ToOrderResponse converts a domain.Order to OrderResponse DTO.
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:       o.OrderID,
		StoreID:       o.StoreID,
		OrderNumber:   o.OrderNumber,
		Total:         o.Total,
		PaymentStatus: string(o.PaymentStatus),
		PaymentAmount: o.PaymentAmount,
		Outstanding:   o.Outstanding(),
		IsDelete:      o.IsDelete,
		CreatedAt:     o.CreatedAt,
		LastUpdatedAt: o.LastUpdatedAt,
	}
}

// ToListOrdersResponse converts a slice of domain.Order.
func ToListOrdersResponse(orders []domain.Order) ListOrdersResponse {
	res := ListOrdersResponse{Orders: make([]OrderResponse, len(orders))}
	for i := range orders {
		res.Orders[i] = ToOrderResponse(&orders[i])
	}
	return res
}
