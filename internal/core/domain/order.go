package domain

import (
	"github.com/shopspring/decimal"
)

// OrderPaymentStatus is the collection state of a single order.
type OrderPaymentStatus string

const (
	OrderPaid    OrderPaymentStatus = "paid"
	OrderPartial OrderPaymentStatus = "partial"
	OrderUnpaid  OrderPaymentStatus = "unpaid"
)

// Money columns are NUMERIC(14,2).
const MoneyScale = 2

// MaxMoneyAmount is the largest amount a money column can hold.
var MaxMoneyAmount = decimal.RequireFromString("999999999999.99")

// NormalizeOrderPaymentStatus maps anything other than exactly "paid" or
// "partial" to unpaid. Case and whitespace variants are unpaid too.
func NormalizeOrderPaymentStatus(s string) OrderPaymentStatus {
	switch OrderPaymentStatus(s) {
	case OrderPaid:
		return OrderPaid
	case OrderPartial:
		return OrderPartial
	default:
		return OrderUnpaid
	}
}

// Order is a store's order as seen by the payment reports.
// PaymentAmount is only meaningful while PaymentStatus is partial.
type Order struct {
	OrderID       string             `json:"orderID"`
	StoreID       string             `json:"storeID"`
	OrderNumber   string             `json:"orderNumber"`
	Total         decimal.Decimal    `json:"total"`
	PaymentStatus OrderPaymentStatus `json:"paymentStatus"`
	PaymentAmount decimal.Decimal    `json:"paymentAmount"`
	IsDelete      bool               `json:"isDelete"`
	AuditFields
}

// IsFullyPaid reports whether nothing is owed on the order.
func (o Order) IsFullyPaid() bool {
	return o.PaymentStatus == OrderPaid
}

// Outstanding is the amount still owed on the order.
func (o Order) Outstanding() decimal.Decimal {
	switch o.PaymentStatus {
	case OrderPaid:
		return decimal.Zero
	case OrderPartial:
		return o.Total.Sub(o.PaymentAmount)
	default:
		return o.Total
	}
}
