package models

import "github.com/shopspring/decimal"

// Order is the row shape of the orders table.
// total and payment_amount are nullable in legacy rows.
type Order struct {
	OrderID       string              `db:"order_id"`
	StoreID       string              `db:"store_id"`
	OrderNumber   string              `db:"order_number"`
	Total         decimal.NullDecimal `db:"total"`
	PaymentStatus string              `db:"payment_status"`
	PaymentAmount decimal.NullDecimal `db:"payment_amount"`
	IsDelete      bool                `db:"is_delete"`
	AuditFields
}
