package mapping

import (
	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	"github.com/SscSPs/wholesale_payments/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelOrder converts a domain Order to a model Order
func ToModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:       d.OrderID,
		StoreID:       d.StoreID,
		OrderNumber:   d.OrderNumber,
		Total:         decimal.NewNullDecimal(d.Total),
		PaymentStatus: string(d.PaymentStatus),
		PaymentAmount: decimal.NewNullDecimal(d.PaymentAmount),
		IsDelete:      d.IsDelete,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrder converts a model Order to a domain Order.
// NULL money columns read as zero and unknown statuses read as unpaid.
func ToDomainOrder(m models.Order) domain.Order {
	total := decimal.Zero
	if m.Total.Valid {
		total = m.Total.Decimal
	}
	paid := decimal.Zero
	if m.PaymentAmount.Valid {
		paid = m.PaymentAmount.Decimal
	}
	return domain.Order{
		OrderID:       m.OrderID,
		StoreID:       m.StoreID,
		OrderNumber:   m.OrderNumber,
		Total:         total,
		PaymentStatus: domain.NormalizeOrderPaymentStatus(m.PaymentStatus),
		PaymentAmount: paid,
		IsDelete:      m.IsDelete,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOrderSlice converts a slice of model Orders
func ToDomainOrderSlice(ms []models.Order) []domain.Order {
	ds := make([]domain.Order, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOrder(m)
	}
	return ds
}
