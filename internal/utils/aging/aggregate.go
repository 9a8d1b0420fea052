// Package aging computes store payment rollups and classifies accounts by the
// age of their oldest unpaid order. Everything here is pure: the same input
// always yields the same output and nothing is read from or written to storage.
package aging

import (
	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Aggregate reduces one store's orders to its payment rollups.
// Soft-deleted orders are skipped. A partial order contributes its collected
// PaymentAmount to TotalPaid; an unpaid order contributes nothing.
func Aggregate(orders []domain.Order) domain.PaymentTotals {
	totals := domain.PaymentTotals{
		TotalSpent:   decimal.Zero,
		TotalPaid:    decimal.Zero,
		BalanceDue:   decimal.Zero,
		UnpaidOrders: []domain.UnpaidOrder{},
	}

	for _, o := range orders {
		if o.IsDelete {
			continue
		}
		totals.TotalOrders++
		totals.TotalSpent = totals.TotalSpent.Add(o.Total)

		switch o.PaymentStatus {
		case domain.OrderPaid:
			totals.PaidOrdersCount++
			totals.TotalPaid = totals.TotalPaid.Add(o.Total)
			continue
		case domain.OrderPartial:
			totals.PartialOrdersCount++
			totals.TotalPaid = totals.TotalPaid.Add(o.PaymentAmount)
		default:
			totals.UnpaidOrdersCount++
		}

		totals.CreditCount++
		totals.UnpaidOrders = append(totals.UnpaidOrders, domain.UnpaidOrder{
			OrderID:   o.OrderID,
			CreatedAt: o.CreatedAt,
			Total:     o.Total,
		})
	}

	totals.BalanceDue = totals.TotalSpent.Sub(totals.TotalPaid)
	return totals
}

// GroupByStore partitions orders by StoreID, preserving input order within
// each partition. Deleted orders are dropped here as well.
func GroupByStore(orders []domain.Order) map[string][]domain.Order {
	grouped := make(map[string][]domain.Order)
	for _, o := range orders {
		if o.IsDelete {
			continue
		}
		grouped[o.StoreID] = append(grouped[o.StoreID], o)
	}
	return grouped
}
