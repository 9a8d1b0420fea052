package aging

import (
	"sort"
	"time"

	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	"github.com/SscSPs/wholesale_payments/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// Summarize aggregates and classifies a single store.
func Summarize(store domain.Store, orders []domain.Order, now time.Time) domain.StorePaymentSummary {
	totals := Aggregate(orders)
	status, days := Classify(totals.BalanceDue, totals.UnpaidOrders, now)
	return domain.StorePaymentSummary{
		Store:            store,
		PaymentTotals:    totals,
		PaymentStatus:    status,
		OldestUnpaidDays: days,
	}
}

// SummarizeAll produces one summary per store, in the order stores are given.
// Orders whose StoreID matches no store are ignored; stores without orders get
// an all-zero summary in good standing.
func SummarizeAll(stores []domain.Store, orders []domain.Order, now time.Time) []domain.StorePaymentSummary {
	grouped := GroupByStore(orders)
	summaries := make([]domain.StorePaymentSummary, 0, len(stores))
	for _, s := range stores {
		summaries = append(summaries, Summarize(s, grouped[s.StoreID], now))
	}
	return summaries
}

// FilterByStatus keeps the summaries carrying the given status.
func FilterByStatus(summaries []domain.StorePaymentSummary, status domain.StandingStatus) []domain.StorePaymentSummary {
	filtered := make([]domain.StorePaymentSummary, 0, len(summaries))
	for _, s := range summaries {
		if s.PaymentStatus == status {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// SortByBalanceDue orders summaries by balance due, largest first. Equal
// balances fall back to StoreID so page boundaries are stable across calls.
func SortByBalanceDue(summaries []domain.StorePaymentSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		if c := summaries[i].BalanceDue.Cmp(summaries[j].BalanceDue); c != 0 {
			return c > 0
		}
		return summaries[i].StoreID < summaries[j].StoreID
	})
}

// Page filters by status, sorts by balance due and slices out one page.
// The input slice is not modified.
func Page(summaries []domain.StorePaymentSummary, status domain.StandingStatus, page, limit int) domain.StorePaymentPage {
	filtered := FilterByStatus(summaries, status)
	SortByBalanceDue(filtered)
	items, info := pagination.Slice(filtered, page, limit)
	return domain.StorePaymentPage{Stores: items, Pagination: info}
}

// Overview rolls classified summaries up into dashboard counters.
func Overview(summaries []domain.StorePaymentSummary, now time.Time) domain.PaymentOverview {
	ov := domain.PaymentOverview{
		TotalStores:       len(summaries),
		TotalSpent:        decimal.Zero,
		TotalPaid:         decimal.Zero,
		TotalBalanceDue:   decimal.Zero,
		WarningBalanceDue: decimal.Zero,
		OverdueBalanceDue: decimal.Zero,
		GeneratedAt:       now,
	}
	for _, s := range summaries {
		ov.TotalSpent = ov.TotalSpent.Add(s.TotalSpent)
		ov.TotalPaid = ov.TotalPaid.Add(s.TotalPaid)
		ov.TotalBalanceDue = ov.TotalBalanceDue.Add(s.BalanceDue)
		if s.BalanceDue.IsPositive() {
			ov.StoresWithBalance++
		}
		switch s.PaymentStatus {
		case domain.StandingOverdue:
			ov.OverdueCount++
			ov.OverdueBalanceDue = ov.OverdueBalanceDue.Add(s.BalanceDue)
		case domain.StandingWarning:
			ov.WarningCount++
			ov.WarningBalanceDue = ov.WarningBalanceDue.Add(s.BalanceDue)
		default:
			ov.GoodStandingCount++
		}
	}
	return ov
}
