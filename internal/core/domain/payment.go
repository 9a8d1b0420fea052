package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// StandingStatus is the aging label assigned to a store's account.
// It is the only vocabulary used by every payment report; the legacy
// dashboard value "good" is not accepted.
type StandingStatus string

const (
	StandingGood    StandingStatus = "good_standing"
	StandingWarning StandingStatus = "warning"
	StandingOverdue StandingStatus = "overdue"
)

// StandingStatuses lists the valid labels in severity order.
var StandingStatuses = []StandingStatus{StandingGood, StandingWarning, StandingOverdue}

// IsValid reports whether s is one of the canonical labels.
func (s StandingStatus) IsValid() bool {
	switch s {
	case StandingGood, StandingWarning, StandingOverdue:
		return true
	}
	return false
}

// ParseStandingStatus converts a query value into a StandingStatus.
func ParseStandingStatus(s string) (StandingStatus, error) {
	status := StandingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown payment status %q", s)
	}
	return status, nil
}

// UnpaidOrder is the slice of an order the aging classifier needs.
type UnpaidOrder struct {
	OrderID   string          `json:"orderID"`
	CreatedAt time.Time       `json:"createdAt"`
	Total     decimal.Decimal `json:"total"`
}

// PaymentTotals are the per-store rollups produced by the order aggregator.
// BalanceDue always equals TotalSpent - TotalPaid and CreditCount always
// equals PartialOrdersCount + UnpaidOrdersCount.
type PaymentTotals struct {
	TotalOrders        int
	TotalSpent         decimal.Decimal
	TotalPaid          decimal.Decimal
	BalanceDue         decimal.Decimal
	PaidOrdersCount    int
	PartialOrdersCount int
	UnpaidOrdersCount  int
	CreditCount        int
	UnpaidOrders       []UnpaidOrder
}

// StorePaymentSummary is a store with its rollups and aging classification.
// It is recomputed on every request and never persisted.
type StorePaymentSummary struct {
	Store
	PaymentTotals
	PaymentStatus    StandingStatus
	OldestUnpaidDays int
}

// StorePaymentPage is one page of classified stores.
type StorePaymentPage struct {
	Stores     []StorePaymentSummary
	Pagination PageInfo
}

// PaymentOverview is the dashboard rollup across every store.
type PaymentOverview struct {
	TotalStores       int
	GoodStandingCount int
	WarningCount      int
	OverdueCount      int
	StoresWithBalance int
	TotalSpent        decimal.Decimal
	TotalPaid         decimal.Decimal
	TotalBalanceDue   decimal.Decimal
	WarningBalanceDue decimal.Decimal
	OverdueBalanceDue decimal.Decimal
	GeneratedAt       time.Time
}
