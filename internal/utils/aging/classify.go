package aging

import (
	"time"

	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Clock returns the current time.
type Clock func() time.Time

// Aging thresholds in whole days. Both are exclusive: an account whose oldest
// unpaid order is exactly WarningAfterDays old is still in good standing.
const (
	WarningAfterDays = 14
	OverdueAfterDays = 30
)

const day = 24 * time.Hour

// Classify assigns a standing status from the balance due and the unpaid
// orders, returning the status and the age in whole days of the oldest
// unpaid order.
func Classify(balanceDue decimal.Decimal, unpaid []domain.UnpaidOrder, now time.Time) (domain.StandingStatus, int) {
	if !balanceDue.IsPositive() || len(unpaid) == 0 {
		return domain.StandingGood, 0
	}

	oldest := unpaid[0].CreatedAt
	for _, u := range unpaid[1:] {
		if u.CreatedAt.Before(oldest) {
			oldest = u.CreatedAt
		}
	}

	days := elapsedDays(oldest, now)
	switch {
	case days > OverdueAfterDays:
		return domain.StandingOverdue, days
	case days > WarningAfterDays:
		return domain.StandingWarning, days
	default:
		return domain.StandingGood, days
	}
}

// elapsedDays is floor((to - from) / 24h), also for negative spans.
func elapsedDays(from, to time.Time) int {
	d := to.Sub(from)
	days := d / day
	if d%day < 0 {
		days--
	}
	return int(days)
}
