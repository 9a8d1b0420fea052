package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	portssvc "github.com/SscSPs/wholesale_payments/internal/core/ports/services"
)

// AgingDigestJob logs a daily summary of store standing: the overview
// counters and the stores with the largest overdue balances.
type AgingDigestJob struct {
	payments portssvc.PaymentReportingSvc
	top      int
	logger   *slog.Logger
}

// NewAgingDigestJob creates a digest job reporting at most top overdue stores.
func NewAgingDigestJob(payments portssvc.PaymentReportingSvc, top int, logger *slog.Logger) *AgingDigestJob {
	if top < 1 {
		top = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AgingDigestJob{payments: payments, top: top, logger: logger}
}

// Run computes and logs one digest. It reads only; nothing is stored.
func (j *AgingDigestJob) Run(ctx context.Context) error {
	overview, err := j.payments.GetPaymentOverview(ctx)
	if err != nil {
		return fmt.Errorf("aging digest overview: %w", err)
	}

	worst, err := j.payments.ListStorePayments(ctx, portssvc.ListStorePaymentsParams{
		Status: domain.StandingOverdue,
		Page:   1,
		Limit:  j.top,
	})
	if err != nil {
		return fmt.Errorf("aging digest overdue stores: %w", err)
	}

	j.logger.Info("Aging digest",
		slog.Int("total_stores", overview.TotalStores),
		slog.Int("good_standing", overview.GoodStandingCount),
		slog.Int("warning", overview.WarningCount),
		slog.Int("overdue", overview.OverdueCount),
		slog.String("total_balance_due", overview.TotalBalanceDue.StringFixed(2)),
		slog.String("warning_balance_due", overview.WarningBalanceDue.StringFixed(2)),
		slog.String("overdue_balance_due", overview.OverdueBalanceDue.StringFixed(2)),
	)

	for i, s := range worst.Stores {
		j.logger.Warn("Overdue store",
			slog.Int("rank", i+1),
			slog.String("store_id", s.StoreID),
			slog.String("store_name", s.StoreName),
			slog.String("balance_due", s.BalanceDue.StringFixed(2)),
			slog.Int("oldest_unpaid_days", s.OldestUnpaidDays),
		)
	}
	return nil
}
