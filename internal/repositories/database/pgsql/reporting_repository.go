package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/wholesale_payments/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingReader {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingReader = (*PgxReportingRepository)(nil)

// snapshotTxOptions gives both report queries the same view of the data.
var snapshotTxOptions = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

// LoadPaymentSnapshot reads stores and live orders in one read-only
// repeatable-read transaction.
func (r *PgxReportingRepository) LoadPaymentSnapshot(ctx context.Context) (*portsrepo.PaymentSnapshot, error) {
	tx, err := r.Pool.BeginTx(ctx, snapshotTxOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to begin report snapshot: %w", err)
	}
	// Read-only; rollback only releases the snapshot.
	defer func() { _ = tx.Rollback(ctx) }()

	stores, err := queryStores(ctx, tx, `SELECT `+storeColumns+` FROM stores ORDER BY store_id;`)
	if err != nil {
		return nil, err
	}

	orders, err := queryOrders(ctx, tx, `SELECT `+orderColumns+` FROM orders WHERE NOT is_delete;`)
	if err != nil {
		return nil, err
	}

	return &portsrepo.PaymentSnapshot{Stores: stores, Orders: orders}, nil
}
