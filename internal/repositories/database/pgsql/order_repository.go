package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/wholesale_payments/internal/apperrors"
	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	portsrepo "github.com/SscSPs/wholesale_payments/internal/core/ports/repositories"
	"github.com/SscSPs/wholesale_payments/internal/models"
	"github.com/SscSPs/wholesale_payments/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

const orderColumns = `order_id, store_id, order_number, total, payment_status, payment_amount, is_delete, created_at, created_by, last_updated_at, last_updated_by`

func scanOrder(row pgx.Row) (models.Order, error) {
	var o models.Order
	err := row.Scan(
		&o.OrderID,
		&o.StoreID,
		&o.OrderNumber,
		&o.Total,
		&o.PaymentStatus,
		&o.PaymentAmount,
		&o.IsDelete,
		&o.CreatedAt,
		&o.CreatedBy,
		&o.LastUpdatedAt,
		&o.LastUpdatedBy,
	)
	return o, err
}

// SaveOrder inserts a new order. The (store_id, order_number) unique index
// surfaces as apperrors.ErrDuplicate.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	m := mapping.ToModelOrder(order)
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.OrderID,
		m.StoreID,
		m.OrderNumber,
		m.Total,
		m.PaymentStatus,
		m.PaymentAmount,
		m.IsDelete,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, fmt.Sprintf("failed to save order %s", m.OrderNumber))
	}
	return nil
}

// FindOrderByID retrieves an order by its ID.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1;`

	m, err := scanOrder(r.Pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order by id %s: %w", orderID, err)
	}

	order := mapping.ToDomainOrder(m)
	return &order, nil
}

// ListOrdersByStore retrieves a store's orders, newest first.
func (r *PgxOrderRepository) ListOrdersByStore(ctx context.Context, storeID string, includeDeleted bool) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE store_id = $1 AND ($2 OR NOT is_delete)
		ORDER BY created_at DESC, order_id;
	`
	return r.queryOrders(ctx, query, storeID, includeDeleted)
}

func (r *PgxOrderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	return queryOrders(ctx, r.Pool, query, args...)
}

func queryOrders(ctx context.Context, q querier, query string, args ...any) ([]domain.Order, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	modelOrders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Order, error) {
		return scanOrder(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan orders: %w", err)
	}

	return mapping.ToDomainOrderSlice(modelOrders), nil
}

// ApplyOrderPayment adds amount to the collected total inside the UPDATE so
// concurrent payments against the same order serialise on the row lock and
// each one sees the amount the previous one wrote. Only a partial order's
// payment_amount counts as already collected.
func (r *PgxOrderRepository) ApplyOrderPayment(ctx context.Context, orderID string, amount decimal.Decimal, updatedAt time.Time, updatedBy string) (*domain.Order, error) {
	query := `
		UPDATE orders
		SET payment_amount = LEAST(
				COALESCE(total, 0),
				CASE WHEN payment_status = 'partial' THEN COALESCE(payment_amount, 0) ELSE 0 END + $2::numeric
			),
			payment_status = CASE
				WHEN CASE WHEN payment_status = 'partial' THEN COALESCE(payment_amount, 0) ELSE 0 END + $2::numeric >= COALESCE(total, 0)
				THEN 'paid'
				ELSE 'partial'
			END,
			last_updated_at = $3,
			last_updated_by = $4
		WHERE order_id = $1 AND NOT is_delete AND payment_status <> 'paid'
		RETURNING ` + orderColumns + `;
	`
	m, err := scanOrder(r.Pool.QueryRow(ctx, query, orderID, amount, updatedAt, updatedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateWriteError(err, fmt.Sprintf("failed to apply payment to order %s", orderID))
	}

	order := mapping.ToDomainOrder(m)
	return &order, nil
}

// MarkOrderDeleted soft-deletes an order.
func (r *PgxOrderRepository) MarkOrderDeleted(ctx context.Context, orderID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE orders
		SET is_delete = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE order_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, orderID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete order %s: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
