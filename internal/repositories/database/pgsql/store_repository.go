package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/wholesale_payments/internal/apperrors"
	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	portsrepo "github.com/SscSPs/wholesale_payments/internal/core/ports/repositories"
	"github.com/SscSPs/wholesale_payments/internal/models"
	"github.com/SscSPs/wholesale_payments/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStoreRepository struct {
	BaseRepository
}

func newPgxStoreRepository(pool *pgxpool.Pool) portsrepo.StoreRepositoryFacade {
	return &PgxStoreRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.StoreRepositoryFacade = (*PgxStoreRepository)(nil)

const storeColumns = `store_id, store_name, owner_name, email, phone, city, state, created_at, created_by, last_updated_at, last_updated_by`

func scanStore(row pgx.Row) (models.Store, error) {
	var s models.Store
	err := row.Scan(
		&s.StoreID,
		&s.StoreName,
		&s.OwnerName,
		&s.Email,
		&s.Phone,
		&s.City,
		&s.State,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

// SaveStore inserts a new store.
func (r *PgxStoreRepository) SaveStore(ctx context.Context, store domain.Store) error {
	m := mapping.ToModelStore(store)
	query := `
		INSERT INTO stores (` + storeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.StoreID,
		m.StoreName,
		m.OwnerName,
		m.Email,
		m.Phone,
		m.City,
		m.State,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, fmt.Sprintf("failed to save store %s", m.StoreID))
	}
	return nil
}

// FindStoreByID retrieves a store by its ID.
func (r *PgxStoreRepository) FindStoreByID(ctx context.Context, storeID string) (*domain.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE store_id = $1;`

	m, err := scanStore(r.Pool.QueryRow(ctx, query, storeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find store by id %s: %w", storeID, err)
	}

	store := mapping.ToDomainStore(m)
	return &store, nil
}

// ListStores retrieves a page of stores ordered by name.
func (r *PgxStoreRepository) ListStores(ctx context.Context, limit int, offset int) ([]domain.Store, error) {
	query := `
		SELECT ` + storeColumns + `
		FROM stores
		ORDER BY store_name, store_id
		LIMIT $1 OFFSET $2;
	`
	return r.queryStores(ctx, query, limit, offset)
}

func (r *PgxStoreRepository) queryStores(ctx context.Context, query string, args ...any) ([]domain.Store, error) {
	return queryStores(ctx, r.Pool, query, args...)
}

func queryStores(ctx context.Context, q querier, query string, args ...any) ([]domain.Store, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}
	defer rows.Close()

	modelStores, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Store, error) {
		return scanStore(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan stores: %w", err)
	}

	return mapping.ToDomainStoreSlice(modelStores), nil
}
