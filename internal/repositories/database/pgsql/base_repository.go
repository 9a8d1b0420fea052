package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/wholesale_payments/internal/apperrors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// translateWriteError maps constraint violations onto application errors.
func translateWriteError(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%s: %w", what, apperrors.ErrDuplicate)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%s: %w", what, apperrors.ErrNotFound)
		case pgerrcode.CheckViolation:
			return fmt.Errorf("%s: %w", what, apperrors.ErrValidation)
		}
	}
	return fmt.Errorf("%s: %w", what, err)
}
