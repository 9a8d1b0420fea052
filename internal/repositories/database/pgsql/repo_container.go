package pgsql

import (
	portsrepo "github.com/SscSPs/wholesale_payments/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		StoreRepo:     newPgxStoreRepository(dbPool),
		OrderRepo:     newPgxOrderRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
		ReportingRepo: newPgxReportingRepository(dbPool),
	}
}
