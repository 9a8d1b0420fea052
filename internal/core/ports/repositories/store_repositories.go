package repositories

import (
	"context"

	"github.com/SscSPs/wholesale_payments/internal/core/domain"
)

// StoreReader defines read operations for store data
type StoreReader interface {
	// FindStoreByID retrieves a specific store by its ID.
	FindStoreByID(ctx context.Context, storeID string) (*domain.Store, error)

	// ListStores retrieves a page of stores ordered by name.
	ListStores(ctx context.Context, limit int, offset int) ([]domain.Store, error)
}

// StoreWriter defines write operations for store data
type StoreWriter interface {
	// SaveStore persists a new store.
	SaveStore(ctx context.Context, store domain.Store) error
}

// StoreRepositoryFacade combines all store-related repository interfaces
type StoreRepositoryFacade interface {
	StoreReader
	StoreWriter
}
