package services

import (
	"context"

	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	"github.com/SscSPs/wholesale_payments/internal/dto"
)

// StoreReaderSvc defines read operations for stores
type StoreReaderSvc interface {
	// GetStoreByID retrieves a specific store by its ID.
	GetStoreByID(ctx context.Context, storeID string) (*domain.Store, error)

	// ListStores retrieves a page of stores.
	ListStores(ctx context.Context, limit int, offset int) ([]domain.Store, error)
}

// StoreWriterSvc defines write operations for stores
type StoreWriterSvc interface {
	// CreateStore registers a new buying store.
	CreateStore(ctx context.Context, req dto.CreateStoreRequest, creatorUserID string) (*domain.Store, error)
}

// StoreSvcFacade combines all store-related service interfaces
type StoreSvcFacade interface {
	StoreReaderSvc
	StoreWriterSvc
}
