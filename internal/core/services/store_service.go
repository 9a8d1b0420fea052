package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/wholesale_payments/internal/apperrors"
	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	portsrepo "github.com/SscSPs/wholesale_payments/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wholesale_payments/internal/core/ports/services"
	"github.com/SscSPs/wholesale_payments/internal/dto"
	"github.com/google/uuid"
)

type storeService struct {
	BaseService
	storeRepo portsrepo.StoreRepositoryFacade
}

// NewStoreService creates a new store service
func NewStoreService(storeRepo portsrepo.StoreRepositoryFacade) portssvc.StoreSvcFacade {
	return &storeService{storeRepo: storeRepo}
}

var _ portssvc.StoreSvcFacade = (*storeService)(nil)

func (s *storeService) CreateStore(ctx context.Context, req dto.CreateStoreRequest, creatorUserID string) (*domain.Store, error) {
	now := time.Now()
	store := domain.Store{
		StoreID:   uuid.NewString(),
		StoreName: strings.TrimSpace(req.StoreName),
		OwnerName: strings.TrimSpace(req.OwnerName),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		City:      strings.TrimSpace(req.City),
		State:     strings.TrimSpace(req.State),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if store.StoreName == "" {
		return nil, apperrors.NewValidationError("store name is required")
	}

	if err := s.storeRepo.SaveStore(ctx, store); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save store", slog.String("store_name", store.StoreName))
		}
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	s.LogInfo(ctx, "Store created", slog.String("store_id", store.StoreID))
	return &store, nil
}

func (s *storeService) GetStoreByID(ctx context.Context, storeID string) (*domain.Store, error) {
	store, err := s.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get store by ID: %w", err)
	}
	return store, nil
}

func (s *storeService) ListStores(ctx context.Context, limit int, offset int) ([]domain.Store, error) {
	stores, err := s.storeRepo.ListStores(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list stores", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	if stores == nil {
		stores = []domain.Store{}
	}
	return stores, nil
}
