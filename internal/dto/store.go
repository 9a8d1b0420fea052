package dto

import (
	"time"

	"github.com/SscSPs/wholesale_payments/internal/core/domain"
)

// CreateStoreRequest defines the data needed to register a store.
type CreateStoreRequest struct {
	StoreName string `json:"storeName" binding:"required,max=200"`
	OwnerName string `json:"ownerName" binding:"required,max=200"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"omitempty,max=40"`
	City      string `json:"city" binding:"omitempty,max=100"`
	State     string `json:"state" binding:"omitempty,max=100"`
}

// StoreResponse defines the data returned for a store.
type StoreResponse struct {
	StoreID   string    `json:"storeID"`
	StoreName string    `json:"storeName"`
	OwnerName string    `json:"ownerName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// ListStoresParams defines query parameters for listing stores.
type ListStoresParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListStoresResponse wraps a list of stores.
type ListStoresResponse struct {
	Stores []StoreResponse `json:"stores"`
}

// ToStoreResponse converts a domain.Store to StoreResponse DTO.
func ToStoreResponse(s *domain.Store) StoreResponse {
	return StoreResponse{
		StoreID:   s.StoreID,
		StoreName: s.StoreName,
		OwnerName: s.OwnerName,
		Email:     s.Email,
		Phone:     s.Phone,
		City:      s.City,
		State:     s.State,
		CreatedAt: s.CreatedAt,
		CreatedBy: s.CreatedBy,
	}
}

// ToListStoresResponse converts a slice of domain.Store.
func ToListStoresResponse(stores []domain.Store) ListStoresResponse {
	res := ListStoresResponse{Stores: make([]StoreResponse, len(stores))}
	for i := range stores {
		res.Stores[i] = ToStoreResponse(&stores[i])
	}
	return res
}
