package mapping

import (
	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	"github.com/SscSPs/wholesale_payments/internal/models"
)

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ToModelStore converts a domain Store to a model Store
func ToModelStore(d domain.Store) models.Store {
	return models.Store{
		StoreID:     d.StoreID,
		StoreName:   d.StoreName,
		OwnerName:   d.OwnerName,
		Email:       d.Email,
		Phone:       nullableString(d.Phone),
		City:        nullableString(d.City),
		State:       nullableString(d.State),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStore converts a model Store to a domain Store
func ToDomainStore(m models.Store) domain.Store {
	return domain.Store{
		StoreID:     m.StoreID,
		StoreName:   m.StoreName,
		OwnerName:   m.OwnerName,
		Email:       m.Email,
		Phone:       derefString(m.Phone),
		City:        derefString(m.City),
		State:       derefString(m.State),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStoreSlice converts a slice of model Stores
func ToDomainStoreSlice(ms []models.Store) []domain.Store {
	ds := make([]domain.Store, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStore(m)
	}
	return ds
}
