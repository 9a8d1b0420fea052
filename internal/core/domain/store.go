package domain

// Store is a buyer-side tenant. Only its identity fields are carried through
// payment reports; the aging computation never mutates it.
type Store struct {
	StoreID   string `json:"storeID"` // Primary Key (UUID)
	StoreName string `json:"storeName"`
	OwnerName string `json:"ownerName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	State     string `json:"state"`
	AuditFields
}
