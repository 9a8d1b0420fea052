package models

// Store is the row shape of the stores table.
type Store struct {
	StoreID   string  `db:"store_id"`
	StoreName string  `db:"store_name"`
	OwnerName string  `db:"owner_name"`
	Email     string  `db:"email"`
	Phone     *string `db:"phone"` // Nullable
	City      *string `db:"city"`  // Nullable
	State     *string `db:"state"` // Nullable
	AuditFields
}
