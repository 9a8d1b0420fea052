package pagination

import "github.com/SscSPs/wholesale_payments/internal/core/domain"

// Defaults applied when a caller passes a non-positive page or limit.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Normalize clamps page and limit into their valid ranges.
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// TotalPages is ceil(total / limit).
func TotalPages(total, limit int) int {
	if limit < 1 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Slice returns the items on the requested 1-indexed page along with the page
// metadata. A page past the end yields an empty, non-nil slice.
func Slice[T any](items []T, page, limit int) ([]T, domain.PageInfo) {
	page, limit = Normalize(page, limit)
	total := len(items)
	totalPages := TotalPages(total, limit)

	info := domain.PageInfo{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}

	start := (page - 1) * limit
	if start >= total {
		return []T{}, info
	}
	end := start + limit
	if end > total {
		end = total
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, info
}
