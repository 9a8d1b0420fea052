package dto

import (
	"time"

	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListStorePaymentsParams defines the query parameters of the paginated
// store payment listing.
type ListStorePaymentsParams struct {
	Page  int    `form:"page,default=1" binding:"min=1"`
	Limit int    `form:"limit,default=10" binding:"min=1,max=100"`
	Type  string `form:"type,default=overdue" binding:"standing_status"`
}

// StorePaymentResponse is one store row of the payment listing.
type StorePaymentResponse struct {
	ID                 string          `json:"_id"`
	StoreName          string          `json:"storeName"`
	OwnerName          string          `json:"ownerName"`
	Email              string          `json:"email"`
	Phone              string          `json:"phone"`
	City               string          `json:"city"`
	State              string          `json:"state"`
	TotalOrders        int             `json:"totalOrders"`
	TotalSpent         decimal.Decimal `json:"totalSpent"`
	TotalPaid          decimal.Decimal `json:"totalPaid"`
	BalanceDue         decimal.Decimal `json:"balanceDue"`
	PaidOrdersCount    int             `json:"paidOrdersCount"`
	PartialOrdersCount int             `json:"partialOrdersCount"`
	UnpaidOrdersCount  int             `json:"unpaidOrdersCount"`
	CreditCount        int             `json:"creditCount"`
	PaymentStatus      string          `json:"paymentStatus"`
	OldestUnpaidDays   int             `json:"oldestUnpaidDays"`
}

// PaginationResponse is the pagination block of the payment listing.
type PaginationResponse struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalStores int  `json:"totalStores"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// ListStorePaymentsResponse wraps one page of store payment rows.
type ListStorePaymentsResponse struct {
	Stores     []StorePaymentResponse `json:"stores"`
	Pagination PaginationResponse     `json:"pagination"`
}

// UnpaidOrderResponse is an order still carrying a balance.
type UnpaidOrderResponse struct {
	OrderID   string          `json:"orderID,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	Total     decimal.Decimal `json:"total"`
}

// StorePaymentDetailResponse is the single-store view with its unpaid orders.
type StorePaymentDetailResponse struct {
	StorePaymentResponse
	UnpaidOrders []UnpaidOrderResponse `json:"unpaidOrders"`
}

// PaymentOverviewResponse is the dashboard rollup.
type PaymentOverviewResponse struct {
	TotalStores       int             `json:"totalStores"`
	GoodStandingCount int             `json:"goodStandingCount"`
	WarningCount      int             `json:"warningCount"`
	OverdueCount      int             `json:"overdueCount"`
	StoresWithBalance int             `json:"storesWithBalance"`
	TotalSpent        decimal.Decimal `json:"totalSpent"`
	TotalPaid         decimal.Decimal `json:"totalPaid"`
	TotalBalanceDue   decimal.Decimal `json:"totalBalanceDue"`
	WarningBalanceDue decimal.Decimal `json:"warningBalanceDue"`
	OverdueBalanceDue decimal.Decimal `json:"overdueBalanceDue"`
	GeneratedAt       time.Time       `json:"generatedAt"`
}

// OrderRecordInput is an order snapshot supplied by an external collaborator.
// Numeric fields are lenient; paymentStatus values other than paid/partial
// are read as unpaid.
type OrderRecordInput struct {
	OrderID       string         `json:"_id"`
	Total         FlexibleAmount `json:"total"`
	PaymentStatus string         `json:"paymentStatus"`
	PaymentAmount FlexibleAmount `json:"paymentAmount"`
	CreatedAt     time.Time      `json:"createdAt" binding:"required"`
	IsDelete      bool           `json:"isDelete"`
}

// ClassifyOrdersRequest carries a single account's order snapshots.
type ClassifyOrdersRequest struct {
	// Optional label for the account the snapshot belongs to.
	StoreID string             `json:"storeID"`
	Orders  []OrderRecordInput `json:"orders" binding:"dive"`
}

// ToDomainOrder coerces a boundary record into a domain.Order.
func (in OrderRecordInput) ToDomainOrder() domain.Order {
	status := domain.NormalizeOrderPaymentStatus(in.PaymentStatus)
	amount := decimal.Zero
	if status == domain.OrderPartial {
		amount = in.PaymentAmount.Value
	}
	return domain.Order{
		OrderID:       in.OrderID,
		Total:         in.Total.Value,
		PaymentStatus: status,
		PaymentAmount: amount,
		IsDelete:      in.IsDelete,
		AuditFields:   domain.AuditFields{CreatedAt: in.CreatedAt},
	}
}

// ToDomainOrders coerces every record of the request.
func (r ClassifyOrdersRequest) ToDomainOrders() []domain.Order {
	orders := make([]domain.Order, len(r.Orders))
	for i, in := range r.Orders {
		orders[i] = in.ToDomainOrder()
		orders[i].StoreID = r.StoreID
	}
	return orders
}

// ToStorePaymentResponse converts a classified summary to its row DTO.
func ToStorePaymentResponse(s *domain.StorePaymentSummary) StorePaymentResponse {
	return StorePaymentResponse{
		ID:                 s.StoreID,
		StoreName:          s.StoreName,
		OwnerName:          s.OwnerName,
		Email:              s.Email,
		Phone:              s.Phone,
		City:               s.City,
		State:              s.State,
		TotalOrders:        s.TotalOrders,
		TotalSpent:         s.TotalSpent,
		TotalPaid:          s.TotalPaid,
		BalanceDue:         s.BalanceDue,
		PaidOrdersCount:    s.PaidOrdersCount,
		PartialOrdersCount: s.PartialOrdersCount,
		UnpaidOrdersCount:  s.UnpaidOrdersCount,
		CreditCount:        s.CreditCount,
		PaymentStatus:      string(s.PaymentStatus),
		OldestUnpaidDays:   s.OldestUnpaidDays,
	}
}

// ToStorePaymentDetailResponse includes the unpaid orders, oldest first as stored.
func ToStorePaymentDetailResponse(s *domain.StorePaymentSummary) StorePaymentDetailResponse {
	unpaid := make([]UnpaidOrderResponse, len(s.UnpaidOrders))
	for i, u := range s.UnpaidOrders {
		unpaid[i] = UnpaidOrderResponse{OrderID: u.OrderID, CreatedAt: u.CreatedAt, Total: u.Total}
	}
	return StorePaymentDetailResponse{
		StorePaymentResponse: ToStorePaymentResponse(s),
		UnpaidOrders:         unpaid,
	}
}

// ToListStorePaymentsResponse converts one page of summaries.
func ToListStorePaymentsResponse(page *domain.StorePaymentPage) ListStorePaymentsResponse {
	rows := make([]StorePaymentResponse, len(page.Stores))
	for i := range page.Stores {
		rows[i] = ToStorePaymentResponse(&page.Stores[i])
	}
	return ListStorePaymentsResponse{
		Stores: rows,
		Pagination: PaginationResponse{
			Page:        page.Pagination.Page,
			Limit:       page.Pagination.Limit,
			TotalStores: page.Pagination.Total,
			TotalPages:  page.Pagination.TotalPages,
			HasNextPage: page.Pagination.HasNextPage,
			HasPrevPage: page.Pagination.HasPrevPage,
		},
	}
}

// ToPaymentOverviewResponse converts the dashboard rollup.
func ToPaymentOverviewResponse(ov *domain.PaymentOverview) PaymentOverviewResponse {
	return PaymentOverviewResponse{
		TotalStores:       ov.TotalStores,
		GoodStandingCount: ov.GoodStandingCount,
		WarningCount:      ov.WarningCount,
		OverdueCount:      ov.OverdueCount,
		StoresWithBalance: ov.StoresWithBalance,
		TotalSpent:        ov.TotalSpent,
		TotalPaid:         ov.TotalPaid,
		TotalBalanceDue:   ov.TotalBalanceDue,
		WarningBalanceDue: ov.WarningBalanceDue,
		OverdueBalanceDue: ov.OverdueBalanceDue,
		GeneratedAt:       ov.GeneratedAt,
	}
}
