package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	"github.com/SscSPs/wholesale_payments/internal/dto"
	"github.com/SscSPs/wholesale_payments/internal/utils/aging"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyOrdersRequest_StatusCaseVariantsAreUnpaid(t *testing.T) {
	body := `{"orders": [
		{"total": 100, "paymentStatus": "PAID", "createdAt": "2024-01-01T00:00:00Z"},
		{"total": 50, "paymentStatus": " Partial ", "paymentAmount": "50", "createdAt": "2024-01-01T00:00:00Z"}
	]}`
	var req dto.ClassifyOrdersRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	orders := req.ToDomainOrders()
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, domain.OrderUnpaid, o.PaymentStatus)
		assert.True(t, o.PaymentAmount.IsZero())
	}

	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	got := aging.Summarize(domain.Store{}, orders, now)

	assert.True(t, got.TotalPaid.IsZero())
	assert.True(t, decimal.NewFromInt(150).Equal(got.BalanceDue))
	assert.Equal(t, 2, got.CreditCount)
	assert.Equal(t, 60, got.OldestUnpaidDays)
	assert.Equal(t, domain.StandingOverdue, got.PaymentStatus)
}

func TestClassifyOrdersRequest_CanonicalStatuses(t *testing.T) {
	body := `{"storeID": "s9", "orders": [
		{"total": 100, "paymentStatus": "paid", "createdAt": "2024-01-01T00:00:00Z"},
		{"total": 50, "paymentStatus": "partial", "paymentAmount": "20", "createdAt": "2024-01-01T00:00:00Z"}
	]}`
	var req dto.ClassifyOrdersRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	orders := req.ToDomainOrders()
	assert.Equal(t, domain.OrderPaid, orders[0].PaymentStatus)
	assert.Equal(t, domain.OrderPartial, orders[1].PaymentStatus)
	assert.True(t, decimal.NewFromInt(20).Equal(orders[1].PaymentAmount))
	assert.Equal(t, "s9", orders[1].StoreID)
}
