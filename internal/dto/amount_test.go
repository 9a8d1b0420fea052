package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`80`, "80"},
		{`"80"`, "80"},
		{`" 12.50 "`, "12.5"},
		{`199.99`, "199.99"},
		{`null`, "0"},
		{``, "0"},
		{`"abc"`, "0"},
		{`""`, "0"},
		{`true`, "0"},
		{`{"x":1}`, "0"},
		{`"1e2"`, "100"},
	}
	for _, tt := range tests {
		got := ParseAmount([]byte(tt.raw))
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "raw %q: got %s want %s", tt.raw, got, tt.want)
	}
}

func TestOrderRecordInput_StringPaymentAmount(t *testing.T) {
	body := `{"orders":[{"total":200,"paymentStatus":"partial","paymentAmount":"80","createdAt":"2024-03-01T00:00:00Z"}]}`

	var req ClassifyOrdersRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	orders := req.ToDomainOrders()

	require.Len(t, orders, 1)
	assert.Equal(t, domain.OrderPartial, orders[0].PaymentStatus)
	assert.True(t, decimal.NewFromInt(200).Equal(orders[0].Total))
	assert.True(t, decimal.NewFromInt(80).Equal(orders[0].PaymentAmount))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), orders[0].CreatedAt)
}

func TestOrderRecordInput_Lenient(t *testing.T) {
	body := `{"total":null,"paymentStatus":"PENDING","paymentAmount":"12","createdAt":"2024-03-01T00:00:00Z","isDelete":true}`

	var in OrderRecordInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	o := in.ToDomainOrder()

	assert.True(t, o.Total.IsZero())
	assert.Equal(t, domain.OrderUnpaid, o.PaymentStatus)
	assert.True(t, o.PaymentAmount.IsZero(), "payment amount only counts for partial orders")
	assert.True(t, o.IsDelete)
}

func TestFlexibleAmount_MarshalRoundTrip(t *testing.T) {
	out, err := json.Marshal(struct {
		A FlexibleAmount `json:"a"`
	}{A: NewFlexibleAmount(decimal.RequireFromString("12.34"))})
	require.NoError(t, err)

	var back struct {
		A FlexibleAmount `json:"a"`
	}
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, decimal.RequireFromString("12.34").Equal(back.A.Value))
}
