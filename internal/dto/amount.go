package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// FlexibleAmount accepts a monetary value written as a JSON number, a numeric
// string, or null. Anything that cannot be parsed becomes zero; decoding a
// FlexibleAmount never fails.
type FlexibleAmount struct {
	Value decimal.Decimal
}

// NewFlexibleAmount wraps an existing decimal.
func NewFlexibleAmount(d decimal.Decimal) FlexibleAmount {
	return FlexibleAmount{Value: d}
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *FlexibleAmount) UnmarshalJSON(data []byte) error {
	a.Value = ParseAmount(data)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a FlexibleAmount) MarshalJSON() ([]byte, error) {
	return a.Value.MarshalJSON()
}

// ParseAmount coerces a raw JSON value into a decimal, defaulting to zero.
func ParseAmount(raw []byte) decimal.Decimal {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero
	}

	text := string(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero
		}
		text = strings.TrimSpace(s)
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero
	}
	return d
}
