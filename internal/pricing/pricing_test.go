package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		items []LineItem
		want  string
	}{
		{"empty cart", nil, "0"},
		{"single item", []LineItem{{UnitPrice: d("18.00"), Quantity: 2}}, "36.00"},
		{"mixed items", []LineItem{
			{UnitPrice: d("18.00"), Quantity: 1},
			{UnitPrice: d("28.00"), Quantity: 3},
		}, "102.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, Subtotal(tt.items).Equal(d(tt.want)))
		})
	}
}

func TestDiscountAmount(t *testing.T) {
	tests := []struct {
		name         string
		subtotal     string
		discountType string
		value        string
		want         string
	}{
		{"ten percent of fifty", "50.00", DiscountTypePercentage, "10", "5.00"},
		{"percentage rounds half up to cents", "19.99", DiscountTypePercentage, "10", "2.00"},
		{"fixed below subtotal", "50.00", DiscountTypeFixed, "5.00", "5.00"},
		{"fixed capped at subtotal", "10.00", DiscountTypeFixed, "25.00", "10.00"},
		{"unknown type is no discount", "50.00", "bogus", "10", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountAmount(d(tt.subtotal), tt.discountType, d(tt.value))
			require.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestTotalFlooredAtZero(t *testing.T) {
	require.True(t, Total(d("10.00"), d("25.00")).IsZero())
	require.True(t, Total(d("50.00"), d("5.00")).Equal(d("45.00")))
}

func TestPercentageScenario(t *testing.T) {
	subtotal := Subtotal([]LineItem{{UnitPrice: d("19.99"), Quantity: 1}})
	discount := DiscountAmount(subtotal, DiscountTypePercentage, d("10"))
	require.True(t, discount.Equal(d("2.00")))
	require.True(t, Total(subtotal, discount).Equal(d("17.99")))
}

// Same inputs must always yield the same outputs; the calculator holds
// no state.
func TestPure(t *testing.T) {
	items := []LineItem{
		{UnitPrice: d("18.00"), Quantity: 2},
		{UnitPrice: d("38.00"), Quantity: 1},
	}

	first := Total(Subtotal(items), DiscountAmount(Subtotal(items), DiscountTypePercentage, d("10")))
	second := Total(Subtotal(items), DiscountAmount(Subtotal(items), DiscountTypePercentage, d("10")))
	require.True(t, first.Equal(second))
}

func TestMinorUnits(t *testing.T) {
	require.Equal(t, int64(3600), MinorUnits(d("36.00")))
	require.Equal(t, int64(1799), MinorUnits(d("17.99")))
	require.Equal(t, int64(0), MinorUnits(d("0")))
}
