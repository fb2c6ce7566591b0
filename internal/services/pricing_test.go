package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeQuote(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice float64
		quantity  int
		discount  float64
		want      Quote
	}{
		{
			name:      "single item below shipping threshold",
			unitPrice: 5000,
			quantity:  1,
			want: Quote{
				TotalPrice:      5000,
				GSTAmount:       900,
				ShippingFee:     1000,
				FinalPrice:      6900,
				PostpaidCharges: 138,
			},
		},
		{
			name:      "two items above shipping threshold",
			unitPrice: 6000,
			quantity:  2,
			want: Quote{
				TotalPrice:      12000,
				GSTAmount:       2160,
				ShippingFee:     5000,
				FinalPrice:      19160,
				PostpaidCharges: 383.2,
			},
		},
		{
			name:      "coupon discount subtracted from final price",
			unitPrice: 5000,
			quantity:  1,
			discount:  500,
			want: Quote{
				TotalPrice:      5000,
				GSTAmount:       900,
				ShippingFee:     1000,
				Discount:        500,
				FinalPrice:      6400,
				PostpaidCharges: 128,
			},
		},
		{
			name:      "negative quantity clamped to zero",
			unitPrice: 5000,
			quantity:  -2,
			want: Quote{
				TotalPrice:      0,
				GSTAmount:       0,
				ShippingFee:     1000,
				FinalPrice:      1000,
				PostpaidCharges: 20,
			},
		},
		{
			name:      "negative discount clamped to zero",
			unitPrice: 5000,
			quantity:  1,
			discount:  -100,
			want: Quote{
				TotalPrice:      5000,
				GSTAmount:       900,
				ShippingFee:     1000,
				FinalPrice:      6900,
				PostpaidCharges: 138,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeQuote(tt.unitPrice, tt.quantity, tt.discount)

			assert.InDelta(t, tt.want.TotalPrice, got.TotalPrice, 0.001)
			assert.InDelta(t, tt.want.GSTAmount, got.GSTAmount, 0.001)
			assert.InDelta(t, tt.want.ShippingFee, got.ShippingFee, 0.001)
			assert.InDelta(t, tt.want.Discount, got.Discount, 0.001)
			assert.InDelta(t, tt.want.FinalPrice, got.FinalPrice, 0.001)
			assert.InDelta(t, tt.want.PostpaidCharges, got.PostpaidCharges, 0.001)
		})
	}
}

func TestShippingFee(t *testing.T) {
	assert.Equal(t, float64(ShippingBelow), ShippingFee(9999.99))
	assert.Equal(t, float64(ShippingAbove), ShippingFee(10000))
	assert.Equal(t, float64(ShippingAbove), ShippingFee(10000.01))
	assert.Equal(t, float64(ShippingBelow), ShippingFee(0))
}

func TestSplitPayment(t *testing.T) {
	q := Quote{FinalPrice: 19160}

	prepaid := SplitPayment(q, "prepaid")
	assert.Zero(t, prepaid.OnlinePaidAmount)
	assert.Zero(t, prepaid.CODAmount)

	cod := SplitPayment(q, "cod")
	assert.Zero(t, cod.OnlinePaidAmount)
	assert.Equal(t, 19160.0, cod.CODAmount)

	partial := SplitPayment(q, "partial")
	assert.Zero(t, partial.OnlinePaidAmount)
	assert.Equal(t, 19160.0, partial.CODAmount)
}
