package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDealKind(t *testing.T) {
	general := &Deal{DealType: DealTypeGeneral, DiscountedPrice: 500}
	kind, ok := general.Kind().(GeneralDeal)
	assert.True(t, ok)
	assert.Equal(t, 500.0, kind.FlatDiscount)

	product := &Deal{DealType: DealTypeProduct, ProductName: "Gate Valve GV-80", MRP: 6000, DiscountedPrice: 5000}
	pkind, ok := product.Kind().(ProductDeal)
	assert.True(t, ok)
	assert.Equal(t, "Gate Valve GV-80", pkind.Name)
	assert.Equal(t, 6000.0, pkind.MRP)
	assert.Equal(t, 5000.0, pkind.SellingPrice)

	// unknown types fall back to a zero general deal
	unknown := &Deal{DealType: "seasonal", DiscountedPrice: 500}
	ukind, ok := unknown.Kind().(GeneralDeal)
	assert.True(t, ok)
	assert.Zero(t, ukind.FlatDiscount)
}

func TestDealDiscount(t *testing.T) {
	tests := []struct {
		name string
		deal Deal
		want float64
	}{
		{"general flat discount", Deal{DealType: DealTypeGeneral, DiscountedPrice: 500}, 500},
		{"general negative clamped", Deal{DealType: DealTypeGeneral, DiscountedPrice: -10}, 0},
		{"product gap to MRP", Deal{DealType: DealTypeProduct, MRP: 6000, DiscountedPrice: 5000}, 1000},
		{"product priced above MRP clamped", Deal{DealType: DealTypeProduct, MRP: 5000, DiscountedPrice: 6000}, 0},
		{"unknown type", Deal{DealType: "seasonal", DiscountedPrice: 500}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.deal.Discount())
		})
	}
}

func TestDealExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	fresh := &Deal{ExpiresAt: now.Add(time.Hour)}
	assert.False(t, fresh.Expired(now))

	stale := &Deal{ExpiresAt: now.Add(-time.Hour)}
	assert.True(t, stale.Expired(now))

	boundary := &Deal{ExpiresAt: now}
	assert.False(t, boundary.Expired(now))
}
