package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/example/vulcan/internal/models"
)

func TestRenderInvoice(t *testing.T) {
	order := models.Order{
		OrderNumber:     "ORD-A1B2C3D4E5",
		PlacedAt:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Status:          models.OrderStatusPlaced,
		PaymentStatus:   models.PaymentStatusPending,
		PaymentMethod:   models.PaymentMethodCOD,
		CustomerName:    "Asha Patel",
		CustomerEmail:   "asha@example.com",
		CustomerPhone:   "9876543210",
		ShippingAddress: "14 MG Road",
		ShippingCity:    "Pune",
		ShippingState:   "MH",
		ShippingPincode: "411001",
		ProductName:     "Centrifugal Pump CP-200",
		Quantity:        2,
		UnitPrice:       6000,
		CouponCode:      "FLAT500",
		TotalPrice:      12000,
		GSTAmount:       2160,
		ShippingFee:     5000,
		Discount:        500,
		PostpaidCharges: 373.2,
		FinalPrice:      18660,
	}

	pdf, err := RenderInvoice(order)
	assert.NoError(t, err)
	assert.True(t, len(pdf) > 4)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
