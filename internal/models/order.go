package models

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses.
const (
	OrderStatusPlaced    = "placed"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Payment statuses.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusPartial = "partial"
	PaymentStatusFailed  = "failed"
)

// Payment methods.
const (
	PaymentMethodPrepaid = "prepaid"
	PaymentMethodCOD     = "cod"
	PaymentMethodPartial = "partial"
)

// Order is a snapshot of one purchase: a single product line plus the monetary
// breakdown computed at checkout. Monetary fields are never recomputed after
// creation; admins only ever touch Status and PaymentStatus.
type Order struct {
	BaseModel
	OrderNumber   string    `gorm:"uniqueIndex" json:"order_number"`
	SessionID     string    `gorm:"index" json:"session_id"`
	PlacedAt      time.Time `json:"placed_at"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	PaymentMethod string    `json:"payment_method"`

	CustomerName  string `json:"customer_name"`
	CustomerEmail string `gorm:"index" json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`

	ShippingAddress string `json:"shipping_address"`
	ShippingCity    string `json:"shipping_city"`
	ShippingState   string `json:"shipping_state"`
	ShippingPincode string `json:"shipping_pincode"`
	BillingAddress  string `json:"billing_address"`

	ProductID   uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	ProductName string    `json:"product_name"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`

	CouponCode       string  `gorm:"index" json:"coupon_code"`
	TotalPrice       float64 `json:"total_price"`
	GSTAmount        float64 `json:"gst_amount"`
	ShippingFee      float64 `json:"shipping_fee"`
	Discount         float64 `json:"discount"`
	PostpaidCharges  float64 `json:"postpaid_charges"`
	FinalPrice       float64 `json:"final_price"`
	OnlinePaidAmount float64 `json:"online_paid_amount"`
	CODAmount        float64 `json:"cod_amount"`
}
