package models

import (
	"github.com/google/uuid"
)

// Razorpay payment transaction states.
const (
	PaymentTxnCreated    = "created"
	PaymentTxnAuthorized = "authorized"
	PaymentTxnCaptured   = "captured"
	PaymentTxnFailed     = "failed"
)

// PaymentTransaction records the lifecycle of a Razorpay payment attempt
// against an order.
type PaymentTransaction struct {
	BaseModel
	OrderID           uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
	RazorpayOrderID   string    `gorm:"index" json:"razorpay_order_id"`
	RazorpayPaymentID string    `json:"razorpay_payment_id"`
	Signature         string    `json:"-"`
	Amount            float64   `json:"amount"`
	Currency          string    `json:"currency"`
	Status            string    `json:"status"`
	FailureReason     string    `json:"failure_reason"`
}
