package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayService wraps the Razorpay SDK for payment-order creation and
// signature verification.
type RazorpayService struct {
	client        *razorpay.Client
	keySecret     string
	webhookSecret string
}

// NewRazorpayService builds a RazorpayService. With empty credentials the
// service is disabled and CreatePaymentOrder fails fast.
func NewRazorpayService(keyID, keySecret, webhookSecret string) *RazorpayService {
	s := &RazorpayService{keySecret: keySecret, webhookSecret: webhookSecret}
	if keyID != "" && keySecret != "" {
		s.client = razorpay.NewClient(keyID, keySecret)
	}
	return s
}

// Enabled reports whether Razorpay credentials are configured.
func (s *RazorpayService) Enabled() bool {
	return s.client != nil
}

// CreatePaymentOrder creates a Razorpay order for the given rupee amount and
// returns the provider's order ID. Razorpay expects amounts in paise.
func (s *RazorpayService) CreatePaymentOrder(amount float64, currency, receipt string) (string, error) {
	if s.client == nil {
		return "", errors.New("razorpay is not configured")
	}
	if currency == "" {
		currency = "INR"
	}

	data := map[string]interface{}{
		"amount":   int64(math.Round(amount * 100)),
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := s.client.Order.Create(data, nil)
	if err != nil {
		return "", err
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", errors.New("razorpay order response missing id")
	}
	return orderID, nil
}

// VerifyPaymentSignature checks the checkout callback signature: an HMAC-SHA256
// of "<order_id>|<payment_id>" under the key secret.
func (s *RazorpayService) VerifyPaymentSignature(razorpayOrderID, razorpayPaymentID, signature string) bool {
	return verifyHMAC([]byte(razorpayOrderID+"|"+razorpayPaymentID), signature, s.keySecret)
}

// VerifyWebhookSignature checks the X-Razorpay-Signature header against the raw
// webhook payload.
func (s *RazorpayService) VerifyWebhookSignature(payload []byte, signature string) bool {
	return verifyHMAC(payload, signature, s.webhookSecret)
}

func verifyHMAC(payload []byte, signature, secret string) bool {
	if secret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
