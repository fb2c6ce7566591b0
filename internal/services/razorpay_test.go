package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signHMAC(payload, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaymentSignature(t *testing.T) {
	svc := NewRazorpayService("key_id", "key_secret", "webhook_secret")

	valid := signHMAC("order_abc|pay_xyz", "key_secret")
	assert.True(t, svc.VerifyPaymentSignature("order_abc", "pay_xyz", valid))

	assert.False(t, svc.VerifyPaymentSignature("order_abc", "pay_xyz", "deadbeef"))
	assert.False(t, svc.VerifyPaymentSignature("order_other", "pay_xyz", valid))
	assert.False(t, svc.VerifyPaymentSignature("order_abc", "pay_xyz", ""))
}

func TestVerifyWebhookSignature(t *testing.T) {
	svc := NewRazorpayService("key_id", "key_secret", "webhook_secret")
	payload := []byte(`{"event":"payment.captured"}`)

	valid := signHMAC(string(payload), "webhook_secret")
	assert.True(t, svc.VerifyWebhookSignature(payload, valid))
	assert.False(t, svc.VerifyWebhookSignature([]byte(`{"event":"tampered"}`), valid))
	assert.False(t, svc.VerifyWebhookSignature(payload, ""))
}

func TestVerifyHMACNoSecret(t *testing.T) {
	svc := NewRazorpayService("", "", "")
	sig := signHMAC("order_abc|pay_xyz", "")
	assert.False(t, svc.VerifyPaymentSignature("order_abc", "pay_xyz", sig))
}

func TestRazorpayEnabled(t *testing.T) {
	assert.True(t, NewRazorpayService("key_id", "key_secret", "").Enabled())
	assert.False(t, NewRazorpayService("", "", "").Enabled())
	assert.False(t, NewRazorpayService("key_id", "", "").Enabled())
}
