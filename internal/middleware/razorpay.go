package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/vulcan/internal/services"
)

// RazorpayWebhookAuth verifies the X-Razorpay-Signature header against the raw
// request body before the webhook handler runs.
func RazorpayWebhookAuth(razorpay *services.RazorpayService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		signature := c.Get("X-Razorpay-Signature")
		if signature == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing webhook signature")
		}

		if !razorpay.VerifyWebhookSignature(c.Body(), signature) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid webhook signature")
		}

		return c.Next()
	}
}
