package handlers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/vulcan/internal/models"
	"github.com/example/vulcan/internal/services"
)

// PaymentHandler manages Razorpay payment endpoints.
type PaymentHandler struct {
	db       *gorm.DB
	razorpay *services.RazorpayService
	mailer   *services.Mailer
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(db *gorm.DB, razorpay *services.RazorpayService, mailer *services.Mailer) *PaymentHandler {
	return &PaymentHandler{db: db, razorpay: razorpay, mailer: mailer}
}

type paymentCheckoutRequest struct {
	OrderID string `json:"order_id"`
}

// Checkout creates a Razorpay order for the outstanding amount of an order.
func (h *PaymentHandler) Checkout(c *fiber.Ctx) error {
	if !h.razorpay.Enabled() {
		return fiber.NewError(fiber.StatusServiceUnavailable, "online payments are not configured")
	}

	var req paymentCheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order_id")
	}

	var order models.Order
	if err := h.db.First(&order, "id = ?", orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	if order.PaymentMethod == models.PaymentMethodCOD {
		return fiber.NewError(fiber.StatusBadRequest, "order is cash on delivery")
	}
	if order.PaymentStatus == models.PaymentStatusPaid {
		return fiber.NewError(fiber.StatusConflict, "order is already paid")
	}

	outstanding := order.FinalPrice - order.OnlinePaidAmount
	if outstanding <= 0 {
		return fiber.NewError(fiber.StatusConflict, "nothing left to pay")
	}

	razorpayOrderID, err := h.razorpay.CreatePaymentOrder(outstanding, "INR", order.OrderNumber)
	if err != nil {
		log.Printf("[Payment] razorpay order creation failed for %s: %v", order.OrderNumber, err)
		return fiber.NewError(fiber.StatusBadGateway, "failed to initiate payment")
	}

	txn := models.PaymentTransaction{
		OrderID:         order.ID,
		RazorpayOrderID: razorpayOrderID,
		Amount:          outstanding,
		Currency:        "INR",
		Status:          models.PaymentTxnCreated,
	}
	if err := h.db.Create(&txn).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"razorpay_order_id": razorpayOrderID,
			"amount":            outstanding,
			"currency":          "INR",
		},
	})
}

type paymentVerifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// Verify checks the checkout callback signature and settles the transaction.
func (h *PaymentHandler) Verify(c *fiber.Ctx) error {
	var req paymentVerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing payment fields")
	}

	var txn models.PaymentTransaction
	if err := h.db.Where("razorpay_order_id = ?", req.RazorpayOrderID).First(&txn).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "payment transaction not found")
		}
		return err
	}

	if !h.razorpay.VerifyPaymentSignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		h.db.Model(&txn).Updates(map[string]any{
			"status":         models.PaymentTxnFailed,
			"failure_reason": "signature verification failed",
		})
		return fiber.NewError(fiber.StatusBadRequest, "payment signature verification failed")
	}

	txn.RazorpayPaymentID = req.RazorpayPaymentID
	txn.Signature = req.RazorpaySignature
	txn.Status = models.PaymentTxnCaptured
	if err := h.db.Save(&txn).Error; err != nil {
		return err
	}

	order, err := h.settleCapture(txn)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"order_number":   order.OrderNumber,
			"payment_status": order.PaymentStatus,
		},
	})
}

type webhookPaymentEntity struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
}

type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity webhookPaymentEntity `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// Webhook processes Razorpay webhook events. The signature middleware has
// already authenticated the payload.
func (h *PaymentHandler) Webhook(c *fiber.Ctx) error {
	var event webhookEvent
	if err := json.Unmarshal(c.Body(), &event); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid webhook payload")
	}

	var txn models.PaymentTransaction
	err := h.db.Where("razorpay_order_id = ?", event.Payload.Payment.Entity.OrderID).First(&txn).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// Unknown transaction: acknowledge so Razorpay stops retrying.
			log.Printf("[Payment] webhook for unknown razorpay order %s", event.Payload.Payment.Entity.OrderID)
			return c.JSON(fiber.Map{"success": true})
		}
		return err
	}

	switch event.Event {
	case "payment.captured":
		if txn.Status == models.PaymentTxnCaptured {
			return c.JSON(fiber.Map{"success": true})
		}
		txn.RazorpayPaymentID = event.Payload.Payment.Entity.ID
		txn.Status = models.PaymentTxnCaptured
		if err := h.db.Save(&txn).Error; err != nil {
			return err
		}
		if _, err := h.settleCapture(txn); err != nil {
			return err
		}
	case "payment.failed":
		if err := h.db.Model(&txn).Updates(map[string]any{
			"razorpay_payment_id": event.Payload.Payment.Entity.ID,
			"status":              models.PaymentTxnFailed,
			"failure_reason":      "payment failed at gateway",
		}).Error; err != nil {
			return err
		}
		if err := h.db.Model(&models.Order{}).Where("id = ?", txn.OrderID).
			Update("payment_status", models.PaymentStatusFailed).Error; err != nil {
			return err
		}
	default:
		log.Printf("[Payment] ignoring webhook event %q", event.Event)
	}

	return c.JSON(fiber.Map{"success": true})
}

// settleCapture rolls a captured transaction into its order's payment fields
// and fires the payment-received notification.
func (h *PaymentHandler) settleCapture(txn models.PaymentTransaction) (*models.Order, error) {
	var order models.Order
	if err := h.db.First(&order, "id = ?", txn.OrderID).Error; err != nil {
		return nil, err
	}

	order.OnlinePaidAmount += txn.Amount
	remaining := order.FinalPrice - order.OnlinePaidAmount
	if remaining <= 0 {
		remaining = 0
		order.PaymentStatus = models.PaymentStatusPaid
	} else {
		order.PaymentStatus = models.PaymentStatusPartial
	}
	order.CODAmount = remaining

	if err := h.db.Model(&order).Updates(map[string]any{
		"online_paid_amount": order.OnlinePaidAmount,
		"cod_amount":         order.CODAmount,
		"payment_status":     order.PaymentStatus,
	}).Error; err != nil {
		return nil, err
	}

	go func() {
		if err := h.mailer.SendPaymentReceived(order, txn.Amount); err != nil {
			log.Printf("[Payment] payment email failed for %s: %v", order.OrderNumber, err)
		}
	}()

	return &order, nil
}
