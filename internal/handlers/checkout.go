package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/vulcan/internal/config"
	"github.com/example/vulcan/internal/models"
	"github.com/example/vulcan/internal/services"
)

// CheckoutHandler issues checkout session tokens.
type CheckoutHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(db *gorm.DB, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{db: db, cfg: cfg}
}

type createSessionRequest struct {
	ProductID string `json:"product_id"`
}

// CreateSession binds a checkout attempt to a product with a signed,
// time-bound token. The storefront presents the token back on order creation.
func (h *CheckoutHandler) CreateSession(c *fiber.Ctx) error {
	var req createSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product_id")
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	token, sessionID, err := services.GenerateCheckoutToken(h.cfg.CheckoutSecret, productID, h.cfg.CheckoutTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create checkout session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"session_token": token,
			"session_id":    sessionID,
			"expires_in":    int(h.cfg.CheckoutTTL.Seconds()),
		},
	})
}
