package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/vulcan/internal/models"
	"github.com/example/vulcan/internal/services"
	"github.com/example/vulcan/internal/utils"
)

// DealHandler manages deals: admin CRUD, the storefront carousel listing, and
// pre-checkout coupon validation.
type DealHandler struct {
	db    *gorm.DB
	deals *services.DealService
}

// NewDealHandler constructs DealHandler.
func NewDealHandler(db *gorm.DB, deals *services.DealService) *DealHandler {
	return &DealHandler{db: db, deals: deals}
}

// ListDeals returns all deals for the admin dashboard.
func (h *DealHandler) ListDeals(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	var total int64
	if err := h.db.Model(&models.Deal{}).Count(&total).Error; err != nil {
		return err
	}

	var deals []models.Deal
	if err := h.db.Limit(pg.Limit).Offset(pg.Offset).
		Order("created_at desc").Find(&deals).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    deals,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// ListActiveDeals returns unexpired deals for the storefront carousel.
func (h *DealHandler) ListActiveDeals(c *fiber.Ctx) error {
	var deals []models.Deal
	if err := h.db.Where("expires_at > ?", time.Now()).
		Order("expires_at asc").Find(&deals).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": deals})
}

// GetDeal returns a single deal by ID.
func (h *DealHandler) GetDeal(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var deal models.Deal
	if err := h.db.First(&deal, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "deal not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": deal})
}

type dealRequest struct {
	Title           string    `json:"title"`
	DealType        string    `json:"deal_type"`
	ProductName     string    `json:"product_name"`
	MRP             float64   `json:"mrp"`
	DiscountedPrice float64   `json:"discounted_price"`
	CouponCode      string    `json:"coupon_code"`
	Image           string    `json:"image"`
	ExpiresAt       time.Time `json:"expires_at"`
}

func (r *dealRequest) validate() error {
	if r.CouponCode == "" {
		return fiber.NewError(fiber.StatusBadRequest, "coupon_code is required")
	}
	switch r.DealType {
	case models.DealTypeGeneral:
	case models.DealTypeProduct:
		if r.ProductName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "product_name is required for product deals")
		}
	default:
		return fiber.NewError(fiber.StatusBadRequest, "deal_type must be general or product")
	}
	if r.ExpiresAt.IsZero() {
		return fiber.NewError(fiber.StatusBadRequest, "expires_at is required")
	}
	return nil
}

// CreateDeal persists a new deal. Coupon codes are unique.
func (h *DealHandler) CreateDeal(c *fiber.Ctx) error {
	var req dealRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.validate(); err != nil {
		return err
	}

	var existing models.Deal
	if err := h.db.Where("coupon_code = ?", req.CouponCode).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusConflict, "coupon code already in use")
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	deal := models.Deal{
		Title:           req.Title,
		DealType:        req.DealType,
		ProductName:     req.ProductName,
		MRP:             req.MRP,
		DiscountedPrice: req.DiscountedPrice,
		CouponCode:      req.CouponCode,
		Image:           req.Image,
		ExpiresAt:       req.ExpiresAt,
	}

	if err := h.db.Create(&deal).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": deal})
}

// UpdateDeal updates an existing deal and drops it from the validation cache.
func (h *DealHandler) UpdateDeal(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var deal models.Deal
	if err := h.db.First(&deal, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "deal not found")
		}
		return err
	}

	var req dealRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.validate(); err != nil {
		return err
	}

	oldCode := deal.CouponCode

	deal.Title = req.Title
	deal.DealType = req.DealType
	deal.ProductName = req.ProductName
	deal.MRP = req.MRP
	deal.DiscountedPrice = req.DiscountedPrice
	deal.CouponCode = req.CouponCode
	deal.Image = req.Image
	deal.ExpiresAt = req.ExpiresAt

	if err := h.db.Save(&deal).Error; err != nil {
		return err
	}

	h.deals.Invalidate(oldCode)
	h.deals.Invalidate(deal.CouponCode)

	return c.JSON(fiber.Map{"success": true, "data": deal})
}

// DeleteDeal removes a deal and drops it from the validation cache.
func (h *DealHandler) DeleteDeal(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var deal models.Deal
	if err := h.db.First(&deal, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return err
	}

	if err := h.db.Delete(&deal).Error; err != nil {
		return err
	}

	h.deals.Invalidate(deal.CouponCode)
	return c.SendStatus(fiber.StatusNoContent)
}

type validateDealRequest struct {
	CouponCode string `json:"couponCode"`
	ProductID  string `json:"productId"`
	Email      string `json:"email"`
}

// ValidateDeal checks a coupon for the storefront before checkout. The result
// is always 200 with a {valid, message, discount} body; an invalid coupon is a
// normal outcome, not an error.
func (h *DealHandler) ValidateDeal(c *fiber.Ctx) error {
	var req validateDealRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.CouponCode == "" || req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "couponCode and email are required")
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid productId")
	}

	result := h.deals.Check(c.Context(), req.CouponCode, productID, req.Email)
	return c.JSON(result)
}
