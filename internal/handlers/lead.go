package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/vulcan/internal/models"
	"github.com/example/vulcan/internal/utils"
)

// LeadHandler captures contact-form submissions and lists them for admins.
type LeadHandler struct {
	db *gorm.DB
}

// NewLeadHandler constructs LeadHandler.
func NewLeadHandler(db *gorm.DB) *LeadHandler {
	return &LeadHandler{db: db}
}

type leadRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

// CreateLead stores an inbound lead.
func (h *LeadHandler) CreateLead(c *fiber.Ctx) error {
	var req leadRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" || (req.Email == "" && req.Phone == "") {
		return fiber.NewError(fiber.StatusBadRequest, "name and an email or phone are required")
	}

	lead := models.Lead{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Source:  req.Source,
	}

	if err := h.db.Create(&lead).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": lead})
}

// ListLeads returns leads for the admin dashboard with search and pagination.
func (h *LeadHandler) ListLeads(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Lead{})

	if search := c.Query("search"); search != "" {
		q := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", q, q, q)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var leads []models.Lead
	if err := query.Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&leads).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    leads,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}
