package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/vulcan/internal/models"
	"github.com/example/vulcan/internal/utils"
)

// ProductHandler manages product CRUD.
type ProductHandler struct {
	db *gorm.DB
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// ListProducts returns paginated products with optional filters.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Product{})

	if v := c.Query("category_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			query = query.Where("category_id = ?", id)
		}
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q := "%" + search + "%"
		query = query.Where("name ILIKE ? OR short_description ILIKE ?", q, q)
	}

	if minPrice := c.Query("min_price"); minPrice != "" {
		if val, err := strconv.ParseFloat(minPrice, 64); err == nil {
			query = query.Where("price >= ?", val)
		}
	}

	if maxPrice := c.Query("max_price"); maxPrice != "" {
		if val, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			query = query.Where("price <= ?", val)
		}
	}

	if c.Query("in_stock") == "true" {
		query = query.Where("in_stock = true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var products []models.Product
	if err := query.Preload("Category").
		Limit(pg.Limit).Offset(pg.Offset).
		Order("created_at desc").
		Find(&products).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetProduct loads a product with relations, by ID or slug.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	param := c.Params("id")

	query := h.db.Preload("Category").Preload("Media").Preload("Features")
	var product models.Product
	var err error
	if id, parseErr := uuid.Parse(param); parseErr == nil {
		err = query.First(&product, "id = ?", id).Error
	} else {
		err = query.First(&product, "slug = ?", param).Error
	}

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

type productMediaRequest struct {
	Type         string `json:"type"`
	URL          string `json:"url"`
	AltText      string `json:"alt_text"`
	DisplayOrder int    `json:"display_order"`
}

type productFeatureRequest struct {
	Label        string `json:"label"`
	Value        string `json:"value"`
	DisplayOrder int    `json:"display_order"`
}

type productRequest struct {
	Slug             string                  `json:"slug"`
	Name             string                  `json:"name"`
	ShortDescription string                  `json:"short_description"`
	LongDescription  string                  `json:"long_description"`
	Price            float64                 `json:"price"`
	Currency         string                  `json:"currency"`
	HSNCode          string                  `json:"hsn_code"`
	Manufacturer     string                  `json:"manufacturer"`
	CountryOfOrigin  string                  `json:"country_of_origin"`
	InStock          bool                    `json:"in_stock"`
	HeroImage        string                  `json:"hero_image"`
	CategoryID       string                  `json:"category_id"`
	Media            []productMediaRequest   `json:"media"`
	Features         []productFeatureRequest `json:"features"`
}

func (r *productRequest) toModel() models.Product {
	product := models.Product{
		Slug:             r.Slug,
		Name:             r.Name,
		ShortDescription: r.ShortDescription,
		LongDescription:  r.LongDescription,
		Price:            r.Price,
		Currency:         r.Currency,
		HSNCode:          r.HSNCode,
		Manufacturer:     r.Manufacturer,
		CountryOfOrigin:  r.CountryOfOrigin,
		InStock:          r.InStock,
		HeroImage:        r.HeroImage,
	}

	if product.Currency == "" {
		product.Currency = "INR"
	}

	if r.CategoryID != "" {
		if id, err := uuid.Parse(r.CategoryID); err == nil {
			product.CategoryID = &id
		}
	}

	for _, m := range r.Media {
		product.Media = append(product.Media, models.ProductMedia{
			Type:         m.Type,
			URL:          m.URL,
			AltText:      m.AltText,
			DisplayOrder: m.DisplayOrder,
		})
	}

	for _, f := range r.Features {
		product.Features = append(product.Features, models.ProductFeature{
			Label:        f.Label,
			Value:        f.Value,
			DisplayOrder: f.DisplayOrder,
		})
	}

	return product
}

// CreateProduct persists a new product with its media and features.
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" || req.Slug == "" || req.Price <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "name, slug and a positive price are required")
	}

	product := req.toModel()
	if err := h.db.Create(&product).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": product})
}

// UpdateProduct replaces a product's fields and its child rows.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var existing models.Product
	if err := h.db.First(&existing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product := req.toModel()
	product.ID = existing.ID

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ProductMedia{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.ProductFeature{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&product).Error
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

// DeleteProduct removes a product and its child rows.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ProductMedia{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.ProductFeature{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
	if err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
