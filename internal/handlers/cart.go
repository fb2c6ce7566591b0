package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/vulcan/internal/models"
)

// CartHandler manages guest carts.
type CartHandler struct {
	db *gorm.DB
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(db *gorm.DB) *CartHandler {
	return &CartHandler{db: db}
}

// CreateCart starts a new guest cart and returns its token.
func (h *CartHandler) CreateCart(c *fiber.Ctx) error {
	cart := models.Cart{Token: uuid.NewString()}
	if err := h.db.Create(&cart).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": cart})
}

// GetCart loads a cart with its items by token.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	cart, err := h.loadCart(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": cart})
}

type cartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// AddItem adds a product to the cart, merging quantities for an existing line.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	cart, err := h.loadCart(c)
	if err != nil {
		return err
	}

	var req cartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Quantity <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "quantity must be positive")
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

	var item models.CartItem
	err = h.db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
	switch {
	case err == nil:
		item.Quantity += req.Quantity
		item.UnitPrice = product.Price
		if err := h.db.Save(&item).Error; err != nil {
			return err
		}
	case err == gorm.ErrRecordNotFound:
		item = models.CartItem{
			CartID:      cart.ID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    req.Quantity,
			UnitPrice:   product.Price,
		}
		if err := h.db.Create(&item).Error; err != nil {
			return err
		}
	default:
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": item})
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem changes a cart line's quantity; zero removes the line.
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	cart, err := h.loadCart(c)
	if err != nil {
		return err
	}

	itemID, err := uuid.Parse(c.Params("itemId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	var req updateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Quantity < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "quantity must not be negative")
	}

	var item models.CartItem
	if err := h.db.First(&item, "id = ? AND cart_id = ?", itemID, cart.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "cart item not found")
		}
		return err
	}

	if req.Quantity == 0 {
		if err := h.db.Delete(&item).Error; err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}

	item.Quantity = req.Quantity
	if err := h.db.Save(&item).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": item})
}

// RemoveItem deletes one line from the cart.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	cart, err := h.loadCart(c)
	if err != nil {
		return err
	}

	itemID, err := uuid.Parse(c.Params("itemId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	if err := h.db.Delete(&models.CartItem{}, "id = ? AND cart_id = ?", itemID, cart.ID).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ClearCart removes every line from the cart.
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	cart, err := h.loadCart(c)
	if err != nil {
		return err
	}

	if err := h.db.Delete(&models.CartItem{}, "cart_id = ?", cart.ID).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CartHandler) loadCart(c *fiber.Ctx) (*models.Cart, error) {
	token := c.Params("token")
	if token == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "cart token is required")
	}

	var cart models.Cart
	if err := h.db.Preload("Items").Where("token = ?", token).First(&cart).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "cart not found")
		}
		return nil, err
	}
	return &cart, nil
}
