package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/vulcan/internal/config"
	"github.com/example/vulcan/internal/models"
	"github.com/example/vulcan/internal/repository"
	"github.com/example/vulcan/internal/services"
	"github.com/example/vulcan/internal/utils"
)

// maxSessionAttempts caps how often one checkout session may retry after
// pending or failed orders before we stop accepting it.
const maxSessionAttempts = 5

// OrderHandler manages order creation and retrieval.
type OrderHandler struct {
	db     *gorm.DB
	cfg    *config.Config
	deals  *services.DealService
	mailer *services.Mailer
	orders *repository.OrderRepo
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB, cfg *config.Config, deals *services.DealService, mailer *services.Mailer) *OrderHandler {
	return &OrderHandler{
		db:     db,
		cfg:    cfg,
		deals:  deals,
		mailer: mailer,
		orders: repository.NewOrderRepo(db),
	}
}

type orderCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type orderAddressRequest struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Billing string `json:"billing"`
}

type createOrderRequest struct {
	SessionToken  string               `json:"sessionToken"`
	Customer      orderCustomerRequest `json:"customer"`
	Shipping      orderAddressRequest  `json:"shipping"`
	Quantity      int                  `json:"quantity"`
	CouponCode    string               `json:"couponCode"`
	PaymentMethod string               `json:"paymentMethod"`
}

// CreateOrder prices and persists a new order for a verified checkout session.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Customer.Name == "" || req.Customer.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "customer name and email are required")
	}
	if req.Quantity <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "quantity must be positive")
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentMethodCOD
	}
	switch paymentMethod {
	case models.PaymentMethodPrepaid, models.PaymentMethodCOD, models.PaymentMethodPartial:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "invalid payment method")
	}

	session, err := services.ParseCheckoutToken(h.cfg.CheckoutSecret, req.SessionToken)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired checkout session")
	}

	// Double-checkout guard: a session that already paid may not order again.
	var settled int64
	if err := h.db.Model(&models.Order{}).
		Where("session_id = ? AND payment_status IN ?", session.SessionID,
			[]string{models.PaymentStatusPaid, models.PaymentStatusPartial}).
		Count(&settled).Error; err != nil {
		return err
	}
	if settled > 0 {
		return fiber.NewError(fiber.StatusConflict, "this checkout session has already been completed")
	}

	// Retry cap for the same session.
	var attempts int64
	if err := h.db.Model(&models.Order{}).
		Where("session_id = ? AND payment_status IN ?", session.SessionID,
			[]string{models.PaymentStatusPending, models.PaymentStatusFailed}).
		Count(&attempts).Error; err != nil {
		return err
	}
	if attempts >= maxSessionAttempts {
		return fiber.NewError(fiber.StatusTooManyRequests, "too many attempts for this checkout session")
	}

	var product models.Product
	if err := h.db.Preload("Category").First(&product, "id = ?", session.ProductID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	var discount float64
	if req.CouponCode != "" {
		result := h.deals.Check(c.Context(), req.CouponCode, product.ID, req.Customer.Email)
		if !result.Valid {
			return fiber.NewError(fiber.StatusBadRequest, result.Message)
		}
		discount = result.Discount
	}

	quote := services.ComputeQuote(product.Price, req.Quantity, discount)
	split := services.SplitPayment(quote, paymentMethod)

	orderNumber, err := services.GenerateOrderNumber(func(candidate string) (bool, error) {
		return h.orders.NumberExists(c.Context(), candidate)
	}, 5)
	if err != nil {
		log.Printf("[Order] order number generation failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to allocate order number")
	}

	categoryName := ""
	if product.Category != nil {
		categoryName = product.Category.Name
	}

	order := models.Order{
		OrderNumber:   orderNumber,
		SessionID:     session.SessionID,
		PlacedAt:      time.Now(),
		Status:        models.OrderStatusPlaced,
		PaymentStatus: models.PaymentStatusPending,
		PaymentMethod: paymentMethod,

		CustomerName:  req.Customer.Name,
		CustomerEmail: req.Customer.Email,
		CustomerPhone: req.Customer.Phone,

		ShippingAddress: req.Shipping.Address,
		ShippingCity:    req.Shipping.City,
		ShippingState:   req.Shipping.State,
		ShippingPincode: req.Shipping.Pincode,
		BillingAddress:  req.Shipping.Billing,

		ProductID:   product.ID,
		ProductName: product.Name,
		Category:    categoryName,
		Quantity:    req.Quantity,
		UnitPrice:   product.Price,

		CouponCode:       req.CouponCode,
		TotalPrice:       quote.TotalPrice,
		GSTAmount:        quote.GSTAmount,
		ShippingFee:      quote.ShippingFee,
		Discount:         quote.Discount,
		PostpaidCharges:  quote.PostpaidCharges,
		FinalPrice:       quote.FinalPrice,
		OnlinePaidAmount: split.OnlinePaidAmount,
		CODAmount:        split.CODAmount,
	}

	if err := h.db.Create(&order).Error; err != nil {
		return err
	}

	go h.notifyOrderPlaced(order)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":           order.ID,
			"order_number": order.OrderNumber,
			"status":       order.Status,
			"placed_at":    order.PlacedAt,
			"final_price":  order.FinalPrice,
		},
	})
}

// notifyOrderPlaced sends confirmation emails. Failures are logged by the
// mailer and never affect the already-persisted order.
func (h *OrderHandler) notifyOrderPlaced(order models.Order) {
	if err := h.mailer.SendOrderConfirmation(order); err != nil {
		log.Printf("[Order] confirmation email failed for %s: %v", order.OrderNumber, err)
	}
	if err := h.mailer.SendAdminOrderAlert(order); err != nil {
		log.Printf("[Order] admin alert failed for %s: %v", order.OrderNumber, err)
	}
}

// GetOrder returns a single order by ID.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var order models.Order
	if err := h.db.First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// GetInvoice renders the order's tax invoice as a PDF download.
func (h *OrderHandler) GetInvoice(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var order models.Order
	if err := h.db.First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	pdf, err := services.RenderInvoice(order)
	if err != nil {
		log.Printf("[Order] invoice render failed for %s: %v", order.OrderNumber, err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render invoice")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, order.OrderNumber))
	return c.Send(pdf)
}

// ListAllOrders returns all orders for the admin dashboard, with filtering.
func (h *OrderHandler) ListAllOrders(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Order{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if ps := c.Query("payment_status"); ps != "" {
		query = query.Where("payment_status = ?", ps)
	}
	if search := c.Query("search"); search != "" {
		q := "%" + search + "%"
		query = query.Where(
			"order_number ILIKE ? OR customer_email ILIKE ? OR customer_name ILIKE ?",
			q, q, q,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := query.Order("placed_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    orders,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

type updateOrderStatusRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// UpdateOrderStatus lets an admin advance an order's status or payment status.
// Monetary fields are immutable once created.
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var order models.Order
	if err := h.db.First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	var req updateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]any{}
	if req.Status != "" {
		switch req.Status {
		case models.OrderStatusPlaced, models.OrderStatusConfirmed, models.OrderStatusShipped,
			models.OrderStatusDelivered, models.OrderStatusCancelled:
			updates["status"] = req.Status
		default:
			return fiber.NewError(fiber.StatusBadRequest, "invalid status")
		}
	}
	if req.PaymentStatus != "" {
		switch req.PaymentStatus {
		case models.PaymentStatusPending, models.PaymentStatusPaid,
			models.PaymentStatusPartial, models.PaymentStatusFailed:
			updates["payment_status"] = req.PaymentStatus
		default:
			return fiber.NewError(fiber.StatusBadRequest, "invalid payment status")
		}
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "nothing to update")
	}

	if err := h.db.Model(&order).Updates(updates).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}
