package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/vulcan/internal/models"
)

// OrderRepo answers the order-table questions the checkout flow asks.
type OrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// CouponUsed reports whether the customer already has an order referencing the
// coupon. For product-scoped deals the caller passes the product ID so usage is
// counted per product rather than globally.
func (r *OrderRepo) CouponUsed(ctx context.Context, email, couponCode string, productID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("customer_email = ? AND coupon_code = ?", email, couponCode)
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// NumberExists reports whether an order number is already taken.
func (r *OrderRepo) NumberExists(ctx context.Context, orderNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("order_number = ?", orderNumber).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
