package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/example/vulcan/internal/models"
)

// DealRepo loads deals from postgres.
type DealRepo struct {
	db *gorm.DB
}

func NewDealRepo(db *gorm.DB) *DealRepo {
	return &DealRepo{db: db}
}

// GetByCode returns the deal for a coupon code, or nil when no such deal exists.
func (r *DealRepo) GetByCode(ctx context.Context, code string) (*models.Deal, error) {
	var deal models.Deal
	err := r.db.WithContext(ctx).Where("coupon_code = ?", code).First(&deal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &deal, nil
}
