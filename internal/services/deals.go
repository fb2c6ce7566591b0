package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/example/vulcan/internal/models"
)

// Stores required by the deal service. Interfaces so tests can mock them.
type DealStore interface {
	GetByCode(ctx context.Context, code string) (*models.Deal, error)
}

type ProductStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type UsageStore interface {
	CouponUsed(ctx context.Context, email, couponCode string, productID *uuid.UUID) (bool, error)
}

// DealCheckResult is the always-resolved outcome of a coupon check. An invalid
// coupon is a normal result, not an error.
type DealCheckResult struct {
	Valid    bool    `json:"valid"`
	Message  string  `json:"message"`
	Discount float64 `json:"discount"`
}

// DealService validates coupon codes against deals, products, and prior usage.
type DealService struct {
	deals    DealStore
	products ProductStore
	usage    UsageStore
	cache    *gocache.Cache
	now      func() time.Time
}

// NewDealService constructs a DealService with a short-lived deal cache.
func NewDealService(deals DealStore, products ProductStore, usage UsageStore) *DealService {
	return &DealService{
		deals:    deals,
		products: products,
		usage:    usage,
		cache:    gocache.New(2*time.Minute, 5*time.Minute),
		now:      time.Now,
	}
}

// Check validates a coupon for a product and customer and computes the
// discount. Each step short-circuits; store errors are logged and reported as a
// generic failure so the caller never sees an unhandled error.
func (s *DealService) Check(ctx context.Context, couponCode string, productID uuid.UUID, email string) DealCheckResult {
	deal, err := s.lookupDeal(ctx, couponCode)
	if err != nil {
		log.Printf("[Deals] coupon lookup failed for %q: %v", couponCode, err)
		return DealCheckResult{Valid: false, Message: "Unable to validate coupon, please try again", Discount: 0}
	}
	if deal == nil {
		return DealCheckResult{Valid: false, Message: "Invalid coupon code", Discount: 0}
	}

	usageProductID := (*uuid.UUID)(nil)

	if kind, ok := deal.Kind().(models.ProductDeal); ok && kind.Name != "" {
		product, err := s.products.GetByID(ctx, productID)
		if err != nil {
			log.Printf("[Deals] product lookup failed for %s: %v", productID, err)
			return DealCheckResult{Valid: false, Message: "Unable to validate coupon, please try again", Discount: 0}
		}
		if product == nil || product.Name != kind.Name {
			return DealCheckResult{
				Valid:   false,
				Message: fmt.Sprintf("This coupon is only valid for %s", kind.Name),
			}
		}
		usageProductID = &productID
	}

	if deal.Expired(s.now()) {
		return DealCheckResult{Valid: false, Message: "This coupon has expired", Discount: 0}
	}

	used, err := s.usage.CouponUsed(ctx, email, deal.CouponCode, usageProductID)
	if err != nil {
		log.Printf("[Deals] usage check failed for %q / %s: %v", couponCode, email, err)
		return DealCheckResult{Valid: false, Message: "Unable to validate coupon, please try again", Discount: 0}
	}
	if used {
		if usageProductID != nil {
			return DealCheckResult{Valid: false, Message: "You have already availed this deal for this product"}
		}
		return DealCheckResult{Valid: false, Message: "You have already availed this coupon"}
	}

	return DealCheckResult{
		Valid:    true,
		Message:  "Coupon applied",
		Discount: deal.Discount(),
	}
}

// Invalidate drops a coupon from the cache. Called by the admin CRUD handlers
// so edits take effect immediately.
func (s *DealService) Invalidate(couponCode string) {
	s.cache.Delete(couponCode)
}

func (s *DealService) lookupDeal(ctx context.Context, couponCode string) (*models.Deal, error) {
	if cached, ok := s.cache.Get(couponCode); ok {
		return cached.(*models.Deal), nil
	}

	deal, err := s.deals.GetByCode(ctx, couponCode)
	if err != nil {
		return nil, err
	}
	if deal != nil {
		s.cache.SetDefault(couponCode, deal)
	}
	return deal, nil
}
