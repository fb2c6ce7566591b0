package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/example/vulcan/internal/models"
)

type mockDealStore struct {
	mock.Mock
}

func (m *mockDealStore) GetByCode(ctx context.Context, code string) (*models.Deal, error) {
	args := m.Called(ctx, code)
	deal, _ := args.Get(0).(*models.Deal)
	return deal, args.Error(1)
}

type mockProductStore struct {
	mock.Mock
}

func (m *mockProductStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

type mockUsageStore struct {
	mock.Mock
}

func (m *mockUsageStore) CouponUsed(ctx context.Context, email, couponCode string, productID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, couponCode, productID)
	return args.Bool(0), args.Error(1)
}

func newTestDealService(deals DealStore, products ProductStore, usage UsageStore, now time.Time) *DealService {
	svc := NewDealService(deals, products, usage)
	svc.now = func() time.Time { return now }
	return svc
}

func TestDealServiceCheck(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	productID := uuid.New()

	generalDeal := &models.Deal{
		Title:           "Festive flat off",
		DealType:        models.DealTypeGeneral,
		DiscountedPrice: 500,
		CouponCode:      "FLAT500",
		ExpiresAt:       now.Add(24 * time.Hour),
	}
	productDeal := &models.Deal{
		Title:           "Pump special",
		DealType:        models.DealTypeProduct,
		ProductName:     "Centrifugal Pump CP-200",
		MRP:             6000,
		DiscountedPrice: 5000,
		CouponCode:      "PUMP1000",
		ExpiresAt:       now.Add(24 * time.Hour),
	}

	t.Run("unknown coupon code", func(t *testing.T) {
		deals := new(mockDealStore)
		deals.On("GetByCode", mock.Anything, "NOPE").Return(nil, nil)

		svc := newTestDealService(deals, new(mockProductStore), new(mockUsageStore), now)
		result := svc.Check(context.Background(), "NOPE", productID, "a@b.com")

		assert.False(t, result.Valid)
		assert.Equal(t, "Invalid coupon code", result.Message)
		assert.Zero(t, result.Discount)
	})

	t.Run("deal store error reported as generic failure", func(t *testing.T) {
		deals := new(mockDealStore)
		deals.On("GetByCode", mock.Anything, "FLAT500").Return(nil, errors.New("connection reset"))

		svc := newTestDealService(deals, new(mockProductStore), new(mockUsageStore), now)
		result := svc.Check(context.Background(), "FLAT500", productID, "a@b.com")

		assert.False(t, result.Valid)
		assert.Equal(t, "Unable to validate coupon, please try again", result.Message)
	})

	t.Run("product deal applied to wrong product", func(t *testing.T) {
		deals := new(mockDealStore)
		deals.On("GetByCode", mock.Anything, "PUMP1000").Return(productDeal, nil)
		products := new(mockProductStore)
		products.On("GetByID", mock.Anything, productID).Return(&models.Product{Name: "Air Compressor AC-50"}, nil)

		svc := newTestDealService(deals, products, new(mockUsageStore), now)
		result := svc.Check(context.Background(), "PUMP1000", productID, "a@b.com")

		assert.False(t, result.Valid)
		assert.Equal(t, "This coupon is only valid for Centrifugal Pump CP-200", result.Message)
	})

	t.Run("product deal applied to missing product", func(t *testing.T) {
		deals := new(mockDealStore)
		deals.On("GetByCode", mock.Anything, "PUMP1000").Return(productDeal, nil)
		products := new(mockProductStore)
		products.On("GetByID", mock.Anything, productID).Return(nil, nil)

		svc := newTestDealService(deals, products, new(mockUsageStore), now)
		result := svc.Check(context.Background(), "PUMP1000", productID, "a@b.com")

		assert.False(t, result.Valid)
		assert.Equal(t, "This coupon is only valid for Centrifugal Pump CP-200", result.Message)
	})

	t.Run("expired deal", func(t *testing.T) {
		expired := &models.Deal{
			DealType:        models.DealTypeGeneral,
			DiscountedPrice: 500,
			CouponCode:      "OLD500",
			ExpiresAt:       now.Add(-time.Minute),
		}
		deals := new(mockDealStore)
		deals.On("GetByCode", mock.Anything, "OLD500").Return(expired, nil)

		svc := newTestDealService(deals, new(mockProductStore), new(mockUsageStore), now)
		result := svc.Check(context.Background(), "OLD500", productID, "a@b.com")

		assert.False(t, result.Valid)
		assert.Equal(t, "This coupon has expired", result.Message)
	})

	t.Run("general coupon already used by customer", func(t *testing.T) {
		deals := new(mockDealStore)
		deals.On("GetByCode", mock.Anything, "FLAT500").Return(generalDeal, nil)
		usage := new(mockUsageStore)
		usage.On("CouponUsed", mock.Anything, "a@b.com", "FLAT500", (*uuid.UUID)(nil)).Return(true, nil)

		svc := newTestDealService(deals, new(mockProductStore), usage, now)
		result := svc.Check(context.Background(), "FLAT500", productID, "a@b.com")

		assert.False(t, result.Valid)
		assert.Equal(t, "You have already availed this coupon", result.Message)
	})

	t.Run("product coupon already used for this product", func(t *testing.T) {
		deals := new(mockDealStore)
		deals.On("GetByCode", mock.Anything, "PUMP1000").Return(productDeal, nil)
		products := new(mockProductStore)
		products.On("GetByID", mock.Anything, productID).Return(&models.Product{Name: "Centrifugal Pump CP-200"}, nil)
		usage := new(mockUsageStore)
		usage.On("CouponUsed", mock.Anything, "a@b.com", "PUMP1000", &productID).Return(true, nil)

		svc := newTestDealService(deals, products, usage, now)
		result := svc.Check(context.Background(), "PUMP1000", productID, "a@b.com")

		assert.False(t, result.Valid)
		assert.Equal(t, "You have already availed this deal for this product", result.Message)
	})

	t.Run("usage store error reported as generic failure", func(t *testing.T) {
		deals := new(mockDealStore)
		deals.On("GetByCode", mock.Anything, "FLAT500").Return(generalDeal, nil)
		usage := new(mockUsageStore)
		usage.On("CouponUsed", mock.Anything, "a@b.com", "FLAT500", (*uuid.UUID)(nil)).Return(false, errors.New("timeout"))

		svc := newTestDealService(deals, new(mockProductStore), usage, now)
		result := svc.Check(context.Background(), "FLAT500", productID, "a@b.com")

		assert.False(t, result.Valid)
		assert.Equal(t, "Unable to validate coupon, please try again", result.Message)
	})

	t.Run("valid general coupon grants flat discount", func(t *testing.T) {
		deals := new(mockDealStore)
		deals.On("GetByCode", mock.Anything, "FLAT500").Return(generalDeal, nil)
		usage := new(mockUsageStore)
		usage.On("CouponUsed", mock.Anything, "a@b.com", "FLAT500", (*uuid.UUID)(nil)).Return(false, nil)

		svc := newTestDealService(deals, new(mockProductStore), usage, now)
		result := svc.Check(context.Background(), "FLAT500", productID, "a@b.com")

		assert.True(t, result.Valid)
		assert.Equal(t, "Coupon applied", result.Message)
		assert.Equal(t, 500.0, result.Discount)
	})

	t.Run("valid product coupon grants gap to MRP", func(t *testing.T) {
		deals := new(mockDealStore)
		deals.On("GetByCode", mock.Anything, "PUMP1000").Return(productDeal, nil)
		products := new(mockProductStore)
		products.On("GetByID", mock.Anything, productID).Return(&models.Product{Name: "Centrifugal Pump CP-200"}, nil)
		usage := new(mockUsageStore)
		usage.On("CouponUsed", mock.Anything, "a@b.com", "PUMP1000", &productID).Return(false, nil)

		svc := newTestDealService(deals, products, usage, now)
		result := svc.Check(context.Background(), "PUMP1000", productID, "a@b.com")

		assert.True(t, result.Valid)
		assert.Equal(t, 1000.0, result.Discount)
	})
}

func TestDealServiceCache(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	productID := uuid.New()

	deal := &models.Deal{
		DealType:        models.DealTypeGeneral,
		DiscountedPrice: 250,
		CouponCode:      "CACHED",
		ExpiresAt:       now.Add(time.Hour),
	}

	deals := new(mockDealStore)
	deals.On("GetByCode", mock.Anything, "CACHED").Return(deal, nil).Once()
	usage := new(mockUsageStore)
	usage.On("CouponUsed", mock.Anything, "a@b.com", "CACHED", (*uuid.UUID)(nil)).Return(false, nil)

	svc := newTestDealService(deals, new(mockProductStore), usage, now)

	first := svc.Check(context.Background(), "CACHED", productID, "a@b.com")
	second := svc.Check(context.Background(), "CACHED", productID, "a@b.com")

	assert.True(t, first.Valid)
	assert.True(t, second.Valid)
	deals.AssertNumberOfCalls(t, "GetByCode", 1)

	// Invalidate forces the next check back to the store.
	svc.Invalidate("CACHED")
	deals.On("GetByCode", mock.Anything, "CACHED").Return(deal, nil).Once()

	third := svc.Check(context.Background(), "CACHED", productID, "a@b.com")
	assert.True(t, third.Valid)
	deals.AssertNumberOfCalls(t, "GetByCode", 2)
}
