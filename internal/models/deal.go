package models

import "time"

// Deal types. A general deal applies to any product and DiscountedPrice holds
// the flat discount amount. A product deal is scoped to one product by name and
// DiscountedPrice holds the final selling price, so the discount is the gap to MRP.
const (
	DealTypeGeneral = "general"
	DealTypeProduct = "product"
)

type Deal struct {
	BaseModel
	Title           string    `json:"title"`
	DealType        string    `json:"deal_type"`
	ProductName     string    `json:"product_name"`
	MRP             float64   `json:"mrp"`
	DiscountedPrice float64   `json:"discounted_price"`
	CouponCode      string    `gorm:"uniqueIndex" json:"coupon_code"`
	Image           string    `json:"image"`
	ExpiresAt       time.Time `json:"expires_at"`
}

// DealKind is the tagged-variant view of a deal. The stored row keeps the two
// shared price columns; callers that care about semantics go through Kind so the
// dealType-dependent meaning of DiscountedPrice stays in one place.
type DealKind interface {
	isDealKind()
}

// GeneralDeal grants a flat discount on any product.
type GeneralDeal struct {
	FlatDiscount float64
}

// ProductDeal sells a named product at SellingPrice instead of MRP.
type ProductDeal struct {
	Name         string
	MRP          float64
	SellingPrice float64
}

func (GeneralDeal) isDealKind() {}
func (ProductDeal) isDealKind() {}

// Kind returns the typed variant for this deal. Unknown deal types are treated
// as general deals with no discount.
func (d *Deal) Kind() DealKind {
	switch d.DealType {
	case DealTypeProduct:
		return ProductDeal{Name: d.ProductName, MRP: d.MRP, SellingPrice: d.DiscountedPrice}
	case DealTypeGeneral:
		return GeneralDeal{FlatDiscount: d.DiscountedPrice}
	default:
		return GeneralDeal{}
	}
}

// Discount returns the discount amount this deal grants, never negative.
func (d *Deal) Discount() float64 {
	switch kind := d.Kind().(type) {
	case ProductDeal:
		if disc := kind.MRP - kind.SellingPrice; disc > 0 {
			return disc
		}
		return 0
	case GeneralDeal:
		if kind.FlatDiscount > 0 {
			return kind.FlatDiscount
		}
		return 0
	}
	return 0
}

// Expired reports whether the deal is past its expiry at the given time.
func (d *Deal) Expired(now time.Time) bool {
	return d.ExpiresAt.Before(now)
}
