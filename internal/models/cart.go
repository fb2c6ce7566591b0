package models

import "github.com/google/uuid"

// Cart is a guest shopping cart identified by an opaque token the storefront
// stores client-side.
type Cart struct {
	BaseModel
	Token string     `gorm:"uniqueIndex" json:"token"`
	Items []CartItem `json:"items,omitempty"`
}

type CartItem struct {
	BaseModel
	CartID      uuid.UUID `gorm:"type:uuid;index" json:"cart_id"`
	ProductID   uuid.UUID `gorm:"type:uuid" json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
}
