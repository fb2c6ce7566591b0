package models

import "github.com/google/uuid"

type Product struct {
	BaseModel
	Slug             string           `gorm:"uniqueIndex" json:"slug"`
	Name             string           `json:"name"`
	ShortDescription string           `json:"short_description"`
	LongDescription  string           `json:"long_description"`
	Price            float64          `json:"price"`
	Currency         string           `json:"currency"`
	HSNCode          string           `json:"hsn_code"`
	Manufacturer     string           `json:"manufacturer"`
	CountryOfOrigin  string           `json:"country_of_origin"`
	InStock          bool             `json:"in_stock"`
	HeroImage        string           `json:"hero_image"`
	CategoryID       *uuid.UUID       `gorm:"type:uuid" json:"category_id"`
	Category         *Category        `json:"category,omitempty"`
	Media            []ProductMedia   `json:"media,omitempty"`
	Features         []ProductFeature `json:"features,omitempty"`
}

type ProductMedia struct {
	BaseModel
	ProductID    uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	Type         string    `json:"type"` // gallery|marketing
	URL          string    `json:"url"`
	AltText      string    `json:"alt_text"`
	DisplayOrder int       `json:"display_order"`
}

type ProductFeature struct {
	BaseModel
	ProductID    uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	Label        string    `json:"label"`
	Value        string    `json:"value"`
	DisplayOrder int       `json:"display_order"`
}
