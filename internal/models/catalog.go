package models

type Category struct {
	BaseModel
	Name         string    `json:"name"`
	Slug         string    `gorm:"uniqueIndex" json:"slug"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	DisplayOrder int       `json:"display_order"`
	ProductCount int       `json:"product_count"`
	Products     []Product `json:"products,omitempty"`
}
