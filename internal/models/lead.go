package models

// Lead is a contact-form submission captured for the sales team.
type Lead struct {
	BaseModel
	Name    string `json:"name"`
	Email   string `gorm:"index" json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Source  string `json:"source"`
}
