package models

import "time"

// AdminUser can sign in to the dashboard and manage catalog, deals, and orders.
type AdminUser struct {
	BaseModel
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
}

// OTPVerification keeps track of email verification codes. Codes are stored as
// bcrypt hashes; the plaintext only ever leaves the server inside the email.
type OTPVerification struct {
	BaseModel
	Email     string     `gorm:"index" json:"email"`
	CodeHash  string     `json:"-"`
	ExpiresAt time.Time  `json:"expires_at"`
	Verified  bool       `json:"verified"`
	UsedAt    *time.Time `json:"used_at"`
}
