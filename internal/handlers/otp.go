package handlers

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/vulcan/internal/config"
	"github.com/example/vulcan/internal/models"
	"github.com/example/vulcan/internal/services"
	"github.com/example/vulcan/internal/utils"
)

// OTPHandler manages email verification codes.
type OTPHandler struct {
	db     *gorm.DB
	cfg    *config.Config
	mailer *services.Mailer
}

// NewOTPHandler constructs an OTPHandler.
func NewOTPHandler(db *gorm.DB, cfg *config.Config, mailer *services.Mailer) *OTPHandler {
	return &OTPHandler{db: db, cfg: cfg, mailer: mailer}
}

type requestOTPRequest struct {
	Email string `json:"email"`
}

// RequestOTP generates a 6-digit code, stores its hash with a TTL, and emails
// the plaintext to the customer. Previous unused codes for the email are
// expired so only the latest code works.
func (h *OTPHandler) RequestOTP(c *fiber.Ctx) error {
	var req requestOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email is required")
	}

	code, err := generateOTPCode()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate verification code")
	}

	codeHash, err := utils.HashOTP(code)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash verification code")
	}

	h.db.Model(&models.OTPVerification{}).
		Where("email = ? AND used_at IS NULL", req.Email).
		Update("expires_at", time.Now())

	verification := models.OTPVerification{
		Email:     req.Email,
		CodeHash:  codeHash,
		ExpiresAt: time.Now().Add(h.cfg.OTPExpires),
		Verified:  false,
	}

	if err := h.db.Create(&verification).Error; err != nil {
		return err
	}

	go func() {
		_ = h.mailer.SendOTP(req.Email, code)
	}()

	return c.JSON(fiber.Map{
		"success": true,
		"message": "verification code sent",
	})
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// VerifyOTP validates the submitted code against the latest record for the
// email. Codes are single-use.
func (h *OTPHandler) VerifyOTP(c *fiber.Ctx) error {
	var req verifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" || req.Code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and code are required")
	}

	var verification models.OTPVerification
	err := h.db.Where("email = ?", req.Email).
		Order("created_at desc").
		First(&verification).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "verification code not found")
		}
		return err
	}

	if verification.UsedAt != nil {
		return fiber.NewError(fiber.StatusBadRequest, "verification code already used")
	}

	if verification.ExpiresAt.Before(time.Now()) {
		return fiber.NewError(fiber.StatusBadRequest, "verification code expired")
	}

	if !utils.CheckOTP(verification.CodeHash, req.Code) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid verification code")
	}

	verification.Verified = true
	now := time.Now()
	verification.UsedAt = &now
	if err := h.db.Save(&verification).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"verified": true,
	})
}

func generateOTPCode() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
