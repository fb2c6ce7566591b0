package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type checkoutClaims struct {
	ProductID string `json:"product_id"`
	jwt.RegisteredClaims
}

// CheckoutSession identifies one verified checkout attempt for one product.
type CheckoutSession struct {
	SessionID string
	ProductID uuid.UUID
}

// GenerateCheckoutToken issues a signed, time-bound token binding a checkout
// attempt to a product. The token's jti doubles as the session ID used for the
// double-checkout guard.
func GenerateCheckoutToken(secret string, productID uuid.UUID, ttl time.Duration) (string, string, error) {
	sessionID := uuid.NewString()
	claims := &checkoutClaims{
		ProductID: productID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}
	return signed, sessionID, nil
}

// ParseCheckoutToken validates a checkout token and returns its session.
func ParseCheckoutToken(secret, tokenString string) (*CheckoutSession, error) {
	token, err := jwt.ParseWithClaims(tokenString, &checkoutClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*checkoutClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	productID, err := uuid.Parse(claims.ProductID)
	if err != nil {
		return nil, err
	}

	return &CheckoutSession{SessionID: claims.ID, ProductID: productID}, nil
}
