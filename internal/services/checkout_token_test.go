package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCheckoutTokenRoundTrip(t *testing.T) {
	productID := uuid.New()

	token, sessionID, err := GenerateCheckoutToken("test-secret", productID, time.Minute)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, sessionID)

	session, err := ParseCheckoutToken("test-secret", token)
	assert.NoError(t, err)
	assert.Equal(t, sessionID, session.SessionID)
	assert.Equal(t, productID, session.ProductID)
}

func TestCheckoutTokenUniqueSessions(t *testing.T) {
	productID := uuid.New()

	_, first, err := GenerateCheckoutToken("test-secret", productID, time.Minute)
	assert.NoError(t, err)
	_, second, err := GenerateCheckoutToken("test-secret", productID, time.Minute)
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCheckoutTokenWrongSecret(t *testing.T) {
	token, _, err := GenerateCheckoutToken("test-secret", uuid.New(), time.Minute)
	assert.NoError(t, err)

	session, err := ParseCheckoutToken("other-secret", token)
	assert.Error(t, err)
	assert.Nil(t, session)
}

func TestCheckoutTokenExpired(t *testing.T) {
	token, _, err := GenerateCheckoutToken("test-secret", uuid.New(), -time.Minute)
	assert.NoError(t, err)

	session, err := ParseCheckoutToken("test-secret", token)
	assert.Error(t, err)
	assert.Nil(t, session)
}

func TestCheckoutTokenGarbage(t *testing.T) {
	session, err := ParseCheckoutToken("test-secret", "not.a.token")
	assert.Error(t, err)
	assert.Nil(t, session)
}
