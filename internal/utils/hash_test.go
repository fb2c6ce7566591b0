package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPassword(hash, "s3cret-password"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}

func TestHashOTP(t *testing.T) {
	hash, err := HashOTP("482916")
	assert.NoError(t, err)

	assert.True(t, CheckOTP(hash, "482916"))
	assert.False(t, CheckOTP(hash, "000000"))
}
