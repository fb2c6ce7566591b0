package services

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-[A-Z0-9]{10}$`)

func TestGenerateOrderNumberFormat(t *testing.T) {
	seen := make(map[string]bool)
	exists := func(candidate string) (bool, error) { return false, nil }

	for i := 0; i < 50; i++ {
		number, err := GenerateOrderNumber(exists, 5)
		assert.NoError(t, err)
		assert.Regexp(t, orderNumberPattern, number)
		assert.False(t, seen[number], "generated a duplicate order number: %s", number)
		seen[number] = true
	}
}

func TestGenerateOrderNumberRetriesOnCollision(t *testing.T) {
	calls := 0
	exists := func(candidate string) (bool, error) {
		calls++
		return calls < 3, nil
	}

	number, err := GenerateOrderNumber(exists, 5)
	assert.NoError(t, err)
	assert.Regexp(t, orderNumberPattern, number)
	assert.Equal(t, 3, calls)
}

func TestGenerateOrderNumberExhausted(t *testing.T) {
	exists := func(candidate string) (bool, error) { return true, nil }

	number, err := GenerateOrderNumber(exists, 3)
	assert.ErrorIs(t, err, ErrOrderNumberExhausted)
	assert.Empty(t, number)
}

func TestGenerateOrderNumberPropagatesLookupError(t *testing.T) {
	lookupErr := errors.New("db down")
	exists := func(candidate string) (bool, error) { return false, lookupErr }

	number, err := GenerateOrderNumber(exists, 5)
	assert.ErrorIs(t, err, lookupErr)
	assert.Empty(t, number)
}
