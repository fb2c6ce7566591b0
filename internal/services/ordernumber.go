package services

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const (
	orderNumberPrefix   = "ORD-"
	orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderNumberLength   = 10
)

// ErrOrderNumberExhausted is returned when every generated candidate collided
// with an existing order number.
var ErrOrderNumberExhausted = errors.New("order number generation exhausted retries")

// GenerateOrderNumber produces a unique order number of the form ORD- followed
// by 10 uppercase alphanumerics. exists is consulted for each candidate; the
// generator gives up after maxAttempts collisions. The database's unique index
// on order_number remains the final arbiter against concurrent inserts.
func GenerateOrderNumber(exists func(string) (bool, error), maxAttempts int) (string, error) {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate, err := randomOrderNumber()
		if err != nil {
			return "", err
		}

		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", ErrOrderNumberExhausted
}

func randomOrderNumber() (string, error) {
	var sb strings.Builder
	sb.WriteString(orderNumberPrefix)

	max := big.NewInt(int64(len(orderNumberAlphabet)))
	for i := 0; i < orderNumberLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(orderNumberAlphabet[n.Int64()])
	}

	return sb.String(), nil
}
