package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Rs. 0"},
		{999, "Rs. 999"},
		{6900, "Rs. 6,900"},
		{19160, "Rs. 19,160"},
		{100000, "Rs. 1,00,000"},
		{1234567, "Rs. 12,34,567"},
		{12345678, "Rs. 1,23,45,678"},
		{1234567.5, "Rs. 12,34,567.50"},
		{-6900, "-Rs. 6,900"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatINR(tt.amount), "amount %v", tt.amount)
	}
}
