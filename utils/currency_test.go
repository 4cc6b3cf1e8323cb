package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Rs. 0"},
		{250, "Rs. 250"},
		{999, "Rs. 999"},
		{1234, "Rs. 1,234"},
		{123456, "Rs. 1,23,456"},
		{1234567, "Rs. 12,34,567"},
		{849.5, "Rs. 849.50"},
		{849.999, "Rs. 850"},
		{1234.567, "Rs. 1,234.57"},
		{-49, "Rs. -49"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatINR(tc.amount), "amount %v", tc.amount)
	}
}
