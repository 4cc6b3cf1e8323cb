package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatINR renders an amount with Indian digit grouping, e.g. 123456.5 ->
// "Rs. 1,23,456.50". Rounded to the paisa; whole amounts drop the decimals.
func FormatINR(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	cents := int64(math.Round(amount * 100))
	grouped := groupIndian(strconv.FormatInt(cents/100, 10))
	if frac := cents % 100; frac != 0 {
		grouped += fmt.Sprintf(".%02d", frac)
	}
	if neg {
		grouped = "-" + grouped
	}
	return "Rs. " + grouped
}

// groupIndian groups the last three digits, then pairs: 1234567 -> 12,34,567.
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := digits[:n-3]
	for i, r := range head {
		if (len(head)-i)%2 == 0 && i != 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String() + "," + digits[n-3:]
}
