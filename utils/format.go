// utils/format.go
package utils

import (
	"fmt"
	"strings"
	"time"
)

// FormatCurrency renders integer cents as a USD display string, e.g.
// 499900 -> "$4,999.00". Negative amounts keep the sign before the dollar.
func FormatCurrency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	dollars := cents / 100
	rem := cents % 100
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(dollars), rem)
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}

// ISODate stamps a calendar date in the stored form, YYYY-MM-DD.
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// CentsToDollars converts a stored amount to decimal currency units for form
// prefill, the only place amounts leave the cents representation unformatted.
func CentsToDollars(cents int64) float64 {
	return float64(cents) / 100
}
