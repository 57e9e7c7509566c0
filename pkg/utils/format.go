// Package utils provides common formatting helpers for HomeSim.
package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatUSD formats a number in US Dollar format ($1,234,567.89).
func FormatUSD(amount float64) string {
	negative := amount < 0
	amount = math.Abs(amount)

	intPart := int64(amount)
	decStr := fmt.Sprintf("%.2f", amount-float64(intPart))

	formatted := groupThousands(intPart) + decStr[1:] // skip the leading "0"

	if negative {
		return "-$" + formatted
	}
	return "$" + formatted
}

// FormatUSDWhole formats a number as whole dollars ($1,234,568), rounding
// to the nearest dollar. Used for table columns where cents are noise.
func FormatUSDWhole(amount float64) string {
	negative := amount < 0
	rounded := int64(math.Round(math.Abs(amount)))

	formatted := groupThousands(rounded)
	if negative {
		return "-$" + formatted
	}
	return "$" + formatted
}

// FormatUSDCompact formats a number in compact notation.
// e.g., 1927345 → "$1.93M", 450000 → "$450.00K"
func FormatUSDCompact(amount float64) string {
	negative := amount < 0
	amount = math.Abs(amount)

	prefix := "$"
	if negative {
		prefix = "-$"
	}

	switch {
	case amount >= 1e9:
		return fmt.Sprintf("%s%.2fB", prefix, amount/1e9)
	case amount >= 1e6:
		return fmt.Sprintf("%s%.2fM", prefix, amount/1e6)
	case amount >= 1e3:
		return fmt.Sprintf("%s%.2fK", prefix, amount/1e3)
	default:
		return fmt.Sprintf("%s%.2f", prefix, amount)
	}
}

// FormatPct formats a percentage value with a % suffix, e.g., 42.5 → "42.50%".
func FormatPct(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// FormatRate formats a rate fraction as a percentage, e.g., 0.065 → "6.50%".
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

// groupThousands inserts commas every 3 digits (Western grouping).
func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	return strings.Join(groups, ",")
}
