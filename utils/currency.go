package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount for display, e.g. "MMK 84,950". Amounts
// are rounded to whole units; the portal's display currency has no minor
// unit in everyday use.
func FormatCurrency(amount decimal.Decimal) string {
	whole := amount.Round(0).String()

	negative := strings.HasPrefix(whole, "-")
	digits := strings.TrimPrefix(whole, "-")

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := "MMK " + b.String()
	if negative {
		out = "MMK -" + b.String()
	}
	return out
}
