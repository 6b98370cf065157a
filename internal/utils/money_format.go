package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount as euros with two decimals, '.' grouping thousands and ',' before the cents.
// Example: 1234567.891 returns "€1.234.567,89", -5 returns "-€5,00".
func FormatMoney(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	fixed := amount.StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return sign + "€" + b.String() + "," + cents
}
