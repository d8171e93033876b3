package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatEUR renders an amount the way the Croatian locale prints euros:
// "1.234,56 €" with a dot thousands separator, a comma before the cents
// and a non-breaking space before the sign.
func FormatEUR(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	b.WriteString("\u00a0€")
	return b.String()
}
