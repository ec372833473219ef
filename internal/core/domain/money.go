package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Round2 rounds a monetary amount to 2 decimal places, half away from zero.
// Every amount in this system is non-negative, so this is round-half-up.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ParseMoney parses a monetary amount with at most 2 fractional digits.
func ParseMoney(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.Exponent() < -2 {
		return decimal.Decimal{}, fmt.Errorf("amount %q has more than 2 decimal places", s)
	}
	return d, nil
}

// FormatMoney renders an amount with exactly 2 fractional digits.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
