package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// maxPriceExponent bounds the decimal exponent of a price in either direction
const maxPriceExponent = 20

// ParsePrice parses price text as a finite non-negative decimal.
// Exponents outside ±maxPriceExponent are rejected before any arithmetic
// so that summing stored prices stays cheap.
func ParsePrice(text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, fmt.Errorf("price %q is not a number: %w", text, err)
	}
	if exp := d.Exponent(); exp > maxPriceExponent || exp < -maxPriceExponent {
		return decimal.Zero, fmt.Errorf("price %q is out of range", text)
	}
	if math.IsInf(d.InexactFloat64(), 0) {
		return decimal.Zero, fmt.Errorf("price %q is not finite", text)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("price %q is negative", text)
	}
	return d, nil
}

// PriceOrZero parses price text, treating anything unparseable as zero
func PriceOrZero(text string) decimal.Decimal {
	d, err := ParsePrice(text)
	if err != nil {
		return decimal.Zero
	}
	return d
}
