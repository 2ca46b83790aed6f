// Package money holds the currency helpers shared by the quote engines.
// Amounts are whole currency units carried as decimals; nothing here
// distinguishes pounds from pence.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Zero is the zero amount.
var Zero = decimal.Zero

// Units builds an amount from a whole number of currency units.
func Units(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// MustParse parses a literal rate such as "2.50". It panics on malformed input
// and is only meant for compiled-in tables.
func MustParse(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// Round rounds half-up to the nearest whole unit.
// decimal.Round rounds half away from zero, which matches half-up for the
// non-negative amounts the engines produce.
func Round(v decimal.Decimal) decimal.Decimal {
	return v.Round(0)
}

// Percent returns base × pct / 100 without rounding.
func Percent(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred)
}

// NonNegative floors v at zero.
func NonNegative(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// Max returns the larger of a and b.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThanOrEqual(b) {
		return a
	}
	return b
}
