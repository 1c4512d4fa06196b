// Package currency converts amounts between the principal currency and the
// secondary currencies of a rate table.
//
// Every result is rounded to two fractional digits with half-to-even rounding,
// the same policy used for totals and comparisons elsewhere.
package currency

import (
	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"github.com/govalues/decimal"
)

const scale = 2

// Round2 rounds d half to even and pads it to exactly two fractional digits.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(scale).Pad(scale)
}

// Zero is 0.00.
func Zero() decimal.Decimal {
	return Round2(decimal.Zero)
}

// ToPrincipal converts amount expressed in cur into the principal currency.
// The boolean is false when cur has no usable rate; the amount is then 0.00.
func ToPrincipal(amount decimal.Decimal, cur domain.Currency,
	rates domain.ConversionRates, principal domain.Currency) (decimal.Decimal, bool) {
	if cur == principal {
		return Round2(amount), true
	}
	rate, ok := rates.Rate(cur)
	if !ok {
		return Zero(), false
	}
	q, err := amount.Quo(rate)
	if err != nil {
		return Zero(), false
	}
	return Round2(q), true
}

// FromPrincipal converts amount expressed in the principal currency into cur,
// under the same missing-rate policy as ToPrincipal.
func FromPrincipal(amount decimal.Decimal, cur domain.Currency,
	rates domain.ConversionRates, principal domain.Currency) (decimal.Decimal, bool) {
	if cur == principal {
		return Round2(amount), true
	}
	rate, ok := rates.Rate(cur)
	if !ok {
		return Zero(), false
	}
	p, err := amount.Mul(rate)
	if err != nil {
		return Zero(), false
	}
	return Round2(p), true
}
