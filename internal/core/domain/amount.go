package domain

import "github.com/govalues/decimal"

// Limits of the storage columns: order money is NUMERIC(14,2), rates
// NUMERIC(18,6), item quantities NUMERIC(12,3). A value the column would
// round or reject is refused here, so what is reconciled is exactly what is
// stored.
const (
	AmountScale   = 2
	RateScale     = 6
	QuantityScale = 3
)

var (
	maxAmount   = decimal.MustNew(1_000_000_000_000, 0) // 10^12
	maxRate     = decimal.MustNew(1_000_000_000_000, 0)
	maxQuantity = decimal.MustNew(1_000_000_000, 0)
)

func fits(d decimal.Decimal, scale int, limit decimal.Decimal) bool {
	return d.Round(scale).Cmp(d) == 0 && d.Abs().Cmp(limit) < 0
}

// CheckAmount reports ErrAmountOutOfRange for money with more than two
// decimal places or too many integer digits.
func CheckAmount(d decimal.Decimal) error {
	if !fits(d, AmountScale, maxAmount) {
		return ErrAmountOutOfRange
	}
	return nil
}

func CheckQuantity(d decimal.Decimal) error {
	if !fits(d, QuantityScale, maxQuantity) {
		return ErrAmountOutOfRange
	}
	return nil
}

func checkRate(d decimal.Decimal) error {
	if !fits(d, RateScale, maxRate) {
		return ErrInvalidRate
	}
	return nil
}
