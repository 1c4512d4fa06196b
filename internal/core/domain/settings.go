package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// ConversionRates holds, per secondary currency, how many units of that currency
// buy one unit of the principal currency. A null entry is kept so that a currency
// can be configured as known but currently unconvertible.
type ConversionRates map[Currency]decimal.NullDecimal

// Rate returns the usable rate for c. Absent, null, zero and negative rates are
// all reported as not usable.
func (r ConversionRates) Rate(c Currency) (decimal.Decimal, bool) {
	nd, ok := r[c]
	if !ok || !nd.Valid || !nd.Decimal.IsPos() {
		return decimal.Zero, false
	}
	return nd.Decimal, true
}

// Settings is the business configuration reconciliation reads.
type Settings struct {
	Principal Currency
	Rates     ConversionRates
	UpdatedAt time.Time
}

// Secondary returns the supported currencies other than the principal one.
func (s *Settings) Secondary() []Currency {
	list := make([]Currency, 0, len(Currencies)-1)
	for _, c := range Currencies {
		if c != s.Principal {
			list = append(list, c)
		}
	}
	return list
}

func (s *Settings) Validate() error {
	if !s.Principal.IsValid() {
		return ErrUnknownCurrency
	}
	for c, rate := range s.Rates {
		if !c.IsValid() {
			return ErrUnknownCurrency
		}
		if c == s.Principal {
			return ErrInvalidRate
		}
		if !rate.Valid {
			continue
		}
		if rate.Decimal.IsNeg() {
			return ErrInvalidRate
		}
		if err := checkRate(rate.Decimal); err != nil {
			return err
		}
	}
	return nil
}
