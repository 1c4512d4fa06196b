package domain_test

import (
	"testing"

	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConversionRates_Rate(t *testing.T) {
	rates := domain.ConversionRates{
		domain.CurrencyVES: {Decimal: decimal.MustParse("36.5"), Valid: true},
		domain.CurrencyCOP: {},
		domain.CurrencyEUR: {Decimal: decimal.Zero, Valid: true},
	}

	r, ok := rates.Rate(domain.CurrencyVES)
	assert.True(t, ok)
	assert.Equal(t, "36.5", r.String())

	for _, c := range []domain.Currency{domain.CurrencyCOP, domain.CurrencyEUR, domain.CurrencyUSD} {
		_, ok := rates.Rate(c)
		assert.False(t, ok, c)
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings domain.Settings
		expError error
	}{
		{
			name: "valid with null rate",
			settings: domain.Settings{Principal: domain.CurrencyUSD, Rates: domain.ConversionRates{
				domain.CurrencyVES: {Decimal: decimal.MustParse("1250"), Valid: true},
				domain.CurrencyCOP: {},
			}},
		},
		{
			name:     "bad principal",
			settings: domain.Settings{Principal: "ARS"},
			expError: domain.ErrUnknownCurrency,
		},
		{
			name: "rate for principal",
			settings: domain.Settings{Principal: domain.CurrencyUSD, Rates: domain.ConversionRates{
				domain.CurrencyUSD: {Decimal: decimal.One, Valid: true},
			}},
			expError: domain.ErrInvalidRate,
		},
		{
			name: "negative rate",
			settings: domain.Settings{Principal: domain.CurrencyUSD, Rates: domain.ConversionRates{
				domain.CurrencyVES: {Decimal: decimal.MustParse("-1"), Valid: true},
			}},
			expError: domain.ErrInvalidRate,
		},
		{
			name: "rate with more than six decimals",
			settings: domain.Settings{Principal: domain.CurrencyUSD, Rates: domain.ConversionRates{
				domain.CurrencyVES: {Decimal: decimal.MustParse("36.1234567"), Valid: true},
			}},
			expError: domain.ErrInvalidRate,
		},
		{
			name: "rate too large",
			settings: domain.Settings{Principal: domain.CurrencyUSD, Rates: domain.ConversionRates{
				domain.CurrencyVES: {Decimal: decimal.MustParse("1000000000000"), Valid: true},
			}},
			expError: domain.ErrInvalidRate,
		},
		{
			name: "unknown rate currency",
			settings: domain.Settings{Principal: domain.CurrencyUSD, Rates: domain.ConversionRates{
				"ARS": {Decimal: decimal.One, Valid: true},
			}},
			expError: domain.ErrUnknownCurrency,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expError, test.settings.Validate())
		})
	}
}

func TestSettings_Secondary(t *testing.T) {
	s := domain.Settings{Principal: domain.CurrencyVES}
	assert.Equal(t, []domain.Currency{domain.CurrencyUSD, domain.CurrencyCOP, domain.CurrencyEUR}, s.Secondary())
}
