package domain

import "strings"

// Currency is a closed set of currency codes accepted by the shop.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyVES Currency = "VES"
	CurrencyCOP Currency = "COP"
	CurrencyEUR Currency = "EUR"
)

// Currencies lists every supported currency in a stable order.
var Currencies = []Currency{CurrencyUSD, CurrencyVES, CurrencyCOP, CurrencyEUR}

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUSD, CurrencyVES, CurrencyCOP, CurrencyEUR:
		return true
	}
	return false
}

func (c Currency) String() string {
	return string(c)
}

func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrUnknownCurrency
	}
	return c, nil
}
