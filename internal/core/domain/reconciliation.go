package domain

import "github.com/govalues/decimal"

// Reconciliation holds the derived payment fields of an order. Unconvertible lists
// the currencies whose payments were counted as zero for lack of a usable rate.
type Reconciliation struct {
	Abonado       decimal.Decimal
	Faltante      decimal.Decimal
	EstadoPago    PaymentStatus
	Unconvertible []Currency
}
