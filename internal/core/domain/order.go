package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type PaymentStatus string

const (
	PaymentStatusComplete   PaymentStatus = "COMPLETO"
	PaymentStatusIncomplete PaymentStatus = "INCOMPLETO"
)

func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusComplete || s == PaymentStatusIncomplete
}

type OrderItem struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// Order is a laundry order. Total is fixed at creation; Abonado, Faltante and
// EstadoPago are only ever written from a Reconciliation.
type Order struct {
	ID         uint64
	Client     string
	Items      []OrderItem
	Currency   Currency
	Total      decimal.Decimal
	Abonado    decimal.Decimal
	Faltante   decimal.Decimal
	EstadoPago PaymentStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (o *Order) Apply(r Reconciliation) {
	o.Abonado = r.Abonado
	o.Faltante = r.Faltante
	o.EstadoPago = r.EstadoPago
}

type OrderFilter struct {
	EstadoPago PaymentStatus
}

// OrderBalance is the read model shown at the counter: what is still owed in the
// principal currency and in every secondary currency that can be converted.
type OrderBalance struct {
	Order         *Order
	Principal     Currency
	FaltanteIn    map[Currency]decimal.Decimal
	Unconvertible []Currency
}
