package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "EFECTIVO"
	PaymentMethodTransfer PaymentMethod = "TRANSFERENCIA"
	PaymentMethodMobile   PaymentMethod = "PAGO_MOVIL"
	PaymentMethodCard     PaymentMethod = "PUNTO_DE_VENTA"
	PaymentMethodZelle    PaymentMethod = "ZELLE"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodTransfer, PaymentMethodMobile,
		PaymentMethodCard, PaymentMethodZelle:
		return true
	}
	return false
}

// ChangeGiven is cash handed back during an EFECTIVO payment. It is kept for the
// cash drawer and receipts and does not reduce the amount the payment settles.
type ChangeGiven struct {
	Amount   decimal.Decimal
	Currency Currency
}

type Payment struct {
	ID        uint64
	OrderID   uint64
	Amount    decimal.Decimal
	Currency  Currency
	Method    PaymentMethod
	Reference string
	PaidAt    time.Time
	Change    *ChangeGiven
}

// Validate rejects payments that must never reach a ledger.
func (p *Payment) Validate() error {
	if !p.Amount.IsPos() {
		return ErrInvalidAmount
	}
	if err := CheckAmount(p.Amount); err != nil {
		return err
	}
	if !p.Currency.IsValid() {
		return ErrUnknownCurrency
	}
	if !p.Method.IsValid() {
		return ErrUnknownPaymentMethod
	}
	if p.Change == nil {
		return nil
	}
	if p.Method != PaymentMethodCash {
		return ErrChangeNotAllowed
	}
	if !p.Change.Amount.IsPos() {
		return ErrInvalidAmount
	}
	if err := CheckAmount(p.Change.Amount); err != nil {
		return err
	}
	if !p.Change.Currency.IsValid() {
		return ErrUnknownCurrency
	}
	return nil
}
