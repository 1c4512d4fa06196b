// Package reconcile derives the payment fields of an order from its total and the
// full set of its payments.
package reconcile

import (
	"fmt"
	"sort"

	"github.com/MikeRez0/lavanderia/internal/core/currency"
	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"github.com/govalues/decimal"
)

// Recompute sums every payment converted to the principal currency and derives
// abonado, faltante and estadoPago from scratch. total must already be expressed
// in the principal currency. Payments in a currency without a usable rate count
// as zero and are reported in Unconvertible.
//
// Change given on a payment is not subtracted.
func Recompute(total decimal.Decimal, payments []*domain.Payment,
	rates domain.ConversionRates, principal domain.Currency) (domain.Reconciliation, error) {
	total = currency.Round2(total)

	abonado := decimal.Zero
	seen := make(map[domain.Currency]struct{})
	for _, p := range payments {
		amount, ok := currency.ToPrincipal(p.Amount, p.Currency, rates, principal)
		if !ok {
			seen[p.Currency] = struct{}{}
			continue
		}
		sum, err := abonado.Add(amount)
		if err != nil {
			return domain.Reconciliation{}, fmt.Errorf("%w: summing payments: %w", domain.ErrMath, err)
		}
		abonado = sum
	}
	abonado = currency.Round2(abonado)

	faltante := currency.Zero()
	if abonado.Cmp(total) < 0 {
		diff, err := total.Sub(abonado)
		if err != nil {
			return domain.Reconciliation{}, fmt.Errorf("%w: remaining amount: %w", domain.ErrMath, err)
		}
		faltante = currency.Round2(diff)
	}

	status := domain.PaymentStatusIncomplete
	if abonado.Cmp(total) >= 0 {
		status = domain.PaymentStatusComplete
	}

	var unconvertible []domain.Currency
	for c := range seen {
		unconvertible = append(unconvertible, c)
	}
	sort.Slice(unconvertible, func(i, j int) bool { return unconvertible[i] < unconvertible[j] })

	return domain.Reconciliation{
		Abonado:       abonado,
		Faltante:      faltante,
		EstadoPago:    status,
		Unconvertible: unconvertible,
	}, nil
}
