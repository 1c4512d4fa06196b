package reconcile_test

import (
	"testing"

	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"github.com/MikeRez0/lavanderia/internal/core/reconcile"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rates = domain.ConversionRates{
	domain.CurrencyVES: decimal.NullDecimal{Decimal: decimal.MustNew(1250, 0), Valid: true},
	domain.CurrencyCOP: {},
}

func payment(id uint64, amount string, cur domain.Currency) *domain.Payment {
	return &domain.Payment{
		ID:       id,
		OrderID:  1,
		Amount:   decimal.MustParse(amount),
		Currency: cur,
		Method:   domain.PaymentMethodTransfer,
	}
}

type expected struct {
	abonado  string
	faltante string
	status   domain.PaymentStatus
}

func assertResult(t *testing.T, exp expected, r domain.Reconciliation) {
	t.Helper()
	assert.Equal(t, exp.abonado, r.Abonado.String())
	assert.Equal(t, exp.faltante, r.Faltante.String())
	assert.Equal(t, exp.status, r.EstadoPago)
}

func TestRecompute_Scenarios(t *testing.T) {
	total := decimal.MustParse("100.00")
	usd := payment(1, "60.00", domain.CurrencyUSD)
	ves := payment(2, "50000", domain.CurrencyVES)

	// A
	r, err := reconcile.Recompute(total, []*domain.Payment{usd}, rates, domain.CurrencyUSD)
	require.NoError(t, err)
	assertResult(t, expected{"60.00", "40.00", domain.PaymentStatusIncomplete}, r)

	// B
	r, err = reconcile.Recompute(total, []*domain.Payment{usd, ves}, rates, domain.CurrencyUSD)
	require.NoError(t, err)
	assertResult(t, expected{"100.00", "0.00", domain.PaymentStatusComplete}, r)

	// C
	r, err = reconcile.Recompute(total, []*domain.Payment{usd}, rates, domain.CurrencyUSD)
	require.NoError(t, err)
	assertResult(t, expected{"60.00", "40.00", domain.PaymentStatusIncomplete}, r)

	// D
	cop := payment(3, "100", domain.CurrencyCOP)
	r, err = reconcile.Recompute(total, []*domain.Payment{cop}, rates, domain.CurrencyUSD)
	require.NoError(t, err)
	assertResult(t, expected{"0.00", "100.00", domain.PaymentStatusIncomplete}, r)
	assert.Equal(t, []domain.Currency{domain.CurrencyCOP}, r.Unconvertible)
}

func TestRecompute_EdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		total    string
		payments []*domain.Payment
		exp      expected
	}{
		{
			name:  "no payments",
			total: "25.50",
			exp:   expected{"0.00", "25.50", domain.PaymentStatusIncomplete},
		},
		{
			name:  "zero total",
			total: "0",
			exp:   expected{"0.00", "0.00", domain.PaymentStatusComplete},
		},
		{
			name:     "overpayment absorbed",
			total:    "10",
			payments: []*domain.Payment{payment(1, "15", domain.CurrencyUSD)},
			exp:      expected{"15.00", "0.00", domain.PaymentStatusComplete},
		},
		{
			name:  "mixed currencies with rounding",
			total: "5",
			payments: []*domain.Payment{
				payment(1, "1000", domain.CurrencyVES),
				payment(2, "1.115", domain.CurrencyUSD),
			},
			exp: expected{"1.92", "3.08", domain.PaymentStatusIncomplete},
		},
		{
			name:     "currency without entry",
			total:    "10",
			payments: []*domain.Payment{payment(1, "10", domain.CurrencyEUR)},
			exp:      expected{"0.00", "10.00", domain.PaymentStatusIncomplete},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, err := reconcile.Recompute(decimal.MustParse(test.total), test.payments, rates, domain.CurrencyUSD)
			require.NoError(t, err)
			assertResult(t, test.exp, r)
		})
	}
}

func TestRecompute_Idempotent(t *testing.T) {
	payments := []*domain.Payment{
		payment(1, "12.34", domain.CurrencyUSD),
		payment(2, "7777", domain.CurrencyVES),
		payment(3, "5000", domain.CurrencyCOP),
	}
	first, err := reconcile.Recompute(decimal.MustParse("30"), payments, rates, domain.CurrencyUSD)
	require.NoError(t, err)
	second, err := reconcile.Recompute(decimal.MustParse("30"), payments, rates, domain.CurrencyUSD)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRecompute_Monotonic(t *testing.T) {
	total := decimal.MustParse("50")
	amounts := []struct {
		amount string
		cur    domain.Currency
	}{
		{"10", domain.CurrencyUSD},
		{"3125", domain.CurrencyVES},
		{"999", domain.CurrencyCOP},
		{"0.01", domain.CurrencyUSD},
		{"40000", domain.CurrencyVES},
		{"1", domain.CurrencyUSD},
	}

	var payments []*domain.Payment
	prev := decimal.Zero
	for i, a := range amounts {
		payments = append(payments, payment(uint64(i+1), a.amount, a.cur))
		r, err := reconcile.Recompute(total, payments, rates, domain.CurrencyUSD)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, r.Abonado.Cmp(prev), 0)
		assert.False(t, r.Faltante.IsNeg())

		want := decimal.Zero
		if r.Abonado.Cmp(total) < 0 {
			want, err = total.Sub(r.Abonado)
			require.NoError(t, err)
		}
		assert.Zero(t, r.Faltante.Cmp(want))
		assert.Equal(t, r.Abonado.Cmp(total) >= 0, r.EstadoPago == domain.PaymentStatusComplete)
		prev = r.Abonado
	}
}

func TestRecompute_ChangeIgnored(t *testing.T) {
	p := payment(1, "20", domain.CurrencyUSD)
	p.Method = domain.PaymentMethodCash
	p.Change = &domain.ChangeGiven{Amount: decimal.MustParse("5"), Currency: domain.CurrencyUSD}

	r, err := reconcile.Recompute(decimal.MustParse("20"), []*domain.Payment{p}, rates, domain.CurrencyUSD)
	require.NoError(t, err)
	assertResult(t, expected{"20.00", "0.00", domain.PaymentStatusComplete}, r)
}
