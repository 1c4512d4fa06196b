// Package metrics exposes reconciliation counters in the Prometheus format.
package metrics

import (
	"errors"
	"net/http"

	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lavanderia"

type Prometheus struct {
	registry         *prometheus.Registry
	reconciliations  *prometheus.CounterVec
	unconvertible    *prometheus.CounterVec
	rejected         *prometheus.CounterVec
	paymentsPerOrder prometheus.Histogram
}

func NewPrometheus() *Prometheus {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	p := &Prometheus{
		registry: registry,
		reconciliations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciliations_total",
			Help:      "Order reconciliations by resulting payment status.",
		}, []string{"estado_pago"}),
		unconvertible: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unconvertible_currencies_total",
			Help:      "Reconciliations that counted a currency as zero for lack of a rate.",
		}, []string{"currency"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_payments_total",
			Help:      "Payments rejected before reaching the ledger.",
		}, []string{"reason"}),
		paymentsPerOrder: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "payments_per_order",
			Help:      "Number of payments in an order at reconciliation time.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13},
		}),
	}
	registry.MustRegister(p.reconciliations, p.unconvertible, p.rejected, p.paymentsPerOrder)

	return p
}

func (p *Prometheus) ObserveReconciliation(order *domain.Order, result domain.Reconciliation, payments int) {
	p.reconciliations.WithLabelValues(string(order.EstadoPago)).Inc()
	for _, c := range result.Unconvertible {
		p.unconvertible.WithLabelValues(c.String()).Inc()
	}
	p.paymentsPerOrder.Observe(float64(payments))
}

var rejectReasons = []struct {
	err    error
	reason string
}{
	{domain.ErrInvalidAmount, "invalid_amount"},
	{domain.ErrAmountOutOfRange, "amount_out_of_range"},
	{domain.ErrUnknownCurrency, "unknown_currency"},
	{domain.ErrUnknownPaymentMethod, "unknown_method"},
	{domain.ErrChangeNotAllowed, "change_not_allowed"},
	{domain.ErrUnconvertibleCurrency, "unconvertible_currency"},
}

func (p *Prometheus) ObserveRejectedPayment(reason error) {
	label := "other"
	for _, r := range rejectReasons {
		if errors.Is(reason, r.err) {
			label = r.reason
			break
		}
	}
	p.rejected.WithLabelValues(label).Inc()
}

func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}
