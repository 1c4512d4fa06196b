package service

import (
	"context"

	"github.com/MikeRez0/lavanderia/internal/core/currency"
	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"github.com/MikeRez0/lavanderia/internal/core/reconcile"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// ReconcileOrder recomputes the derived payment fields of an order without
// touching its payments.
func (s *Service) ReconcileOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return s.updateLedger(ctx, orderID, "Reconcile order", nil)
}

type ledgerMutation func(*domain.Ledger, *domain.Settings) error

// updateLedger applies mutate and then reconciles the order from its full
// payment set, all inside the repository's per-order transaction.
func (s *Service) updateLedger(ctx context.Context, orderID uint64, op string,
	mutate ledgerMutation) (*domain.Order, error) {
	var (
		result   domain.Reconciliation
		payments int
	)

	order, err := s.repo.UpdateOrderLedger(ctx, orderID,
		func(o *domain.Order, l *domain.Ledger, settings *domain.Settings) error {
			if mutate != nil {
				if err := mutate(l, settings); err != nil {
					return err
				}
			}

			total, err := totalInPrincipal(o, settings)
			if err != nil {
				return err
			}

			list := l.Payments()
			res, err := reconcile.Recompute(total, list, settings.Rates, settings.Principal)
			if err != nil {
				return err
			}
			o.Apply(res)

			result = res
			payments = len(list)
			return nil
		})
	if err != nil {
		return nil, s.storageError(op, err)
	}

	if len(result.Unconvertible) > 0 {
		s.logger.Warn("payments counted as zero, no usable conversion rate",
			zap.Uint64("order", order.ID),
			zap.Stringers("currencies", result.Unconvertible))
	}
	s.metrics.ObserveReconciliation(order, result, payments)

	return order, nil
}

// totalInPrincipal brings an order total fixed under an earlier principal
// currency into the current one.
func totalInPrincipal(o *domain.Order, settings *domain.Settings) (decimal.Decimal, error) {
	if o.Currency == "" || o.Currency == settings.Principal {
		return o.Total, nil
	}
	total, ok := currency.ToPrincipal(o.Total, o.Currency, settings.Rates, settings.Principal)
	if !ok {
		return decimal.Zero, domain.ErrUnconvertibleCurrency
	}
	return total, nil
}
