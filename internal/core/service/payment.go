package service

import (
	"context"
	"time"

	"github.com/MikeRez0/lavanderia/internal/core/currency"
	"github.com/MikeRez0/lavanderia/internal/core/domain"
)

func (s *Service) ListPayments(ctx context.Context, orderID uint64) ([]*domain.Payment, error) {
	if _, err := s.repo.ReadOrder(ctx, orderID); err != nil {
		return nil, s.storageError("Get order", err)
	}
	list, err := s.repo.ListPaymentsByOrder(ctx, orderID)
	if err != nil {
		return nil, s.storageError("List payments", err)
	}
	return list, nil
}

// CreatePayment adds a payment to its order and reconciles the order in the same
// unit of work.
func (s *Service) CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Order, error) {
	if err := s.validatePayment(payment); err != nil {
		return nil, err
	}
	payment.ID = 0
	if payment.PaidAt.IsZero() {
		payment.PaidAt = time.Now()
	}

	return s.updateLedger(ctx, payment.OrderID, "Create payment",
		func(l *domain.Ledger, settings *domain.Settings) error {
			if err := s.checkRate(payment, settings); err != nil {
				return err
			}
			l.Add(payment)
			return nil
		})
}

func (s *Service) UpdatePayment(ctx context.Context, payment *domain.Payment) (*domain.Order, error) {
	if err := s.validatePayment(payment); err != nil {
		return nil, err
	}

	return s.updateLedger(ctx, payment.OrderID, "Update payment",
		func(l *domain.Ledger, settings *domain.Settings) error {
			existing, err := l.Find(payment.ID)
			if err != nil {
				return err
			}
			if payment.PaidAt.IsZero() {
				payment.PaidAt = existing.PaidAt
			}
			if err := s.checkRate(payment, settings); err != nil {
				return err
			}
			return l.Replace(payment)
		})
}

func (s *Service) DeletePayment(ctx context.Context, orderID uint64, paymentID uint64) (*domain.Order, error) {
	return s.updateLedger(ctx, orderID, "Delete payment",
		func(l *domain.Ledger, _ *domain.Settings) error {
			return l.Remove(paymentID)
		})
}

func (s *Service) validatePayment(payment *domain.Payment) error {
	if err := payment.Validate(); err != nil {
		s.metrics.ObserveRejectedPayment(err)
		return err
	}
	return nil
}

// checkRate only rejects anything in strict mode.
func (s *Service) checkRate(payment *domain.Payment, settings *domain.Settings) error {
	if !s.strictRates {
		return nil
	}
	if _, ok := currency.ToPrincipal(payment.Amount, payment.Currency, settings.Rates, settings.Principal); !ok {
		s.metrics.ObserveRejectedPayment(domain.ErrUnconvertibleCurrency)
		return domain.ErrUnconvertibleCurrency
	}
	return nil
}
