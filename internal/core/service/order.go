package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MikeRez0/lavanderia/internal/core/currency"
	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"github.com/MikeRez0/lavanderia/internal/core/reconcile"
	"github.com/govalues/decimal"
)

// CreateOrder fixes the order total from its items in the current principal
// currency and stores it with the derived fields of an empty ledger.
func (s *Service) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	total, err := itemsTotal(order.Items)
	if err != nil {
		return nil, err
	}

	settings, err := s.repo.ReadSettings(ctx)
	if err != nil {
		return nil, s.storageError("Read settings", err)
	}

	res, err := reconcile.Recompute(total, nil, settings.Rates, settings.Principal)
	if err != nil {
		return nil, err
	}

	order.ID = 0
	order.Currency = settings.Principal
	order.Total = total
	order.Apply(res)
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, s.storageError("Create order", err)
	}

	return newOrder, nil
}

func itemsTotal(items []domain.OrderItem) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Zero, domain.ErrInvalidItems
	}
	total := decimal.Zero
	for _, item := range items {
		if !item.Quantity.IsPos() || !item.UnitPrice.IsPos() {
			return decimal.Zero, domain.ErrInvalidItems
		}
		if err := domain.CheckQuantity(item.Quantity); err != nil {
			return decimal.Zero, err
		}
		if err := domain.CheckAmount(item.UnitPrice); err != nil {
			return decimal.Zero, err
		}
		line, err := item.Quantity.Mul(item.UnitPrice)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: line amount: %w", domain.ErrMath, err)
		}
		total, err = total.Add(line)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: order total: %w", domain.ErrMath, err)
		}
	}
	total = currency.Round2(total)
	if err := domain.CheckAmount(total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, s.storageError("Get order", err)
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	if filter.EstadoPago != "" && !filter.EstadoPago.IsValid() {
		return nil, domain.ErrBadRequest
	}
	list, err := s.repo.ListOrders(ctx, filter)
	if err != nil {
		return nil, s.storageError("List orders", err)
	}
	return list, nil
}

// GetOrderBalance reports what is still owed on an order in the principal
// currency and in every secondary currency that currently has a rate.
func (s *Service) GetOrderBalance(ctx context.Context, orderID uint64) (*domain.OrderBalance, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, s.storageError("Get order", err)
	}
	settings, err := s.repo.ReadSettings(ctx)
	if err != nil {
		return nil, s.storageError("Read settings", err)
	}

	balance := &domain.OrderBalance{
		Order:      order,
		Principal:  settings.Principal,
		FaltanteIn: make(map[domain.Currency]decimal.Decimal),
	}
	for _, c := range settings.Secondary() {
		amount, ok := currency.FromPrincipal(order.Faltante, c, settings.Rates, settings.Principal)
		if !ok {
			balance.Unconvertible = append(balance.Unconvertible, c)
			continue
		}
		balance.FaltanteIn[c] = amount
	}
	return balance, nil
}
