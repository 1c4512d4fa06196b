package port

import (
	"context"

	"github.com/MikeRez0/lavanderia/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByLogin(ctx context.Context, login string) (*domain.User, error)

	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error)
	ListOrderIDs(ctx context.Context, filter domain.OrderFilter) ([]uint64, error)

	// Payment
	ListPaymentsByOrder(ctx context.Context, orderID uint64) ([]*domain.Payment, error)

	// UpdateOrderLedger locks the order, loads its payments and the current
	// settings, runs updateFn, then persists the ledger mutations and the order's
	// derived fields in the same transaction.
	UpdateOrderLedger(ctx context.Context, orderID uint64, updateFn UpdateLedgerFn) (*domain.Order, error)

	// Settings
	ReadSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, settings *domain.Settings) (*domain.Settings, error)
}

type UpdateLedgerFn func(*domain.Order, *domain.Ledger, *domain.Settings) error
