package port

import (
	"context"

	"github.com/MikeRez0/lavanderia/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, login string, password string) (string, error)

	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error)
	GetOrderBalance(ctx context.Context, orderID uint64) (*domain.OrderBalance, error)

	ListPayments(ctx context.Context, orderID uint64) ([]*domain.Payment, error)
	CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Order, error)
	UpdatePayment(ctx context.Context, payment *domain.Payment) (*domain.Order, error)
	DeletePayment(ctx context.Context, orderID uint64, paymentID uint64) (*domain.Order, error)
	ReconcileOrder(ctx context.Context, orderID uint64) (*domain.Order, error)

	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, settings *domain.Settings) (*domain.Settings, error)
}
