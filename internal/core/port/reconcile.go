package port

import (
	"context"

	"github.com/MikeRez0/lavanderia/internal/core/domain"
)

//go:generate mockgen -source=reconcile.go -destination=mock/reconcile.go -package=mock
type ReconcileScheduler interface {
	ScheduleOrderReconcile(orderID uint64)
}

type OrderReconciler interface {
	ReconcileOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
}

type ReconcileMetrics interface {
	ObserveReconciliation(order *domain.Order, result domain.Reconciliation, payments int)
	ObserveRejectedPayment(reason error)
}
