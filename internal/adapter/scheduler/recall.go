package scheduler

import (
	"context"

	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"github.com/MikeRez0/lavanderia/internal/core/port"
)

// RecallOrders queues every order, so settings changed while the service was
// down reach them on startup.
func RecallOrders(ctx context.Context, repo port.Repository, scheduler port.ReconcileScheduler) error {
	ids, err := repo.ListOrderIDs(ctx, domain.OrderFilter{})
	if err != nil {
		return err
	}
	for _, id := range ids {
		scheduler.ScheduleOrderReconcile(id)
	}

	return nil
}
