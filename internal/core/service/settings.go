package service

import (
	"context"
	"time"

	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"go.uber.org/zap"
)

func (s *Service) GetSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.repo.ReadSettings(ctx)
	if err != nil {
		return nil, s.storageError("Read settings", err)
	}
	return settings, nil
}

// UpdateSettings stores new rates or a new principal currency and queues every
// order for reconciliation, since derived fields depend on both.
func (s *Service) UpdateSettings(ctx context.Context, settings *domain.Settings) (*domain.Settings, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	settings.UpdatedAt = time.Now()

	updated, err := s.repo.UpdateSettings(ctx, settings)
	if err != nil {
		return nil, s.storageError("Update settings", err)
	}

	ids, err := s.repo.ListOrderIDs(ctx, domain.OrderFilter{})
	if err != nil {
		s.logger.Error("List orders for reconciliation", zap.Error(err))
		return updated, nil
	}
	for _, id := range ids {
		s.scheduler.ScheduleOrderReconcile(id)
	}
	s.logger.Info("Settings updated, orders queued for reconciliation",
		zap.Stringer("principal", updated.Principal), zap.Int("orders", len(ids)))

	return updated, nil
}
