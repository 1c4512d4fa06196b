package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MikeRez0/lavanderia/internal/adapter/config"
	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"github.com/MikeRez0/lavanderia/internal/core/port"
	"go.uber.org/zap"
)

// ReconcileScheduler queues orders for background reconciliation and runs a
// fixed pool of workers over the queue.
type ReconcileScheduler struct {
	logger     *zap.Logger
	orderQueue chan uint64
	retryDelay time.Duration
	workers    int
	wg         sync.WaitGroup

	// pending tracks goroutines holding an order outside the queue.
	pending sync.WaitGroup
	mu      sync.Mutex
	stopped bool
	done    chan struct{}
}

func New(cfg *config.Reconcile, log *zap.Logger) (*ReconcileScheduler, error) {
	return &ReconcileScheduler{
		logger:     log,
		orderQueue: make(chan uint64, cfg.QueueSize),
		retryDelay: cfg.RetryDelay,
		workers:    cfg.Workers,
		done:       make(chan struct{}),
	}, nil
}

// ScheduleOrderReconcile never blocks the caller. A full queue hands the order
// to a goroutine that waits for room until the scheduler stops. Orders
// scheduled after stop are dropped; RecallOrders picks them up on next start.
func (s *ReconcileScheduler) ScheduleOrderReconcile(orderID uint64) {
	select {
	case s.orderQueue <- orderID:
		s.logger.Debug("order queued", zap.Uint64("order", orderID))
		return
	default:
	}

	if !s.hold() {
		s.logger.Info("scheduler stopped, order dropped", zap.Uint64("order", orderID))
		return
	}
	s.logger.Debug("queue full, order waits for room", zap.Uint64("order", orderID))
	go func() {
		defer s.pending.Done()
		select {
		case s.orderQueue <- orderID:
		case <-s.done:
		}
	}()
}

// hold registers a pending goroutine unless the scheduler has stopped.
func (s *ReconcileScheduler) hold() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return false
	}
	s.pending.Add(1)
	return true
}

func (s *ReconcileScheduler) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.stopped {
		s.stopped = true
		close(s.done)
	}
}

// Run starts the workers. They stop when ctx is cancelled; Wait blocks until
// all of them have returned.
func (s *ReconcileScheduler) Run(ctx context.Context, reconciler port.OrderReconciler) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		<-ctx.Done()
		s.stop()
	}()

	for range s.workers {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			for {
				select {
				case orderID := <-s.orderQueue:
					s.process(ctx, reconciler, orderID)
				case <-ctx.Done():
					s.logger.Debug("Finished worker")
					return
				}
			}
		}()
	}
}

func (s *ReconcileScheduler) Wait() {
	s.wg.Wait()
	s.pending.Wait()
}

func (s *ReconcileScheduler) process(ctx context.Context, reconciler port.OrderReconciler, orderID uint64) {
	s.logger.Debug("Start order reconciliation", zap.Uint64("order", orderID))

	order, err := reconciler.ReconcileOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Info("order gone, dropped from queue", zap.Uint64("order", orderID))
			return
		}
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("order reconciliation failed, retrying",
			zap.Uint64("order", orderID), zap.Duration("retryAfter", s.retryDelay), zap.Error(err))
		if s.hold() {
			go func() {
				defer s.pending.Done()
				s.retry(ctx, orderID)
			}()
		}
		return
	}

	s.logger.Debug("Finished order reconciliation",
		zap.Uint64("order", orderID), zap.String("estadoPago", string(order.EstadoPago)))
}

func (s *ReconcileScheduler) retry(ctx context.Context, orderID uint64) {
	t := time.NewTimer(s.retryDelay)
	defer t.Stop()

	select {
	case <-t.C:
		select {
		case s.orderQueue <- orderID:
		case <-ctx.Done():
		case <-s.done:
		}
	case <-ctx.Done():
	case <-s.done:
	}
}
