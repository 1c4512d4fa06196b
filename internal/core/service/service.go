package service

import (
	"errors"

	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"github.com/MikeRez0/lavanderia/internal/core/port"
	"go.uber.org/zap"
)

type Service struct {
	repo         port.Repository
	tokenService port.TokenService
	scheduler    port.ReconcileScheduler
	metrics      port.ReconcileMetrics
	logger       *zap.Logger
	strictRates  bool
}

type Option func(*Service)

// WithStrictRates makes payment creation and update fail with
// domain.ErrUnconvertibleCurrency when the payment currency has no usable rate.
func WithStrictRates(strict bool) Option {
	return func(s *Service) {
		s.strictRates = strict
	}
}

func NewService(repo port.Repository, tokenService port.TokenService,
	scheduler port.ReconcileScheduler, metrics port.ReconcileMetrics,
	logger *zap.Logger, opts ...Option) (*Service, error) {
	s := &Service{
		repo:         repo,
		tokenService: tokenService,
		scheduler:    scheduler,
		metrics:      metrics,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

var passthroughErrors = []error{
	domain.ErrDataNotFound,
	domain.ErrConflictingData,
	domain.ErrMath,
	domain.ErrInvalidAmount,
	domain.ErrAmountOutOfRange,
	domain.ErrInvalidItems,
	domain.ErrUnknownCurrency,
	domain.ErrUnknownPaymentMethod,
	domain.ErrChangeNotAllowed,
	domain.ErrInvalidRate,
	domain.ErrUnconvertibleCurrency,
	domain.ErrPaymentNotInOrder,
	domain.ErrBadRequest,
}

// storageError keeps business errors as they are and hides everything else
// behind domain.ErrInternal after logging it.
func (s *Service) storageError(msg string, err error) error {
	for _, e := range passthroughErrors {
		if errors.Is(err, e) {
			return err
		}
	}
	s.logger.Error(msg, zap.Error(err))
	return domain.ErrInternal
}
