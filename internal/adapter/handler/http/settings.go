package http

import (
	"time"

	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"github.com/MikeRez0/lavanderia/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	Handler
	service port.Service
}

func NewSettingsHandler(service port.Service, logger *zap.Logger) (*SettingsHandler, error) {
	return &SettingsHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

// A null rate keeps the currency listed but unconvertible.
type settingsRequest struct {
	Principal string             `json:"monedaPrincipal" binding:"required,currency"`
	Rates     map[string]*string `json:"tasas"`
}

type settingsResponse struct {
	Principal string             `json:"monedaPrincipal"`
	Rates     map[string]*string `json:"tasas"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func newSettingsResponse(s *domain.Settings) settingsResponse {
	r := settingsResponse{
		Principal: string(s.Principal),
		Rates:     make(map[string]*string, len(s.Rates)),
		UpdatedAt: s.UpdatedAt,
	}
	for c, rate := range s.Rates {
		if !rate.Valid {
			r.Rates[string(c)] = nil
			continue
		}
		v := rate.Decimal.String()
		r.Rates[string(c)] = &v
	}
	return r
}

func (sh *SettingsHandler) GetSettings(ctx *gin.Context) {
	settings, err := sh.service.GetSettings(ctx)
	if err != nil {
		sh.handleError(ctx, err)
		return
	}
	sh.handleSuccess(ctx, newSettingsResponse(settings))
}

func (sh *SettingsHandler) UpdateSettings(ctx *gin.Context) {
	req := settingsRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sh.handleValidationError(ctx, err)
		return
	}

	settings := &domain.Settings{
		Principal: domain.Currency(req.Principal),
		Rates:     make(domain.ConversionRates, len(req.Rates)),
	}
	for code, rate := range req.Rates {
		c, err := domain.ParseCurrency(code)
		if err != nil {
			sh.handleError(ctx, err)
			return
		}
		if rate == nil {
			settings.Rates[c] = decimal.NullDecimal{}
			continue
		}
		d, err := parseAmount("tasas."+code, *rate)
		if err != nil {
			sh.handleValidationError(ctx, err)
			return
		}
		settings.Rates[c] = decimal.NullDecimal{Decimal: d, Valid: true}
	}

	updated, err := sh.service.UpdateSettings(ctx, settings)
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	sh.logger.Info("settings updated", zap.String("operator", getAuthPayload(ctx).Login),
		zap.String("principal", string(updated.Principal)))
	sh.handleSuccess(ctx, newSettingsResponse(updated))
}
