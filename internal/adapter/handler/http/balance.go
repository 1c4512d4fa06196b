package http

import (
	"github.com/MikeRez0/lavanderia/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BalanceHandler struct {
	Handler
	service port.Service
}

func NewBalanceHandler(service port.Service, logger *zap.Logger) (*BalanceHandler, error) {
	return &BalanceHandler{
		Handler: Handler{logger: logger},
		service: service,
	}, nil
}

type balanceResponse struct {
	Order         OrderResp         `json:"order"`
	Principal     string            `json:"monedaPrincipal"`
	FaltanteIn    map[string]string `json:"faltanteEn"`
	Unconvertible []string          `json:"sinTasa,omitempty"`
}

// OrderBalance shows what is still owed, in the principal currency and in every
// secondary currency with a rate.
func (bh *BalanceHandler) OrderBalance(ctx *gin.Context) {
	id, err := idParam(ctx, "id")
	if err != nil {
		bh.handleValidationError(ctx, err)
		return
	}

	balance, err := bh.service.GetOrderBalance(ctx, id)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	resp := balanceResponse{
		Order:      newOrderResp(balance.Order),
		Principal:  string(balance.Principal),
		FaltanteIn: make(map[string]string, len(balance.FaltanteIn)),
	}
	for c, amount := range balance.FaltanteIn {
		resp.FaltanteIn[string(c)] = formatAmount(amount)
	}
	for _, c := range balance.Unconvertible {
		resp.Unconvertible = append(resp.Unconvertible, string(c))
	}

	bh.handleSuccess(ctx, resp)
}
