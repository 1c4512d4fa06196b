package http

import (
	"net/http"
	"time"

	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"github.com/MikeRez0/lavanderia/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Handler
	service port.Service
}

func NewPaymentHandler(service port.Service, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type changeRequest struct {
	Amount   string `json:"monto" binding:"required"`
	Currency string `json:"moneda" binding:"required,currency"`
}

type paymentRequest struct {
	Amount    string         `json:"monto" binding:"required"`
	Currency  string         `json:"moneda" binding:"required,currency"`
	Method    string         `json:"metodoPago" binding:"required,paymethod"`
	Reference string         `json:"referencia"`
	PaidAt    time.Time      `json:"fecha"`
	Change    *changeRequest `json:"vuelto"`
}

type changeResponse struct {
	Amount   string `json:"monto"`
	Currency string `json:"moneda"`
}

type paymentResponse struct {
	ID        uint64          `json:"id"`
	OrderID   uint64          `json:"orderId"`
	Amount    string          `json:"monto"`
	Currency  string          `json:"moneda"`
	Method    string          `json:"metodoPago"`
	Reference string          `json:"referencia,omitempty"`
	PaidAt    time.Time       `json:"fecha"`
	Change    *changeResponse `json:"vuelto,omitempty"`
}

func newPaymentResponse(p *domain.Payment) paymentResponse {
	r := paymentResponse{
		ID:        p.ID,
		OrderID:   p.OrderID,
		Amount:    formatAmount(p.Amount),
		Currency:  string(p.Currency),
		Method:    string(p.Method),
		Reference: p.Reference,
		PaidAt:    p.PaidAt,
	}
	if p.Change != nil {
		r.Change = &changeResponse{
			Amount:   formatAmount(p.Change.Amount),
			Currency: string(p.Change.Currency),
		}
	}
	return r
}

func (req *paymentRequest) toPayment(orderID uint64) (*domain.Payment, error) {
	amount, err := parseAmount("monto", req.Amount)
	if err != nil {
		return nil, err
	}
	p := &domain.Payment{
		OrderID:   orderID,
		Amount:    amount,
		Currency:  domain.Currency(req.Currency),
		Method:    domain.PaymentMethod(req.Method),
		Reference: req.Reference,
		PaidAt:    req.PaidAt,
	}
	if req.Change != nil {
		change, err := parseAmount("vuelto.monto", req.Change.Amount)
		if err != nil {
			return nil, err
		}
		p.Change = &domain.ChangeGiven{Amount: change, Currency: domain.Currency(req.Change.Currency)}
	}
	return p, nil
}

func (ph *PaymentHandler) ListPayments(ctx *gin.Context) {
	orderID, err := idParam(ctx, "id")
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	list, err := ph.service.ListPayments(ctx, orderID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	result := make([]paymentResponse, 0, len(list))
	for _, p := range list {
		result = append(result, newPaymentResponse(p))
	}
	ph.handleSuccess(ctx, result)
}

func (ph *PaymentHandler) CreatePayment(ctx *gin.Context) {
	orderID, err := idParam(ctx, "id")
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}
	req := paymentRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}
	payment, err := req.toPayment(orderID)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	order, err := ph.service.CreatePayment(ctx, payment)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.logger.Info("payment registered", zap.Uint64("order", orderID),
		zap.String("operator", getAuthPayload(ctx).Login),
		zap.String("estadoPago", string(order.EstadoPago)))
	ph.handleSuccessWithStatus(ctx, newOrderResp(order), http.StatusCreated)
}

func (ph *PaymentHandler) UpdatePayment(ctx *gin.Context) {
	orderID, err := idParam(ctx, "id")
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}
	paymentID, err := idParam(ctx, "paymentID")
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}
	req := paymentRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}
	payment, err := req.toPayment(orderID)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}
	payment.ID = paymentID

	order, err := ph.service.UpdatePayment(ctx, payment)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newOrderResp(order))
}

func (ph *PaymentHandler) DeletePayment(ctx *gin.Context) {
	orderID, err := idParam(ctx, "id")
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}
	paymentID, err := idParam(ctx, "paymentID")
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	order, err := ph.service.DeletePayment(ctx, orderID, paymentID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newOrderResp(order))
}
