package http

import (
	"net/http"
	"time"

	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"github.com/MikeRez0/lavanderia/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type orderItemRequest struct {
	Description string `json:"descripcion" binding:"required"`
	Quantity    string `json:"cantidad" binding:"required"`
	UnitPrice   string `json:"precioUnitario" binding:"required"`
}

type createOrderRequest struct {
	Client string             `json:"cliente" binding:"required"`
	Items  []orderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type orderItemResponse struct {
	Description string `json:"descripcion"`
	Quantity    string `json:"cantidad"`
	UnitPrice   string `json:"precioUnitario"`
}

type OrderResp struct {
	ID         uint64              `json:"id"`
	Client     string              `json:"cliente"`
	Items      []orderItemResponse `json:"items,omitempty"`
	Currency   string              `json:"moneda"`
	Total      string              `json:"total"`
	Abonado    string              `json:"abonado"`
	Faltante   string              `json:"faltante"`
	EstadoPago string              `json:"estadoPago"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

func newOrderResp(o *domain.Order) OrderResp {
	r := OrderResp{
		ID:         o.ID,
		Client:     o.Client,
		Currency:   string(o.Currency),
		Total:      formatAmount(o.Total),
		Abonado:    formatAmount(o.Abonado),
		Faltante:   formatAmount(o.Faltante),
		EstadoPago: string(o.EstadoPago),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	for _, item := range o.Items {
		r.Items = append(r.Items, orderItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity.String(),
			UnitPrice:   formatAmount(item.UnitPrice),
		})
	}
	return r
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := createOrderRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order := &domain.Order{Client: req.Client}
	for _, item := range req.Items {
		qty, err := parseAmount("cantidad", item.Quantity)
		if err != nil {
			oh.handleValidationError(ctx, err)
			return
		}
		price, err := parseAmount("precioUnitario", item.UnitPrice)
		if err != nil {
			oh.handleValidationError(ctx, err)
			return
		}
		order.Items = append(order.Items, domain.OrderItem{
			Description: item.Description,
			Quantity:    qty,
			UnitPrice:   price,
		})
	}

	created, err := oh.service.CreateOrder(ctx, order)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.logger.Info("order created", zap.Uint64("order", created.ID),
		zap.String("operator", getAuthPayload(ctx).Login))
	oh.handleSuccessWithStatus(ctx, newOrderResp(created), http.StatusCreated)
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	filter := domain.OrderFilter{EstadoPago: domain.PaymentStatus(ctx.Query("estadoPago"))}

	list, err := oh.service.ListOrders(ctx, filter)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]OrderResp, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResp(o))
	}

	oh.handleSuccess(ctx, result)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	id, err := idParam(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, id)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

func (oh *OrderHandler) ReconcileOrder(ctx *gin.Context) {
	id, err := idParam(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.ReconcileOrder(ctx, id)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}
