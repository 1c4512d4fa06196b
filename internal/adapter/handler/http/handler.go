package http

import (
	"errors"
	"net/http"

	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrMath:            http.StatusUnprocessableEntity,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrInvalidCredentials:         http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,

	domain.ErrNoUpdatedData: http.StatusBadRequest,
	domain.ErrBadRequest:    http.StatusBadRequest,

	domain.ErrInvalidAmount:         http.StatusBadRequest,
	domain.ErrAmountOutOfRange:      http.StatusBadRequest,
	domain.ErrInvalidItems:          http.StatusBadRequest,
	domain.ErrUnknownCurrency:       http.StatusBadRequest,
	domain.ErrUnknownPaymentMethod:  http.StatusBadRequest,
	domain.ErrChangeNotAllowed:      http.StatusBadRequest,
	domain.ErrInvalidRate:           http.StatusBadRequest,
	domain.ErrUnconvertibleCurrency: http.StatusUnprocessableEntity,
	domain.ErrPaymentNotInOrder:     http.StatusNotFound,
}

// errorStatus matches wrapped errors too.
func errorStatus(err error) (int, bool) {
	if status, ok := errorStatusMap[err]; ok {
		return status, true
	}
	for e, status := range errorStatusMap {
		if errors.Is(err, e) {
			return status, true
		}
	}
	return http.StatusInternalServerError, false
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for a request that failed binding
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	h.logger.Debug("invalid request", zap.Error(err), zap.String("requestID", requestID(ctx)))
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// abort sends an error response and stops the handler chain
func abort(ctx *gin.Context, err error) {
	status, _ := errorStatus(err)
	_ = ctx.Error(err)
	ctx.AbortWithStatusJSON(status, errorResponse{Error: err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	status, ok := errorStatus(err)
	if !ok {
		h.logger.Error("error processing request", zap.Error(err), zap.String("requestID", requestID(ctx)))
		err = domain.ErrInternal
	}
	ctx.JSON(status, errorResponse{Error: err.Error()})
}

// handleSuccessWithStatus sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
