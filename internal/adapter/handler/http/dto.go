package http

import (
	"fmt"
	"strconv"

	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
)

// Money crosses the API as decimal strings.

func parseAmount(field, s string) (decimal.Decimal, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s: %w", domain.ErrBadRequest, field, err)
	}
	return d, nil
}

func formatAmount(d decimal.Decimal) string {
	return d.Round(2).Pad(2).String()
}

func idParam(ctx *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrBadRequest, name)
	}
	return id, nil
}
