package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"vgsales/backend/internal/query"
)

// Default limits per question shape.
const (
	DefaultGenreLimit     = 50
	DefaultYearLimit      = 50
	DefaultTopSalesLimit  = 10
	DefaultPublisherLimit = 10
	DefaultGameLimit      = 20
)

// parseLimit reads a limit; empty means def. Negative or non-numeric values
// are invalid input, large ones are clamped to MaxLimit.
func (h *Handler) parseLimit(raw string, def int) (int, error) {
	if raw == "" {
		return query.ClampLimit(def, h.opts.MaxLimit), nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, query.InvalidLimit(raw)
	}
	return query.ClampLimit(limit, h.opts.MaxLimit), nil
}

func (h *Handler) queryLimit(c *gin.Context, def int) (int, error) {
	return h.parseLimit(c.Query("limit"), def)
}

func (h *Handler) pathLimit(c *gin.Context) (int, error) {
	return h.parseLimit(c.Param("limit"), DefaultPublisherLimit)
}
