package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vgsales/backend/internal/query"
	"vgsales/backend/internal/render"
)

func respondPNG(c *gin.Context, s render.Series) {
	img, err := render.PNG(s)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", img)
}

// GamesByGenreChart godoc
// @Summary      Releases per platform for a genre
// @Description  Bar chart counting matching releases per platform. An empty result, limit 0 included, answers 404 since there is no image to draw.
// @Tags         charts
// @Produce      png
// @Param        genre   query     string  false  "Genre substring"
// @Param        limit   query     int     false  "Maximum rows"  default(50)
// @Param        engine  query     string  false  "sql or memory" default(memory)
// @Success      200     {file}    binary
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse "No data to chart"
// @Failure      503     {object}  ErrorResponse "Snapshot table unavailable"
// @Router       /games/genre/grafic [get]
func (h *Handler) GamesByGenreChart(c *gin.Context) {
	f, err := h.genreFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}
	rows, err := call(h, c, query.EngineMemory, func(ctx context.Context, e query.Engine) ([]query.GameRow, error) {
		return e.GamesByGenre(ctx, f)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondPNG(c, render.PlatformCounts(fmt.Sprintf("Games per platform, genre %q", f.Genre), rows))
}

// TopSalesChart godoc
// @Summary      Top games by sales chart
// @Description  Horizontal bar chart of total sales per game. An empty result, limit 0 included, answers 404 since there is no image to draw.
// @Tags         charts
// @Produce      png
// @Param        region  query     string  false  "Region substring"
// @Param        limit   query     int     false  "Maximum rows"  default(10)
// @Param        engine  query     string  false  "sql or memory" default(memory)
// @Success      200     {file}    binary
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse "No data to chart"
// @Failure      503     {object}  ErrorResponse "Snapshot table unavailable"
// @Router       /games/top_sales/grafic [get]
func (h *Handler) TopSalesChart(c *gin.Context) {
	f, err := h.regionFilter(c, "region")
	if err != nil {
		respondError(c, err)
		return
	}
	rows, err := call(h, c, query.EngineMemory, func(ctx context.Context, e query.Engine) ([]query.SalesRow, error) {
		return e.TopSales(ctx, f)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondPNG(c, render.SalesBars(fmt.Sprintf("Top %d games by sales, region %q", f.Limit, f.Region), rows))
}

// TopPublishersChart godoc
// @Summary      Top publishers chart
// @Description  Horizontal bar chart of distinct games per publisher. An empty result, limit 0 included, answers 404 since there is no image to draw.
// @Tags         charts
// @Produce      png
// @Param        limit   path      int     true   "Maximum rows"
// @Param        engine  query     string  false  "sql or memory" default(memory)
// @Success      200     {file}    binary
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse "No data to chart"
// @Failure      503     {object}  ErrorResponse "Snapshot table unavailable"
// @Router       /publishers/top/{limit}/grafic [get]
func (h *Handler) TopPublishersChart(c *gin.Context) {
	limit, err := h.pathLimit(c)
	if err != nil {
		respondError(c, err)
		return
	}
	rows, err := call(h, c, query.EngineMemory, func(ctx context.Context, e query.Engine) ([]query.PublisherRow, error) {
		return e.TopPublishers(ctx, limit)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondPNG(c, render.PublisherBars(fmt.Sprintf("Top %d publishers by games", limit), rows))
}
