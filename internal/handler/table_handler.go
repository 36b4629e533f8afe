package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vgsales/backend/internal/query"
	"vgsales/backend/internal/render"
)

// GamesByGenreTable godoc
// @Summary      Games by genre as an HTML table
// @Tags         tables
// @Produce      html
// @Param        genre   query     string  false  "Genre substring"
// @Param        limit   query     int     false  "Maximum rows"  default(50)
// @Param        engine  query     string  false  "sql or memory" default(memory)
// @Success      200     {string}  string  "HTML table"
// @Failure      400     {object}  ErrorResponse
// @Failure      503     {object}  ErrorResponse "Snapshot table unavailable"
// @Router       /games/genre/table [get]
func (h *Handler) GamesByGenreTable(c *gin.Context) {
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
	c.HTML(http.StatusOK, render.TableTemplate, render.GameTable(fmt.Sprintf("Games by genre: %q", f.Genre), rows))
}

// GamesByYearTable godoc
// @Summary      Games by year and platform as an HTML table
// @Tags         tables
// @Produce      html
// @Param        year      query     string  false  "Year substring"
// @Param        platform  query     string  false  "Platform substring"
// @Param        limit     query     int     false  "Maximum rows"  default(50)
// @Param        engine    query     string  false  "sql or memory" default(memory)
// @Success      200       {string}  string  "HTML table"
// @Failure      400       {object}  ErrorResponse
// @Failure      503       {object}  ErrorResponse "Snapshot table unavailable"
// @Router       /games/year/table [get]
func (h *Handler) GamesByYearTable(c *gin.Context) {
	f, err := h.yearFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}
	rows, err := call(h, c, query.EngineMemory, func(ctx context.Context, e query.Engine) ([]query.GameRow, error) {
		return e.GamesByYear(ctx, f)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	title := fmt.Sprintf("Games by year %q on platform %q", f.Year, f.Platform)
	c.HTML(http.StatusOK, render.TableTemplate, render.GameTable(title, rows))
}

// TopSalesTable godoc
// @Summary      Top games by sales as an HTML table
// @Tags         tables
// @Produce      html
// @Param        region_name  query     string  false  "Region substring"
// @Param        limit        query     int     false  "Maximum rows"  default(10)
// @Param        engine       query     string  false  "sql or memory" default(memory)
// @Success      200          {string}  string  "HTML table"
// @Failure      400          {object}  ErrorResponse
// @Failure      503          {object}  ErrorResponse "Snapshot table unavailable"
// @Router       /games/top_sales/table [get]
func (h *Handler) TopSalesTable(c *gin.Context) {
	f, err := h.regionFilter(c, "region_name")
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
	title := fmt.Sprintf("Top %d games by sales in region %q", f.Limit, f.Region)
	c.HTML(http.StatusOK, render.TableTemplate, render.SalesTable(title, rows))
}

// TopPublishersTable godoc
// @Summary      Top publishers as an HTML table
// @Tags         tables
// @Produce      html
// @Param        limit   path      int     true   "Maximum rows"
// @Param        engine  query     string  false  "sql or memory" default(memory)
// @Success      200     {string}  string  "HTML table"
// @Failure      400     {object}  ErrorResponse
// @Failure      503     {object}  ErrorResponse "Snapshot table unavailable"
// @Router       /publishers/top/{limit}/table [get]
func (h *Handler) TopPublishersTable(c *gin.Context) {
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
	c.HTML(http.StatusOK, render.TableTemplate, render.PublisherTable(fmt.Sprintf("Top %d publishers by games", limit), rows))
}
