package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vgsales/backend/internal/logging"
	"vgsales/backend/internal/metrics"
	"vgsales/backend/internal/query"
	"vgsales/backend/internal/render"
	"vgsales/backend/internal/snapshot"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"backend query failed: top_sales: connection refused"`
}

// FieldErrorResponse is returned for an unknown facet field.
type FieldErrorResponse struct {
	Error       string   `json:"error" example:"invalid field \"color\", valid options: platform_name, release_year, publisher_name, genre_name, region_name"`
	ValidFields []string `json:"valid_fields"`
}

// Options tunes request handling.
type Options struct {
	// Timeout bounds every engine call of a request.
	Timeout time.Duration
	// MaxLimit clamps caller-supplied limits.
	MaxLimit int
}

// Handler serves the analytics endpoints over both engines.
type Handler struct {
	engines map[string]query.Engine
	snap    *snapshot.Snapshot
	opts    Options
}

// New returns a handler dispatching to sqlEngine and memEngine. snap backs
// the readiness probe.
func New(sqlEngine, memEngine query.Engine, snap *snapshot.Snapshot, opts Options) *Handler {
	return &Handler{
		engines: map[string]query.Engine{
			query.EngineSQL:    sqlEngine,
			query.EngineMemory: memEngine,
		},
		snap: snap,
		opts: opts,
	}
}

// Router builds the gin engine with middleware, templates and every route.
func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), logging.GinLogger(), metrics.Middleware())
	router.SetHTMLTemplate(render.Templates())
	h.Register(router)
	return router
}

// Register mounts the routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/ping", Ping)
	r.GET("/ready", h.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	games := r.Group("/games")
	{
		games.GET("/genre", h.GamesByGenre)
		games.GET("/genre/table", h.GamesByGenreTable)
		games.GET("/genre/grafic", h.GamesByGenreChart)

		games.GET("/year", h.GamesByYear)
		games.GET("/year/table", h.GamesByYearTable)

		games.GET("/top_sales", h.TopSales)
		games.GET("/top_sales/table", h.TopSalesTable)
		games.GET("/top_sales/grafic", h.TopSalesChart)
	}

	publishers := r.Group("/publishers")
	{
		publishers.GET("/top/:limit", h.TopPublishers)
		publishers.GET("/top/:limit/table", h.TopPublishersTable)
		publishers.GET("/top/:limit/grafic", h.TopPublishersChart)
	}

	r.GET("/game", h.FindGame)
	r.GET("/video_games/:field", h.FacetValues)
}

// engine picks the engine named by the "engine" query parameter, or def.
func (h *Handler) engine(c *gin.Context, def string) (query.Engine, error) {
	name := c.DefaultQuery("engine", def)
	e, ok := h.engines[name]
	if !ok {
		return nil, fmt.Errorf("%w: engine must be %q or %q, got %q",
			query.ErrInvalidInput, query.EngineSQL, query.EngineMemory, name)
	}
	return e, nil
}

// call runs fn on the selected engine under the request deadline.
func call[T any](h *Handler, c *gin.Context, def string, fn func(context.Context, query.Engine) (T, error)) (T, error) {
	var zero T
	e, err := h.engine(c, def)
	if err != nil {
		return zero, err
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.opts.Timeout)
	defer cancel()
	return fn(ctx, e)
}

// respondError converts err to the uniform error response.
func respondError(c *gin.Context, err error) {
	var fieldErr *query.InvalidFieldError
	switch {
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusBadRequest, FieldErrorResponse{Error: err.Error(), ValidFields: fieldErr.Valid})
	case errors.Is(err, query.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, render.ErrNoData):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, query.ErrTableUnavailable):
		logging.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("snapshot table unavailable")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		logging.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
