package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"vgsales/backend/internal/query"
)

// region --- Filters ---

func (h *Handler) genreFilter(c *gin.Context) (query.GenreFilter, error) {
	limit, err := h.queryLimit(c, DefaultGenreLimit)
	return query.GenreFilter{Genre: c.Query("genre"), Limit: limit}, err
}

func (h *Handler) yearFilter(c *gin.Context) (query.YearPlatformFilter, error) {
	limit, err := h.queryLimit(c, DefaultYearLimit)
	return query.YearPlatformFilter{Year: c.Query("year"), Platform: c.Query("platform"), Limit: limit}, err
}

func (h *Handler) regionFilter(c *gin.Context, param string) (query.RegionFilter, error) {
	limit, err := h.queryLimit(c, DefaultTopSalesLimit)
	return query.RegionFilter{Region: c.Query(param), Limit: limit}, err
}

// endregion

// region --- Record Handlers ---

// GamesByGenre godoc
// @Summary      Games by genre
// @Description  Lists releases whose genre name contains the term, case-insensitively.
// @Tags         games
// @Produce      json
// @Param        genre   query     string  false  "Genre substring"
// @Param        limit   query     int     false  "Maximum rows"  default(50)
// @Param        engine  query     string  false  "sql or memory" default(sql)
// @Success      200     {array}   query.GameRow
// @Failure      400     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse "Backend query failed"
// @Router       /games/genre [get]
func (h *Handler) GamesByGenre(c *gin.Context) {
	f, err := h.genreFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}
	rows, err := call(h, c, query.EngineSQL, func(ctx context.Context, e query.Engine) ([]query.GameRow, error) {
		return e.GamesByGenre(ctx, f)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GamesByYear godoc
// @Summary      Games by release year and platform
// @Description  Lists releases whose year contains the year term and whose platform name contains the platform term.
// @Tags         games
// @Produce      json
// @Param        year      query     string  false  "Year substring"
// @Param        platform  query     string  false  "Platform substring"
// @Param        limit     query     int     false  "Maximum rows"  default(50)
// @Param        engine    query     string  false  "sql or memory" default(sql)
// @Success      200       {array}   query.GameRow
// @Failure      400       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse "Backend query failed"
// @Router       /games/year [get]
func (h *Handler) GamesByYear(c *gin.Context) {
	f, err := h.yearFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}
	rows, err := call(h, c, query.EngineSQL, func(ctx context.Context, e query.Engine) ([]query.GameRow, error) {
		return e.GamesByYear(ctx, f)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// TopSales godoc
// @Summary      Top games by sales
// @Description  Sums sales per game over regions whose name contains the term, highest first.
// @Tags         games
// @Produce      json
// @Param        region  query     string  false  "Region substring"
// @Param        limit   query     int     false  "Maximum rows"  default(10)
// @Param        engine  query     string  false  "sql or memory" default(sql)
// @Success      200     {array}   query.SalesRow
// @Failure      400     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse "Backend query failed"
// @Router       /games/top_sales [get]
func (h *Handler) TopSales(c *gin.Context) {
	f, err := h.regionFilter(c, "region")
	if err != nil {
		respondError(c, err)
		return
	}
	rows, err := call(h, c, query.EngineSQL, func(ctx context.Context, e query.Engine) ([]query.SalesRow, error) {
		return e.TopSales(ctx, f)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// TopPublishers godoc
// @Summary      Top publishers
// @Description  Counts distinct games per publisher, highest first.
// @Tags         publishers
// @Produce      json
// @Param        limit   path      int     true   "Maximum rows"
// @Param        engine  query     string  false  "sql or memory" default(sql)
// @Success      200     {array}   query.PublisherRow
// @Failure      400     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse "Backend query failed"
// @Router       /publishers/top/{limit} [get]
func (h *Handler) TopPublishers(c *gin.Context) {
	limit, err := h.pathLimit(c)
	if err != nil {
		respondError(c, err)
		return
	}
	rows, err := call(h, c, query.EngineSQL, func(ctx context.Context, e query.Engine) ([]query.PublisherRow, error) {
		return e.TopPublishers(ctx, limit)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// FindGame godoc
// @Summary      Look up a game
// @Description  Resolves releases whose name contains the term, with genre and publisher. Platform and year narrow the match when given.
// @Tags         games
// @Produce      json
// @Param        game      query     string  false  "Game name substring"
// @Param        platform  query     string  false  "Platform substring"
// @Param        year      query     string  false  "Year substring"
// @Param        limit     query     int     false  "Maximum rows"  default(20)
// @Param        engine    query     string  false  "sql or memory" default(sql)
// @Success      200       {array}   query.GameDetail
// @Failure      400       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse "Backend query failed"
// @Router       /game [get]
func (h *Handler) FindGame(c *gin.Context) {
	limit, err := h.queryLimit(c, DefaultGameLimit)
	if err != nil {
		respondError(c, err)
		return
	}
	f := query.GameFilter{
		Name:     c.Query("game"),
		Platform: c.Query("platform"),
		Year:     c.Query("year"),
		Limit:    limit,
	}
	rows, err := call(h, c, query.EngineSQL, func(ctx context.Context, e query.Engine) ([]query.GameDetail, error) {
		return e.FindGame(ctx, f)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// FacetValues godoc
// @Summary      Distinct values of a field
// @Description  Lists the distinct non-empty values of one whitelisted field.
// @Tags         video_games
// @Produce      json
// @Param        field   path      string  true   "platform_name, release_year, publisher_name, genre_name or region_name"
// @Param        engine  query     string  false  "sql or memory" default(sql)
// @Success      200     {array}   string
// @Failure      400     {object}  FieldErrorResponse "Unknown field"
// @Failure      500     {object}  ErrorResponse "Backend query failed"
// @Router       /video_games/{field} [get]
func (h *Handler) FacetValues(c *gin.Context) {
	facet, err := query.ParseFacet(c.Param("field"))
	if err != nil {
		respondError(c, err)
		return
	}
	values, err := call(h, c, query.EngineSQL, func(ctx context.Context, e query.Engine) ([]string, error) {
		return e.FacetValues(ctx, facet)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

// endregion
