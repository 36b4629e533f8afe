package relational

import (
	"context"

	"gorm.io/gorm"

	"vgsales/backend/internal/query"
)

const (
	releaseColumns = "COALESCE(game.game_name, '') AS game_name, " +
		"COALESCE(platform.platform_name, '') AS platform_name, " +
		"game_platform.release_year AS release_year"

	// Join chain order; also the in-memory iteration order.
	releaseOrder = "game.id, game_publisher.id, game_platform.id"
)

// releases joins Game→GamePublisher→GamePlatform→Platform.
func releases(tx *gorm.DB) *gorm.DB {
	return tx.Table("game").
		Joins("JOIN game_publisher ON game_publisher.game_id = game.id").
		Joins("JOIN game_platform ON game_platform.game_publisher_id = game_publisher.id").
		Joins("JOIN platform ON platform.id = game_platform.platform_id")
}

// GamesByGenre lists releases whose genre name contains f.Genre.
func (e *Engine) GamesByGenre(ctx context.Context, f query.GenreFilter) ([]query.GameRow, error) {
	if f.Limit == 0 {
		return []query.GameRow{}, nil
	}
	return run(ctx, e, query.ShapeGamesByGenre, func(tx *gorm.DB) ([]query.GameRow, error) {
		d := dialectOf(tx)
		q := releases(tx).
			Joins("JOIN genre ON genre.id = game.genre_id").
			Select(releaseColumns).
			Where(d.contains("genre.genre_name"), query.ContainsPattern(f.Genre)).
			Order(releaseOrder).
			Limit(f.Limit)
		return scan[query.GameRow](q)
	})
}

// GamesByYear lists releases whose year text contains f.Year on platforms
// whose name contains f.Platform.
func (e *Engine) GamesByYear(ctx context.Context, f query.YearPlatformFilter) ([]query.GameRow, error) {
	if f.Limit == 0 {
		return []query.GameRow{}, nil
	}
	return run(ctx, e, query.ShapeGamesByYear, func(tx *gorm.DB) ([]query.GameRow, error) {
		d := dialectOf(tx)
		q := releases(tx).
			Select(releaseColumns).
			Where(d.contains(d.yearText()), query.ContainsPattern(f.Year)).
			Where(d.contains("platform.platform_name"), query.ContainsPattern(f.Platform)).
			Order(releaseOrder).
			Limit(f.Limit)
		return scan[query.GameRow](q)
	})
}

// FindGame resolves releases by name across all five core tables. The
// platform and year filters apply only when set.
func (e *Engine) FindGame(ctx context.Context, f query.GameFilter) ([]query.GameDetail, error) {
	if f.Limit == 0 {
		return []query.GameDetail{}, nil
	}
	return run(ctx, e, query.ShapeFindGame, func(tx *gorm.DB) ([]query.GameDetail, error) {
		d := dialectOf(tx)
		q := releases(tx).
			Joins("JOIN genre ON genre.id = game.genre_id").
			Joins("JOIN publisher ON publisher.id = game_publisher.publisher_id").
			Select(releaseColumns+", "+
				"COALESCE(genre.genre_name, '') AS genre_name, "+
				"COALESCE(publisher.publisher_name, '') AS publisher_name").
			Where(d.contains("game.game_name"), query.ContainsPattern(f.Name))
		if f.Platform != "" {
			q = q.Where(d.contains("platform.platform_name"), query.ContainsPattern(f.Platform))
		}
		if f.Year != "" {
			q = q.Where(d.contains(d.yearText()), query.ContainsPattern(f.Year))
		}
		return scan[query.GameDetail](q.Order(releaseOrder).Limit(f.Limit))
	})
}

// TopSales sums num_sales per game name over regions whose name contains
// f.Region, highest first. Totals are ranked after rounding to hundredths so
// equal figures tie and fall back to the smallest game id.
func (e *Engine) TopSales(ctx context.Context, f query.RegionFilter) ([]query.SalesRow, error) {
	if f.Limit == 0 {
		return []query.SalesRow{}, nil
	}
	return run(ctx, e, query.ShapeTopSales, func(tx *gorm.DB) ([]query.SalesRow, error) {
		d := dialectOf(tx)
		name := d.exact("game.game_name")
		q := tx.Table("region_sales").
			Joins("JOIN region ON region.id = region_sales.region_id").
			Joins("JOIN game_platform ON game_platform.id = region_sales.game_platform_id").
			Joins("JOIN game_publisher ON game_publisher.id = game_platform.game_publisher_id").
			Joins("JOIN game ON game.id = game_publisher.game_id").
			Select(name+" AS game_name, "+
				d.roundedSum("region_sales.num_sales")+" AS total_sales, "+
				"MIN(game.id) AS first_id").
			Where(d.contains("region.region_name"), query.ContainsPattern(f.Region)).
			Where("game.game_name IS NOT NULL").
			Group(name).
			Order("total_sales DESC, first_id ASC").
			Limit(f.Limit)
		rows, err := scan[query.SalesRow](q)
		for i := range rows {
			rows[i].TotalSales = query.RoundSales(rows[i].TotalSales)
		}
		return rows, err
	})
}

// TopPublishers counts distinct games per publisher name, highest first.
func (e *Engine) TopPublishers(ctx context.Context, limit int) ([]query.PublisherRow, error) {
	if limit == 0 {
		return []query.PublisherRow{}, nil
	}
	return run(ctx, e, query.ShapeTopPublishers, func(tx *gorm.DB) ([]query.PublisherRow, error) {
		name := dialectOf(tx).exact("publisher.publisher_name")
		q := tx.Table("publisher").
			Joins("JOIN game_publisher ON game_publisher.publisher_id = publisher.id").
			Select(name+" AS publisher_name, "+
				"COUNT(DISTINCT game_publisher.game_id) AS game_count, "+
				"MIN(publisher.id) AS first_id").
			Where("publisher.publisher_name IS NOT NULL").
			Group(name).
			Order("game_count DESC, first_id ASC").
			Limit(limit)
		return scan[query.PublisherRow](q)
	})
}

// FacetValues returns the distinct non-null values of one facet column.
// Table and column come from the closed facet enumeration, never from the
// caller.
func (e *Engine) FacetValues(ctx context.Context, facet query.Facet) ([]string, error) {
	col, ok := facet.Column()
	if !ok {
		_, err := query.ParseFacet(facet.String())
		return nil, err
	}
	return run(ctx, e, query.ShapeFacet, func(tx *gorm.DB) ([]string, error) {
		q := tx.Table(col.Table).
			Where(col.Column + " IS NOT NULL")

		if col.Numeric {
			var years []int64
			if err := q.Order(col.Column).Distinct().Pluck(col.Column, &years).Error; err != nil {
				return nil, err
			}
			values := make([]string, len(years))
			for i, y := range years {
				values[i] = query.YearText(y)
			}
			return values, nil
		}

		value := dialectOf(tx).exact(col.Column)
		var values []string
		err := q.Where(col.Column + " <> ''").Order(value).Distinct().Pluck(value, &values).Error
		return values, err
	})
}
