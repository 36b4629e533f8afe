// Package memory answers the analytics questions by joining, filtering and
// aggregating the tables of a snapshot. It never touches the store and
// never blocks.
//
// Each shape mirrors its relational counterpart: the same foreign-key
// chain, case-insensitive contains filters that never match NULL, the same
// sort keys and tie-breaks, truncation after sorting.
package memory

import (
	"context"
	"sort"
	"time"

	"vgsales/backend/internal/metrics"
	"vgsales/backend/internal/models"
	"vgsales/backend/internal/query"
	"vgsales/backend/internal/snapshot"
)

// Engine computes answers from a read-only snapshot; it is safe for
// concurrent use.
type Engine struct {
	snap *snapshot.Snapshot
}

var _ query.Engine = (*Engine)(nil)

// New returns an engine over snap.
func New(snap *snapshot.Snapshot) *Engine {
	return &Engine{snap: snap}
}

// Name implements query.Engine.
func (e *Engine) Name() string { return query.EngineMemory }

func (e *Engine) require(tables ...string) error {
	for _, t := range tables {
		if !e.snap.Has(t) {
			return query.TableUnavailable(t)
		}
	}
	return nil
}

func observe[T any](ctx context.Context, shape string, fn func() ([]T, error)) ([]T, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := fn()
	metrics.ObserveQuery(query.EngineMemory, shape, start, err)
	return rows, err
}

var releaseTables = []string{
	models.TableGame, models.TableGamePublisher, models.TableGamePlatform, models.TablePlatform,
}

// releases joins Game→GamePublisher→GamePlatform→Platform, ordered by
// game.id, game_publisher.id, game_platform.id. keep filters rows during
// the scan.
func (e *Engine) releases(keep func(release) bool) []release {
	byGame := groupBy(e.snap.GamePublishers, func(r models.GamePublisher) int64 { return r.GameID })
	byGamePublisher := groupBy(e.snap.GamePlatforms, func(r models.GamePlatform) int64 { return r.GamePublisherID })
	platforms := byID(e.snap.Platforms, func(r models.Platform) int64 { return r.ID })

	var out []release
	for _, g := range e.snap.Games {
		for _, gp := range byGame[g.ID] {
			for _, gpl := range byGamePublisher[gp.ID] {
				p, ok := platforms[gpl.PlatformID]
				if !ok {
					continue
				}
				r := release{game: g, gamePublisher: gp, gamePlatform: gpl, platform: p}
				if keep(r) {
					out = append(out, r)
				}
			}
		}
	}
	return out
}

func gameRows(releases []release) []query.GameRow {
	rows := make([]query.GameRow, len(releases))
	for i, r := range releases {
		rows[i] = query.GameRow{
			GameName:     r.gameName(),
			PlatformName: r.platformName(),
			ReleaseYear:  r.year(),
		}
	}
	return rows
}

func (r release) matchYear(term string) bool {
	text, ok := r.yearText()
	return query.Contains(text, ok, term)
}

func (r release) matchPlatform(term string) bool {
	return query.Contains(r.platform.Name.String, r.platform.Name.Valid, term)
}

// GamesByGenre implements query.Engine.
func (e *Engine) GamesByGenre(ctx context.Context, f query.GenreFilter) ([]query.GameRow, error) {
	return observe(ctx, query.ShapeGamesByGenre, func() ([]query.GameRow, error) {
		if err := e.require(models.TableGenre); err != nil {
			return nil, err
		}
		if err := e.require(releaseTables...); err != nil {
			return nil, err
		}
		genres := byID(e.snap.Genres, func(r models.Genre) int64 { return r.ID })

		matched := e.releases(func(r release) bool {
			g, ok := genres[r.game.GenreID]
			return ok && query.Contains(g.Name.String, g.Name.Valid, f.Genre)
		})
		return head(gameRows(matched), f.Limit), nil
	})
}

// GamesByYear implements query.Engine.
func (e *Engine) GamesByYear(ctx context.Context, f query.YearPlatformFilter) ([]query.GameRow, error) {
	return observe(ctx, query.ShapeGamesByYear, func() ([]query.GameRow, error) {
		if err := e.require(releaseTables...); err != nil {
			return nil, err
		}
		matched := e.releases(func(r release) bool {
			return r.matchYear(f.Year) && r.matchPlatform(f.Platform)
		})
		return head(gameRows(matched), f.Limit), nil
	})
}

// FindGame implements query.Engine.
func (e *Engine) FindGame(ctx context.Context, f query.GameFilter) ([]query.GameDetail, error) {
	return observe(ctx, query.ShapeFindGame, func() ([]query.GameDetail, error) {
		if err := e.require(models.TableGenre, models.TablePublisher); err != nil {
			return nil, err
		}
		if err := e.require(releaseTables...); err != nil {
			return nil, err
		}
		genres := byID(e.snap.Genres, func(r models.Genre) int64 { return r.ID })
		publishers := byID(e.snap.Publishers, func(r models.Publisher) int64 { return r.ID })

		var rows []query.GameDetail
		for _, r := range e.releases(func(r release) bool {
			return query.Contains(r.game.Name.String, r.game.Name.Valid, f.Name) &&
				(f.Platform == "" || r.matchPlatform(f.Platform)) &&
				(f.Year == "" || r.matchYear(f.Year))
		}) {
			g, ok := genres[r.game.GenreID]
			if !ok {
				continue
			}
			p, ok := publishers[r.gamePublisher.PublisherID]
			if !ok {
				continue
			}
			rows = append(rows, query.GameDetail{
				GameName:      r.gameName(),
				PlatformName:  r.platformName(),
				ReleaseYear:   r.year(),
				GenreName:     g.Name.String,
				PublisherName: p.Name.String,
			})
		}
		return head(rows, f.Limit), nil
	})
}

// TopSales implements query.Engine.
func (e *Engine) TopSales(ctx context.Context, f query.RegionFilter) ([]query.SalesRow, error) {
	return observe(ctx, query.ShapeTopSales, func() ([]query.SalesRow, error) {
		if err := e.require(models.TableRegionSales, models.TableRegion, models.TableGamePlatform,
			models.TableGamePublisher, models.TableGame); err != nil {
			return nil, err
		}
		regions := byID(e.snap.Regions, func(r models.Region) int64 { return r.ID })
		gamePlatforms := byID(e.snap.GamePlatforms, func(r models.GamePlatform) int64 { return r.ID })
		gamePublishers := byID(e.snap.GamePublishers, func(r models.GamePublisher) int64 { return r.ID })
		games := byID(e.snap.Games, func(r models.Game) int64 { return r.ID })

		// Totals are ranked after rounding so equal figures tie exactly, as
		// they do under the store's rounded sum.
		groups := make(map[string]int)
		var rows []query.SalesRow
		var sums []query.SalesSum
		for _, rs := range e.snap.RegionSales {
			region, ok := regions[rs.RegionID]
			if !ok || !query.Contains(region.Name.String, region.Name.Valid, f.Region) {
				continue
			}
			gpl, ok := gamePlatforms[rs.GamePlatformID]
			if !ok {
				continue
			}
			gp, ok := gamePublishers[gpl.GamePublisherID]
			if !ok {
				continue
			}
			game, ok := games[gp.GameID]
			if !ok || !game.Name.Valid {
				continue
			}

			i, seen := groups[game.Name.String]
			if !seen {
				i = len(rows)
				groups[game.Name.String] = i
				rows = append(rows, query.SalesRow{GameName: game.Name.String, FirstID: game.ID})
				sums = append(sums, query.SalesSum{})
			}
			if rs.NumSales.Valid {
				sums[i].Add(rs.NumSales.Float64)
			}
			if game.ID < rows[i].FirstID {
				rows[i].FirstID = game.ID
			}
		}

		for i := range rows {
			rows[i].TotalSales = sums[i].Total()
		}
		sort.SliceStable(rows, func(a, b int) bool {
			if rows[a].TotalSales != rows[b].TotalSales {
				return rows[a].TotalSales > rows[b].TotalSales
			}
			return rows[a].FirstID < rows[b].FirstID
		})
		return head(rows, f.Limit), nil
	})
}

// TopPublishers implements query.Engine.
func (e *Engine) TopPublishers(ctx context.Context, limit int) ([]query.PublisherRow, error) {
	return observe(ctx, query.ShapeTopPublishers, func() ([]query.PublisherRow, error) {
		if err := e.require(models.TablePublisher, models.TableGamePublisher); err != nil {
			return nil, err
		}
		publishers := byID(e.snap.Publishers, func(r models.Publisher) int64 { return r.ID })

		groups := make(map[string]int)
		games := make(map[string]map[int64]struct{})
		var rows []query.PublisherRow
		for _, gp := range e.snap.GamePublishers {
			p, ok := publishers[gp.PublisherID]
			if !ok || !p.Name.Valid {
				continue
			}
			i, seen := groups[p.Name.String]
			if !seen {
				i = len(rows)
				groups[p.Name.String] = i
				games[p.Name.String] = make(map[int64]struct{})
				rows = append(rows, query.PublisherRow{PublisherName: p.Name.String, FirstID: p.ID})
			}
			games[p.Name.String][gp.GameID] = struct{}{}
			if p.ID < rows[i].FirstID {
				rows[i].FirstID = p.ID
			}
		}
		for i := range rows {
			rows[i].GameCount = int64(len(games[rows[i].PublisherName]))
		}

		sort.SliceStable(rows, func(a, b int) bool {
			if rows[a].GameCount != rows[b].GameCount {
				return rows[a].GameCount > rows[b].GameCount
			}
			return rows[a].FirstID < rows[b].FirstID
		})
		return head(rows, limit), nil
	})
}
