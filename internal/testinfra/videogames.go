// Package testinfra provides a seeded sqlite store for tests.
//
// Fixture catalogue (ids in parentheses):
//
//	genres:     Action(1) Shooter(2) Role-Playing(3) NULL(4)
//	platforms:  PS2(1) X360(2) PS3(3) Wii(4)
//	publishers: Nintendo(1) Electronic Arts(2) Activision(3) 100%_Games(4)
//	regions:    North America(1) Europe(2) Japan(3) Other(4)
//	games:      Halo 3(1) Call of Duty: Modern Warfare(2) The Legend of Zelda(3)
//	            Final Fantasy X(4) Mystery Quest(5, NULL genre) NULL(6)
//	            Super Mario Galaxy(7)
//
// EdgeSQLite holds a second catalogue of names and figures that only agree
// across engines under byte-exact collation and hundredth-precision sums.
package testinfra

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"vgsales/backend/internal/config"
	"vgsales/backend/internal/database"
	"vgsales/backend/internal/models"
)

// OpenSQLite returns an empty, migrated store in a temp directory.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.DriverSQLite, filepath.Join(t.TempDir(), "video_games.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// SeededSQLite returns a store holding the fixture catalogue.
func SeededSQLite(t testing.TB) *gorm.DB {
	t.Helper()
	db := OpenSQLite(t)
	Seed(t, db)
	return db
}

func name(s string) sql.NullString { return sql.NullString{String: s, Valid: true} }
func year(y int64) sql.NullInt64   { return sql.NullInt64{Int64: y, Valid: true} }
func sales(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: true}
}

// Seed inserts the fixture catalogue.
func Seed(t testing.TB, db *gorm.DB) {
	t.Helper()

	genres := []models.Genre{
		{ID: 1, Name: name("Action")},
		{ID: 2, Name: name("Shooter")},
		{ID: 3, Name: name("Role-Playing")},
		{ID: 4},
	}
	platforms := []models.Platform{
		{ID: 1, Name: name("PS2")},
		{ID: 2, Name: name("X360")},
		{ID: 3, Name: name("PS3")},
		{ID: 4, Name: name("Wii")},
	}
	publishers := []models.Publisher{
		{ID: 1, Name: name("Nintendo")},
		{ID: 2, Name: name("Electronic Arts")},
		{ID: 3, Name: name("Activision")},
		{ID: 4, Name: name("100%_Games")},
	}
	regions := []models.Region{
		{ID: 1, Name: name("North America")},
		{ID: 2, Name: name("Europe")},
		{ID: 3, Name: name("Japan")},
		{ID: 4, Name: name("Other")},
	}
	games := []models.Game{
		{ID: 1, GenreID: 2, Name: name("Halo 3")},
		{ID: 2, GenreID: 2, Name: name("Call of Duty: Modern Warfare")},
		{ID: 3, GenreID: 1, Name: name("The Legend of Zelda")},
		{ID: 4, GenreID: 3, Name: name("Final Fantasy X")},
		{ID: 5, GenreID: 4, Name: name("Mystery Quest")},
		{ID: 6, GenreID: 1},
		{ID: 7, GenreID: 1, Name: name("Super Mario Galaxy")},
	}
	gamePublishers := []models.GamePublisher{
		{ID: 1, GameID: 1, PublisherID: 3},
		{ID: 2, GameID: 2, PublisherID: 3},
		{ID: 3, GameID: 3, PublisherID: 1},
		{ID: 4, GameID: 4, PublisherID: 2},
		{ID: 5, GameID: 5, PublisherID: 4},
		{ID: 6, GameID: 6, PublisherID: 1},
		{ID: 7, GameID: 7, PublisherID: 1},
		{ID: 8, GameID: 2, PublisherID: 2},
	}
	gamePlatforms := []models.GamePlatform{
		{ID: 1, GamePublisherID: 1, PlatformID: 2, ReleaseYear: year(2007)},
		{ID: 2, GamePublisherID: 2, PlatformID: 2, ReleaseYear: year(2007)},
		{ID: 3, GamePublisherID: 2, PlatformID: 3, ReleaseYear: year(2007)},
		{ID: 4, GamePublisherID: 3, PlatformID: 4, ReleaseYear: year(2006)},
		{ID: 5, GamePublisherID: 4, PlatformID: 1, ReleaseYear: year(2001)},
		{ID: 6, GamePublisherID: 5, PlatformID: 1},
		{ID: 7, GamePublisherID: 6, PlatformID: 4, ReleaseYear: year(2008)},
		{ID: 8, GamePublisherID: 7, PlatformID: 4, ReleaseYear: year(2007)},
		{ID: 9, GamePublisherID: 8, PlatformID: 3, ReleaseYear: year(2000)},
		{ID: 10, GamePublisherID: 3, PlatformID: 1, ReleaseYear: year(2000)},
	}
	regionSales := []models.RegionSales{
		{ID: 1, GamePlatformID: 1, RegionID: 1, NumSales: sales(4.75)},
		{ID: 2, GamePlatformID: 1, RegionID: 2, NumSales: sales(2.25)},
		{ID: 3, GamePlatformID: 1, RegionID: 3, NumSales: sales(0.25)},
		{ID: 4, GamePlatformID: 2, RegionID: 1, NumSales: sales(3.5)},
		{ID: 5, GamePlatformID: 3, RegionID: 1, NumSales: sales(2.0)},
		{ID: 6, GamePlatformID: 3, RegionID: 3, NumSales: sales(0.5)},
		{ID: 7, GamePlatformID: 4, RegionID: 3, NumSales: sales(1.5)},
		{ID: 8, GamePlatformID: 5, RegionID: 3, NumSales: sales(2.5)},
		{ID: 9, GamePlatformID: 6, RegionID: 2},
		{ID: 10, GamePlatformID: 7, RegionID: 3, NumSales: sales(3.0)},
		{ID: 11, GamePlatformID: 8, RegionID: 3, NumSales: sales(1.5)},
		{ID: 12, GamePlatformID: 9, RegionID: 2, NumSales: sales(1.0)},
	}

	for _, batch := range []any{
		&genres, &platforms, &publishers, &regions,
		&games, &gamePublishers, &gamePlatforms, &regionSales,
	} {
		require.NoError(t, db.Create(batch).Error)
	}
}

// EdgeSQLite returns a store holding the edge-case catalogue:
//
//	Japan:  Tetris(1) 0.60 in one row, TETRIS(2) 0.10+0.20+0.30,
//	        Pokémon(3) 0.70, "Tetris "(4) 0.60, ""(5) 0.15
//	Europe: Tetris(6) 0.05, TETRIS(2) 0.33, Pokémon(3) 0.27
//	Oceania: Tetris(1) 0.01, TETRIS(2) 0.004 three times
//
// Publishers Nintendo(1) and nintendo(2) differ in case only; the genre and
// a platform carry non-ASCII letters.
func EdgeSQLite(t testing.TB) *gorm.DB {
	t.Helper()
	db := OpenSQLite(t)

	genres := []models.Genre{
		{ID: 1, Name: name("Acción")},
		{ID: 2, Name: name("Puzzle")},
	}
	platforms := []models.Platform{
		{ID: 1, Name: name("Switch")},
		{ID: 2, Name: name("PS4")},
		{ID: 3, Name: name("ÉLAN")},
	}
	publishers := []models.Publisher{
		{ID: 1, Name: name("Nintendo")},
		{ID: 2, Name: name("nintendo")},
		{ID: 3, Name: name("")},
	}
	regions := []models.Region{
		{ID: 1, Name: name("Japan")},
		{ID: 2, Name: name("Europe")},
		{ID: 3, Name: name("Oceania")},
	}
	games := []models.Game{
		{ID: 1, GenreID: 2, Name: name("Tetris")},
		{ID: 2, GenreID: 2, Name: name("TETRIS")},
		{ID: 3, GenreID: 1, Name: name("Pokémon")},
		{ID: 4, GenreID: 2, Name: name("Tetris ")},
		{ID: 5, GenreID: 1, Name: name("")},
		{ID: 6, GenreID: 2, Name: name("Tetris")},
	}
	gamePublishers := []models.GamePublisher{
		{ID: 1, GameID: 1, PublisherID: 1},
		{ID: 2, GameID: 2, PublisherID: 2},
		{ID: 3, GameID: 3, PublisherID: 1},
		{ID: 4, GameID: 4, PublisherID: 2},
		{ID: 5, GameID: 5, PublisherID: 3},
		{ID: 6, GameID: 6, PublisherID: 1},
	}
	gamePlatforms := []models.GamePlatform{
		{ID: 1, GamePublisherID: 1, PlatformID: 1, ReleaseYear: year(2017)},
		{ID: 2, GamePublisherID: 2, PlatformID: 1, ReleaseYear: year(2017)},
		{ID: 3, GamePublisherID: 2, PlatformID: 2, ReleaseYear: year(2018)},
		{ID: 4, GamePublisherID: 2, PlatformID: 3, ReleaseYear: year(2019)},
		{ID: 5, GamePublisherID: 3, PlatformID: 1, ReleaseYear: year(2016)},
		{ID: 6, GamePublisherID: 4, PlatformID: 2, ReleaseYear: year(2017)},
		{ID: 7, GamePublisherID: 5, PlatformID: 3, ReleaseYear: year(2020)},
		{ID: 8, GamePublisherID: 6, PlatformID: 2, ReleaseYear: year(2021)},
	}
	regionSales := []models.RegionSales{
		{ID: 1, GamePlatformID: 1, RegionID: 1, NumSales: sales(0.6)},
		{ID: 2, GamePlatformID: 2, RegionID: 1, NumSales: sales(0.1)},
		{ID: 3, GamePlatformID: 3, RegionID: 1, NumSales: sales(0.2)},
		{ID: 4, GamePlatformID: 4, RegionID: 1, NumSales: sales(0.3)},
		{ID: 5, GamePlatformID: 5, RegionID: 1, NumSales: sales(0.7)},
		{ID: 6, GamePlatformID: 6, RegionID: 1, NumSales: sales(0.6)},
		{ID: 7, GamePlatformID: 7, RegionID: 1, NumSales: sales(0.15)},
		{ID: 8, GamePlatformID: 8, RegionID: 2, NumSales: sales(0.05)},
		{ID: 9, GamePlatformID: 3, RegionID: 2, NumSales: sales(0.33)},
		{ID: 10, GamePlatformID: 5, RegionID: 2, NumSales: sales(0.27)},
		{ID: 11, GamePlatformID: 1, RegionID: 3, NumSales: sales(0.01)},
		{ID: 12, GamePlatformID: 2, RegionID: 3, NumSales: sales(0.004)},
		{ID: 13, GamePlatformID: 3, RegionID: 3, NumSales: sales(0.004)},
		{ID: 14, GamePlatformID: 4, RegionID: 3, NumSales: sales(0.004)},
	}

	for _, batch := range []any{
		&genres, &platforms, &publishers, &regions,
		&games, &gamePublishers, &gamePlatforms, &regionSales,
	} {
		require.NoError(t, db.Create(batch).Error)
	}
	return db
}
