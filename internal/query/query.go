// Package query defines the question shapes answered by the analytics API and
// the contract both engines implement.
//
// The relational engine (package relational) answers them with one
// parameterized join query per call. The in-memory engine (package memory)
// answers them by joining the tables of a snapshot. Both must agree on
// filtering, ordering, tie-breaks and truncation; see the package tests of
// memory for the equivalence checks.
package query

import "context"

// Engine names, used for dispatch and metric labels.
const (
	EngineSQL    = "sql"
	EngineMemory = "memory"
)

// Shape names, used for metric labels.
const (
	ShapeGamesByGenre  = "games_by_genre"
	ShapeGamesByYear   = "games_by_year"
	ShapeTopSales      = "top_sales"
	ShapeTopPublishers = "top_publishers"
	ShapeFacet         = "facet"
	ShapeFindGame      = "find_game"
)

// Engine answers every supported question shape.
type Engine interface {
	Name() string
	GamesByGenre(ctx context.Context, f GenreFilter) ([]GameRow, error)
	GamesByYear(ctx context.Context, f YearPlatformFilter) ([]GameRow, error)
	TopSales(ctx context.Context, f RegionFilter) ([]SalesRow, error)
	TopPublishers(ctx context.Context, limit int) ([]PublisherRow, error)
	FacetValues(ctx context.Context, facet Facet) ([]string, error)
	FindGame(ctx context.Context, f GameFilter) ([]GameDetail, error)
}

// GenreFilter selects games whose genre name contains Genre.
type GenreFilter struct {
	Genre string
	Limit int
}

// YearPlatformFilter selects releases whose year, as decimal text, contains
// Year and whose platform name contains Platform.
type YearPlatformFilter struct {
	Year     string
	Platform string
	Limit    int
}

// RegionFilter selects sales in regions whose name contains Region.
type RegionFilter struct {
	Region string
	Limit  int
}

// GameFilter selects releases whose game name contains Name. Platform and
// Year narrow the match only when not empty.
type GameFilter struct {
	Name     string
	Platform string
	Year     string
	Limit    int
}

// GameRow is one release of a game on a platform.
type GameRow struct {
	GameName     string `json:"game_name" gorm:"column:game_name"`
	PlatformName string `json:"platform_name" gorm:"column:platform_name"`
	ReleaseYear  *int64 `json:"release_year" gorm:"column:release_year"`
}

// GameDetail is a release with its genre and publisher resolved.
type GameDetail struct {
	GameName      string `json:"game_name" gorm:"column:game_name"`
	PlatformName  string `json:"platform_name" gorm:"column:platform_name"`
	ReleaseYear   *int64 `json:"release_year" gorm:"column:release_year"`
	GenreName     string `json:"genre_name" gorm:"column:genre_name"`
	PublisherName string `json:"publisher_name" gorm:"column:publisher_name"`
}

// SalesRow is a game with its units sold, in millions, summed over every
// release in the selected regions.
type SalesRow struct {
	GameName   string  `json:"game_name" gorm:"column:game_name"`
	TotalSales float64 `json:"total_sales" gorm:"column:total_sales"`

	// FirstID is the smallest game id in the group; it breaks ties.
	FirstID int64 `json:"-" gorm:"column:first_id"`
}

// PublisherRow is a publisher with the number of distinct games it publishes.
type PublisherRow struct {
	PublisherName string `json:"publisher_name" gorm:"column:publisher_name"`
	GameCount     int64  `json:"game_count" gorm:"column:game_count"`

	// FirstID is the smallest publisher id in the group; it breaks ties.
	FirstID int64 `json:"-" gorm:"column:first_id"`
}
