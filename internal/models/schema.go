package models

// Table names as they exist in the store.
const (
	TableGenre         = "genre"
	TableGame          = "game"
	TableGamePlatform  = "game_platform"
	TableGamePublisher = "game_publisher"
	TablePlatform      = "platform"
	TablePublisher     = "publisher"
	TableRegion        = "region"
	TableRegionSales   = "region_sales"
)

// TableNames lists every table in snapshot load order.
var TableNames = []string{
	TableGenre,
	TableGame,
	TableGamePlatform,
	TableGamePublisher,
	TablePlatform,
	TablePublisher,
	TableRegion,
	TableRegionSales,
}

// ForeignKey is one edge of the schema: From.Column references To.id.
type ForeignKey struct {
	From   string
	Column string
	To     string
}

// ForeignKeys is the join graph both query engines traverse.
var ForeignKeys = []ForeignKey{
	{From: TableGame, Column: "genre_id", To: TableGenre},
	{From: TableGamePublisher, Column: "game_id", To: TableGame},
	{From: TableGamePublisher, Column: "publisher_id", To: TablePublisher},
	{From: TableGamePlatform, Column: "game_publisher_id", To: TableGamePublisher},
	{From: TableGamePlatform, Column: "platform_id", To: TablePlatform},
	{From: TableRegionSales, Column: "game_platform_id", To: TableGamePlatform},
	{From: TableRegionSales, Column: "region_id", To: TableRegion},
}

// All returns a zero value of every entity, in load order. Used for
// migrations of test databases.
func All() []any {
	return []any{
		&Genre{}, &Game{}, &GamePlatform{}, &GamePublisher{},
		&Platform{}, &Publisher{}, &Region{}, &RegionSales{},
	}
}
