package relational

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDialectFragments(t *testing.T) {
	tests := []struct {
		dialect    dialect
		exact      string
		contains   string
		yearText   string
		roundedSum string
	}{
		{
			dialect:    "mysql",
			exact:      "game.game_name COLLATE utf8mb4_0900_bin",
			contains:   "LOWER(game.game_name) COLLATE utf8mb4_0900_bin LIKE ? ESCAPE '!'",
			yearText:   "CAST(game_platform.release_year AS CHAR)",
			roundedSum: "ROUND(COALESCE(SUM(region_sales.num_sales), 0), 2)",
		},
		{
			dialect:    "postgres",
			exact:      `game.game_name COLLATE "C"`,
			contains:   `LOWER(game.game_name) COLLATE "C" LIKE ? ESCAPE '!'`,
			yearText:   "CAST(game_platform.release_year AS TEXT)",
			roundedSum: "ROUND(CAST(COALESCE(SUM(region_sales.num_sales), 0) AS NUMERIC), 2)",
		},
		{
			dialect:    "sqlite",
			exact:      "game.game_name",
			contains:   "LOWER(game.game_name) LIKE ? ESCAPE '!'",
			yearText:   "CAST(game_platform.release_year AS TEXT)",
			roundedSum: "ROUND(COALESCE(SUM(region_sales.num_sales), 0), 2)",
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.dialect), func(t *testing.T) {
			assert.Equal(t, tt.exact, tt.dialect.exact("game.game_name"))
			assert.Equal(t, tt.contains, tt.dialect.contains("game.game_name"))
			assert.Equal(t, tt.yearText, tt.dialect.yearText())
			assert.Equal(t, tt.roundedSum, tt.dialect.roundedSum("region_sales.num_sales"))
		})
	}
}
