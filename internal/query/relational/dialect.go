package relational

import (
	"gorm.io/gorm"

	"vgsales/backend/internal/query"
)

// dialect renders the SQL fragments whose spelling differs per store.
//
// Text is compared, grouped and ordered byte-exact everywhere so the store
// agrees with Go string semantics. MySQL's default utf8mb4_0900_ai_ci
// merges names that differ only in accents or case, and Postgres orders by
// locale.
// utf8mb4_0900_bin is NO PAD and needs MySQL 8.0.17 or later. SQLite's
// BINARY default already compares bytes; its ASCII-only LOWER is replaced at
// connect time (see database.Open).
type dialect string

func dialectOf(tx *gorm.DB) dialect {
	return dialect(tx.Dialector.Name())
}

// exact pins expr to a byte-order collation.
func (d dialect) exact(expr string) string {
	switch d {
	case "mysql":
		return expr + " COLLATE utf8mb4_0900_bin"
	case "postgres":
		return expr + ` COLLATE "C"`
	default:
		return expr
	}
}

// contains is a case-folded, byte-exact LIKE predicate on expr, taking the
// pattern built by query.ContainsPattern.
func (d dialect) contains(expr string) string {
	return d.exact("LOWER("+expr+")") + " LIKE ? ESCAPE '" + query.LikeEscape + "'"
}

// yearText casts release_year to decimal text.
func (d dialect) yearText() string {
	if d == "mysql" {
		return "CAST(game_platform.release_year AS CHAR)"
	}
	return "CAST(game_platform.release_year AS TEXT)"
}

// roundedSum is SUM(expr) rounded to hundredths, zero for no values.
// Postgres only rounds numerics to a scale.
func (d dialect) roundedSum(expr string) string {
	sum := "COALESCE(SUM(" + expr + "), 0)"
	if d == "postgres" {
		return "ROUND(CAST(" + sum + " AS NUMERIC), 2)"
	}
	return "ROUND(" + sum + ", 2)"
}
