package memory

import (
	"vgsales/backend/internal/models"
	"vgsales/backend/internal/query"
)

// byID indexes rows with a unique id; it is the right side of a
// many-to-one join.
func byID[T any](rows []T, id func(T) int64) map[int64]T {
	out := make(map[int64]T, len(rows))
	for _, r := range rows {
		out[id(r)] = r
	}
	return out
}

// groupBy indexes rows by a foreign key; it is the right side of a
// one-to-many join. Buckets keep the input order.
func groupBy[T any](rows []T, key func(T) int64) map[int64][]T {
	out := make(map[int64][]T)
	for _, r := range rows {
		k := key(r)
		out[k] = append(out[k], r)
	}
	return out
}

// head truncates rows to at most n, never returning nil.
func head[T any](rows []T, n int) []T {
	if n < len(rows) {
		rows = rows[:n]
	}
	if rows == nil {
		return []T{}
	}
	return rows
}

// release is one row of the Game→GamePublisher→GamePlatform→Platform join.
type release struct {
	game          models.Game
	gamePublisher models.GamePublisher
	gamePlatform  models.GamePlatform
	platform      models.Platform
}

func (r release) gameName() string     { return r.game.Name.String }
func (r release) platformName() string { return r.platform.Name.String }

func (r release) year() *int64 {
	if !r.gamePlatform.ReleaseYear.Valid {
		return nil
	}
	y := r.gamePlatform.ReleaseYear.Int64
	return &y
}

// yearText is the release year as decimal text; invalid when NULL.
func (r release) yearText() (string, bool) {
	y := r.gamePlatform.ReleaseYear
	if !y.Valid {
		return "", false
	}
	return query.YearText(y.Int64), true
}
