package relational

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vgsales/backend/internal/models"
	"vgsales/backend/internal/query"
	"vgsales/backend/internal/testinfra"
)

func year(y int64) *int64 { return &y }

func newEngine(t *testing.T) *Engine {
	t.Helper()
	return New(testinfra.SeededSQLite(t))
}

func TestGamesByGenre(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	rows, err := e.GamesByGenre(ctx, query.GenreFilter{Genre: "SHOOT", Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, []query.GameRow{
		{GameName: "Halo 3", PlatformName: "X360", ReleaseYear: year(2007)},
		{GameName: "Call of Duty: Modern Warfare", PlatformName: "X360", ReleaseYear: year(2007)},
		{GameName: "Call of Duty: Modern Warfare", PlatformName: "PS3", ReleaseYear: year(2007)},
		{GameName: "Call of Duty: Modern Warfare", PlatformName: "PS3", ReleaseYear: year(2000)},
	}, rows)

	rows, err = e.GamesByGenre(ctx, query.GenreFilter{Genre: "shooter", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Halo 3", rows[0].GameName)
}

func TestGamesByGenreEmptyTermMatchesEveryNamedGenre(t *testing.T) {
	e := newEngine(t)

	rows, err := e.GamesByGenre(context.Background(), query.GenreFilter{Genre: "", Limit: 50})
	require.NoError(t, err)

	// Ten releases, minus the one whose game has a NULL genre name.
	assert.Len(t, rows, 9)
	for _, r := range rows {
		assert.NotEqual(t, "Mystery Quest", r.GameName)
	}
}

func TestGamesByGenreEscapesWildcards(t *testing.T) {
	e := newEngine(t)

	for _, term := range []string{"%", "_", "!"} {
		rows, err := e.GamesByGenre(context.Background(), query.GenreFilter{Genre: term, Limit: 50})
		require.NoError(t, err)
		assert.Empty(t, rows, "term %q", term)
	}
}

func TestGamesByYear(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	rows, err := e.GamesByYear(ctx, query.YearPlatformFilter{Year: "2000", Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, []query.GameRow{
		{GameName: "Call of Duty: Modern Warfare", PlatformName: "PS3", ReleaseYear: year(2000)},
		{GameName: "The Legend of Zelda", PlatformName: "PS2", ReleaseYear: year(2000)},
	}, rows)

	rows, err = e.GamesByYear(ctx, query.YearPlatformFilter{Year: "2007", Platform: "x3", Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, []query.GameRow{
		{GameName: "Halo 3", PlatformName: "X360", ReleaseYear: year(2007)},
		{GameName: "Call of Duty: Modern Warfare", PlatformName: "X360", ReleaseYear: year(2007)},
	}, rows)

	// The release with a NULL year never matches a year filter.
	rows, err = e.GamesByYear(ctx, query.YearPlatformFilter{Limit: 50})
	require.NoError(t, err)
	assert.Len(t, rows, 9)
}

func TestFindGame(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	rows, err := e.FindGame(ctx, query.GameFilter{Name: "zelda", Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, []query.GameDetail{
		{GameName: "The Legend of Zelda", PlatformName: "Wii", ReleaseYear: year(2006), GenreName: "Action", PublisherName: "Nintendo"},
		{GameName: "The Legend of Zelda", PlatformName: "PS2", ReleaseYear: year(2000), GenreName: "Action", PublisherName: "Nintendo"},
	}, rows)

	rows, err = e.FindGame(ctx, query.GameFilter{Name: "zelda", Platform: "ps", Limit: 20})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "PS2", rows[0].PlatformName)

	rows, err = e.FindGame(ctx, query.GameFilter{Name: "zelda", Year: "2006", Limit: 20})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Wii", rows[0].PlatformName)

	// Only set filters narrow the match; the NULL-year release is kept.
	rows, err = e.FindGame(ctx, query.GameFilter{Name: "mystery", Limit: 20})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].ReleaseYear)
	assert.Equal(t, "", rows[0].GenreName)
	assert.Equal(t, "100%_Games", rows[0].PublisherName)

	rows, err = e.FindGame(ctx, query.GameFilter{Name: "_", Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestTopSales(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	rows, err := e.TopSales(ctx, query.RegionFilter{Region: "Japan", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []query.SalesRow{
		{GameName: "Final Fantasy X", TotalSales: 2.5, FirstID: 4},
		{GameName: "The Legend of Zelda", TotalSales: 1.5, FirstID: 3},
	}, rows)

	rows, err = e.TopSales(ctx, query.RegionFilter{Region: "", Limit: 10})
	require.NoError(t, err)
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.GameName
	}
	assert.Equal(t, []string{
		"Halo 3", "Call of Duty: Modern Warfare", "Final Fantasy X",
		"The Legend of Zelda", "Super Mario Galaxy", "Mystery Quest",
	}, names)
	assert.Equal(t, 7.25, rows[0].TotalSales)
	assert.Equal(t, 7.0, rows[1].TotalSales)
	assert.Equal(t, 0.0, rows[5].TotalSales, "NULL sales sum to zero")
}

func TestTopSalesIsRepeatable(t *testing.T) {
	e := newEngine(t)
	f := query.RegionFilter{Region: "a", Limit: 10}

	first, err := e.TopSales(context.Background(), f)
	require.NoError(t, err)
	second, err := e.TopSales(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTopPublishers(t *testing.T) {
	e := newEngine(t)

	rows, err := e.TopPublishers(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []query.PublisherRow{
		{PublisherName: "Nintendo", GameCount: 3, FirstID: 1},
		{PublisherName: "Electronic Arts", GameCount: 2, FirstID: 2},
		{PublisherName: "Activision", GameCount: 2, FirstID: 3},
		{PublisherName: "100%_Games", GameCount: 1, FirstID: 4},
	}, rows)
}

func TestFacetValues(t *testing.T) {
	e := newEngine(t)

	tests := []struct {
		facet query.Facet
		want  []string
	}{
		{query.FacetPlatformName, []string{"PS2", "PS3", "Wii", "X360"}},
		{query.FacetReleaseYear, []string{"2000", "2001", "2006", "2007", "2008"}},
		{query.FacetPublisherName, []string{"100%_Games", "Activision", "Electronic Arts", "Nintendo"}},
		{query.FacetGenreName, []string{"Action", "Role-Playing", "Shooter"}},
		{query.FacetRegionName, []string{"Europe", "Japan", "North America", "Other"}},
	}
	for _, tt := range tests {
		t.Run(tt.facet.String(), func(t *testing.T) {
			values, err := e.FacetValues(context.Background(), tt.facet)
			require.NoError(t, err)
			assert.Equal(t, tt.want, values)
		})
	}
}

func TestFacetValuesRejectsUnknownFacet(t *testing.T) {
	e := newEngine(t)
	_, err := e.FacetValues(context.Background(), query.Facet(99))
	assert.ErrorIs(t, err, query.ErrInvalidInput)
}

func TestZeroLimitSkipsStore(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	games, err := e.GamesByGenre(ctx, query.GenreFilter{Limit: 0})
	require.NoError(t, err)
	assert.NotNil(t, games)
	assert.Empty(t, games)

	sales, err := e.TopSales(ctx, query.RegionFilter{Region: "Japan"})
	require.NoError(t, err)
	assert.Empty(t, sales)

	pubs, err := e.TopPublishers(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, pubs)
}

func TestBackendFailure(t *testing.T) {
	db := testinfra.SeededSQLite(t)
	require.NoError(t, db.Migrator().DropTable(models.TableRegion))
	e := New(db)

	_, err := e.TopSales(context.Background(), query.RegionFilter{Region: "Japan", Limit: 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, query.ErrBackend)
	assert.Contains(t, err.Error(), "region")

	var backendErr *query.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, query.ShapeTopSales, backendErr.Op)
}

func TestCanceledContext(t *testing.T) {
	e := newEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.GamesByGenre(ctx, query.GenreFilter{Genre: "shooter", Limit: 5})
	require.Error(t, err)
	assert.ErrorIs(t, err, query.ErrBackend)
	assert.ErrorIs(t, err, context.Canceled)
}
