package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vgsales/backend/internal/models"
	"vgsales/backend/internal/testinfra"
)

func TestLoadFromStore(t *testing.T) {
	db := testinfra.SeededSQLite(t)
	dir := filepath.Join(t.TempDir(), "data")

	s, err := Load(context.Background(), db, dir)
	require.NoError(t, err)
	assert.Empty(t, s.Missing())

	assert.Equal(t, map[string]int{
		models.TableGenre:         4,
		models.TableGame:          7,
		models.TableGamePlatform:  10,
		models.TableGamePublisher: 8,
		models.TablePlatform:      4,
		models.TablePublisher:     4,
		models.TableRegion:        4,
		models.TableRegionSales:   12,
	}, s.Rows())

	// Rows are ordered by id.
	for i, g := range s.Games {
		assert.EqualValues(t, i+1, g.ID)
	}
	assert.False(t, s.Genres[3].Name.Valid, "NULL genre name survives")

	for _, name := range models.TableNames {
		assert.FileExists(t, filepath.Join(dir, name+".csv"))
	}
}

func TestExportWritesHeaderAndNulls(t *testing.T) {
	db := testinfra.SeededSQLite(t)
	dir := t.TempDir()

	_, err := Load(context.Background(), db, dir)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "genre.csv"))
	require.NoError(t, err)
	assert.Equal(t, "id,genre_name\n1,Action\n2,Shooter\n3,Role-Playing\n4,\\N\n", string(raw))

	raw, err = os.ReadFile(filepath.Join(dir, "region_sales.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	assert.Equal(t, "id,game_platform_id,region_id,num_sales", lines[0])
	assert.Equal(t, "1,1,1,4.75", lines[1])
	assert.Equal(t, `9,6,2,\N`, lines[9])
}

func TestReadDirRestoresExport(t *testing.T) {
	db := testinfra.SeededSQLite(t)
	dir := t.TempDir()

	loaded, err := Load(context.Background(), db, dir)
	require.NoError(t, err)

	restored, err := ReadDir(dir)
	require.NoError(t, err)

	assert.Equal(t, loaded.Rows(), restored.Rows())
	assert.Equal(t, loaded.Genres, restored.Genres)
	assert.Equal(t, loaded.Games, restored.Games)
	assert.Equal(t, loaded.GamePlatforms, restored.GamePlatforms)
	assert.Equal(t, loaded.GamePublishers, restored.GamePublishers)
	assert.Equal(t, loaded.Platforms, restored.Platforms)
	assert.Equal(t, loaded.Publishers, restored.Publishers)
	assert.Equal(t, loaded.Regions, restored.Regions)
	assert.Equal(t, loaded.RegionSales, restored.RegionSales)
}

func TestEmptyStringSurvivesRoundTrip(t *testing.T) {
	db := testinfra.EdgeSQLite(t)
	dir := t.TempDir()

	loaded, err := Load(context.Background(), db, dir)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "publisher.csv"))
	require.NoError(t, err)
	assert.Equal(t, "id,publisher_name\n1,Nintendo\n2,nintendo\n3,\n", string(raw))

	restored, err := ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, loaded.Publishers, restored.Publishers)
	assert.Equal(t, loaded.Games, restored.Games)
	assert.True(t, restored.Games[4].Name.Valid, "empty game name is not NULL")
	assert.Equal(t, "", restored.Games[4].Name.String)
}

func TestParseNullField(t *testing.T) {
	assert.False(t, parseString(`\N`).Valid)
	assert.True(t, parseString("").Valid)

	v, err := parseFloat("")
	require.NoError(t, err)
	assert.False(t, v.Valid)

	y, err := parseInt(`\N`)
	require.NoError(t, err)
	assert.False(t, y.Valid)
}

func TestLoadSkipsFailingTable(t *testing.T) {
	db := testinfra.SeededSQLite(t)
	require.NoError(t, db.Migrator().DropTable(models.TableRegionSales))
	dir := t.TempDir()

	s, err := Load(context.Background(), db, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snapshot incomplete")
	assert.Contains(t, err.Error(), "region_sales")

	assert.Equal(t, []string{models.TableRegionSales}, s.Missing())
	assert.False(t, s.Has(models.TableRegionSales))
	assert.True(t, s.Has(models.TableGame))
	assert.Len(t, s.Games, 7)

	assert.NoFileExists(t, filepath.Join(dir, "region_sales.csv"))
	assert.FileExists(t, filepath.Join(dir, "game.csv"))
}

func TestReadDirMissingAndMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "genre.csv"), []byte("id,genre_name\n1,Action\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "platform.csv"), []byte("id,name\n1,PS2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "region.csv"), []byte("id,region_name\nx,Japan\n"), 0o644))

	s, err := ReadDir(dir)
	require.Error(t, err)

	assert.True(t, s.Has(models.TableGenre))
	assert.Len(t, s.Genres, 1)
	assert.False(t, s.Has(models.TablePlatform), "header mismatch")
	assert.False(t, s.Has(models.TableRegion), "bad id")
	assert.False(t, s.Has(models.TableGame), "file absent")
	assert.Len(t, s.Missing(), 7)
}

func TestReady(t *testing.T) {
	s := newSnapshot()
	for _, name := range models.TableNames {
		s.record(name, 0, nil)
	}
	assert.NoError(t, s.Ready())
}

// reverseBody rewrites a CSV file with its data rows in reverse order.
func reverseBody(t *testing.T, path string) {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	body := lines[1:]
	for i, j := 0, len(body)-1; i < j; i, j = i+1, j-1 {
		body[i], body[j] = body[j], body[i]
	}
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
}

func TestReadDirOrdersRowsByID(t *testing.T) {
	db := testinfra.SeededSQLite(t)
	dir := t.TempDir()

	loaded, err := Load(context.Background(), db, dir)
	require.NoError(t, err)
	for _, name := range []string{models.TableGame, models.TableGamePlatform, models.TableRegionSales} {
		reverseBody(t, filepath.Join(dir, name+".csv"))
	}

	restored, err := ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, loaded.Games, restored.Games)
	assert.Equal(t, loaded.GamePlatforms, restored.GamePlatforms)
	assert.Equal(t, loaded.RegionSales, restored.RegionSales)
}
