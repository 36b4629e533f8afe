package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vgsales/backend/internal/config"
)

func TestDSN(t *testing.T) {
	base := config.Config{
		DBHost:     "mysql",
		DBPort:     3306,
		DBUser:     "user",
		DBPassword: "password",
		DBName:     "video_games",
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{
			name:   "mysql",
			mutate: func(c *config.Config) { c.DBDriver = config.DriverMySQL },
			want:   "user:password@tcp(mysql:3306)/video_games?charset=utf8mb4&parseTime=True&loc=Local",
		},
		{
			name: "postgres",
			mutate: func(c *config.Config) {
				c.DBDriver = config.DriverPostgres
				c.DBPort = 5432
			},
			want: "host=mysql port=5432 user=user password=password dbname=video_games sslmode=disable",
		},
		{
			name:   "sqlite",
			mutate: func(c *config.Config) { c.DBDriver = config.DriverSQLite },
			want:   "video_games",
		},
		{
			name: "explicit url wins",
			mutate: func(c *config.Config) {
				c.DBDriver = config.DriverPostgres
				c.DatabaseURL = "postgres://u:p@h/db"
			},
			want: "postgres://u:p@h/db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			assert.Equal(t, tt.want, DSN(&cfg))
		})
	}
}

func TestOpenSQLite(t *testing.T) {
	db, err := Open(config.DriverSQLite, filepath.Join(t.TempDir(), "vg.db"))
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestSQLiteLowerFoldsUnicode(t *testing.T) {
	db, err := Open(config.DriverSQLite, filepath.Join(t.TempDir(), "vg.db"))
	require.NoError(t, err)

	var lowered string
	require.NoError(t, db.Raw("SELECT LOWER(?)", "POKÉMON Ñ").Scan(&lowered).Error)
	assert.Equal(t, "pokémon ñ", lowered)

	var matched bool
	require.NoError(t, db.Raw("SELECT LOWER(?) LIKE ?", "ÉLAN", "%éla%").Scan(&matched).Error)
	assert.True(t, matched)
}

func TestSQLiteLowerKeepsNull(t *testing.T) {
	db, err := Open(config.DriverSQLite, filepath.Join(t.TempDir(), "vg.db"))
	require.NoError(t, err)

	var isNull bool
	require.NoError(t, db.Raw("SELECT LOWER(NULL) IS NULL").Scan(&isNull).Error)
	assert.True(t, isNull)

	// A NULL column drops out of a contains filter instead of failing it.
	require.NoError(t, db.Exec("CREATE TABLE names (name TEXT)").Error)
	require.NoError(t, db.Exec("INSERT INTO names (name) VALUES ('Wii'), (NULL)").Error)
	var n int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM names WHERE LOWER(name) LIKE ?", "%%").Scan(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestLower(t *testing.T) {
	assert.Nil(t, lower(nil))
	assert.Equal(t, "pokémon", lower("POKÉMON"))
	assert.Equal(t, "élan", lower([]byte("ÉLAN")))
	assert.Equal(t, int64(2007), lower(int64(2007)))
}
