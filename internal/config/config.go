package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"vgsales/backend/internal/logging"
)

// Supported values for DB_DRIVER.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Supported values for SNAPSHOT_SOURCE.
const (
	SourceDatabase = "database"
	SourceCSV      = "csv"
)

// Config holds the application configuration.
type Config struct {
	DBDriver    string `mapstructure:"DB_DRIVER"`
	DBHost      string `mapstructure:"MYSQL_HOST"`
	DBPort      int    `mapstructure:"MYSQL_PORT"`
	DBUser      string `mapstructure:"MYSQL_USER"`
	DBPassword  string `mapstructure:"MYSQL_PASSWORD"`
	DBName      string `mapstructure:"MYSQL_DB"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	DataDir              string `mapstructure:"DATA_DIR"`
	SnapshotSource       string `mapstructure:"SNAPSHOT_SOURCE"`
	SnapshotAllowPartial bool   `mapstructure:"SNAPSHOT_ALLOW_PARTIAL"`

	HTTPAddr     string        `mapstructure:"HTTP_ADDR"`
	QueryTimeout time.Duration `mapstructure:"QUERY_TIMEOUT"`
	MaxLimit     int           `mapstructure:"MAX_LIMIT"`
	GinMode      string        `mapstructure:"GIN_MODE"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

var defaults = map[string]any{
	"DB_DRIVER":              DriverMySQL,
	"MYSQL_HOST":             "mysql",
	"MYSQL_PORT":             3306,
	"MYSQL_USER":             "user",
	"MYSQL_PASSWORD":         "password",
	"MYSQL_DB":               "video_games",
	"DATABASE_URL":           "",
	"DATA_DIR":               "/app/data",
	"SNAPSHOT_SOURCE":        SourceDatabase,
	"SNAPSHOT_ALLOW_PARTIAL": false,
	"HTTP_ADDR":              ":8080",
	"QUERY_TIMEOUT":          "10s",
	"MAX_LIMIT":              1000,
	"GIN_MODE":               "release",
	"LOG_LEVEL":              "info",
	"LOG_FORMAT":             "json",
}

// Load reads the configuration from an optional .env file in the working
// directory and from environment variables, which take precedence.
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName(".env")
	v.SetConfigType("env")

	// Registering every key lets AutomaticEnv resolve it during Unmarshal.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read .env: %w", err)
		}
		logging.Warn().Msg(".env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.SnapshotSource {
	case SourceDatabase, SourceCSV:
	default:
		return fmt.Errorf("config: unsupported SNAPSHOT_SOURCE %q", c.SnapshotSource)
	}
	if c.QueryTimeout <= 0 {
		return fmt.Errorf("config: QUERY_TIMEOUT must be positive, got %s", c.QueryTimeout)
	}
	if c.MaxLimit <= 0 {
		return fmt.Errorf("config: MAX_LIMIT must be positive, got %d", c.MaxLimit)
	}
	return nil
}
