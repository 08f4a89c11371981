package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Settings struct {
	DBDriver         string        `mapstructure:"DB_DRIVER"`
	PostgresUser     string        `mapstructure:"POSTGRES_USER"`
	PostgresPassword string        `mapstructure:"POSTGRES_PASSWORD"`
	PostgresHost     string        `mapstructure:"POSTGRES_HOST"`
	PostgresPort     string        `mapstructure:"POSTGRES_PORT"`
	PostgresDatabase string        `mapstructure:"POSTGRES_DATABASE"`
	SQLitePath       string        `mapstructure:"SQLITE_PATH"`
	VerboseSQL       bool          `mapstructure:"VERBOSE_SQL"`
	MigrateOnStart   bool          `mapstructure:"MIGRATE_ON_START"`
	RedisURL         string        `mapstructure:"REDIS_URL"`
	ReportCacheTTL   time.Duration `mapstructure:"REPORT_CACHE_TTL"`
	ExportDir        string        `mapstructure:"EXPORT_DIR"`
	LogDevelopment   bool          `mapstructure:"LOG_DEVELOPMENT"`
}

// Load reads envFile into the process environment (a missing file is not an
// error) and then resolves every setting from the environment or its default.
func Load(envFile string) (*Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "")
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_DATABASE", "arcadia")
	v.SetDefault("SQLITE_PATH", "arcadia.db")
	v.SetDefault("VERBOSE_SQL", false)
	v.SetDefault("MIGRATE_ON_START", true)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REPORT_CACHE_TTL", 5*time.Minute)
	v.SetDefault("EXPORT_DIR", ".")
	v.SetDefault("LOG_DEVELOPMENT", false)
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	if s.DBDriver != DriverPostgres && s.DBDriver != DriverSQLite {
		return nil, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, s.DBDriver)
	}
	return &s, nil
}

// PostgresDSN builds the lib/pq connection URL.
func (s *Settings) PostgresDSN() string {
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(s.PostgresUser, s.PostgresPassword),
		Host:   net.JoinHostPort(s.PostgresHost, s.PostgresPort),
		Path:   "/" + s.PostgresDatabase,
	}
	return u.String()
}
