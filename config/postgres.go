package config

import (
	"Arcadia/models/postgres"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectGORM opens the database selected by s.DBDriver.
func ConnectGORM(s *Settings, log *zap.SugaredLogger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if s.VerboseSQL {
		gormConfig.Logger = newGormLogger(log)
	}

	switch s.DBDriver {
	case DriverPostgres:
		return connectPostgres(s, gormConfig, log)
	case DriverSQLite:
		return ConnectSQLite(s.SQLitePath, gormConfig, log)
	default:
		return nil, fmt.Errorf("unknown database driver %q", s.DBDriver)
	}
}

func connectPostgres(s *Settings, gormConfig *gorm.Config, log *zap.SugaredLogger) (*gorm.DB, error) {
	// NOTE: See https://github.com/go-gorm/gorm/issues/5409
	sqlDB, err := sql.Open("postgres", s.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("opening postgres with gorm: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Infow("connected to database", "driver", DriverPostgres, "host", s.PostgresHost, "database", s.PostgresDatabase)
	return db, nil
}

// ConnectSQLite opens a SQLite file or in-memory database with foreign keys
// enforced. A single connection serialises every transaction.
func ConnectSQLite(path string, gormConfig *gorm.Config, log *zap.SugaredLogger) (*gorm.DB, error) {
	if gormConfig == nil {
		gormConfig = &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	}
	db, err := gorm.Open(sqlite.Open(SQLiteDSN(path)), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	log.Infow("connected to database", "driver", DriverSQLite, "path", path)
	return db, nil
}

// SQLiteDSN adds the pragmas the catalog relies on to a SQLite path or URI.
func SQLiteDSN(path string) string {
	params := []string{"_foreign_keys=on", "_txlock=immediate"}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	var missing []string
	for _, p := range params {
		if !strings.Contains(path, p) {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		return path
	}
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	return path + sep + strings.Join(missing, "&")
}

// MigrateDatabase creates or updates every catalog table.
func MigrateDatabase(db *gorm.DB) error {
	// NOTE: postgres driver v1.4.0, see https://github.com/pilinux/gorest/issues/167
	if err := db.AutoMigrate(postgres.All()...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}
