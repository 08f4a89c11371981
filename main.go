package main

import (
	"Arcadia/commands"
	"Arcadia/config"
	"Arcadia/controllers"
	"Arcadia/services/catalog"
	"Arcadia/services/redis"
	"Arcadia/services/reports"
	"fmt"
	"os"
)

func main() {
	settings, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger(settings.LogDevelopment)
	defer logger.Sync()

	gormDB, err := config.ConnectGORM(settings, logger)
	if err != nil {
		logger.Fatalw("Error connecting to the database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatalw("Error reading the GORM database instance", "error", err)
	}
	defer sqlDB.Close()

	// Only migrate in development or during deployment
	if settings.MigrateOnStart {
		if err := config.MigrateDatabase(gormDB); err != nil {
			logger.Warnw("Database migration failed", "error", err)
		}
	}

	// The report cache is optional: without Redis every report hits the database.
	var (
		invalidator catalog.Invalidator
		reportCache reports.Cache
	)
	cache, err := config.ConnectRedis(settings, logger)
	if err != nil {
		logger.Warnw("Report cache unavailable", "error", err)
	} else if cache != nil {
		defer redis.CloseRedis(cache)
		invalidator, reportCache = cache, cache
	}

	app := commands.NewApp(commands.Deps{
		DB:        gormDB,
		Catalog:   catalog.NewService(gormDB, logger, invalidator),
		Reports:   reports.NewService(gormDB, logger, reportCache),
		Log:       logger,
		ExportDir: settings.ExportDir,
	})

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		logger.Sync()
		sqlDB.Close()
		os.Exit(controllers.ExitCode(err))
	}
}
