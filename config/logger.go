package config

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

func NewLogger(development bool) *zap.SugaredLogger {
	var (
		l   *zap.Logger
		err error
	)
	if development {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return l.Sugar()
}

// gormWriter sends gorm's SQL trace through zap.
type gormWriter struct {
	log *zap.SugaredLogger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Debug(fmt.Sprintf(format, args...))
}

func newGormLogger(log *zap.SugaredLogger) logger.Interface {
	return logger.New(
		gormWriter{log: log.Named("sql")},
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
