package catalog

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Invalidator is told about every committed change so cached reports can be dropped.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// Service owns every write to the catalog. Each mutating method runs in a
// single transaction and either persists everything or nothing.
type Service struct {
	db       *gorm.DB
	log      *zap.SugaredLogger
	cache    Invalidator
	validate *validator.Validate
	now      func() time.Time
}

// NewService builds the catalog service. cache may be nil.
func NewService(db *gorm.DB, log *zap.SugaredLogger, cache Invalidator) *Service {
	return &Service{
		db:       db,
		log:      log.Named("catalog"),
		cache:    cache,
		validate: newValidator(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) write(ctx context.Context, op string, fn func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	if err := s.db.WithContext(ctx).Transaction(fn, opts...); err != nil {
		err = translateError(err)
		s.log.Debugw("write rolled back", "op", op, "error", err)
		return err
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warnw("report cache invalidation failed", "op", op, "error", err)
		}
	}
	return nil
}

func (s *Service) read(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func (s *Service) today() datatypes.Date {
	return dateOf(s.now())
}

// dateOf truncates t to its UTC calendar day.
func dateOf(t time.Time) datatypes.Date {
	y, m, d := t.UTC().Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func dateOr(t *time.Time, fallback datatypes.Date) datatypes.Date {
	if t == nil {
		return fallback
	}
	return dateOf(*t)
}

func timeOr(t *time.Time, fallback time.Time) time.Time {
	if t == nil {
		return fallback
	}
	return t.UTC()
}
