package reports

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Cache keeps report rows keyed by report name and applied filter. Key pins
// the current generation, so rows computed before an invalidation are stored
// where nobody will read them.
type Cache interface {
	Key(ctx context.Context, report string, filter any) (string, error)
	Load(ctx context.Context, key string, dst any) (bool, error)
	Store(ctx context.Context, key string, rows any) error
}

// Service answers read-only questions across the catalog tables.
type Service struct {
	db    *gorm.DB
	log   *zap.SugaredLogger
	cache Cache
}

// NewService builds the reporting service. cache may be nil.
func NewService(db *gorm.DB, log *zap.SugaredLogger, cache Cache) *Service {
	return &Service{db: db, log: log.Named("reports"), cache: cache}
}

// cached serves rows from the cache when possible and fills it on a miss.
// Cache failures only cost a query.
func (s *Service) cached(ctx context.Context, report string, filter any, dst any, query func() error) error {
	var key string
	if s.cache != nil {
		var err error
		if key, err = s.cache.Key(ctx, report, filter); err != nil {
			s.log.Warnw("report cache key failed", "report", report, "error", err)
		}
	}
	if key != "" {
		hit, err := s.cache.Load(ctx, key, dst)
		if err != nil {
			s.log.Warnw("report cache read failed", "report", report, "error", err)
		} else if hit {
			s.log.Debugw("report served from cache", "report", report)
			return nil
		}
	}
	if err := query(); err != nil {
		return err
	}
	if key != "" {
		if err := s.cache.Store(ctx, key, dst); err != nil {
			s.log.Warnw("report cache write failed", "report", report, "error", err)
		}
	}
	return nil
}

func (s *Service) warn(report string, warnings []string) {
	for _, w := range warnings {
		s.log.Warnw("filter dropped", "report", report, "reason", w)
	}
}
