package config

import (
	"Arcadia/services/redis"

	"go.uber.org/zap"
)

// ConnectRedis returns the report cache, or nil when REDIS_URL is not set.
func ConnectRedis(s *Settings, log *zap.SugaredLogger) (*redis.ReportCache, error) {
	if s.RedisURL == "" {
		log.Info("REDIS_URL not set, report cache disabled")
		return nil, nil
	}
	cache, err := redis.InitRedis(s.RedisURL, s.ReportCacheTTL)
	if err != nil {
		return nil, err
	}
	log.Infow("report cache connected", "ttl", s.ReportCacheTTL)
	return cache, nil
}
