package catalog

import (
	"Arcadia/config"
	"Arcadia/models/postgres"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

type countingCache struct {
	mu    sync.Mutex
	calls int
}

func (c *countingCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return nil
}

func (c *countingCache) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func setupService(t *testing.T) (*Service, *gorm.DB, *countingCache) {
	t.Helper()
	// Use a per-test in-memory database to avoid cross-test interference
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := config.ConnectSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name), nil, zap.NewNop().Sugar())
	require.NoError(t, err)
	require.NoError(t, config.MigrateDatabase(db))

	cache := &countingCache{}
	s := NewService(db, zap.NewNop().Sugar(), cache)
	s.now = func() time.Time { return fixedNow }
	return s, db, cache
}

func mustUser(t *testing.T, s *Service, name string, role postgres.Role) *postgres.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), NewUser{
		Name:     name,
		Email:    strings.ToLower(name) + "@example.com",
		Password: "secret",
		Role:     role,
	})
	require.NoError(t, err)
	return u
}

func mustGame(t *testing.T, s *Service, name string, developerID uint, price string) *postgres.Game {
	t.Helper()
	g, err := s.CreateGame(context.Background(), NewGame{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		State:       postgres.GameStateLaunched,
		DeveloperID: developerID,
	})
	require.NoError(t, err)
	return g
}

func count(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}
