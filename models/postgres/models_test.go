package postgres_test

import (
	"Arcadia/config"
	errs "Arcadia/errors"
	"Arcadia/models/postgres"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := config.ConnectSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name), nil, zap.NewNop().Sugar())
	require.NoError(t, err)
	require.NoError(t, config.MigrateDatabase(db))
	return db
}

func day(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func TestUserAndGame(t *testing.T) {
	db := openDB(t)

	dev := postgres.User{
		Name:             "Dev",
		Email:            "dev@example.com",
		Password:         "hash",
		Role:             postgres.RoleDeveloper,
		RegistrationDate: day(2024, 1, 1),
	}
	require.NoError(t, db.Create(&dev).Error)
	require.NotZero(t, dev.ID)

	game := postgres.Game{
		Name:        "Star Forge",
		Price:       decimal.RequireFromString("19.99"),
		State:       postgres.GameStateLaunched,
		DeveloperID: dev.ID,
	}
	require.NoError(t, db.Create(&game).Error)

	var found postgres.Game
	require.NoError(t, db.Preload("Developer").First(&found, game.ID).Error)
	assert.Equal(t, "Dev", found.Developer.Name)
	assert.True(t, found.Price.Equal(decimal.RequireFromString("19.99")))
}

func TestHooksRefuseBadValues(t *testing.T) {
	db := openDB(t)

	err := db.Create(&postgres.User{Name: "x", Email: "x@example.com", Password: "h", Role: "ADMIN"}).Error
	assert.ErrorIs(t, err, errs.ErrValidation)

	err = db.Create(&postgres.Review{UserID: 1, GameID: 1, Rating: 6}).Error
	assert.ErrorIs(t, err, errs.ErrValidation)

	err = db.Create(&postgres.Event{
		Title:     "Cup",
		StartDate: day(2024, 5, 2),
		EndDate:   day(2024, 5, 1),
		EventType: postgres.EventTournament,
	}).Error
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestForeignKeysEnforced(t *testing.T) {
	db := openDB(t)

	err := db.Create(&postgres.GameVersion{GameID: 999, VersionLabel: "1.0", PublishDate: day(2024, 1, 1)}).Error
	assert.Error(t, err)
}

func TestCheckMoney(t *testing.T) {
	for _, tc := range []struct {
		amount string
		ok     bool
	}{
		{"0", true},
		{"19.99", true},
		{"99999999.99", true},
		{"19.999", false},
		{"-1", false},
		{"100000000", false},
	} {
		t.Run(tc.amount, func(t *testing.T) {
			err := postgres.CheckMoney("price", decimal.RequireFromString(tc.amount))
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errs.ErrValidation)
			}
		})
	}
}

func TestEnumLookups(t *testing.T) {
	m, err := postgres.PaymentMethodByIndex(2)
	require.NoError(t, err)
	assert.Equal(t, postgres.PaymentPaypal, m)

	_, err = postgres.PaymentMethodByIndex(5)
	assert.ErrorIs(t, err, errs.ErrValidation)

	m, err = postgres.ParsePaymentMethod(" crypto ")
	require.NoError(t, err)
	assert.Equal(t, postgres.PaymentCrypto, m)

	_, err = postgres.GameState("GONE").Value()
	assert.ErrorIs(t, err, errs.ErrValidation)

	var p postgres.Platform
	assert.NoError(t, p.Scan([]byte("LINUX")))
	assert.Equal(t, postgres.PlatformLinux, p)
	assert.Error(t, p.Scan("AMIGA"))
}
