package catalog

import (
	errs "Arcadia/errors"
	"Arcadia/models/postgres"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePurchase(t *testing.T) {
	s, db, cache := setupService(t)
	ctx := context.Background()
	dev := mustUser(t, s, "Dev", postgres.RoleDeveloper)
	buyer := mustUser(t, s, "Buyer", postgres.RolePlayer)
	game := mustGame(t, s, "Star Forge", dev.ID, "19.99")
	before := cache.count()

	p, err := s.CreatePurchase(ctx, NewPurchase{UserID: buyer.ID, GameID: game.ID, PaymentMethod: postgres.PaymentPaypal})
	require.NoError(t, err)
	assert.Equal(t, "19.99", p.AmountPaid.StringFixed(2), "amount defaults to the game price")
	assert.Equal(t, fixedNow, p.PurchasedAt)
	assert.Equal(t, before+1, cache.count())

	discounted := decimal.RequireFromString("9.50")
	at := time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC)
	p, err = s.CreatePurchase(ctx, NewPurchase{UserID: buyer.ID, GameID: game.ID, Amount: &discounted, PaymentMethod: postgres.PaymentCard, PurchasedAt: &at})
	require.NoError(t, err)
	assert.Equal(t, "9.50", p.AmountPaid.StringFixed(2))

	assert.EqualValues(t, 2, count(t, db, &postgres.ActivityLogEntry{}, "user_id = ? AND activity_type = ?", buyer.ID, postgres.ActivityPurchase))
}

func TestCreatePurchaseFailures(t *testing.T) {
	s, db, cache := setupService(t)
	ctx := context.Background()
	dev := mustUser(t, s, "Dev", postgres.RoleDeveloper)
	buyer := mustUser(t, s, "Buyer", postgres.RolePlayer)
	game := mustGame(t, s, "Star Forge", dev.ID, "19.99")
	before := cache.count()

	_, err := s.CreatePurchase(ctx, NewPurchase{UserID: 999, GameID: game.ID, PaymentMethod: postgres.PaymentCard})
	assert.ErrorIs(t, err, errs.ErrReference)

	_, err = s.CreatePurchase(ctx, NewPurchase{UserID: buyer.ID, GameID: 999, PaymentMethod: postgres.PaymentCard})
	assert.ErrorIs(t, err, errs.ErrReference)

	_, err = s.CreatePurchase(ctx, NewPurchase{UserID: buyer.ID, GameID: game.ID, PaymentMethod: "CASH"})
	assert.ErrorIs(t, err, errs.ErrValidation)

	tooPrecise := decimal.RequireFromString("1.005")
	_, err = s.CreatePurchase(ctx, NewPurchase{UserID: buyer.ID, GameID: game.ID, Amount: &tooPrecise, PaymentMethod: postgres.PaymentCard})
	assert.ErrorIs(t, err, errs.ErrValidation)

	assert.EqualValues(t, 0, count(t, db, &postgres.Purchase{}, "1 = 1"))
	assert.EqualValues(t, 0, count(t, db, &postgres.ActivityLogEntry{}, "1 = 1"))
	assert.Equal(t, before, cache.count(), "failed writes do not invalidate the cache")
}

func TestCreateReview(t *testing.T) {
	s, db, _ := setupService(t)
	ctx := context.Background()
	dev := mustUser(t, s, "Dev", postgres.RoleDeveloper)
	critic := mustUser(t, s, "Critic", postgres.RolePlayer)
	game := mustGame(t, s, "Star Forge", dev.ID, "5.00")

	r, err := s.CreateReview(ctx, NewReview{UserID: critic.ID, GameID: game.ID, Rating: 5, Comment: " great "})
	require.NoError(t, err)
	assert.Equal(t, "great", r.Comment)

	for _, rating := range []int{0, 6} {
		_, err = s.CreateReview(ctx, NewReview{UserID: critic.ID, GameID: game.ID, Rating: rating})
		assert.ErrorIs(t, err, errs.ErrValidation)
	}
	assert.EqualValues(t, 1, count(t, db, &postgres.Review{}, "1 = 1"))
	assert.EqualValues(t, 1, count(t, db, &postgres.ActivityLogEntry{}, "activity_type = ?", postgres.ActivityReview))
}
