package catalog

import (
	errs "Arcadia/errors"
	"Arcadia/models/postgres"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteDuplicate(t *testing.T) {
	s, db, _ := setupService(t)
	ctx := context.Background()
	dev := mustUser(t, s, "Dev", postgres.RoleDeveloper)
	fan := mustUser(t, s, "Fan", postgres.RolePlayer)
	game := mustGame(t, s, "Star Forge", dev.ID, "1.00")

	_, err := s.AddFavorite(ctx, fan.ID, game.ID)
	require.NoError(t, err)

	_, err = s.AddFavorite(ctx, fan.ID, game.ID)
	assert.ErrorIs(t, err, errs.ErrAlreadyAssociated)
	assert.EqualValues(t, 1, count(t, db, &postgres.Favorite{}, "user_id = ? AND game_id = ?", fan.ID, game.ID))

	_, err = s.AddFavorite(ctx, fan.ID, 999)
	assert.ErrorIs(t, err, errs.ErrReference)
	_, err = s.AddFavorite(ctx, 999, game.ID)
	assert.ErrorIs(t, err, errs.ErrReference)

	games, err := s.FavoritesOf(ctx, fan.ID)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Star Forge", games[0].Name)

	require.NoError(t, s.RemoveFavorite(ctx, fan.ID, game.ID))
	assert.ErrorIs(t, s.RemoveFavorite(ctx, fan.ID, game.ID), errs.ErrNotFound)
}

func TestEventParticipation(t *testing.T) {
	s, db, _ := setupService(t)
	ctx := context.Background()
	ana := mustUser(t, s, "Ana", postgres.RolePlayer)
	ben := mustUser(t, s, "Ben", postgres.RolePlayer)

	event, err := s.CreateEvent(ctx, NewEvent{
		Title:     "Summer Cup",
		StartDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC),
		EventType: postgres.EventTournament,
	})
	require.NoError(t, err)

	_, err = s.RegisterParticipant(ctx, ben.ID, event.ID)
	require.NoError(t, err)
	_, err = s.RegisterParticipant(ctx, ana.ID, event.ID)
	require.NoError(t, err)

	_, err = s.RegisterParticipant(ctx, ana.ID, event.ID)
	assert.ErrorIs(t, err, errs.ErrAlreadyAssociated)
	_, err = s.RegisterParticipant(ctx, ana.ID, 999)
	assert.ErrorIs(t, err, errs.ErrReference)

	participants, err := s.ListParticipants(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, participants, 2)
	assert.Equal(t, "Ana", participants[0].Name)
	assert.Equal(t, "ben@example.com", participants[1].Email)
	assert.EqualValues(t, 2, count(t, db, &postgres.ActivityLogEntry{}, "activity_type = ?", postgres.ActivityEventRegistration))

	require.NoError(t, s.RemoveParticipant(ctx, ana.ID, event.ID))
	assert.ErrorIs(t, s.RemoveParticipant(ctx, ana.ID, event.ID), errs.ErrNotFound)
}

func TestAchievements(t *testing.T) {
	s, db, _ := setupService(t)
	ctx := context.Background()
	dev := mustUser(t, s, "Dev", postgres.RoleDeveloper)
	ana := mustUser(t, s, "Ana", postgres.RolePlayer)
	game := mustGame(t, s, "Star Forge", dev.ID, "1.00")

	_, err := s.CreateAchievement(ctx, NewAchievement{GameID: game.ID, Name: "Bad", Points: -1})
	assert.ErrorIs(t, err, errs.ErrValidation)
	_, err = s.CreateAchievement(ctx, NewAchievement{GameID: 999, Name: "Lost"})
	assert.ErrorIs(t, err, errs.ErrReference)

	first, err := s.CreateAchievement(ctx, NewAchievement{GameID: game.ID, Name: "First Blood", Points: 10})
	require.NoError(t, err)

	progress, err := s.UnlockAchievement(ctx, ana.ID, first.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15", time.Time(progress.UnlockDate).Format("2006-01-02"))

	_, err = s.UnlockAchievement(ctx, ana.ID, first.ID, nil)
	assert.ErrorIs(t, err, errs.ErrAlreadyAssociated)
	assert.EqualValues(t, 1, count(t, db, &postgres.AchievementProgress{}, "user_id = ?", ana.ID))
	assert.EqualValues(t, 1, count(t, db, &postgres.ActivityLogEntry{}, "activity_type = ?", postgres.ActivityAchievementUnlocked))

	list, err := s.ListAchievements(ctx, game.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.RevokeAchievement(ctx, ana.ID, first.ID))
	assert.ErrorIs(t, s.RevokeAchievement(ctx, ana.ID, first.ID), errs.ErrNotFound)
}
