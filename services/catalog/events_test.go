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

func day(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEventsLatestFirst(t *testing.T) {
	s, _, _ := setupService(t)
	ctx := context.Background()

	for _, e := range []NewEvent{
		{Title: "Spring Sale", StartDate: day(3, 1), EndDate: day(3, 7), EventType: postgres.EventSale},
		{Title: "Launch", StartDate: day(9, 1), EndDate: day(9, 1), EventType: postgres.EventRelease},
		{Title: "Cup", StartDate: day(6, 1), EndDate: day(6, 2), EventType: postgres.EventTournament},
	} {
		_, err := s.CreateEvent(ctx, e)
		require.NoError(t, err)
	}

	events, err := s.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, []string{"Launch", "Cup", "Spring Sale"}, []string{events[0].Title, events[1].Title, events[2].Title})
}

func TestEventValidation(t *testing.T) {
	s, _, _ := setupService(t)
	ctx := context.Background()

	_, err := s.CreateEvent(ctx, NewEvent{Title: "Backwards", StartDate: day(5, 2), EndDate: day(5, 1), EventType: postgres.EventSale})
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = s.CreateEvent(ctx, NewEvent{Title: "Odd", StartDate: day(5, 1), EndDate: day(5, 1), EventType: "PARTY"})
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = s.CreateEvent(ctx, NewEvent{Title: "", StartDate: day(5, 1), EndDate: day(5, 1), EventType: postgres.EventSale})
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestUpdateEvent(t *testing.T) {
	s, _, _ := setupService(t)
	ctx := context.Background()
	e, err := s.CreateEvent(ctx, NewEvent{Title: "Cup", StartDate: day(6, 1), EndDate: day(6, 2), EventType: postgres.EventTournament})
	require.NoError(t, err)

	end := day(6, 5)
	title := "Grand Cup"
	updated, err := s.UpdateEvent(ctx, e.ID, EventChanges{Title: &title, EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, "Grand Cup", updated.Title)
	assert.Equal(t, "2024-06-05", time.Time(updated.EndDate).Format("2006-01-02"))
	assert.Equal(t, postgres.EventTournament, updated.EventType)

	early := day(5, 1)
	_, err = s.UpdateEvent(ctx, e.ID, EventChanges{EndDate: &early})
	assert.ErrorIs(t, err, errs.ErrValidation)

	got, err := s.GetEvent(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-05", time.Time(got.EndDate).Format("2006-01-02"), "failed update left the row unchanged")

	_, err = s.UpdateEvent(ctx, 999, EventChanges{Title: &title})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCommentsAndReports(t *testing.T) {
	s, db, _ := setupService(t)
	ctx := context.Background()
	dev := mustUser(t, s, "Dev", postgres.RoleDeveloper)
	ana := mustUser(t, s, "Ana", postgres.RolePlayer)
	game := mustGame(t, s, "Star Forge", dev.ID, "1.00")

	c, err := s.PostComment(ctx, NewComment{UserID: ana.ID, TargetType: "game", TargetID: game.ID, Content: "Fun!"})
	require.NoError(t, err)
	assert.Nil(t, c.EventID)

	missing := uint(999)
	_, err = s.PostComment(ctx, NewComment{UserID: ana.ID, EventID: &missing, TargetType: "event", TargetID: 999, Content: "?"})
	assert.ErrorIs(t, err, errs.ErrReference)

	_, err = s.PostComment(ctx, NewComment{UserID: ana.ID, TargetType: "a-very-long-target-type", Content: "x"})
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = s.ReportComment(ctx, c.ID, "spam")
	require.NoError(t, err)
	_, err = s.ReportComment(ctx, 999, "spam")
	assert.ErrorIs(t, err, errs.ErrReference)
	_, err = s.ReportComment(ctx, c.ID, "  ")
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = s.ReportGame(ctx, game.ID, ana.ID, "broken")
	require.NoError(t, err)
	_, err = s.ReportGame(ctx, game.ID, 999, "broken")
	assert.ErrorIs(t, err, errs.ErrReference)

	assert.EqualValues(t, 1, count(t, db, &postgres.CommentReport{}, "1 = 1"))
	assert.EqualValues(t, 1, count(t, db, &postgres.GameReport{}, "1 = 1"))
}

func TestLogActivity(t *testing.T) {
	s, _, _ := setupService(t)
	ctx := context.Background()
	ana := mustUser(t, s, "Ana", postgres.RolePlayer)

	entry, err := s.LogActivity(ctx, NewActivity{UserID: ana.ID, ActivityType: "LOGIN", Description: "web"})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, entry.LoggedAt)

	_, err = s.LogActivity(ctx, NewActivity{UserID: 999, ActivityType: "LOGIN"})
	assert.ErrorIs(t, err, errs.ErrReference)
	_, err = s.LogActivity(ctx, NewActivity{UserID: ana.ID})
	assert.ErrorIs(t, err, errs.ErrValidation)
}
