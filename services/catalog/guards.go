package catalog

import (
	errs "Arcadia/errors"
	"Arcadia/models/postgres"
	"Arcadia/utils"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// userDeleteGuard refuses to delete a user that business records still
// point at. It must run inside the delete transaction.
func userDeleteGuard(tx *gorm.DB, id uint) error {
	checks := []struct {
		what  string
		model any
		where string
	}{
		{"developed games", &postgres.Game{}, "developer_id = ?"},
		{"purchases", &postgres.Purchase{}, "user_id = ?"},
		{"reviews", &postgres.Review{}, "user_id = ?"},
	}

	var blocking []string
	for _, c := range checks {
		n, err := utils.CountRecords(tx, c.model, c.where, id)
		if err != nil {
			return err
		}
		if n > 0 {
			blocking = append(blocking, fmt.Sprintf("%d %s", n, c.what))
		}
	}
	if len(blocking) > 0 {
		return errs.IntegrityBlocked("user", id, "has "+strings.Join(blocking, ", "))
	}
	return nil
}

// deleteUserRows removes everything owned only by the user, children first.
func deleteUserRows(tx *gorm.DB, id uint) error {
	ownComments := tx.Model(&postgres.Comment{}).Select("comment_id").Where("user_id = ?", id)
	steps := []struct {
		model any
		where string
		args  []any
	}{
		{&postgres.CommentReport{}, "comment_id IN (?)", []any{ownComments}},
		{&postgres.Comment{}, "user_id = ?", []any{id}},
		{&postgres.Favorite{}, "user_id = ?", []any{id}},
		{&postgres.EventParticipation{}, "user_id = ?", []any{id}},
		{&postgres.AchievementProgress{}, "user_id = ?", []any{id}},
		{&postgres.ActivityLogEntry{}, "user_id = ?", []any{id}},
		{&postgres.GameReport{}, "user_id = ?", []any{id}},
		{&postgres.UserProfile{}, "user_id = ?", []any{id}},
		{&postgres.User{}, "user_id = ?", []any{id}},
	}
	for _, step := range steps {
		if err := tx.Where(step.where, step.args...).Delete(step.model).Error; err != nil {
			return err
		}
	}
	return nil
}
