package reports

import (
	"Arcadia/models/postgres"
	"Arcadia/services/export"
	"context"
	"strings"
	"time"
)

type ActivityFilter struct {
	UserID       string
	ActivityType string
}

type AppliedActivityFilter struct {
	UserID       *uint  `json:"user_id,omitempty"`
	ActivityType string `json:"activity_type,omitempty"`
}

type ActivityRow struct {
	ActivityID   uint      `json:"activity_id"`
	UserName     string    `json:"user_name"`
	ActivityType string    `json:"activity_type"`
	Description  string    `json:"description"`
	LoggedAt     time.Time `json:"logged_at"`
}

type ActivityReport struct {
	Rows     []ActivityRow
	Applied  AppliedActivityFilter
	Warnings []string
}

// Activity lists the activity log, newest first. The type filter matches any
// entry whose type contains it, ignoring case.
func (s *Service) Activity(ctx context.Context, filter ActivityFilter) (*ActivityReport, error) {
	var warnings []string
	applied := AppliedActivityFilter{
		UserID:       parseID("user_id", filter.UserID, &warnings),
		ActivityType: strings.TrimSpace(filter.ActivityType),
	}
	s.warn("activity", warnings)

	report := &ActivityReport{Applied: applied, Warnings: warnings, Rows: []ActivityRow{}}
	err := s.cached(ctx, "activity", applied, &report.Rows, func() error {
		q := s.db.WithContext(ctx).
			Model(&postgres.ActivityLogEntry{}).
			Select("activity_log.activity_id, users.name AS user_name, activity_log.activity_type, " +
				"activity_log.description, activity_log.logged_at").
			Joins("JOIN users ON users.user_id = activity_log.user_id")
		if applied.UserID != nil {
			q = q.Where("activity_log.user_id = ?", *applied.UserID)
		}
		if applied.ActivityType != "" {
			q = q.Where(`LOWER(activity_log.activity_type) LIKE ? ESCAPE '\'`, containsPattern(applied.ActivityType))
		}
		return q.Order("activity_log.logged_at DESC").Order("activity_log.activity_id DESC").
			Scan(&report.Rows).Error
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (r *ActivityReport) Table() export.Table {
	t := export.Table{
		Name:   "activity",
		Header: []string{"ID", "User", "Type", "Description", "Date"},
		Rows:   make([][]any, 0, len(r.Rows)),
	}
	for _, row := range r.Rows {
		t.Rows = append(t.Rows, []any{row.ActivityID, row.UserName, row.ActivityType, row.Description, row.LoggedAt})
	}
	return t
}
