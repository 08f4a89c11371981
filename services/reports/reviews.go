package reports

import (
	"Arcadia/models/postgres"
	"Arcadia/services/export"
	"context"

	"gorm.io/datatypes"
)

type ReviewFilter struct {
	GameID string
	UserID string
}

type AppliedReviewFilter struct {
	GameID *uint `json:"game_id,omitempty"`
	UserID *uint `json:"user_id,omitempty"`
}

type ReviewRow struct {
	ReviewID   uint           `json:"review_id"`
	UserName   string         `json:"user_name"`
	GameName   string         `json:"game_name"`
	Rating     int            `json:"rating"`
	Comment    string         `json:"comment"`
	ReviewDate datatypes.Date `json:"review_date"`
}

type ReviewsReport struct {
	Rows     []ReviewRow
	Applied  AppliedReviewFilter
	Warnings []string
}

func (s *Service) Reviews(ctx context.Context, filter ReviewFilter) (*ReviewsReport, error) {
	var warnings []string
	applied := AppliedReviewFilter{
		GameID: parseID("game_id", filter.GameID, &warnings),
		UserID: parseID("user_id", filter.UserID, &warnings),
	}
	s.warn("reviews", warnings)

	report := &ReviewsReport{Applied: applied, Warnings: warnings, Rows: []ReviewRow{}}
	err := s.cached(ctx, "reviews", applied, &report.Rows, func() error {
		q := s.db.WithContext(ctx).
			Model(&postgres.Review{}).
			Select("reviews.review_id, users.name AS user_name, games.name AS game_name, " +
				"reviews.rating, reviews.comment, reviews.review_date").
			Joins("JOIN users ON users.user_id = reviews.user_id").
			Joins("JOIN games ON games.game_id = reviews.game_id")
		if applied.GameID != nil {
			q = q.Where("reviews.game_id = ?", *applied.GameID)
		}
		if applied.UserID != nil {
			q = q.Where("reviews.user_id = ?", *applied.UserID)
		}
		return q.Order("reviews.review_date DESC").Order("reviews.review_id DESC").
			Scan(&report.Rows).Error
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (r *ReviewsReport) Table() export.Table {
	t := export.Table{
		Name:   "reviews",
		Header: []string{"ID", "User", "Game", "Rating", "Comment", "Date"},
		Rows:   make([][]any, 0, len(r.Rows)),
	}
	for _, row := range r.Rows {
		t.Rows = append(t.Rows, []any{row.ReviewID, row.UserName, row.GameName, row.Rating, row.Comment, row.ReviewDate})
	}
	return t
}
