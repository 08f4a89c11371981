package catalog

import (
	"Arcadia/models/postgres"
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NewComment struct {
	UserID     uint   `json:"user_id" validate:"required"`
	EventID    *uint  `json:"event_id" validate:"omitnil,min=1"`
	TargetType string `json:"target_type" validate:"required,max=20"`
	TargetID   uint   `json:"target_id"`
	Content    string `json:"content" validate:"required"`
}

type NewActivity struct {
	UserID       uint       `json:"user_id" validate:"required"`
	ActivityType string     `json:"activity_type" validate:"required,max=50"`
	Description  string     `json:"description"`
	LoggedAt     *time.Time `json:"logged_at"`
}

// PostComment stores a comment. The (target_type, target_id) pair is a free
// tag; only the optional event is checked.
func (s *Service) PostComment(ctx context.Context, in NewComment) (*postgres.Comment, error) {
	in.TargetType = strings.TrimSpace(in.TargetType)
	in.Content = strings.TrimSpace(in.Content)
	if err := s.check(in); err != nil {
		return nil, err
	}
	comment := &postgres.Comment{
		UserID:     in.UserID,
		EventID:    in.EventID,
		TargetType: in.TargetType,
		TargetID:   in.TargetID,
		Content:    in.Content,
		PostedAt:   s.now(),
	}
	err := s.write(ctx, "post comment", func(tx *gorm.DB) error {
		if err := userRef(in.UserID).mustExist(tx); err != nil {
			return err
		}
		if in.EventID != nil {
			if err := eventRef(*in.EventID).mustExist(tx); err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Create(comment).Error
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *Service) ReportComment(ctx context.Context, commentID uint, reason string) (*postgres.CommentReport, error) {
	in := struct {
		CommentID uint   `json:"comment_id" validate:"required"`
		Reason    string `json:"reason" validate:"required"`
	}{commentID, strings.TrimSpace(reason)}
	if err := s.check(in); err != nil {
		return nil, err
	}
	report := &postgres.CommentReport{CommentID: commentID, Reason: in.Reason, ReportDate: s.today()}
	err := s.write(ctx, "report comment", func(tx *gorm.DB) error {
		if err := commentRef(commentID).mustExist(tx); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(report).Error
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// ReportGame files a moderation report by userID against gameID.
func (s *Service) ReportGame(ctx context.Context, gameID, userID uint, reason string) (*postgres.GameReport, error) {
	in := struct {
		GameID uint   `json:"game_id" validate:"required"`
		UserID uint   `json:"user_id" validate:"required"`
		Reason string `json:"reason" validate:"required"`
	}{gameID, userID, strings.TrimSpace(reason)}
	if err := s.check(in); err != nil {
		return nil, err
	}
	report := &postgres.GameReport{GameID: gameID, UserID: userID, Reason: in.Reason, ReportDate: s.today()}
	err := s.write(ctx, "report game", func(tx *gorm.DB) error {
		if err := gameRef(gameID).mustExist(tx); err != nil {
			return err
		}
		if err := userRef(userID).mustExist(tx); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(report).Error
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (s *Service) LogActivity(ctx context.Context, in NewActivity) (*postgres.ActivityLogEntry, error) {
	in.ActivityType = strings.TrimSpace(in.ActivityType)
	if err := s.check(in); err != nil {
		return nil, err
	}
	entry := &postgres.ActivityLogEntry{
		UserID:       in.UserID,
		ActivityType: in.ActivityType,
		Description:  in.Description,
		LoggedAt:     timeOr(in.LoggedAt, s.now()),
	}
	err := s.write(ctx, "log activity", func(tx *gorm.DB) error {
		if err := userRef(in.UserID).mustExist(tx); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(entry).Error
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// logActivity appends an entry inside an already open transaction.
func (s *Service) logActivity(tx *gorm.DB, userID uint, activityType, description string) error {
	return tx.Omit(clause.Associations).Create(&postgres.ActivityLogEntry{
		UserID:       userID,
		ActivityType: activityType,
		Description:  description,
		LoggedAt:     s.now(),
	}).Error
}
