package catalog

import (
	"Arcadia/models/postgres"
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NewAchievement struct {
	GameID      uint   `json:"game_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	Points      int    `json:"points" validate:"min=0"`
}

func (s *Service) CreateAchievement(ctx context.Context, in NewAchievement) (*postgres.Achievement, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := s.check(in); err != nil {
		return nil, err
	}
	achievement := &postgres.Achievement{
		GameID:      in.GameID,
		Name:        in.Name,
		Description: in.Description,
		Points:      in.Points,
	}
	err := s.write(ctx, "create achievement", func(tx *gorm.DB) error {
		if err := gameRef(in.GameID).mustExist(tx); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(achievement).Error
	})
	if err != nil {
		return nil, err
	}
	return achievement, nil
}

// UnlockAchievement records that the user earned the achievement. unlockedAt
// may be nil for today.
func (s *Service) UnlockAchievement(ctx context.Context, userID, achievementID uint, unlockedAt *time.Time) (*postgres.AchievementProgress, error) {
	progress := &postgres.AchievementProgress{
		UserID:        userID,
		AchievementID: achievementID,
		UnlockDate:    dateOr(unlockedAt, s.today()),
	}
	err := s.write(ctx, "unlock achievement", func(tx *gorm.DB) error {
		if err := associate(tx, progressPair(userID, achievementID), progress); err != nil {
			return err
		}
		var achievement postgres.Achievement
		if err := achievementRef(achievementID).load(tx, &achievement); err != nil {
			return err
		}
		return s.logActivity(tx, userID, postgres.ActivityAchievementUnlocked,
			fmt.Sprintf("unlocked %s (%d points)", achievement.Name, achievement.Points))
	})
	if err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *Service) RevokeAchievement(ctx context.Context, userID, achievementID uint) error {
	return s.write(ctx, "revoke achievement", func(tx *gorm.DB) error {
		return dissociate(tx, progressPair(userID, achievementID), &postgres.AchievementProgress{})
	})
}

func (s *Service) ListAchievements(ctx context.Context, gameID uint) ([]postgres.Achievement, error) {
	var achievements []postgres.Achievement
	err := s.read(ctx).
		Where("game_id = ?", gameID).
		Order("name").Order("achievement_id").
		Find(&achievements).Error
	return achievements, err
}
