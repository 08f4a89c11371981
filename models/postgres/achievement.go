package postgres

import (
	errs "Arcadia/errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Achievement struct {
	ID          uint   `gorm:"column:achievement_id;primaryKey"`
	GameID      uint   `gorm:"not null;index:idx_achievements_game"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	Points      int    `gorm:"not null;default:0"`

	Game *Game `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (a *Achievement) BeforeSave(tx *gorm.DB) error {
	if a.Points < 0 {
		return errs.Validation("points", "%d is negative", a.Points)
	}
	return nil
}

/*
 * 'AchievementProgress' marks an achievement unlocked by a user.
 * A user can unlock each achievement only once.
 */
type AchievementProgress struct {
	UserID        uint           `gorm:"primaryKey;autoIncrement:false"`
	AchievementID uint           `gorm:"primaryKey;autoIncrement:false"`
	UnlockDate    datatypes.Date `gorm:"not null"`

	User        *User        `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Achievement *Achievement `gorm:"foreignKey:AchievementID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (AchievementProgress) TableName() string { return "achievement_progress" }
