package postgres

import (
	"time"
)

// Activity types written by the catalog itself. Callers may log any other tag.
const (
	ActivityPurchase            = "PURCHASE"
	ActivityReview              = "REVIEW"
	ActivityAchievementUnlocked = "ACHIEVEMENT_UNLOCKED"
	ActivityEventRegistration   = "EVENT_REGISTRATION"
)

type ActivityLogEntry struct {
	ID           uint      `gorm:"column:activity_id;primaryKey"`
	UserID       uint      `gorm:"not null;index:idx_activity_log_user"`
	ActivityType string    `gorm:"size:50;not null"`
	Description  string    `gorm:"type:text"`
	LoggedAt     time.Time `gorm:"not null;index:idx_activity_log_logged_at"`

	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func (ActivityLogEntry) TableName() string { return "activity_log" }
