package postgres

import (
	"time"

	"gorm.io/datatypes"
)

/*
 * 'Comment' is free text posted by a user about anything on the platform.
 * The target is a (type, id) tag pair and is not checked; the event link is.
 */
type Comment struct {
	ID         uint      `gorm:"column:comment_id;primaryKey"`
	UserID     uint      `gorm:"not null;index:idx_comments_user"`
	EventID    *uint     `gorm:"index:idx_comments_event"`
	TargetType string    `gorm:"size:20;not null"`
	TargetID   uint      `gorm:"not null"`
	Content    string    `gorm:"type:text;not null"`
	PostedAt   time.Time `gorm:"not null"`

	User  *User  `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Event *Event `gorm:"foreignKey:EventID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

type CommentReport struct {
	ID         uint           `gorm:"column:report_id;primaryKey"`
	CommentID  uint           `gorm:"not null;index:idx_comment_reports_comment"`
	Reason     string         `gorm:"type:text;not null"`
	ReportDate datatypes.Date `gorm:"not null"`

	Comment *Comment `gorm:"foreignKey:CommentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
