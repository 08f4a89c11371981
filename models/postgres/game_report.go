package postgres

import (
	"gorm.io/datatypes"
)

// GameReport is a moderation report filed by a user against a game.
type GameReport struct {
	ID         uint           `gorm:"column:report_id;primaryKey"`
	GameID     uint           `gorm:"not null;index:idx_game_reports_game"`
	UserID     uint           `gorm:"not null;index:idx_game_reports_user"`
	Reason     string         `gorm:"type:text;not null"`
	ReportDate datatypes.Date `gorm:"not null"`

	Game *Game `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}
