package postgres

import (
	"gorm.io/datatypes"
)

/*
 * 'Favorite' marks a game as favorite for a user. The pair is the key, so a
 * game can be marked only once per user.
 */
type Favorite struct {
	UserID     uint           `gorm:"primaryKey;autoIncrement:false"`
	GameID     uint           `gorm:"primaryKey;autoIncrement:false"`
	MarkedDate datatypes.Date `gorm:"not null"`

	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Game *Game `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
