package postgres

import (
	errs "Arcadia/errors"

	"gorm.io/gorm"
)

type GamePlatform struct {
	GameID   uint     `gorm:"primaryKey;autoIncrement:false"`
	Platform Platform `gorm:"primaryKey;size:20"`

	Game *Game `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (GamePlatform) TableName() string { return "game_platforms" }

func (p *GamePlatform) BeforeSave(tx *gorm.DB) error {
	if !p.Platform.Valid() {
		return errs.Validation("platform", "%q is not one of %v", p.Platform, Platforms)
	}
	return nil
}
