package postgres

import (
	errs "Arcadia/errors"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*
 * 'Game' is a catalog entry owned by a developer account. Versions, purchases,
 * reviews, achievements, platforms, favorites, maintenance windows, price
 * history and reports reference it by game_id.
 */
type Game struct {
	ID          uint            `gorm:"column:game_id;primaryKey"`
	Name        string          `gorm:"size:100;not null"`
	Description string          `gorm:"type:text"`
	ReleaseDate *datatypes.Date `gorm:""`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	State       GameState       `gorm:"size:20;not null"`
	DeveloperID uint            `gorm:"not null;index:idx_games_developer"` // reverse lookup for the delete guard

	Developer *User `gorm:"foreignKey:DeveloperID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func (g *Game) BeforeSave(tx *gorm.DB) error {
	if !g.State.Valid() {
		return errs.Validation("state", "%q is not one of %v", g.State, GameStates)
	}
	return CheckMoney("price", g.Price)
}

// InitialVersionLabel is the label of the version every new game starts with.
const InitialVersionLabel = "1.0"

type GameVersion struct {
	ID           uint           `gorm:"column:version_id;primaryKey"`
	GameID       uint           `gorm:"not null;index:idx_game_versions_game"`
	VersionLabel string         `gorm:"size:20;not null"`
	PublishDate  datatypes.Date `gorm:"not null"`
	Changelog    string         `gorm:"type:text"`

	Game *Game `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
