package postgres

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PriceHistoryEntry is appended every time the price of a game changes.
type PriceHistoryEntry struct {
	ID            uint            `gorm:"column:history_id;primaryKey"`
	GameID        uint            `gorm:"not null;index:idx_price_history_game"`
	PreviousPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	NewPrice      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	ChangeDate    datatypes.Date  `gorm:"not null"`

	Game *Game `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (PriceHistoryEntry) TableName() string { return "price_history" }
