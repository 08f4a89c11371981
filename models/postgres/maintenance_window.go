package postgres

import (
	errs "Arcadia/errors"
	"time"

	"gorm.io/gorm"
)

type MaintenanceWindow struct {
	ID       uint      `gorm:"column:maintenance_id;primaryKey"`
	GameID   uint      `gorm:"not null;index:idx_maintenance_windows_game"`
	StartsAt time.Time `gorm:"not null"`
	EndsAt   time.Time `gorm:"not null"`
	Reason   string    `gorm:"type:text"`

	Game *Game `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (m *MaintenanceWindow) BeforeSave(tx *gorm.DB) error {
	if !m.EndsAt.After(m.StartsAt) {
		return errs.Validation("ends_at", "window must end after it starts")
	}
	return nil
}
