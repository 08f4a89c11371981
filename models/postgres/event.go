package postgres

import (
	errs "Arcadia/errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Event struct {
	ID          uint           `gorm:"column:event_id;primaryKey"`
	Title       string         `gorm:"size:100;not null"`
	Description string         `gorm:"type:text"`
	StartDate   datatypes.Date `gorm:"not null;index:idx_events_start_date"`
	EndDate     datatypes.Date `gorm:"not null"`
	EventType   EventType      `gorm:"size:20;not null"`
}

func (e *Event) BeforeSave(tx *gorm.DB) error {
	if !e.EventType.Valid() {
		return errs.Validation("event_type", "%q is not one of %v", e.EventType, EventTypes)
	}
	if time.Time(e.EndDate).Before(time.Time(e.StartDate)) {
		return errs.Validation("end_date", "ends before it starts")
	}
	return nil
}

type EventParticipation struct {
	UserID           uint           `gorm:"primaryKey;autoIncrement:false"`
	EventID          uint           `gorm:"primaryKey;autoIncrement:false"`
	RegistrationDate datatypes.Date `gorm:"not null"`

	User  *User  `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Event *Event `gorm:"foreignKey:EventID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
