package postgres

import (
	errs "Arcadia/errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID         uint           `gorm:"column:review_id;primaryKey"`
	UserID     uint           `gorm:"not null;index:idx_reviews_user"`
	GameID     uint           `gorm:"not null;index:idx_reviews_game"`
	Rating     int            `gorm:"not null"`
	Comment    string         `gorm:"type:text"`
	ReviewDate datatypes.Date `gorm:"not null"`

	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Game *Game `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func (r *Review) BeforeSave(tx *gorm.DB) error {
	if r.Rating < MinRating || r.Rating > MaxRating {
		return errs.Validation("rating", "%d is outside %d..%d", r.Rating, MinRating, MaxRating)
	}
	return nil
}
