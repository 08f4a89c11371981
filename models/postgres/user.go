package postgres

import (
	errs "Arcadia/errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*
 * 'User' is a platform account. Developed games, purchases and reviews point
 * back at it through their own foreign keys; the profile is a 1-1 child row.
 */
type User struct {
	ID               uint           `gorm:"column:user_id;primaryKey"`
	Name             string         `gorm:"size:100;not null"`
	Email            string         `gorm:"size:100;not null;uniqueIndex:idx_users_email"`
	Password         string         `gorm:"type:text;not null"` // bcrypt hash, never the plain text
	Role             Role           `gorm:"size:20;not null;index:idx_users_role"`
	RegistrationDate datatypes.Date `gorm:"not null"`
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	if !u.Role.Valid() {
		return errs.Validation("role", "%q is not one of %v", u.Role, Roles)
	}
	return nil
}

/*
 * 'UserProfile' holds the optional presentation data of a user. Created empty
 * together with the user and removed with it.
 */
type UserProfile struct {
	ID        uint            `gorm:"column:profile_id;primaryKey"`
	UserID    uint            `gorm:"not null;uniqueIndex:idx_user_profiles_user"`
	AvatarURL string          `gorm:"type:text"`
	Country   string          `gorm:"size:50"`
	Biography string          `gorm:"type:text"`
	BirthDate *datatypes.Date `gorm:""`

	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
