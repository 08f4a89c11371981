package catalog

import (
	errs "Arcadia/errors"
	"Arcadia/models/postgres"
	"Arcadia/utils"
	"context"
	"database/sql"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NewUser struct {
	Name             string        `json:"name" validate:"required,max=100"`
	Email            string        `json:"email" validate:"required,max=100,email"`
	Password         string        `json:"password" validate:"required,max=72"`
	Role             postgres.Role `json:"role" validate:"enum"`
	RegistrationDate *time.Time    `json:"registration_date"`
}

// UserChanges lists the fields to overwrite. Nil keeps the stored value.
type UserChanges struct {
	Name     *string        `json:"name" validate:"omitnil,min=1,max=100"`
	Email    *string        `json:"email" validate:"omitnil,max=100,email"`
	Password *string        `json:"password" validate:"omitnil,min=1,max=72"`
	Role     *postgres.Role `json:"role" validate:"omitnil,enum"`
}

type ProfileChanges struct {
	AvatarURL *string    `json:"avatar_url" validate:"omitnil,max=2048"`
	Country   *string    `json:"country" validate:"omitnil,max=50"`
	Biography *string    `json:"biography"`
	BirthDate *time.Time `json:"birth_date"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored hash of u.
func CheckPassword(u *postgres.User, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

func emailTaken(tx *gorm.DB, email string, except uint) error {
	taken, err := utils.RecordExists(tx, &postgres.User{}, "email = ? AND user_id <> ?", email, except)
	if err != nil {
		return err
	}
	if taken {
		return errs.Uniqueness("user", "email", email)
	}
	return nil
}

// CreateUser stores a new user together with its empty profile.
func (s *Service) CreateUser(ctx context.Context, in NewUser) (*postgres.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if err := s.check(in); err != nil {
		return nil, err
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &postgres.User{
		Name:             in.Name,
		Email:            in.Email,
		Password:         hash,
		Role:             in.Role,
		RegistrationDate: dateOr(in.RegistrationDate, s.today()),
	}
	err = s.write(ctx, "create user", func(tx *gorm.DB) error {
		if err := emailTaken(tx, user.Email, 0); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&postgres.UserProfile{UserID: user.ID}).Error
	})
	if err != nil {
		return nil, err
	}
	s.log.Infow("user created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (s *Service) UpdateUser(ctx context.Context, id uint, in UserChanges) (*postgres.User, error) {
	trimPtr(in.Name)
	if in.Email != nil {
		e := normalizeEmail(*in.Email)
		in.Email = &e
	}
	if err := s.check(in); err != nil {
		return nil, err
	}

	var user postgres.User
	err := s.write(ctx, "update user", func(tx *gorm.DB) error {
		if err := loadUser(tx, id, &user); err != nil {
			return err
		}
		if in.Email != nil && *in.Email != user.Email {
			if err := emailTaken(tx, *in.Email, id); err != nil {
				return err
			}
			user.Email = *in.Email
		}
		if in.Name != nil {
			user.Name = *in.Name
		}
		if in.Password != nil {
			hash, err := hashPassword(*in.Password)
			if err != nil {
				return err
			}
			user.Password = hash
		}
		if in.Role != nil && *in.Role != user.Role {
			if user.Role == postgres.RoleDeveloper {
				owned, err := utils.CountRecords(tx, &postgres.Game{}, "developer_id = ?", id)
				if err != nil {
					return err
				}
				if owned > 0 {
					return errs.IntegrityBlocked("user", id, "still developer of games")
				}
			}
			user.Role = *in.Role
		}
		return tx.Omit(clause.Associations).Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user, its profile and its secondary rows. Users with
// developed games, purchases or reviews cannot be deleted.
func (s *Service) DeleteUser(ctx context.Context, id uint) error {
	err := s.write(ctx, "delete user", func(tx *gorm.DB) error {
		var user postgres.User
		if err := loadUser(tx, id, &user); err != nil {
			return err
		}
		if err := userDeleteGuard(tx, id); err != nil {
			return err
		}
		return deleteUserRows(tx, id)
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	s.log.Infow("user deleted", "user_id", id)
	return nil
}

func (s *Service) GetUser(ctx context.Context, id uint) (*postgres.User, error) {
	var user postgres.User
	if err := loadUser(s.read(ctx), id, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]postgres.User, error) {
	var users []postgres.User
	err := s.read(ctx).Order("name").Order("user_id").Find(&users).Error
	return users, err
}

// ListDevelopers returns the users allowed to own games.
func (s *Service) ListDevelopers(ctx context.Context) ([]postgres.User, error) {
	var users []postgres.User
	err := s.read(ctx).
		Where("role = ?", postgres.RoleDeveloper).
		Order("name").Order("user_id").
		Find(&users).Error
	return users, err
}

func (s *Service) GetProfile(ctx context.Context, userID uint) (*postgres.UserProfile, error) {
	var profile postgres.UserProfile
	found, err := utils.FindOne(s.read(ctx), &profile, "user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NotFound("profile of user", userID)
	}
	return &profile, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uint, in ProfileChanges) (*postgres.UserProfile, error) {
	trimPtr(in.AvatarURL)
	trimPtr(in.Country)
	if err := s.check(in); err != nil {
		return nil, err
	}

	var profile postgres.UserProfile
	err := s.write(ctx, "update profile", func(tx *gorm.DB) error {
		found, err := utils.FindOne(tx, &profile, "user_id = ?", userID)
		if err != nil {
			return err
		}
		if !found {
			return errs.NotFound("profile of user", userID)
		}
		if in.AvatarURL != nil {
			profile.AvatarURL = *in.AvatarURL
		}
		if in.Country != nil {
			profile.Country = *in.Country
		}
		if in.Biography != nil {
			profile.Biography = *in.Biography
		}
		if in.BirthDate != nil {
			d := dateOf(*in.BirthDate)
			profile.BirthDate = &d
		}
		return tx.Omit(clause.Associations).Save(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func loadUser(tx *gorm.DB, id uint, dst *postgres.User) error {
	found, err := utils.FindOne(tx, dst, "user_id = ?", id)
	if err != nil {
		return err
	}
	if !found {
		return errs.NotFound("user", id)
	}
	return nil
}
