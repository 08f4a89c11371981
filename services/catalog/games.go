package catalog

import (
	errs "Arcadia/errors"
	"Arcadia/models/postgres"
	"Arcadia/utils"
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const initialChangelog = "Initial release"

type NewGame struct {
	Name        string             `json:"name" validate:"required,max=100"`
	Description string             `json:"description"`
	ReleaseDate *time.Time         `json:"release_date"`
	Price       decimal.Decimal    `json:"price"`
	State       postgres.GameState `json:"state" validate:"enum"`
	DeveloperID uint               `json:"developer_id" validate:"required"`
}

type GameChanges struct {
	Name        *string             `json:"name" validate:"omitnil,min=1,max=100"`
	Description *string             `json:"description"`
	ReleaseDate *time.Time          `json:"release_date"`
	Price       *decimal.Decimal    `json:"price"`
	State       *postgres.GameState `json:"state" validate:"omitnil,enum"`
	DeveloperID *uint               `json:"developer_id" validate:"omitnil,min=1"`
}

type NewVersion struct {
	GameID       uint       `json:"game_id" validate:"required"`
	VersionLabel string     `json:"version_label" validate:"required,max=20"`
	PublishDate  *time.Time `json:"publish_date"`
	Changelog    string     `json:"changelog"`
}

type NewMaintenance struct {
	GameID   uint      `json:"game_id" validate:"required"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
	EndsAt   time.Time `json:"ends_at" validate:"required"`
	Reason   string    `json:"reason"`
}

// GameListing is a game with the name of its developer.
type GameListing struct {
	postgres.Game
	DeveloperName string
}

// CreateGame stores a game and its initial version in one transaction.
func (s *Service) CreateGame(ctx context.Context, in NewGame) (*postgres.Game, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := s.check(in); err != nil {
		return nil, err
	}
	if err := postgres.CheckMoney("price", in.Price); err != nil {
		return nil, err
	}

	game := &postgres.Game{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		State:       in.State,
		DeveloperID: in.DeveloperID,
	}
	if in.ReleaseDate != nil {
		d := dateOf(*in.ReleaseDate)
		game.ReleaseDate = &d
	}
	err := s.write(ctx, "create game", func(tx *gorm.DB) error {
		if err := requireDeveloper(tx, in.DeveloperID); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(game).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&postgres.GameVersion{
			GameID:       game.ID,
			VersionLabel: postgres.InitialVersionLabel,
			PublishDate:  s.today(),
			Changelog:    initialChangelog,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	s.log.Infow("game created", "game_id", game.ID, "developer_id", game.DeveloperID)
	return game, nil
}

// UpdateGame applies the non-nil changes. A new price is recorded in the
// price history.
func (s *Service) UpdateGame(ctx context.Context, id uint, in GameChanges) (*postgres.Game, error) {
	trimPtr(in.Name)
	if err := s.check(in); err != nil {
		return nil, err
	}
	if err := checkMoney("price", in.Price); err != nil {
		return nil, err
	}

	var game postgres.Game
	err := s.write(ctx, "update game", func(tx *gorm.DB) error {
		if err := loadGame(tx, id, &game); err != nil {
			return err
		}
		if in.DeveloperID != nil && *in.DeveloperID != game.DeveloperID {
			if err := requireDeveloper(tx, *in.DeveloperID); err != nil {
				return err
			}
			game.DeveloperID = *in.DeveloperID
		}
		if in.Price != nil && !in.Price.Equal(game.Price) {
			entry := postgres.PriceHistoryEntry{
				GameID:        id,
				PreviousPrice: game.Price,
				NewPrice:      *in.Price,
				ChangeDate:    s.today(),
			}
			if err := tx.Omit(clause.Associations).Create(&entry).Error; err != nil {
				return err
			}
			game.Price = *in.Price
		}
		if in.Name != nil {
			game.Name = *in.Name
		}
		if in.Description != nil {
			game.Description = *in.Description
		}
		if in.ReleaseDate != nil {
			d := dateOf(*in.ReleaseDate)
			game.ReleaseDate = &d
		}
		if in.State != nil {
			game.State = *in.State
		}
		return tx.Omit(clause.Associations).Save(&game).Error
	})
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Service) GetGame(ctx context.Context, id uint) (*postgres.Game, error) {
	var game postgres.Game
	if err := loadGame(s.read(ctx), id, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Service) ListGames(ctx context.Context) ([]GameListing, error) {
	var games []GameListing
	err := s.read(ctx).
		Model(&postgres.Game{}).
		Select("games.*, users.name AS developer_name").
		Joins("JOIN users ON users.user_id = games.developer_id").
		Order("games.name").Order("games.game_id").
		Scan(&games).Error
	return games, err
}

func (s *Service) AddVersion(ctx context.Context, in NewVersion) (*postgres.GameVersion, error) {
	in.VersionLabel = strings.TrimSpace(in.VersionLabel)
	if err := s.check(in); err != nil {
		return nil, err
	}
	version := &postgres.GameVersion{
		GameID:       in.GameID,
		VersionLabel: in.VersionLabel,
		PublishDate:  dateOr(in.PublishDate, s.today()),
		Changelog:    in.Changelog,
	}
	err := s.write(ctx, "add version", func(tx *gorm.DB) error {
		if err := gameRef(in.GameID).mustExist(tx); err != nil {
			return err
		}
		dup, err := utils.RecordExists(tx, &postgres.GameVersion{}, "game_id = ? AND version_label = ?", in.GameID, in.VersionLabel)
		if err != nil {
			return err
		}
		if dup {
			return errs.Uniqueness("game version", "label", in.VersionLabel)
		}
		return tx.Omit(clause.Associations).Create(version).Error
	})
	if err != nil {
		return nil, err
	}
	return version, nil
}

// ListVersions returns the versions of a game, newest first.
func (s *Service) ListVersions(ctx context.Context, gameID uint) ([]postgres.GameVersion, error) {
	var versions []postgres.GameVersion
	err := s.read(ctx).
		Where("game_id = ?", gameID).
		Order("publish_date DESC").Order("version_id DESC").
		Find(&versions).Error
	return versions, err
}

func (s *Service) ScheduleMaintenance(ctx context.Context, in NewMaintenance) (*postgres.MaintenanceWindow, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	window := &postgres.MaintenanceWindow{
		GameID:   in.GameID,
		StartsAt: in.StartsAt.UTC(),
		EndsAt:   in.EndsAt.UTC(),
		Reason:   in.Reason,
	}
	err := s.write(ctx, "schedule maintenance", func(tx *gorm.DB) error {
		if err := gameRef(in.GameID).mustExist(tx); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(window).Error
	})
	if err != nil {
		return nil, err
	}
	return window, nil
}

func (s *Service) ListMaintenance(ctx context.Context, gameID uint) ([]postgres.MaintenanceWindow, error) {
	var windows []postgres.MaintenanceWindow
	err := s.read(ctx).
		Where("game_id = ?", gameID).
		Order("starts_at").Order("maintenance_id").
		Find(&windows).Error
	return windows, err
}

// PriceHistory returns the price changes of a game, most recent first.
func (s *Service) PriceHistory(ctx context.Context, gameID uint) ([]postgres.PriceHistoryEntry, error) {
	var entries []postgres.PriceHistoryEntry
	err := s.read(ctx).
		Where("game_id = ?", gameID).
		Order("change_date DESC").Order("history_id DESC").
		Find(&entries).Error
	return entries, err
}

// requireDeveloper checks that id names an existing DEVELOPER account.
func requireDeveloper(tx *gorm.DB, id uint) error {
	var dev postgres.User
	found, err := utils.FindOne(tx, &dev, "user_id = ?", id)
	if err != nil {
		return err
	}
	if !found {
		return errs.Reference("developer", id)
	}
	if dev.Role != postgres.RoleDeveloper {
		return errs.Validation("developer_id", "user %d has role %s", id, dev.Role)
	}
	return nil
}

func loadGame(tx *gorm.DB, id uint, dst *postgres.Game) error {
	found, err := utils.FindOne(tx, dst, "game_id = ?", id)
	if err != nil {
		return err
	}
	if !found {
		return errs.NotFound("game", id)
	}
	return nil
}
