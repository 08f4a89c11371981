package catalog

import (
	errs "Arcadia/errors"
	"Arcadia/models/postgres"
	"Arcadia/utils"
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NewCategory struct {
	Name string `json:"name" validate:"required,max=50"`
}

func (s *Service) CreateCategory(ctx context.Context, in NewCategory) (*postgres.Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := s.check(in); err != nil {
		return nil, err
	}
	category := &postgres.Category{Name: in.Name}
	err := s.write(ctx, "create category", func(tx *gorm.DB) error {
		dup, err := utils.RecordExists(tx, &postgres.Category{}, "LOWER(name) = ?", strings.ToLower(in.Name))
		if err != nil {
			return err
		}
		if dup {
			return errs.Uniqueness("category", "name", in.Name)
		}
		return tx.Omit(clause.Associations).Create(category).Error
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]postgres.Category, error) {
	var categories []postgres.Category
	err := s.read(ctx).Order("name").Find(&categories).Error
	return categories, err
}

// CategoriesOf returns the categories assigned to a game.
func (s *Service) CategoriesOf(ctx context.Context, gameID uint) ([]postgres.Category, error) {
	var categories []postgres.Category
	err := s.read(ctx).
		Joins("JOIN game_categories ON game_categories.category_id = categories.category_id").
		Where("game_categories.game_id = ?", gameID).
		Order("categories.name").
		Find(&categories).Error
	return categories, err
}

func (s *Service) AssignCategory(ctx context.Context, gameID, categoryID uint) error {
	return s.write(ctx, "assign category", func(tx *gorm.DB) error {
		row := &postgres.GameCategory{GameID: gameID, CategoryID: categoryID}
		return associate(tx, gameCategoryPair(gameID, categoryID), row)
	})
}

func (s *Service) UnassignCategory(ctx context.Context, gameID, categoryID uint) error {
	return s.write(ctx, "unassign category", func(tx *gorm.DB) error {
		return dissociate(tx, gameCategoryPair(gameID, categoryID), &postgres.GameCategory{})
	})
}

func (s *Service) AddPlatform(ctx context.Context, gameID uint, platform postgres.Platform) error {
	if !platform.Valid() {
		return errs.Validation("platform", "%q is not one of %v", platform, postgres.Platforms)
	}
	return s.write(ctx, "add platform", func(tx *gorm.DB) error {
		row := &postgres.GamePlatform{GameID: gameID, Platform: platform}
		return associate(tx, platformPair(gameID, platform), row)
	})
}

func (s *Service) RemovePlatform(ctx context.Context, gameID uint, platform postgres.Platform) error {
	if !platform.Valid() {
		return errs.Validation("platform", "%q is not one of %v", platform, postgres.Platforms)
	}
	return s.write(ctx, "remove platform", func(tx *gorm.DB) error {
		return dissociate(tx, platformPair(gameID, platform), &postgres.GamePlatform{})
	})
}

func (s *Service) PlatformsOf(ctx context.Context, gameID uint) ([]postgres.Platform, error) {
	var platforms []postgres.Platform
	err := s.read(ctx).
		Model(&postgres.GamePlatform{}).
		Where("game_id = ?", gameID).
		Order("platform").
		Pluck("platform", &platforms).Error
	return platforms, err
}
