package catalog

import (
	"Arcadia/models/postgres"
	"context"

	"gorm.io/gorm"
)

func (s *Service) AddFavorite(ctx context.Context, userID, gameID uint) (*postgres.Favorite, error) {
	favorite := &postgres.Favorite{UserID: userID, GameID: gameID, MarkedDate: s.today()}
	err := s.write(ctx, "add favorite", func(tx *gorm.DB) error {
		return associate(tx, favoritePair(userID, gameID), favorite)
	})
	if err != nil {
		return nil, err
	}
	return favorite, nil
}

func (s *Service) RemoveFavorite(ctx context.Context, userID, gameID uint) error {
	return s.write(ctx, "remove favorite", func(tx *gorm.DB) error {
		return dissociate(tx, favoritePair(userID, gameID), &postgres.Favorite{})
	})
}

// FavoritesOf lists the favorite games of a user, most recently marked first.
func (s *Service) FavoritesOf(ctx context.Context, userID uint) ([]postgres.Game, error) {
	var games []postgres.Game
	err := s.read(ctx).
		Joins("JOIN favorites ON favorites.game_id = games.game_id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.marked_date DESC").Order("games.name").
		Find(&games).Error
	return games, err
}
