package catalog

import (
	"Arcadia/models/postgres"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NewPurchase struct {
	UserID        uint                   `json:"user_id" validate:"required"`
	GameID        uint                   `json:"game_id" validate:"required"`
	Amount        *decimal.Decimal       `json:"amount_paid"` // nil charges the current game price
	PaymentMethod postgres.PaymentMethod `json:"payment_method" validate:"enum"`
	PurchasedAt   *time.Time             `json:"purchased_at"`
}

type NewReview struct {
	UserID     uint       `json:"user_id" validate:"required"`
	GameID     uint       `json:"game_id" validate:"required"`
	Rating     int        `json:"rating" validate:"min=1,max=5"`
	Comment    string     `json:"comment"`
	ReviewDate *time.Time `json:"review_date"`
}

func (s *Service) CreatePurchase(ctx context.Context, in NewPurchase) (*postgres.Purchase, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	if err := checkMoney("amount_paid", in.Amount); err != nil {
		return nil, err
	}

	purchase := &postgres.Purchase{
		UserID:        in.UserID,
		GameID:        in.GameID,
		PurchasedAt:   timeOr(in.PurchasedAt, s.now()),
		PaymentMethod: in.PaymentMethod,
	}
	err := s.write(ctx, "create purchase", func(tx *gorm.DB) error {
		if err := userRef(in.UserID).mustExist(tx); err != nil {
			return err
		}
		var game postgres.Game
		if err := gameRef(in.GameID).load(tx, &game); err != nil {
			return err
		}
		purchase.AmountPaid = game.Price
		if in.Amount != nil {
			purchase.AmountPaid = *in.Amount
		}
		if err := tx.Omit(clause.Associations).Create(purchase).Error; err != nil {
			return err
		}
		return s.logActivity(tx, in.UserID, postgres.ActivityPurchase,
			fmt.Sprintf("bought %s for %s", game.Name, purchase.AmountPaid.StringFixed(postgres.MoneyScale)))
	})
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

func (s *Service) CreateReview(ctx context.Context, in NewReview) (*postgres.Review, error) {
	in.Comment = strings.TrimSpace(in.Comment)
	if err := s.check(in); err != nil {
		return nil, err
	}
	review := &postgres.Review{
		UserID:     in.UserID,
		GameID:     in.GameID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		ReviewDate: dateOr(in.ReviewDate, s.today()),
	}
	err := s.write(ctx, "create review", func(tx *gorm.DB) error {
		if err := userRef(in.UserID).mustExist(tx); err != nil {
			return err
		}
		var game postgres.Game
		if err := gameRef(in.GameID).load(tx, &game); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(review).Error; err != nil {
			return err
		}
		return s.logActivity(tx, in.UserID, postgres.ActivityReview,
			fmt.Sprintf("rated %s %d/%d", game.Name, review.Rating, postgres.MaxRating))
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}
