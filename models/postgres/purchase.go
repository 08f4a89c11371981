package postgres

import (
	errs "Arcadia/errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/*
 * 'Purchase' records a user buying a game. It contains references to User and Game
 */
type Purchase struct {
	ID            uint            `gorm:"column:purchase_id;primaryKey"`
	UserID        uint            `gorm:"not null;index:idx_purchases_user"`
	GameID        uint            `gorm:"not null;index:idx_purchases_game"`
	PurchasedAt   time.Time       `gorm:"not null;index:idx_purchases_purchased_at"`
	AmountPaid    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	PaymentMethod PaymentMethod   `gorm:"size:20;not null"`

	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Game *Game `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func (p *Purchase) BeforeSave(tx *gorm.DB) error {
	if !p.PaymentMethod.Valid() {
		return errs.Validation("payment_method", "%q is not one of %v", p.PaymentMethod, PaymentMethods)
	}
	return CheckMoney("amount_paid", p.AmountPaid)
}
