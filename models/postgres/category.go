package postgres

type Category struct {
	ID   uint   `gorm:"column:category_id;primaryKey"`
	Name string `gorm:"size:50;not null"`
}

// GameCategory is the many-to-many join between games and categories.
type GameCategory struct {
	GameID     uint `gorm:"primaryKey;autoIncrement:false"`
	CategoryID uint `gorm:"primaryKey;autoIncrement:false"`

	Game     *Game     `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Category *Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (GameCategory) TableName() string { return "game_categories" }
