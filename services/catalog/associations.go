package catalog

import (
	errs "Arcadia/errors"
	"Arcadia/models/postgres"
	"Arcadia/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ref points at a row that must exist before an association to it is stored.
// A nil model marks a side that is a closed value rather than a table.
type ref struct {
	entity string
	model  any
	column string
	id     any
}

func userRef(id uint) ref        { return ref{"user", &postgres.User{}, "user_id", id} }
func gameRef(id uint) ref        { return ref{"game", &postgres.Game{}, "game_id", id} }
func eventRef(id uint) ref       { return ref{"event", &postgres.Event{}, "event_id", id} }
func categoryRef(id uint) ref    { return ref{"category", &postgres.Category{}, "category_id", id} }
func achievementRef(id uint) ref { return ref{"achievement", &postgres.Achievement{}, "achievement_id", id} }
func commentRef(id uint) ref     { return ref{"comment", &postgres.Comment{}, "comment_id", id} }

func (r ref) mustExist(tx *gorm.DB) error {
	if r.model == nil {
		return nil
	}
	ok, err := utils.RecordExists(tx, r.model, r.column+" = ?", r.id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.Reference(r.entity, r.id)
	}
	return nil
}

// load reads the referenced row into dst.
func (r ref) load(tx *gorm.DB, dst any) error {
	found, err := utils.FindOne(tx, dst, r.column+" = ?", r.id)
	if err != nil {
		return err
	}
	if !found {
		return errs.Reference(r.entity, r.id)
	}
	return nil
}

// pair identifies one row of a composite-key association table.
type pair struct {
	name        string
	left, right ref
}

func (p pair) key() map[string]any {
	return map[string]any{p.left.column: p.left.id, p.right.column: p.right.id}
}

// associate inserts row after checking that both sides exist and that the
// pair is not stored yet.
func associate(tx *gorm.DB, p pair, row any) error {
	if err := p.left.mustExist(tx); err != nil {
		return err
	}
	if err := p.right.mustExist(tx); err != nil {
		return err
	}
	var n int64
	if err := tx.Model(row).Where(p.key()).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return errs.AlreadyAssociated(p.name, p.left.id, p.right.id)
	}
	return tx.Omit(clause.Associations).Create(row).Error
}

// dissociate deletes the pair directly by its key.
func dissociate(tx *gorm.DB, p pair, model any) error {
	res := tx.Where(p.key()).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NotFound(p.name, [2]any{p.left.id, p.right.id})
	}
	return nil
}

func favoritePair(userID, gameID uint) pair {
	return pair{"favorite", userRef(userID), gameRef(gameID)}
}

func participationPair(userID, eventID uint) pair {
	return pair{"event participation", userRef(userID), eventRef(eventID)}
}

func progressPair(userID, achievementID uint) pair {
	return pair{"achievement progress", userRef(userID), achievementRef(achievementID)}
}

func gameCategoryPair(gameID, categoryID uint) pair {
	return pair{"game category", gameRef(gameID), categoryRef(categoryID)}
}

func platformPair(gameID uint, platform postgres.Platform) pair {
	return pair{"game platform", gameRef(gameID), ref{"platform", nil, "platform", platform}}
}
