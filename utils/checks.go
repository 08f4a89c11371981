package utils

import (
	"errors"

	"gorm.io/gorm"
)

// RecordExists reports whether any row of model matches the condition.
func RecordExists(db *gorm.DB, model any, query string, args ...any) (bool, error) {
	count, err := CountRecords(db, model, query, args...)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func CountRecords(db *gorm.DB, model any, query string, args ...any) (int64, error) {
	var count int64
	err := db.Model(model).
		Where(query, args...).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// FindOne loads the first row matching the condition into dst. found is
// false when nothing matches; err is only set on a database failure.
func FindOne(db *gorm.DB, dst any, query string, args ...any) (found bool, err error) {
	result := db.Where(query, args...).Take(dst)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return true, nil
}
