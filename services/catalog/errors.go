package catalog

import (
	errs "Arcadia/errors"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// translateError maps constraint failures reported by the database onto the
// catalog error kinds. Checks in the service normally fire first; this
// catches whatever slipped past them.
func translateError(err error) error {
	if err == nil || errs.Kind(err) != nil {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", errs.ErrNotFound, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return fmt.Errorf("%w: %s", errs.ErrUniquenessViolation, pqErr.Detail)
		case "foreign_key_violation":
			return fmt.Errorf("%w: %s", errs.ErrReference, pqErr.Detail)
		case "not_null_violation", "check_violation":
			return fmt.Errorf("%w: %s", errs.ErrValidation, pqErr.Message)
		}
		return err
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %v", errs.ErrUniquenessViolation, liteErr)
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%w: %v", errs.ErrReference, liteErr)
		case sqlite3.ErrConstraintNotNull, sqlite3.ErrConstraintCheck:
			return fmt.Errorf("%w: %v", errs.ErrValidation, liteErr)
		}
	}
	return err
}
