package errors

import (
	"errors"
	"fmt"
)

// Error kinds returned by the catalog. Callers branch on them with errors.Is;
// the concrete error carries the entity and field that failed.
var (
	ErrValidation          = errors.New("validation error")
	ErrUniquenessViolation = errors.New("uniqueness violation")
	ErrReference           = errors.New("reference error")
	ErrIntegrityBlocked    = errors.New("integrity blocked")
	ErrAlreadyAssociated   = errors.New("already associated")
	ErrNotFound            = errors.New("not found")
)

var kinds = []error{
	ErrValidation,
	ErrUniquenessViolation,
	ErrReference,
	ErrIntegrityBlocked,
	ErrAlreadyAssociated,
	ErrNotFound,
}

// Validation reports a bad type, enum value or missing required field.
func Validation(field string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrValidation, field, fmt.Sprintf(format, args...))
}

func Uniqueness(entity, field string, value any) error {
	return fmt.Errorf("%w: %s with %s %v already exists", ErrUniquenessViolation, entity, field, value)
}

// Reference reports a foreign key pointing at a row that does not exist.
func Reference(entity string, id any) error {
	return fmt.Errorf("%w: %s %v does not exist", ErrReference, entity, id)
}

func IntegrityBlocked(entity string, id any, reason string) error {
	return fmt.Errorf("%w: %s %v: %s", ErrIntegrityBlocked, entity, id, reason)
}

func AlreadyAssociated(association string, left, right any) error {
	return fmt.Errorf("%w: %s (%v, %v)", ErrAlreadyAssociated, association, left, right)
}

func NotFound(entity string, id any) error {
	return fmt.Errorf("%w: %s %v", ErrNotFound, entity, id)
}

// Kind returns the taxonomy error wrapped by err, or nil when err is not one of ours.
func Kind(err error) error {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
