package controllers

import (
	errs "Arcadia/errors"
)

// ExitCode maps an error returned by an action to the process exit status.
func ExitCode(err error) int {
	switch errs.Kind(err) {
	case errs.ErrValidation:
		return 2
	case errs.ErrNotFound:
		return 3
	case errs.ErrReference:
		return 4
	case errs.ErrUniquenessViolation, errs.ErrAlreadyAssociated:
		return 5
	case errs.ErrIntegrityBlocked:
		return 6
	default:
		return 1
	}
}
