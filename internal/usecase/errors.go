package usecase

import "github.com/cockroachdb/errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnknownPlayer         = errors.New("player is not on the active roster")
	ErrNothingToSync         = errors.New("no batting positions set in the lineup")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
