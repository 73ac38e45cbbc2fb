package rotation

import "github.com/cockroachdb/errors"

var (
	ErrUnknownPosition = errors.New("unknown field position")
	ErrLastInning      = errors.New("cannot remove the last inning")
	ErrInningNotFound  = errors.New("inning not found")
	ErrInvalidInning   = errors.New("inning number must be positive")
	ErrNoCopiedData    = errors.New("no inning has been copied")
	ErrEmptySelection  = errors.New("select at least one inning to paste to")
	ErrEmptyPlayerName = errors.New("player name is required")
)
