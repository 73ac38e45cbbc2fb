package lineup

import "github.com/cockroachdb/errors"

var (
	ErrInvalidOrder      = errors.New("new order must contain every lineup player exactly once")
	ErrEmptyPlayerName   = errors.New("player name is required")
	ErrPlayerNotInLineup = errors.New("player is not in the lineup")
)
