package rotation

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// Position is a defensive slot on the field. The set is closed.
type Position string

const (
	PositionPitcher     Position = "P"
	PositionCatcher     Position = "C"
	PositionFirstBase   Position = "1B"
	PositionSecondBase  Position = "2B"
	PositionThirdBase   Position = "3B"
	PositionShortstop   Position = "SS"
	PositionLeftField   Position = "LF"
	PositionCenterField Position = "CF"
	PositionRightField  Position = "RF"
	PositionDesignated  Position = "DH"
	PositionExtraHitter Position = "EH"
)

var allPositions = []Position{
	PositionPitcher,
	PositionCatcher,
	PositionFirstBase,
	PositionSecondBase,
	PositionThirdBase,
	PositionShortstop,
	PositionLeftField,
	PositionCenterField,
	PositionRightField,
	PositionDesignated,
	PositionExtraHitter,
}

var positionOrder = func() map[Position]int {
	out := make(map[Position]int, len(allPositions))
	for i, p := range allPositions {
		out[p] = i
	}
	return out
}()

// AllPositions lists the enumeration in scorebook order.
func AllPositions() []Position {
	return append([]Position(nil), allPositions...)
}

func ParsePosition(v string) (Position, error) {
	p := Position(strings.ToUpper(strings.TrimSpace(v)))
	if !p.Valid() {
		return "", errors.Wrapf(ErrUnknownPosition, "position %q", v)
	}
	return p, nil
}

func (p Position) Valid() bool {
	_, ok := positionOrder[p]
	return ok
}

func (p Position) String() string {
	return string(p)
}

func sortPositions(items []Position) {
	slices.SortFunc(items, func(a, b Position) int {
		return positionOrder[a] - positionOrder[b]
	})
}
