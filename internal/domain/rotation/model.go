package rotation

import (
	"maps"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// Inning maps each occupied field position to a player name.
type Inning map[Position]string

func (in Inning) Clone() Inning {
	out := make(Inning, len(in))
	maps.Copy(out, in)
	return out
}

// PositionOf reports the slot a player holds in this inning.
func (in Inning) PositionOf(name string) (Position, bool) {
	for pos, player := range in {
		if player == name {
			return pos, true
		}
	}
	return "", false
}

func (in Inning) onField() map[string]struct{} {
	out := make(map[string]struct{}, len(in))
	for _, player := range in {
		if player != "" {
			out[player] = struct{}{}
		}
	}
	return out
}

// Rotation is the per-inning fielding plan for one game. Inning 1 always exists.
type Rotation struct {
	ID               int64
	Title            string
	AssociatedGameID *int64

	innings map[int]Inning
}

func New(title string, gameID *int64) *Rotation {
	return &Rotation{
		Title:            title,
		AssociatedGameID: gameID,
		innings:          map[int]Inning{1: {}},
	}
}

// FromInnings rebuilds a rotation loaded from the team server. Blank player
// names are dropped and inning 1 is added when missing. A player listed in
// more than one slot of an inning keeps only the first in scorebook order.
func FromInnings(id int64, title string, gameID *int64, innings map[int]Inning) (*Rotation, error) {
	r := &Rotation{
		ID:               id,
		Title:            title,
		AssociatedGameID: gameID,
		innings:          make(map[int]Inning, len(innings)+1),
	}
	for n, in := range innings {
		if n < 1 {
			return nil, errors.Wrapf(ErrInvalidInning, "inning %d", n)
		}
		for pos := range in {
			if !pos.Valid() {
				return nil, errors.Wrapf(ErrUnknownPosition, "inning %d position %q", n, pos)
			}
		}
		clean := make(Inning, len(in))
		placed := make(map[string]struct{}, len(in))
		for _, pos := range AllPositions() {
			player := strings.TrimSpace(in[pos])
			if player == "" {
				continue
			}
			if _, dup := placed[player]; dup {
				continue
			}
			placed[player] = struct{}{}
			clean[pos] = player
		}
		r.innings[n] = clean
	}
	if _, ok := r.innings[1]; !ok {
		r.innings[1] = Inning{}
	}
	return r, nil
}

// Innings returns the inning numbers in ascending order.
func (r *Rotation) Innings() []int {
	return slices.Sorted(maps.Keys(r.innings))
}

func (r *Rotation) InningCount() int {
	return len(r.innings)
}

func (r *Rotation) MaxInning() int {
	max := 0
	for n := range r.innings {
		if n > max {
			max = n
		}
	}
	return max
}

func (r *Rotation) HasInning(n int) bool {
	_, ok := r.innings[n]
	return ok
}

// Inning returns a copy of one inning's assignments.
func (r *Rotation) Inning(n int) (Inning, bool) {
	in, ok := r.innings[n]
	if !ok {
		return nil, false
	}
	return in.Clone(), true
}

// AllInnings returns a deep copy of every inning, keyed by number.
func (r *Rotation) AllInnings() map[int]Inning {
	out := make(map[int]Inning, len(r.innings))
	for n, in := range r.innings {
		out[n] = in.Clone()
	}
	return out
}

func (r *Rotation) Clone() *Rotation {
	out := *r
	out.innings = r.AllInnings()
	if r.AssociatedGameID != nil {
		id := *r.AssociatedGameID
		out.AssociatedGameID = &id
	}
	return &out
}
