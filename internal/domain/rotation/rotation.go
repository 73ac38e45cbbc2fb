package rotation

import (
	"strings"

	"github.com/cockroachdb/errors"
)

func (r *Rotation) EnsureInning(n int) error {
	if n < 1 {
		return errors.Wrapf(ErrInvalidInning, "inning %d", n)
	}
	if _, ok := r.innings[n]; !ok {
		r.innings[n] = Inning{}
	}
	return nil
}

// AddInning appends an empty inning after the current highest one.
func (r *Rotation) AddInning() int {
	next := r.MaxInning() + 1
	r.innings[next] = Inning{}
	return next
}

// RemoveInning deletes inning n and returns the highest remaining inning, which
// callers use as the new current inning when n was being viewed.
func (r *Rotation) RemoveInning(n int) (int, error) {
	if len(r.innings) <= 1 || n == 1 {
		return 0, errors.Wrapf(ErrLastInning, "inning %d", n)
	}
	if _, ok := r.innings[n]; !ok {
		return 0, errors.Wrapf(ErrInningNotFound, "inning %d", n)
	}
	delete(r.innings, n)
	return r.MaxInning(), nil
}

// RemoveLastInning drops the highest inning.
func (r *Rotation) RemoveLastInning() (removed, fallback int, err error) {
	removed = r.MaxInning()
	fallback, err = r.RemoveInning(removed)
	if err != nil {
		return 0, 0, err
	}
	return removed, fallback, nil
}

// Assign puts player at position for inning n. A player holds at most one
// slot per inning, so any other slot they held in that inning is cleared.
// Whoever occupied the target slot goes back to the bench.
func (r *Rotation) Assign(n int, position Position, player string) error {
	if !position.Valid() {
		return errors.Wrapf(ErrUnknownPosition, "position %q", position)
	}
	player = strings.TrimSpace(player)
	if player == "" {
		return ErrEmptyPlayerName
	}
	in, ok := r.innings[n]
	if !ok {
		return errors.Wrapf(ErrInningNotFound, "inning %d", n)
	}

	for pos, name := range in {
		if name == player && pos != position {
			delete(in, pos)
		}
	}
	in[position] = player
	return nil
}

// Unassign clears a slot. Empty slots and missing innings are left alone.
func (r *Rotation) Unassign(n int, position Position) error {
	if !position.Valid() {
		return errors.Wrapf(ErrUnknownPosition, "position %q", position)
	}
	if in, ok := r.innings[n]; ok {
		delete(in, position)
	}
	return nil
}

// ReplaceInning overwrites inning n wholesale, creating it if needed.
func (r *Rotation) ReplaceInning(n int, in Inning) error {
	if n < 1 {
		return errors.Wrapf(ErrInvalidInning, "inning %d", n)
	}
	for pos := range in {
		if !pos.Valid() {
			return errors.Wrapf(ErrUnknownPosition, "position %q", pos)
		}
	}
	r.innings[n] = in.Clone()
	return nil
}

// CopyInning replaces each destination with an independent copy of source.
// All destinations are checked before anything changes.
func (r *Rotation) CopyInning(source int, destinations []int) error {
	src, ok := r.innings[source]
	if !ok {
		return errors.Wrapf(ErrInningNotFound, "source inning %d", source)
	}
	return r.paste(src, destinations)
}

func (r *Rotation) paste(data Inning, destinations []int) error {
	if len(destinations) == 0 {
		return ErrEmptySelection
	}
	for _, n := range destinations {
		if _, ok := r.innings[n]; !ok {
			return errors.Wrapf(ErrInningNotFound, "destination inning %d", n)
		}
	}
	for _, n := range destinations {
		r.innings[n] = data.Clone()
	}
	return nil
}
