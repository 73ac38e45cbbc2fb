package rotation

import (
	"slices"
	"strings"

	"github.com/coachboard/coachboard/internal/domain/roster"
	"github.com/cockroachdb/errors"
)

// PlayingTime is one row of the playing-time summary.
type PlayingTime struct {
	Name           string
	InningsOnField int
	InningsOnBench int
	Positions      []Position
}

// Bench lists roster players with no slot in inning n, in roster order.
func (r *Rotation) Bench(n int, idx *roster.Index) ([]roster.Player, error) {
	in, ok := r.innings[n]
	if !ok {
		return nil, errors.Wrapf(ErrInningNotFound, "inning %d", n)
	}
	onField := in.onField()

	bench := make([]roster.Player, 0, idx.Len())
	for _, p := range idx.Players() {
		if _, playing := onField[p.Name]; !playing {
			bench = append(bench, p)
		}
	}
	return bench, nil
}

// Summarize derives field and bench counts per roster player across every
// inning. Assignments naming players outside the roster are ignored.
func Summarize(r *Rotation, idx *roster.Index) []PlayingTime {
	total := len(r.innings)
	rows := make(map[string]*PlayingTime, idx.Len())
	held := make(map[string]map[Position]struct{}, idx.Len())
	for _, name := range idx.Names() {
		rows[name] = &PlayingTime{Name: name}
		held[name] = make(map[Position]struct{})
	}

	for _, in := range r.innings {
		for name := range in.onField() {
			if row, ok := rows[name]; ok {
				row.InningsOnField++
			}
		}
		for pos, name := range in {
			if set, ok := held[name]; ok {
				set[pos] = struct{}{}
			}
		}
	}

	out := make([]PlayingTime, 0, len(rows))
	for name, row := range rows {
		row.InningsOnBench = total - row.InningsOnField
		row.Positions = make([]Position, 0, len(held[name]))
		for pos := range held[name] {
			row.Positions = append(row.Positions, pos)
		}
		sortPositions(row.Positions)
		out = append(out, *row)
	}
	slices.SortFunc(out, func(a, b PlayingTime) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
