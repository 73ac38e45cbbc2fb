package lineup

import (
	"slices"
	"strings"

	"github.com/coachboard/coachboard/internal/domain/gameday"
	"github.com/cockroachdb/errors"
)

// Entry is one batting slot. Position is the coach's free-text label and may be empty.
type Entry struct {
	Name     string
	Position string
}

// Lineup is an ordered batting sequence for one game. ID 0 means not yet saved.
type Lineup struct {
	ID               int64
	Title            string
	AssociatedGameID *int64

	entries []Entry
}

func New(title string, gameID *int64) *Lineup {
	return &Lineup{Title: title, AssociatedGameID: gameID}
}

// FromRecord rebuilds a lineup loaded from the team server. Repeated and
// blank names are dropped, keeping the first occurrence.
func FromRecord(rec gameday.LineupRecord) *Lineup {
	l := &Lineup{
		ID:               rec.ID,
		Title:            rec.Title,
		AssociatedGameID: rec.AssociatedGameID,
		entries:          make([]Entry, 0, len(rec.LineupData)),
	}
	for _, e := range rec.LineupData {
		name := strings.TrimSpace(e.Name)
		if name == "" || l.index(name) >= 0 {
			continue
		}
		l.entries = append(l.entries, Entry{Name: name, Position: strings.TrimSpace(e.Position)})
	}
	return l
}

func (l *Lineup) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

func (l *Lineup) Names() []string {
	out := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e.Name)
	}
	return out
}

func (l *Lineup) Len() int {
	return len(l.entries)
}

func (l *Lineup) Contains(name string) bool {
	return l.index(strings.TrimSpace(name)) >= 0
}

func (l *Lineup) index(name string) int {
	for i, e := range l.entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// AddPlayer appends name at the end of the order. Adding a name that is
// already present changes nothing.
func (l *Lineup) AddPlayer(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyPlayerName
	}
	if l.index(name) >= 0 {
		return nil
	}
	l.entries = append(l.entries, Entry{Name: name})
	return nil
}

func (l *Lineup) RemovePlayer(name string) {
	i := l.index(strings.TrimSpace(name))
	if i < 0 {
		return
	}
	l.entries = slices.Delete(l.entries, i, i+1)
}

// Reorder applies a candidate order reported by the UI. It must be a
// permutation of the current names or nothing changes.
func (l *Lineup) Reorder(names []string) error {
	if len(names) != len(l.entries) {
		return errors.Wrapf(ErrInvalidOrder, "got %d names, lineup has %d", len(names), len(l.entries))
	}
	seen := make(map[string]struct{}, len(names))
	next := make([]Entry, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if _, dup := seen[name]; dup {
			return errors.Wrapf(ErrInvalidOrder, "%q listed twice", name)
		}
		i := l.index(name)
		if i < 0 {
			return errors.Wrapf(ErrInvalidOrder, "%q is not in the lineup", name)
		}
		seen[name] = struct{}{}
		next = append(next, l.entries[i])
	}
	l.entries = next
	return nil
}

func (l *Lineup) SetBattingPositionLabel(name, label string) error {
	i := l.index(strings.TrimSpace(name))
	if i < 0 {
		return errors.Wrapf(ErrPlayerNotInLineup, "player %q", name)
	}
	l.entries[i].Position = strings.TrimSpace(label)
	return nil
}

func (l *Lineup) SetTitle(title string) {
	l.Title = strings.TrimSpace(title)
}

// Labelled returns the entries that carry a batting position label, in order.
func (l *Lineup) Labelled() []Entry {
	out := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		if e.Position != "" {
			out = append(out, e)
		}
	}
	return out
}

// Payload is the body sent to the lineup create and edit endpoints.
func (l *Lineup) Payload() gameday.LineupPayload {
	data := make([]gameday.LineupEntryPayload, 0, len(l.entries))
	for _, e := range l.entries {
		data = append(data, gameday.LineupEntryPayload{Name: e.Name, Position: e.Position})
	}
	return gameday.LineupPayload{
		Title:            l.Title,
		LineupData:       data,
		AssociatedGameID: l.AssociatedGameID,
	}
}

func (l *Lineup) Clone() *Lineup {
	out := *l
	out.entries = l.Entries()
	if l.AssociatedGameID != nil {
		id := *l.AssociatedGameID
		out.AssociatedGameID = &id
	}
	return &out
}
