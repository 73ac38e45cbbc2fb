package usecase

import (
	"github.com/coachboard/coachboard/internal/domain/gameday"
	"github.com/coachboard/coachboard/internal/domain/lineup"
	"github.com/coachboard/coachboard/internal/domain/roster"
	"github.com/coachboard/coachboard/internal/domain/rotation"
)

// SessionView is a read-only copy of the session for the rendering layer.
// Derived parts are recomputed on every call.
type SessionView struct {
	SessionID     string
	Game          gameday.Game
	Roster        []roster.Player
	LineupID      int64
	LineupTitle   string
	Lineup        []lineup.Entry
	RotationID    int64
	RotationTitle string
	Innings       []int
	Assignments   map[int]rotation.Inning
	CurrentInning int
	Bench         []roster.Player
	Summary       []rotation.PlayingTime
	CopyMode      bool
	CopySource    int
	Unsaved       bool
}

func (s *GamedaySession) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	bench, err := s.rotation.Bench(s.current, s.roster)
	if err != nil {
		bench = nil
	}
	return SessionView{
		SessionID:     s.id,
		Game:          s.game,
		Roster:        s.roster.Players(),
		LineupID:      s.lineup.ID,
		LineupTitle:   s.lineup.Title,
		Lineup:        s.lineup.Entries(),
		RotationID:    s.rotation.ID,
		RotationTitle: s.rotation.Title,
		Innings:       s.rotation.Innings(),
		Assignments:   s.rotation.AllInnings(),
		CurrentInning: s.current,
		Bench:         bench,
		Summary:       rotation.Summarize(s.rotation, s.roster),
		CopyMode:      s.clipboard.Staged(),
		CopySource:    s.clipboard.Source(),
		Unsaved:       s.lineupDirty || s.rotationDirty,
	}
}
