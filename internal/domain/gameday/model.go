package gameday

import (
	"github.com/coachboard/coachboard/internal/domain/pitching"
	"github.com/coachboard/coachboard/internal/domain/roster"
)

// Game identifies the fixture a session edits.
type Game struct {
	ID       int64
	Opponent string
	Date     string
	Location string
}

// DefaultLineupTitle is used when the game has no saved lineup yet.
func (g Game) DefaultLineupTitle() string {
	return "Lineup for vs " + g.Opponent
}

func (g Game) DefaultRotationTitle() string {
	return "Rotation for vs " + g.Opponent
}

// Snapshot is everything the team server knows about one game at a point in time.
type Snapshot struct {
	Game            Game
	Roster          []roster.Player
	AbsentPlayerIDs []int64
	Lineup          *LineupRecord
	Rotation        *RotationRecord
	SavedLineups    []LineupRecord
	Outings         []pitching.Outing
	RuleSet         string
	AgeGroup        string
}

// LineupRecord is a lineup as stored by the team server.
type LineupRecord struct {
	ID               int64
	Title            string
	LineupData       []LineupEntryPayload
	AssociatedGameID *int64
}

// RotationRecord is a rotation as stored by the team server, innings keyed
// by number and positions keyed by label.
type RotationRecord struct {
	ID               int64
	Title            string
	Innings          map[int]map[string]string
	AssociatedGameID *int64
}
