package httpgateway

import (
	"strconv"
	"strings"
	"time"

	"github.com/coachboard/coachboard/internal/domain/gameday"
	"github.com/coachboard/coachboard/internal/domain/pitching"
	"github.com/coachboard/coachboard/internal/domain/roster"
	crerr "github.com/cockroachdb/errors"
)

type saveResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	NewID   int64  `json:"new_id"`
}

type snapshotEnvelope struct {
	Game            gameDTO          `json:"game"`
	Roster          []playerDTO      `json:"roster"`
	AbsentPlayerIDs []int64          `json:"absent_player_ids"`
	Lineup          *lineupDTO       `json:"lineup"`
	Rotation        *rotationDTO     `json:"rotation"`
	Lineups         []lineupDTO      `json:"lineups"`
	PitchingOutings []outingDTO      `json:"pitching_outings"`
	PitchingRules   pitchingRulesDTO `json:"pitching_rules"`
}

type gameDTO struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	Opponent string `json:"opponent"`
	Location string `json:"location"`
}

type playerDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Number      string `json:"number"`
	Position1   string `json:"position1"`
	Position2   string `json:"position2"`
	Position3   string `json:"position3"`
	Throws      string `json:"throws"`
	Bats        string `json:"bats"`
	PitcherRole string `json:"pitcher_role"`
}

type lineupDTO struct {
	ID               int64                        `json:"id"`
	Title            string                       `json:"title"`
	LineupPositions  []gameday.LineupEntryPayload `json:"lineup_positions"`
	AssociatedGameID *int64                       `json:"associated_game_id"`
}

type rotationDTO struct {
	ID               int64                        `json:"id"`
	Title            string                       `json:"title"`
	Innings          map[string]map[string]string `json:"innings"`
	AssociatedGameID *int64                       `json:"associated_game_id"`
}

type outingDTO struct {
	ID         int64   `json:"id"`
	Date       string  `json:"date"`
	Pitcher    string  `json:"pitcher"`
	Opponent   string  `json:"opponent"`
	Pitches    int     `json:"pitches"`
	Innings    float64 `json:"innings"`
	OutingType string  `json:"outing_type"`
}

type pitchingRulesDTO struct {
	RuleSet  string `json:"rule_set"`
	AgeGroup string `json:"age_group"`
}

func (e snapshotEnvelope) toDomain() (gameday.Snapshot, error) {
	out := gameday.Snapshot{
		Game: gameday.Game{
			ID:       e.Game.ID,
			Opponent: e.Game.Opponent,
			Date:     e.Game.Date,
			Location: e.Game.Location,
		},
		Roster:          make([]roster.Player, 0, len(e.Roster)),
		AbsentPlayerIDs: e.AbsentPlayerIDs,
		SavedLineups:    make([]gameday.LineupRecord, 0, len(e.Lineups)),
		Outings:         make([]pitching.Outing, 0, len(e.PitchingOutings)),
		RuleSet:         e.PitchingRules.RuleSet,
		AgeGroup:        e.PitchingRules.AgeGroup,
	}

	for _, p := range e.Roster {
		out.Roster = append(out.Roster, p.toDomain())
	}
	if e.Lineup != nil {
		rec := e.Lineup.toDomain()
		out.Lineup = &rec
	}
	if e.Rotation != nil {
		rec, err := e.Rotation.toDomain()
		if err != nil {
			return gameday.Snapshot{}, err
		}
		out.Rotation = &rec
	}
	for _, l := range e.Lineups {
		out.SavedLineups = append(out.SavedLineups, l.toDomain())
	}
	for _, o := range e.PitchingOutings {
		date, err := time.Parse(pitching.DateLayout, strings.TrimSpace(o.Date))
		if err != nil {
			// Outings with unreadable dates cannot count toward rest.
			continue
		}
		out.Outings = append(out.Outings, pitching.Outing{
			ID:         o.ID,
			Date:       date,
			Pitcher:    o.Pitcher,
			Opponent:   o.Opponent,
			Pitches:    o.Pitches,
			Innings:    o.Innings,
			OutingType: o.OutingType,
		})
	}
	return out, nil
}

func (p playerDTO) toDomain() roster.Player {
	out := roster.Player{
		ID:          p.ID,
		Name:        p.Name,
		Positions:   [3]string{p.Position1, p.Position2, p.Position3},
		Bats:        roster.Handedness(strings.ToUpper(strings.TrimSpace(p.Bats))),
		Throws:      roster.Handedness(strings.ToUpper(strings.TrimSpace(p.Throws))),
		PitcherRole: roster.ParsePitcherRole(p.PitcherRole),
	}
	if n, err := strconv.Atoi(strings.TrimSpace(p.Number)); err == nil {
		out.Number = &n
	}
	return out
}

func (l lineupDTO) toDomain() gameday.LineupRecord {
	return gameday.LineupRecord{
		ID:               l.ID,
		Title:            l.Title,
		LineupData:       l.LineupPositions,
		AssociatedGameID: l.AssociatedGameID,
	}
}

func (r rotationDTO) toDomain() (gameday.RotationRecord, error) {
	innings := make(map[int]map[string]string, len(r.Innings))
	for key, slots := range r.Innings {
		n, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return gameday.RotationRecord{}, crerr.Newf("rotation inning key %q is not a number", key)
		}
		innings[n] = slots
	}
	return gameday.RotationRecord{
		ID:               r.ID,
		Title:            r.Title,
		Innings:          innings,
		AssociatedGameID: r.AssociatedGameID,
	}, nil
}
