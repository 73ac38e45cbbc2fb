package memory

import (
	"time"

	"github.com/coachboard/coachboard/internal/domain/gameday"
	"github.com/coachboard/coachboard/internal/domain/pitching"
	"github.com/coachboard/coachboard/internal/domain/roster"
)

const DemoGameID int64 = 1

func intPtr(v int) *int { return &v }

// SeedRoster is a twelve-player demo roster.
func SeedRoster() []roster.Player {
	return []roster.Player{
		{ID: 1, Name: "Ava Martinez", Number: intPtr(2), Positions: [3]string{"SS", "P", "2B"}, Bats: roster.HandRight, Throws: roster.HandRight, PitcherRole: roster.PitcherRoleStarter},
		{ID: 2, Name: "Ben Carter", Number: intPtr(7), Positions: [3]string{"C", "1B"}, Bats: roster.HandLeft, Throws: roster.HandRight, PitcherRole: roster.PitcherRoleNone},
		{ID: 3, Name: "Cal Nguyen", Number: intPtr(11), Positions: [3]string{"P", "CF"}, Bats: roster.HandRight, Throws: roster.HandLeft, PitcherRole: roster.PitcherRoleStarter},
		{ID: 4, Name: "Dee Okafor", Number: intPtr(14), Positions: [3]string{"1B", "3B"}, Bats: roster.HandSwitch, Throws: roster.HandRight, PitcherRole: roster.PitcherRoleReliever},
		{ID: 5, Name: "Eli Brooks", Number: intPtr(3), Positions: [3]string{"2B", "SS"}, Bats: roster.HandRight, Throws: roster.HandRight, PitcherRole: roster.PitcherRoleNone},
		{ID: 6, Name: "Finn Walsh", Number: intPtr(21), Positions: [3]string{"3B", "P"}, Bats: roster.HandRight, Throws: roster.HandRight, PitcherRole: roster.PitcherRoleReliever},
		{ID: 7, Name: "Gus Patel", Number: intPtr(9), Positions: [3]string{"LF", "RF"}, Bats: roster.HandLeft, Throws: roster.HandLeft, PitcherRole: roster.PitcherRoleNone},
		{ID: 8, Name: "Hana Kim", Number: intPtr(5), Positions: [3]string{"CF", "LF"}, Bats: roster.HandRight, Throws: roster.HandRight, PitcherRole: roster.PitcherRoleNone},
		{ID: 9, Name: "Ike Romero", Number: intPtr(17), Positions: [3]string{"RF", "1B"}, Bats: roster.HandRight, Throws: roster.HandRight, PitcherRole: roster.PitcherRoleNone},
		{ID: 10, Name: "Jo Fischer", Number: intPtr(1), Positions: [3]string{"C", "3B"}, Bats: roster.HandRight, Throws: roster.HandRight, PitcherRole: roster.PitcherRoleNone},
		{ID: 11, Name: "Kai Reed", Number: intPtr(23), Positions: [3]string{"P", "1B"}, Bats: roster.HandLeft, Throws: roster.HandLeft, PitcherRole: roster.PitcherRoleReliever},
		{ID: 12, Name: "Lou Bennett", Number: intPtr(8), Positions: [3]string{"2B", "LF"}, Bats: roster.HandRight, Throws: roster.HandRight, PitcherRole: roster.PitcherRoleNone},
	}
}

// SeedGames returns one demo game with a player out and a few recent outings.
func SeedGames(today time.Time) []gameday.Snapshot {
	day := func(offset int) time.Time {
		y, m, d := today.AddDate(0, 0, offset).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return []gameday.Snapshot{
		{
			Game: gameday.Game{
				ID:       DemoGameID,
				Opponent: "Riverside Hawks",
				Date:     day(0).Format(pitching.DateLayout),
				Location: "Field 3",
			},
			Roster:          SeedRoster(),
			AbsentPlayerIDs: []int64{12},
			Outings: []pitching.Outing{
				{ID: 1, Date: day(-1), Pitcher: "Cal Nguyen", Opponent: "Lakeview", Pitches: 48, Innings: 3, OutingType: "Game"},
				{ID: 2, Date: day(-3), Pitcher: "Ava Martinez", Opponent: "Lakeview", Pitches: 30, Innings: 2, OutingType: "Game"},
				{ID: 3, Date: day(-9), Pitcher: "Kai Reed", Opponent: "Summit", Pitches: 70, Innings: 4, OutingType: "Game"},
			},
			RuleSet:  pitching.RuleSetUSSSA,
			AgeGroup: "11U",
		},
	}
}
