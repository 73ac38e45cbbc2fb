package pitching

import (
	"testing"
	"time"

	"github.com/coachboard/coachboard/internal/domain/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, v string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, v)
	require.NoError(t, err)
	return d
}

func TestRulesFor_FallsBackToUSSSADefault(t *testing.T) {
	r := RulesFor("Little League", "9U")
	assert.Equal(t, 85, r.MaxDaily)
	assert.Len(t, r.RestThresholds, 4)

	r.RestThresholds[0].RestDays = 9
	assert.Equal(t, 0, RulesFor(RuleSetUSSSA, "11U").RestThresholds[0].RestDays)
}

func TestRules_RestDays(t *testing.T) {
	r := RulesFor(RuleSetUSSSA, AgeGroupDefault)
	cases := map[int]int{0: 0, 20: 0, 21: 1, 35: 1, 50: 2, 65: 3, 66: 4, 120: 4}
	for pitches, want := range cases {
		if got := r.RestDays(pitches); got != want {
			t.Fatalf("RestDays(%d)=%d want %d", pitches, got, want)
		}
	}
	assert.Equal(t, 0, Rules{}.RestDays(90))
}

func TestSummarize(t *testing.T) {
	idx := roster.NewIndex([]roster.Player{
		{ID: 1, Name: "Zoe", PitcherRole: roster.PitcherRoleStarter},
		{ID: 2, Name: "Ava", PitcherRole: roster.PitcherRoleReliever},
		{ID: 3, Name: "Ben", PitcherRole: roster.PitcherRoleNone},
	}, nil)
	today := day(t, "2024-05-10")
	outings := []Outing{
		{Pitcher: "Zoe", Date: day(t, "2024-05-10"), Pitches: 30},
		{Pitcher: "Zoe", Date: day(t, "2024-05-05"), Pitches: 40},
		{Pitcher: "Zoe", Date: day(t, "2024-05-03"), Pitches: 50},
		{Pitcher: "Ava", Date: day(t, "2024-05-08"), Pitches: 55},
		{Pitcher: "Ben", Date: day(t, "2024-05-10"), Pitches: 10},
	}

	got := Summarize(idx, outings, RulesFor(RuleSetUSSSA, ""), today)
	require.Len(t, got, 2)

	ava := got[0]
	assert.Equal(t, "Ava", ava.Name)
	assert.Equal(t, 0, ava.Daily)
	assert.Equal(t, 55, ava.Weekly)
	assert.Equal(t, 3, ava.RequiredRestDays)
	assert.Equal(t, StatusResting, ava.Status)
	assert.Equal(t, day(t, "2024-05-12"), ava.NextAvailable)
	assert.Equal(t, 85, ava.RemainingToday)

	zoe := got[1]
	assert.Equal(t, "Zoe", zoe.Name)
	assert.Equal(t, 30, zoe.Daily)
	assert.Equal(t, 70, zoe.Weekly)
	assert.Equal(t, 1, zoe.RequiredRestDays)
	assert.Equal(t, StatusResting, zoe.Status)
	assert.Equal(t, 55, zoe.RemainingToday)
	assert.Equal(t, Cumulative{Appearances: 3, TotalPitches: 120}, zoe.Season)
	assert.Equal(t, Cumulative{Appearances: 1, TotalPitches: 55}, ava.Season)
}

func TestSummarize_AvailableAfterRest(t *testing.T) {
	idx := roster.NewIndex([]roster.Player{{ID: 1, Name: "Ava", PitcherRole: roster.PitcherRoleStarter}}, nil)
	outings := []Outing{{Pitcher: "Ava", Date: day(t, "2024-05-01"), Pitches: 100}}

	got := Summarize(idx, outings, RulesFor(RuleSetUSSSA, ""), day(t, "2024-05-06"))
	require.Len(t, got, 1)
	assert.Equal(t, StatusAvailable, got[0].Status)
	assert.Equal(t, 4, got[0].RequiredRestDays)
	assert.Equal(t, day(t, "2024-05-06"), got[0].NextAvailable)
}

func TestCumulativeFor(t *testing.T) {
	outings := []Outing{
		{Pitcher: "Ava", Pitches: 40, Innings: 2.25},
		{Pitcher: "Ava", Pitches: 25, Innings: 1},
		{Pitcher: "Ben", Pitches: 70, Innings: 4},
	}
	got := CumulativeFor("Ava", outings)
	assert.Equal(t, Cumulative{Appearances: 2, TotalPitches: 65, InningsPitched: 3.3}, got)
}
