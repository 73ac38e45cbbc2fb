package pitching

import (
	"math"
	"slices"
	"strings"
	"time"

	"github.com/coachboard/coachboard/internal/domain/roster"
)

// Summarize computes daily and weekly counts, rest status and season totals
// for every roster player who pitches. Outing dates are compared as calendar days.
func Summarize(idx *roster.Index, outings []Outing, rules Rules, today time.Time) []Availability {
	day := civil(today, today.Location())

	out := make([]Availability, 0, idx.Len())
	for _, p := range idx.Players() {
		if !p.PitcherRole.Pitches() {
			continue
		}
		row := Availability{
			Name:          p.Name,
			Status:        StatusAvailable,
			NextAvailable: day,
			MaxDaily:      rules.MaxDaily,
		}

		var last *Outing
		for i := range outings {
			o := &outings[i]
			if o.Pitcher != p.Name {
				continue
			}
			date := civil(o.Date, today.Location())
			age := int(math.Round(day.Sub(date).Hours() / 24))
			if date.Equal(day) {
				row.Daily += o.Pitches
			}
			if age < 7 {
				row.Weekly += o.Pitches
			}
			if last == nil || o.Date.After(last.Date) {
				last = o
			}
		}

		if last != nil {
			row.RequiredRestDays = rules.RestDays(last.Pitches)
			next := civil(last.Date, today.Location()).AddDate(0, 0, row.RequiredRestDays+1)
			if day.Before(next) {
				row.Status = StatusResting
				row.NextAvailable = next
			}
		}
		row.RemainingToday = max(0, rules.MaxDaily-row.Daily)
		row.Season = CumulativeFor(p.Name, outings)
		out = append(out, row)
	}

	slices.SortFunc(out, func(a, b Availability) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// CumulativeFor totals every outing by pitcher. Innings are rounded to one decimal.
func CumulativeFor(pitcher string, outings []Outing) Cumulative {
	var c Cumulative
	for _, o := range outings {
		if o.Pitcher != pitcher {
			continue
		}
		c.Appearances++
		c.TotalPitches += o.Pitches
		c.InningsPitched += o.Innings
	}
	c.InningsPitched = math.Round(c.InningsPitched*10) / 10
	return c
}

// civil keeps t's own calendar date and pins it to midnight in loc.
func civil(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
