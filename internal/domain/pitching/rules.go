package pitching

import "strings"

const (
	RuleSetUSSSA    = "USSSA"
	AgeGroupDefault = "default"
)

// Threshold maps an outing of at most MaxPitches to RestDays of required rest.
type Threshold struct {
	MaxPitches int
	RestDays   int
}

type Rules struct {
	MaxDaily       int
	RestThresholds []Threshold
}

var usssa = Rules{
	MaxDaily: 85,
	RestThresholds: []Threshold{
		{MaxPitches: 20, RestDays: 0},
		{MaxPitches: 35, RestDays: 1},
		{MaxPitches: 50, RestDays: 2},
		{MaxPitches: 65, RestDays: 3},
	},
}

var ruleSets = map[string]map[string]Rules{
	RuleSetUSSSA: {
		AgeGroupDefault: usssa,
		"11U":           usssa,
	},
}

// RulesFor resolves a team's rule set and age group, falling back to the
// USSSA table and then to its default age group.
func RulesFor(ruleSet, ageGroup string) Rules {
	set, ok := ruleSets[strings.TrimSpace(ruleSet)]
	if !ok {
		set = ruleSets[RuleSetUSSSA]
	}
	rules, ok := set[strings.TrimSpace(ageGroup)]
	if !ok {
		rules = set[AgeGroupDefault]
	}
	return rules.clone()
}

func (r Rules) clone() Rules {
	r.RestThresholds = append([]Threshold(nil), r.RestThresholds...)
	return r
}

// RestDays returns the rest required after an outing of the given pitch
// count. Counts above the last threshold need one day more than it.
func (r Rules) RestDays(pitches int) int {
	for _, t := range r.RestThresholds {
		if pitches <= t.MaxPitches {
			return t.RestDays
		}
	}
	if n := len(r.RestThresholds); n > 0 {
		return r.RestThresholds[n-1].RestDays + 1
	}
	return 0
}
