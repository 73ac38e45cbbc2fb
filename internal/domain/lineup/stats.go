package lineup

import "github.com/coachboard/coachboard/internal/domain/gameday"

// PositionCounts tallies, per roster player, how many saved lineups put
// them at each batting position label. Players outside names are skipped.
func PositionCounts(names []string, lineups []gameday.LineupRecord) map[string]map[string]int {
	out := make(map[string]map[string]int, len(names))
	for _, name := range names {
		out[name] = map[string]int{}
	}
	for _, rec := range lineups {
		for _, e := range rec.LineupData {
			counts, ok := out[e.Name]
			if !ok || e.Position == "" {
				continue
			}
			counts[e.Position]++
		}
	}
	return out
}
