package memory

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/coachboard/coachboard/internal/domain/gameday"
	"github.com/coachboard/coachboard/internal/domain/pitching"
	"github.com/coachboard/coachboard/internal/domain/roster"
	"github.com/coachboard/coachboard/internal/usecase"
)

// Gateway is an in-process team server. It keeps the same create-or-update
// rules as the HTTP endpoints and announces every save to subscribers.
type Gateway struct {
	mu sync.RWMutex

	games      map[int64]gameday.Snapshot
	lineups    map[int64]gameday.LineupRecord
	rotations  map[int64]gameday.RotationRecord
	nextLineup int64
	nextRot    int64

	subscribers []func(message string)
}

var _ gameday.Gateway = (*Gateway)(nil)

// NewGateway seeds games keyed by id. Lineups and rotations inside the
// snapshots become stored records.
func NewGateway(games []gameday.Snapshot) *Gateway {
	g := &Gateway{
		games:     make(map[int64]gameday.Snapshot, len(games)),
		lineups:   make(map[int64]gameday.LineupRecord),
		rotations: make(map[int64]gameday.RotationRecord),
	}
	for _, snap := range games {
		if snap.Lineup != nil {
			g.storeLineup(*snap.Lineup)
			snap.Lineup = nil
		}
		if snap.Rotation != nil {
			g.storeRotation(*snap.Rotation)
			snap.Rotation = nil
		}
		g.games[snap.Game.ID] = snap
	}
	return g
}

// Subscribe registers fn to receive a message after each successful save.
func (g *Gateway) Subscribe(fn func(message string)) {
	if fn == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.subscribers = append(g.subscribers, fn)
}

func (g *Gateway) LoadSnapshot(_ context.Context, gameID int64) (gameday.Snapshot, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	base, ok := g.games[gameID]
	if !ok {
		return gameday.Snapshot{}, fmt.Errorf("%w: game %d", usecase.ErrNotFound, gameID)
	}

	out := base
	out.Roster = append([]roster.Player(nil), base.Roster...)
	out.AbsentPlayerIDs = append([]int64(nil), base.AbsentPlayerIDs...)
	out.Outings = append([]pitching.Outing(nil), base.Outings...)
	out.SavedLineups = make([]gameday.LineupRecord, 0, len(g.lineups))

	for _, id := range sortedKeys(g.lineups) {
		rec := cloneLineup(g.lineups[id])
		out.SavedLineups = append(out.SavedLineups, rec)
		if isForGame(rec.AssociatedGameID, gameID) {
			out.Lineup = &rec
		}
	}
	for _, id := range sortedKeys(g.rotations) {
		rec := g.rotations[id]
		if isForGame(rec.AssociatedGameID, gameID) {
			cloned := cloneRotation(rec)
			out.Rotation = &cloned
		}
	}
	return out, nil
}

func (g *Gateway) SaveLineup(_ context.Context, id int64, payload gameday.LineupPayload) (gameday.SaveResult, error) {
	if strings.TrimSpace(payload.Title) == "" {
		return gameday.SaveResult{}, &gameday.SaveFailedError{Resource: "lineup", Message: "Invalid lineup data.", StatusCode: http.StatusBadRequest}
	}

	g.mu.Lock()
	rec := gameday.LineupRecord{
		ID:               id,
		Title:            payload.Title,
		LineupData:       append([]gameday.LineupEntryPayload(nil), payload.LineupData...),
		AssociatedGameID: copyID(payload.AssociatedGameID),
	}
	var result gameday.SaveResult
	if id > 0 {
		if _, ok := g.lineups[id]; !ok {
			g.mu.Unlock()
			return gameday.SaveResult{}, &gameday.SaveFailedError{Resource: "lineup", Message: "Lineup not found.", StatusCode: http.StatusNotFound}
		}
		g.lineups[id] = rec
		result = gameday.SaveResult{ID: id, Message: fmt.Sprintf("Lineup %q updated successfully!", rec.Title)}
	} else {
		newID := g.storeLineup(rec)
		result = gameday.SaveResult{ID: newID, Message: fmt.Sprintf("Lineup %q created successfully!", rec.Title)}
	}
	g.mu.Unlock()

	g.notify("Lineup saved.")
	return result, nil
}

// SaveRotation updates the rotation with payload.ID when it exists and
// creates a new one otherwise.
func (g *Gateway) SaveRotation(_ context.Context, payload gameday.RotationPayload) (gameday.SaveResult, error) {
	if strings.TrimSpace(payload.Title) == "" || payload.Innings == nil {
		return gameday.SaveResult{}, &gameday.SaveFailedError{Resource: "rotation", Message: "Invalid data provided.", StatusCode: http.StatusBadRequest}
	}

	innings := make(map[int]map[string]string, len(payload.Innings))
	for key, slots := range payload.Innings {
		n, err := strconv.Atoi(key)
		if err != nil {
			return gameday.SaveResult{}, &gameday.SaveFailedError{Resource: "rotation", Message: "Invalid data provided.", StatusCode: http.StatusBadRequest}
		}
		innings[n] = maps.Clone(slots)
	}
	rec := gameday.RotationRecord{
		ID:               payload.ID,
		Title:            payload.Title,
		Innings:          innings,
		AssociatedGameID: copyID(payload.AssociatedGameID),
	}

	g.mu.Lock()
	var result gameday.SaveResult
	if _, ok := g.rotations[rec.ID]; ok && rec.ID > 0 {
		g.rotations[rec.ID] = rec
		result = gameday.SaveResult{ID: rec.ID, Message: "Rotation updated successfully!"}
	} else {
		rec.ID = 0
		result = gameday.SaveResult{ID: g.storeRotation(rec), Message: "Rotation saved successfully!"}
	}
	g.mu.Unlock()

	g.notify("Rotation saved/updated.")
	return result, nil
}

func (g *Gateway) storeLineup(rec gameday.LineupRecord) int64 {
	if rec.ID <= 0 {
		g.nextLineup++
		rec.ID = g.nextLineup
	}
	g.nextLineup = max(g.nextLineup, rec.ID)
	g.lineups[rec.ID] = rec
	return rec.ID
}

func (g *Gateway) storeRotation(rec gameday.RotationRecord) int64 {
	if rec.ID <= 0 {
		g.nextRot++
		rec.ID = g.nextRot
	}
	g.nextRot = max(g.nextRot, rec.ID)
	g.rotations[rec.ID] = rec
	return rec.ID
}

func (g *Gateway) notify(message string) {
	g.mu.RLock()
	subscribers := slices.Clone(g.subscribers)
	g.mu.RUnlock()

	for _, fn := range subscribers {
		fn(message)
	}
}

func sortedKeys[V any](m map[int64]V) []int64 {
	return slices.Sorted(maps.Keys(m))
}

func isForGame(id *int64, gameID int64) bool {
	return id != nil && *id == gameID
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func cloneLineup(rec gameday.LineupRecord) gameday.LineupRecord {
	rec.LineupData = append([]gameday.LineupEntryPayload(nil), rec.LineupData...)
	rec.AssociatedGameID = copyID(rec.AssociatedGameID)
	return rec
}

func cloneRotation(rec gameday.RotationRecord) gameday.RotationRecord {
	innings := make(map[int]map[string]string, len(rec.Innings))
	for n, slots := range rec.Innings {
		innings[n] = maps.Clone(slots)
	}
	rec.Innings = innings
	rec.AssociatedGameID = copyID(rec.AssociatedGameID)
	return rec
}
