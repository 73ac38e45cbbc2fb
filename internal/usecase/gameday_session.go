package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/coachboard/coachboard/internal/domain/gameday"
	"github.com/coachboard/coachboard/internal/domain/lineup"
	"github.com/coachboard/coachboard/internal/domain/pitching"
	"github.com/coachboard/coachboard/internal/domain/roster"
	"github.com/coachboard/coachboard/internal/domain/rotation"
	"github.com/coachboard/coachboard/internal/platform/logging"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// GamedaySession owns the editing state for one game. Every intent takes the
// session lock, so callers on different goroutines see a consistent model.
type GamedaySession struct {
	mu sync.Mutex

	id      string
	gateway gameday.Gateway
	logger  *logging.Logger
	now     func() time.Time

	game         gameday.Game
	roster       *roster.Index
	lineup       *lineup.Lineup
	rotation     *rotation.Rotation
	clipboard    rotation.Clipboard
	current      int
	outings      []pitching.Outing
	rules        pitching.Rules
	savedLineups []gameday.LineupRecord

	lineupDirty   bool
	rotationDirty bool
}

func NewGamedaySession(snapshot gameday.Snapshot, gateway gameday.Gateway, logger *logging.Logger) (*GamedaySession, error) {
	if gateway == nil {
		return nil, fmt.Errorf("%w: gateway is required", ErrInvalidInput)
	}
	if logger == nil {
		logger = logging.Default()
	}

	id := uuid.NewString()
	s := &GamedaySession{
		id:      id,
		gateway: gateway,
		logger:  logger.Named("session").With("session_id", id, "game_id", snapshot.Game.ID),
		now:     time.Now,
	}
	if err := s.apply(snapshot); err != nil {
		return nil, err
	}
	s.current = 1
	return s, nil
}

func (s *GamedaySession) ID() string {
	return s.id
}

func (s *GamedaySession) GameID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.ID
}

// apply swaps in a snapshot. Nothing changes if the snapshot does not parse.
func (s *GamedaySession) apply(snapshot gameday.Snapshot) error {
	gameID := snapshot.Game.ID

	var lu *lineup.Lineup
	if snapshot.Lineup != nil {
		lu = lineup.FromRecord(*snapshot.Lineup)
	} else {
		lu = lineup.New(snapshot.Game.DefaultLineupTitle(), &gameID)
	}

	var rot *rotation.Rotation
	if snapshot.Rotation != nil {
		loaded, err := rotation.FromRecord(*snapshot.Rotation)
		if err != nil {
			return fmt.Errorf("%w: stored rotation: %w", ErrInvalidInput, err)
		}
		rot = loaded
	} else {
		rot = rotation.New(snapshot.Game.DefaultRotationTitle(), &gameID)
	}

	s.game = snapshot.Game
	s.roster = roster.NewIndex(snapshot.Roster, snapshot.AbsentPlayerIDs)
	s.lineup = lu
	s.rotation = rot
	s.outings = append([]pitching.Outing(nil), snapshot.Outings...)
	s.rules = pitching.RulesFor(snapshot.RuleSet, snapshot.AgeGroup)
	s.savedLineups = append([]gameday.LineupRecord(nil), snapshot.SavedLineups...)
	s.clipboard.Clear()
	s.lineupDirty = false
	s.rotationDirty = false
	return nil
}

// ReplaceSnapshot overwrites the whole session with server state. Unsaved
// edits and any staged copy are discarded. The current inning survives when
// the new rotation still has it.
func (s *GamedaySession) ReplaceSnapshot(snapshot gameday.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	discarded := s.lineupDirty || s.rotationDirty
	if err := s.apply(snapshot); err != nil {
		s.logger.Warn("ignored unreadable snapshot", "error", err)
		return err
	}
	if !s.rotation.HasInning(s.current) {
		s.current = s.rotation.MaxInning()
	}

	s.logger.Info("session refreshed from server",
		"discarded_edits", discarded,
		"roster_size", s.roster.Len(),
		"innings", s.rotation.InningCount(),
	)
	return nil
}

// Reload fetches the game's snapshot and replaces the session with it.
func (s *GamedaySession) Reload(ctx context.Context) error {
	gameID := s.GameID()
	ctx, span := startSessionSpan(ctx, "usecase.GamedaySession.Reload", s.id, gameID)
	defer span.End()

	snapshot, err := s.gateway.LoadSnapshot(ctx, gameID)
	if err != nil {
		span.RecordError(err)
		s.logger.WarnContext(ctx, "reload snapshot failed", "error", err)
		return fmt.Errorf("load snapshot game_id=%d: %w", gameID, err)
	}
	return s.ReplaceSnapshot(snapshot)
}

func (s *GamedaySession) SetLineupTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lineup.SetTitle(title)
	s.lineupDirty = true
}

// AddLineupPlayer appends a roster player to the batting order. A new entry
// starts labelled with the player's preferred position.
func (s *GamedaySession) AddLineupPlayer(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return lineup.ErrEmptyPlayerName
	}
	player, ok := s.roster.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
	if s.lineup.Contains(name) {
		return nil
	}
	if err := s.lineup.AddPlayer(name); err != nil {
		return err
	}
	if label := player.PreferredPosition(); label != "" {
		if err := s.lineup.SetBattingPositionLabel(name, label); err != nil {
			return err
		}
	}
	s.lineupDirty = true
	return nil
}

func (s *GamedaySession) RemoveLineupPlayer(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lineup.RemovePlayer(name)
	s.lineupDirty = true
}

func (s *GamedaySession) ReorderLineup(names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lineup.Reorder(names); err != nil {
		return err
	}
	s.lineupDirty = true
	return nil
}

func (s *GamedaySession) SetBattingPosition(name, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lineup.SetBattingPositionLabel(name, label); err != nil {
		return err
	}
	s.lineupDirty = true
	return nil
}

// AvailableForLineup lists roster players not yet batting, in roster order.
func (s *GamedaySession) AvailableForLineup() []roster.Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]roster.Player, 0, s.roster.Len())
	for _, p := range s.roster.Players() {
		if !s.lineup.Contains(p.Name) {
			out = append(out, p)
		}
	}
	return out
}

func (s *GamedaySession) AddInning() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.rotation.AddInning()
	s.rotationDirty = true
	return n
}

// RemoveInning deletes inning n and returns the inning now being viewed.
func (s *GamedaySession) RemoveInning(n int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fallback, err := s.rotation.RemoveInning(n)
	if err != nil {
		return s.current, err
	}
	s.afterRemove(n, fallback)
	return s.current, nil
}

// RemoveLastInning drops the highest inning and returns the inning now being viewed.
func (s *GamedaySession) RemoveLastInning() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, fallback, err := s.rotation.RemoveLastInning()
	if err != nil {
		return s.current, err
	}
	s.afterRemove(removed, fallback)
	return s.current, nil
}

func (s *GamedaySession) afterRemove(removed, fallback int) {
	if s.current == removed {
		s.current = fallback
	}
	if s.clipboard.Source() == removed {
		s.clipboard.Clear()
	}
	s.rotationDirty = true
}

func (s *GamedaySession) SelectInning(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.rotation.HasInning(n) {
		return fmt.Errorf("%w: inning %d", rotation.ErrInningNotFound, n)
	}
	s.current = n
	return nil
}

func (s *GamedaySession) CurrentInning() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Assign places a roster player at a field position for inning n.
func (s *GamedaySession) Assign(n int, position, player string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, err := rotation.ParsePosition(position)
	if err != nil {
		return err
	}
	player = strings.TrimSpace(player)
	if player != "" && !s.roster.Contains(player) {
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, player)
	}
	if err := s.rotation.Assign(n, pos, player); err != nil {
		return err
	}
	s.rotationDirty = true
	return nil
}

func (s *GamedaySession) Unassign(n int, position string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, err := rotation.ParsePosition(position)
	if err != nil {
		return err
	}
	if err := s.rotation.Unassign(n, pos); err != nil {
		return err
	}
	s.rotationDirty = true
	return nil
}

func (s *GamedaySession) Bench(n int) ([]roster.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rotation.Bench(n, s.roster)
}

func (s *GamedaySession) Summary() []rotation.PlayingTime {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rotation.Summarize(s.rotation, s.roster)
}

// CopyInning stages inning source for a later paste.
func (s *GamedaySession) CopyInning(source int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clipboard.Stage(s.rotation, source)
}

// PasteInnings writes the staged inning into every destination and leaves copy mode.
func (s *GamedaySession) PasteInnings(destinations []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.clipboard.PasteInto(s.rotation, destinations); err != nil {
		return err
	}
	s.rotationDirty = true
	return nil
}

func (s *GamedaySession) CancelCopy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clipboard.Clear()
}

func (s *GamedaySession) PitchingSummary() []pitching.Availability {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pitching.Summarize(s.roster, s.outings, s.rules, s.now())
}

// PositionCounts tallies batting position labels across the team's saved lineups.
func (s *GamedaySession) PositionCounts() map[string]map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lineup.PositionCounts(s.roster.Names(), s.savedLineups)
}

// SaveLineup sends the lineup to the team server. A new lineup gets the
// server's id on success; on failure the model is left as it was.
func (s *GamedaySession) SaveLineup(ctx context.Context) (gameday.SaveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, span := startSessionSpan(ctx, "usecase.GamedaySession.SaveLineup", s.id, s.game.ID)
	defer span.End()

	payload := s.lineup.Payload()
	if strings.TrimSpace(payload.Title) == "" {
		payload.Title = s.game.DefaultLineupTitle()
	}
	span.SetAttributes(attribute.Int64("lineup.id", s.lineup.ID), attribute.Int("lineup.size", len(payload.LineupData)))

	result, err := s.gateway.SaveLineup(ctx, s.lineup.ID, payload)
	if err != nil {
		span.RecordError(err)
		s.logger.WarnContext(ctx, "save lineup failed", "lineup_id", s.lineup.ID, "error", err)
		return gameday.SaveResult{}, fmt.Errorf("save lineup: %w", err)
	}

	if result.ID != 0 {
		s.lineup.ID = result.ID
	}
	s.lineup.Title = payload.Title
	s.lineupDirty = false
	s.logger.InfoContext(ctx, "lineup saved", "lineup_id", s.lineup.ID)
	return gameday.SaveResult{ID: s.lineup.ID, Message: result.Message}, nil
}

func (s *GamedaySession) SaveRotation(ctx context.Context) (gameday.SaveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, span := startSessionSpan(ctx, "usecase.GamedaySession.SaveRotation", s.id, s.game.ID)
	defer span.End()

	result, err := s.saveRotationLocked(ctx)
	if err != nil {
		span.RecordError(err)
		return gameday.SaveResult{}, err
	}
	span.SetAttributes(attribute.Int64("rotation.id", result.ID))
	return result, nil
}

func (s *GamedaySession) saveRotationLocked(ctx context.Context) (gameday.SaveResult, error) {
	payload := s.rotation.Payload()
	if strings.TrimSpace(payload.Title) == "" {
		payload.Title = s.game.DefaultRotationTitle()
	}

	result, err := s.gateway.SaveRotation(ctx, payload)
	if err != nil {
		s.logger.WarnContext(ctx, "save rotation failed", "rotation_id", s.rotation.ID, "error", err)
		return gameday.SaveResult{}, fmt.Errorf("save rotation: %w", err)
	}

	if result.ID != 0 {
		s.rotation.ID = result.ID
	}
	s.rotation.Title = payload.Title
	s.rotationDirty = false
	s.logger.InfoContext(ctx, "rotation saved", "rotation_id", s.rotation.ID, "innings", s.rotation.InningCount())
	return gameday.SaveResult{ID: s.rotation.ID, Message: result.Message}, nil
}

// SyncLineupToRotation rebuilds inning 1 from the lineup's batting position
// labels and saves the rotation. Inning 1 is replaced wholesale; when a
// later entry claims a position already taken, the later entry wins.
func (s *GamedaySession) SyncLineupToRotation(ctx context.Context) (gameday.SaveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, span := startSessionSpan(ctx, "usecase.GamedaySession.SyncLineupToRotation", s.id, s.game.ID)
	defer span.End()

	labelled := s.lineup.Labelled()
	if len(labelled) == 0 {
		return gameday.SaveResult{}, ErrNothingToSync
	}

	first := make(rotation.Inning, len(labelled))
	for _, e := range labelled {
		pos, err := rotation.ParsePosition(e.Position)
		if err != nil {
			return gameday.SaveResult{}, fmt.Errorf("sync %q: %w", e.Name, err)
		}
		if prev, ok := first.PositionOf(e.Name); ok {
			delete(first, prev)
		}
		first[pos] = e.Name
	}
	if err := s.rotation.ReplaceInning(1, first); err != nil {
		return gameday.SaveResult{}, err
	}
	s.rotationDirty = true

	return s.saveRotationLocked(ctx)
}
