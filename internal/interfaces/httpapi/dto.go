package httpapi

import (
	"context"
	"strconv"

	"github.com/coachboard/coachboard/internal/domain/gameday"
	"github.com/coachboard/coachboard/internal/domain/lineup"
	"github.com/coachboard/coachboard/internal/domain/pitching"
	"github.com/coachboard/coachboard/internal/domain/roster"
	"github.com/coachboard/coachboard/internal/domain/rotation"
	"github.com/coachboard/coachboard/internal/usecase"
)

type lineupTitleRequest struct {
	Title string `json:"title" validate:"max=200"`
}

type lineupPlayerRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type lineupOrderRequest struct {
	Names []string `json:"names" validate:"required,dive,required"`
}

type battingPositionRequest struct {
	Position string `json:"position" validate:"max=20"`
}

type selectInningRequest struct {
	Inning int `json:"inning" validate:"required,gte=1"`
}

type assignPositionRequest struct {
	Player string `json:"player" validate:"required,max=100"`
}

type copyInningRequest struct {
	Source int `json:"source" validate:"required,gte=1"`
}

type pasteInningsRequest struct {
	Destinations []int `json:"destinations" validate:"required,min=1,dive,gte=1"`
}

type gameDTO struct {
	ID       int64  `json:"id"`
	Opponent string `json:"opponent"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

type playerDTO struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Number      *int     `json:"number,omitempty"`
	Positions   []string `json:"positions"`
	Bats        string   `json:"bats,omitempty"`
	Throws      string   `json:"throws,omitempty"`
	PitcherRole string   `json:"pitcher_role,omitempty"`
}

type lineupEntryDTO struct {
	Order    int    `json:"order"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

type lineupDTO struct {
	ID      int64            `json:"id"`
	Title   string           `json:"title"`
	Entries []lineupEntryDTO `json:"entries"`
}

type rotationDTO struct {
	ID            int64                        `json:"id"`
	Title         string                       `json:"title"`
	Innings       []int                        `json:"innings"`
	Assignments   map[string]map[string]string `json:"assignments"`
	CurrentInning int                          `json:"current_inning"`
	Bench         []playerDTO                  `json:"bench"`
	CopyMode      bool                         `json:"copy_mode"`
	CopySource    int                          `json:"copy_source,omitempty"`
}

type playingTimeDTO struct {
	Name           string   `json:"name"`
	InningsOnField int      `json:"innings_on_field"`
	InningsOnBench int      `json:"innings_on_bench"`
	Positions      []string `json:"positions"`
}

type sessionDTO struct {
	SessionID string           `json:"session_id"`
	Game      gameDTO          `json:"game"`
	Roster    []playerDTO      `json:"roster"`
	Lineup    lineupDTO        `json:"lineup"`
	Rotation  rotationDTO      `json:"rotation"`
	Summary   []playingTimeDTO `json:"summary"`
	Unsaved   bool             `json:"unsaved"`
}

type saveResultDTO struct {
	ID      int64  `json:"id"`
	Message string `json:"message,omitempty"`
}

type availabilityDTO struct {
	Name             string  `json:"name"`
	DailyPitches     int     `json:"daily_pitches"`
	WeeklyPitches    int     `json:"weekly_pitches"`
	Status           string  `json:"status"`
	NextAvailable    string  `json:"next_available,omitempty"`
	RequiredRestDays int     `json:"required_rest_days"`
	MaxDaily         int     `json:"max_daily"`
	RemainingToday   int     `json:"remaining_today"`
	Appearances      int     `json:"appearances"`
	TotalPitches     int     `json:"total_pitches"`
	InningsPitched   float64 `json:"innings_pitched"`
}

func sessionToDTO(ctx context.Context, v usecase.SessionView) sessionDTO {
	_, span := startSpan(ctx, "httpapi.sessionToDTO")
	defer span.End()

	assignments := make(map[string]map[string]string, len(v.Assignments))
	for n, inning := range v.Assignments {
		slots := make(map[string]string, len(inning))
		for pos, name := range inning {
			slots[string(pos)] = name
		}
		assignments[strconv.Itoa(n)] = slots
	}

	return sessionDTO{
		SessionID: v.SessionID,
		Game:      gameToDTO(v.Game),
		Roster:    playersToDTO(v.Roster),
		Lineup:    lineupToDTO(v.LineupID, v.LineupTitle, v.Lineup),
		Rotation: rotationDTO{
			ID:            v.RotationID,
			Title:         v.RotationTitle,
			Innings:       v.Innings,
			Assignments:   assignments,
			CurrentInning: v.CurrentInning,
			Bench:         playersToDTO(v.Bench),
			CopyMode:      v.CopyMode,
			CopySource:    v.CopySource,
		},
		Summary: summaryToDTO(v.Summary),
		Unsaved: v.Unsaved,
	}
}

func gameToDTO(v gameday.Game) gameDTO {
	return gameDTO{ID: v.ID, Opponent: v.Opponent, Date: v.Date, Location: v.Location}
}

func playersToDTO(items []roster.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, p := range items {
		positions := make([]string, 0, len(p.Positions))
		for _, pos := range p.Positions {
			if pos != "" {
				positions = append(positions, pos)
			}
		}
		out = append(out, playerDTO{
			ID:          p.ID,
			Name:        p.Name,
			Number:      p.Number,
			Positions:   positions,
			Bats:        string(p.Bats),
			Throws:      string(p.Throws),
			PitcherRole: string(p.PitcherRole),
		})
	}
	return out
}

func lineupToDTO(id int64, title string, entries []lineup.Entry) lineupDTO {
	items := make([]lineupEntryDTO, 0, len(entries))
	for i, e := range entries {
		items = append(items, lineupEntryDTO{Order: i + 1, Name: e.Name, Position: e.Position})
	}
	return lineupDTO{ID: id, Title: title, Entries: items}
}

func summaryToDTO(rows []rotation.PlayingTime) []playingTimeDTO {
	out := make([]playingTimeDTO, 0, len(rows))
	for _, row := range rows {
		positions := make([]string, 0, len(row.Positions))
		for _, pos := range row.Positions {
			positions = append(positions, string(pos))
		}
		out = append(out, playingTimeDTO{
			Name:           row.Name,
			InningsOnField: row.InningsOnField,
			InningsOnBench: row.InningsOnBench,
			Positions:      positions,
		})
	}
	return out
}

func availabilityToDTO(rows []pitching.Availability) []availabilityDTO {
	out := make([]availabilityDTO, 0, len(rows))
	for _, row := range rows {
		item := availabilityDTO{
			Name:             row.Name,
			DailyPitches:     row.Daily,
			WeeklyPitches:    row.Weekly,
			Status:           string(row.Status),
			RequiredRestDays: row.RequiredRestDays,
			MaxDaily:         row.MaxDaily,
			RemainingToday:   row.RemainingToday,
			Appearances:      row.Season.Appearances,
			TotalPitches:     row.Season.TotalPitches,
			InningsPitched:   row.Season.InningsPitched,
		}
		if !row.NextAvailable.IsZero() {
			item.NextAvailable = row.NextAvailable.Format(pitching.DateLayout)
		}
		out = append(out, item)
	}
	return out
}

func saveResultToDTO(v gameday.SaveResult) saveResultDTO {
	return saveResultDTO{ID: v.ID, Message: v.Message}
}
