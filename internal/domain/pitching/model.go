package pitching

import "time"

const DateLayout = "2006-01-02"

// Outing is one recorded pitching appearance.
type Outing struct {
	ID         int64
	Date       time.Time
	Pitcher    string
	Opponent   string
	Pitches    int
	Innings    float64
	OutingType string
}

type Status string

const (
	StatusAvailable Status = "Available"
	StatusResting   Status = "Resting"
)

// Availability is one pitcher's row in the pitch-count summary.
type Availability struct {
	Name             string
	Daily            int
	Weekly           int
	Status           Status
	NextAvailable    time.Time
	RequiredRestDays int
	MaxDaily         int
	RemainingToday   int
	Season           Cumulative
}

// Cumulative aggregates every recorded outing for one pitcher.
type Cumulative struct {
	Appearances    int
	TotalPitches   int
	InningsPitched float64
}
