package models

import "time"

type Stage uint8

const (
	StageUnknown Stage = iota
	StageIntroduction
	StageFlights
	StageSummary
)

func (s Stage) String() string {
	switch s {
	case StageIntroduction:
		return "introduction"
	case StageFlights:
		return "flights"
	case StageSummary:
		return "summary"
	default:
		return "unknown"
	}
}

type StageStatus uint8

const (
	StatusUnknown StageStatus = iota
	StatusOK
	StatusEmpty
	StatusFailed
	StatusSkipped
)

func (s StageStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// StageResult is the outcome of one pipeline stage. Text is always ready for
// display, including on failure; Err carries the cause for Failed and Skipped.
type StageResult struct {
	Stage  Stage
	Status StageStatus
	Text   string
	Err    error
}

func (r StageResult) Display() string {
	return r.Text
}

func (r StageResult) Failed() bool {
	return r.Status == StatusFailed || r.Status == StatusSkipped
}

type Brief struct {
	RunID        string
	Request      TripRequest
	Introduction StageResult
	Flights      StageResult
	Summary      StageResult
	Weather      *WeatherSummary
	GeneratedAt  time.Time
}

// Panes returns the three stage results in display order.
func (b Brief) Panes() []StageResult {
	return []StageResult{b.Introduction, b.Flights, b.Summary}
}
