package http

import (
	"time"

	"github.com/TeongTat/travelagentic/internal/domain/models"
)

type stageResponse struct {
	Stage  string `json:"stage"`
	Status string `json:"status"`
	Text   string `json:"text"`
	Error  string `json:"error,omitempty"`
}

type weatherResponse struct {
	Location    string  `json:"location"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	AvgMaxTempC float64 `json:"avg_max_temp_c"`
	AvgTemp     string  `json:"avg_temp"`
}

type briefResponse struct {
	RunID        string           `json:"run_id"`
	Request      briefRequest     `json:"request"`
	Introduction stageResponse    `json:"introduction"`
	Flights      stageResponse    `json:"flights"`
	Summary      stageResponse    `json:"summary"`
	Weather      *weatherResponse `json:"weather,omitempty"`
	GeneratedAt  time.Time        `json:"generated_at"`
}

func toBriefResponse(b models.Brief) briefResponse {
	resp := briefResponse{
		RunID:        b.RunID,
		Request:      fromTrip(b.Request),
		Introduction: toStageResponse(b.Introduction),
		Flights:      toStageResponse(b.Flights),
		Summary:      toStageResponse(b.Summary),
		GeneratedAt:  b.GeneratedAt,
	}
	if b.Weather != nil {
		resp.Weather = &weatherResponse{
			Location:    b.Weather.Location,
			Latitude:    b.Weather.Latitude,
			Longitude:   b.Weather.Longitude,
			AvgMaxTempC: b.Weather.AvgMaxTempC,
			AvgTemp:     b.Weather.AverageTemp(),
		}
	}
	return resp
}

func toStageResponse(r models.StageResult) stageResponse {
	resp := stageResponse{
		Stage:  r.Stage.String(),
		Status: r.Status.String(),
		Text:   r.Display(),
	}
	if r.Err != nil {
		resp.Error = r.Err.Error()
	}
	return resp
}
