package ports

import (
	"context"

	"github.com/TeongTat/travelagentic/internal/domain/models"
)

type CompletionRequest struct {
	Prompt      string
	Temperature float32
}

type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type FlightSearch struct {
	DepartureIATA string
	ArrivalIATA   string
	Limit         int
}

type FlightSource interface {
	GetFlights(ctx context.Context, search FlightSearch) ([]models.FlightRecord, error)
}

// Geocoder returns derr.ErrLocationNotFound when the name does not resolve.
type Geocoder interface {
	Geocode(ctx context.Context, name string) (models.Location, error)
}

type Forecaster interface {
	GetDailyForecast(ctx context.Context, latitude, longitude float64, days int) (models.DailyForecast, error)
}
