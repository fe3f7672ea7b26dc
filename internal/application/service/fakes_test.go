package service

import (
	"context"
	"fmt"

	"github.com/TeongTat/travelagentic/internal/domain/models"
	"github.com/TeongTat/travelagentic/internal/domain/ports"
)

type testCompleter struct {
	replies      []string
	err          error
	prompts      []string
	temperatures []float32
}

func (c *testCompleter) Complete(ctx context.Context, req ports.CompletionRequest) (string, error) {
	c.prompts = append(c.prompts, req.Prompt)
	c.temperatures = append(c.temperatures, req.Temperature)
	if c.err != nil {
		return "", c.err
	}
	if len(c.replies) == 0 {
		return "ok", nil
	}
	reply := c.replies[0]
	c.replies = c.replies[1:]
	return reply, nil
}

type testFlightSource struct {
	records  []models.FlightRecord
	err      error
	searches []ports.FlightSearch
}

func (f *testFlightSource) GetFlights(ctx context.Context, search ports.FlightSearch) ([]models.FlightRecord, error) {
	f.searches = append(f.searches, search)
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

type testGeocoder struct {
	location models.Location
	err      error
	calls    int
}

func (g *testGeocoder) Geocode(ctx context.Context, name string) (models.Location, error) {
	g.calls++
	if g.err != nil {
		return models.Location{}, g.err
	}
	return g.location, nil
}

type testForecaster struct {
	forecast models.DailyForecast
	err      error
	calls    int
	days     int
}

func (f *testForecaster) GetDailyForecast(ctx context.Context, lat, lon float64, days int) (models.DailyForecast, error) {
	f.calls++
	f.days = days
	if f.err != nil {
		return models.DailyForecast{}, f.err
	}
	return f.forecast, nil
}

// forecastOf builds a forecast with one date per maximum.
func forecastOf(maxima ...float64) models.DailyForecast {
	dates := make([]string, len(maxima))
	for i := range maxima {
		dates[i] = fmt.Sprintf("2026-10-%02d", 19+i)
	}
	return models.DailyForecast{Dates: dates, MaxTempsC: maxima}
}

var tokyo = models.Location{Name: "Tokyo", Country: "Japan", Latitude: 35.6895, Longitude: 139.69171}

func kulToNRT() models.TripRequest {
	return models.TripRequest{
		Origin:          "KUL",
		Destination:     "NRT",
		WeatherQuestion: "What should I pack?",
	}
}
