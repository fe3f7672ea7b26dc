package mappers

import (
	"errors"
	"testing"

	derr "github.com/TeongTat/travelagentic/internal/domain/errors"
	"github.com/TeongTat/travelagentic/internal/infrastructures/openmeteo/dto"
)

func ptr(v float64) *float64 {
	return &v
}

var threeDays = []string{"2026-10-19", "2026-10-20", "2026-10-21"}

func TestToDailyForecast_MapsReadings(t *testing.T) {
	got, err := ToDailyForecast(dto.Daily{
		Time:             threeDays,
		Temperature2mMax: []*float64{ptr(28), ptr(29), ptr(30)},
		Temperature2mMin: []*float64{ptr(21), nil, ptr(23)},
		PrecipitationSum: []*float64{nil, nil, nil},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got.Dates) != 3 {
		t.Fatalf("unexpected dates: %v", got.Dates)
	}
	if len(got.MaxTempsC) != 3 || got.MaxTempsC[0] != 28 || got.MaxTempsC[2] != 30 {
		t.Fatalf("unexpected maxima: %v", got.MaxTempsC)
	}
	if len(got.MinTempsC) != 2 {
		t.Fatalf("null minima should be dropped: %v", got.MinTempsC)
	}
	if got.PrecipitationMm == nil || len(got.PrecipitationMm) != 0 {
		t.Fatalf("expected empty precipitation slice, got %v", got.PrecipitationMm)
	}
}

func TestToDailyForecast_NullMaximumFails(t *testing.T) {
	_, err := ToDailyForecast(dto.Daily{
		Time:             threeDays,
		Temperature2mMax: []*float64{ptr(28), nil, ptr(30)},
	})
	if !errors.Is(err, derr.ErrMalformedResponse) {
		t.Fatalf("expected malformed response, got %v", err)
	}
}

func TestToDailyForecast_MaximaCountMismatchFails(t *testing.T) {
	_, err := ToDailyForecast(dto.Daily{
		Time:             threeDays,
		Temperature2mMax: []*float64{ptr(28), ptr(30)},
	})
	if !errors.Is(err, derr.ErrMalformedResponse) {
		t.Fatalf("expected malformed response, got %v", err)
	}
}

func TestToLocation(t *testing.T) {
	got := ToLocation(dto.GeocodingResult{Name: "Narita", Country: "Japan", Latitude: 35.77, Longitude: 140.32})
	if got.Name != "Narita" || got.Latitude != 35.77 || got.Longitude != 140.32 {
		t.Fatalf("unexpected location: %+v", got)
	}
}
