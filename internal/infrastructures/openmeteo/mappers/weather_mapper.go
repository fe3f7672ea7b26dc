package mappers

import (
	"fmt"

	derr "github.com/TeongTat/travelagentic/internal/domain/errors"
	"github.com/TeongTat/travelagentic/internal/domain/models"
	"github.com/TeongTat/travelagentic/internal/infrastructures/openmeteo/dto"
)

func ToLocation(result dto.GeocodingResult) models.Location {
	return models.Location{
		Name:      result.Name,
		Country:   result.Country,
		Latitude:  result.Latitude,
		Longitude: result.Longitude,
	}
}

// ToDailyForecast requires one non-null maximum per date. Null minima and
// precipitation readings are dropped.
func ToDailyForecast(daily dto.Daily) (models.DailyForecast, error) {
	if len(daily.Temperature2mMax) != len(daily.Time) {
		return models.DailyForecast{}, fmt.Errorf("%w: %d daily maxima for %d dates",
			derr.ErrMalformedResponse, len(daily.Temperature2mMax), len(daily.Time))
	}

	maxima := make([]float64, 0, len(daily.Temperature2mMax))
	for i, v := range daily.Temperature2mMax {
		if v == nil {
			return models.DailyForecast{}, fmt.Errorf("%w: no daily maximum for %s",
				derr.ErrMalformedResponse, daily.Time[i])
		}
		maxima = append(maxima, *v)
	}

	return models.DailyForecast{
		Dates:           append([]string{}, daily.Time...),
		MaxTempsC:       maxima,
		MinTempsC:       present(daily.Temperature2mMin),
		PrecipitationMm: present(daily.PrecipitationSum),
	}, nil
}

func present(values []*float64) []float64 {
	result := make([]float64, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		result = append(result, *v)
	}
	return result
}
