package models

import "fmt"

// ForecastDays is the forecast window requested from the weather service.
const ForecastDays = 3

type Location struct {
	Name      string
	Country   string
	Latitude  float64
	Longitude float64
}

type DailyForecast struct {
	Dates           []string
	MaxTempsC       []float64
	MinTempsC       []float64
	PrecipitationMm []float64
}

type WeatherSummary struct {
	Location    string
	Latitude    float64
	Longitude   float64
	AvgMaxTempC float64
}

// AverageTemp renders the mean daily maximum with one decimal digit.
func (w WeatherSummary) AverageTemp() string {
	return FormatCelsius(w.AvgMaxTempC)
}

func FormatCelsius(v float64) string {
	return fmt.Sprintf("%.1f°C", v)
}

// Mean returns the arithmetic mean of values and false when values is empty.
func Mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}
