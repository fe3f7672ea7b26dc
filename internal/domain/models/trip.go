package models

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type TripRequest struct {
	Origin           string
	Destination      string
	DepartureDate    time.Time
	ReturnDate       time.Time
	WeatherQuestion  string
	FlightPreference string
}

// Normalized trims every text field and upper-cases the airport codes.
func (r TripRequest) Normalized() TripRequest {
	r.Origin = strings.ToUpper(strings.TrimSpace(r.Origin))
	r.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))
	r.WeatherQuestion = strings.TrimSpace(r.WeatherQuestion)
	r.FlightPreference = strings.TrimSpace(r.FlightPreference)
	return r
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
