package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/TeongTat/travelagentic/internal/domain/models"
)

const (
	DefaultOrigin           = "KUL"
	DefaultDestination      = "NRT"
	DefaultWeatherQuestion  = "What should I pack?"
	DefaultFlightPreference = "Prefer direct flight, budget airline OK."

	maxBodyBytes = 64 << 10
)

var errBadRequest = errors.New("bad request")

// briefRequest is the wire shape shared by the form post and the JSON API.
type briefRequest struct {
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	DepartureDate    string `json:"departure_date"`
	ReturnDate       string `json:"return_date"`
	WeatherQuestion  string `json:"weather_question"`
	FlightPreference string `json:"flight_preference"`
}

func (b briefRequest) toTrip() (models.TripRequest, error) {
	dep, err := parseDate("departure_date", b.DepartureDate)
	if err != nil {
		return models.TripRequest{}, err
	}
	ret, err := parseDate("return_date", b.ReturnDate)
	if err != nil {
		return models.TripRequest{}, err
	}

	return models.TripRequest{
		Origin:           b.Origin,
		Destination:      b.Destination,
		DepartureDate:    dep,
		ReturnDate:       ret,
		WeatherQuestion:  b.WeatherQuestion,
		FlightPreference: b.FlightPreference,
	}.Normalized(), nil
}

func parseDate(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(models.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", errBadRequest, field)
	}
	return t, nil
}

func decodeForm(w http.ResponseWriter, r *http.Request) (models.TripRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return models.TripRequest{}, fmt.Errorf("%w: invalid form", errBadRequest)
	}

	return briefRequest{
		Origin:           r.PostForm.Get("origin"),
		Destination:      r.PostForm.Get("destination"),
		DepartureDate:    r.PostForm.Get("departure_date"),
		ReturnDate:       r.PostForm.Get("return_date"),
		WeatherQuestion:  r.PostForm.Get("weather_question"),
		FlightPreference: r.PostForm.Get("flight_preference"),
	}.toTrip()
}

func decodeJSON(r *http.Request) (models.TripRequest, error) {
	var body briefRequest

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		return models.TripRequest{}, fmt.Errorf("%w: invalid json body", errBadRequest)
	}

	return body.toTrip()
}

func formDefaults(now time.Time) briefRequest {
	today := now.Format(models.DateLayout)
	return briefRequest{
		Origin:           DefaultOrigin,
		Destination:      DefaultDestination,
		DepartureDate:    today,
		ReturnDate:       today,
		WeatherQuestion:  DefaultWeatherQuestion,
		FlightPreference: DefaultFlightPreference,
	}
}

func fromTrip(req models.TripRequest) briefRequest {
	return briefRequest{
		Origin:           req.Origin,
		Destination:      req.Destination,
		DepartureDate:    models.FormatDate(req.DepartureDate),
		ReturnDate:       models.FormatDate(req.ReturnDate),
		WeatherQuestion:  req.WeatherQuestion,
		FlightPreference: req.FlightPreference,
	}
}
