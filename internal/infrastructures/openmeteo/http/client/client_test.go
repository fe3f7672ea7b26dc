package openmeteo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	derr "github.com/TeongTat/travelagentic/internal/domain/errors"
)

func TestGeocode_UsesFirstResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/search" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("name") != "NRT" {
			t.Fatalf("unexpected name: %q", r.URL.Query().Get("name"))
		}
		_, _ = w.Write([]byte(`{"results":[
			{"id":1,"name":"Narita","latitude":35.77,"longitude":140.32,"country":"Japan"},
			{"id":2,"name":"Other","latitude":1,"longitude":2}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, time.Second)
	got, err := c.Geocode(context.Background(), "NRT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Narita" || got.Latitude != 35.77 || got.Longitude != 140.32 {
		t.Fatalf("unexpected location: %+v", got)
	}
}

func TestGeocode_NoResults(t *testing.T) {
	for _, body := range []string{`{}`, `{"results":[]}`, `{"generationtime_ms":0.5}`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		c := NewClient(srv.URL, srv.URL, time.Second)
		_, err := c.Geocode(context.Background(), "ZZZ")
		srv.Close()
		if !errors.Is(err, derr.ErrLocationNotFound) {
			t.Fatalf("body %s: expected ErrLocationNotFound, got %v", body, err)
		}
	}
}

func TestGetDailyForecast_SendsParamsAndMaps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/forecast" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("latitude") != "35.77" || q.Get("longitude") != "140.32" {
			t.Fatalf("unexpected coordinates: %s", r.URL.RawQuery)
		}
		if q.Get("daily") != "temperature_2m_max,temperature_2m_min,precipitation_sum" {
			t.Fatalf("unexpected daily metrics: %q", q.Get("daily"))
		}
		if q.Get("forecast_days") != "3" {
			t.Fatalf("unexpected forecast_days: %q", q.Get("forecast_days"))
		}
		_, _ = w.Write([]byte(`{"daily":{
			"time":["2026-10-19","2026-10-20","2026-10-21"],
			"temperature_2m_max":[28.0,29.0,30.0],
			"temperature_2m_min":[20.1,21.4,22.0],
			"precipitation_sum":[0.0,1.2,3.4]
		}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, time.Second)
	got, err := c.GetDailyForecast(context.Background(), 35.77, 140.32, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.MaxTempsC) != 3 || got.MaxTempsC[2] != 30 {
		t.Fatalf("unexpected maxima: %v", got.MaxTempsC)
	}
	if len(got.PrecipitationMm) != 3 || got.PrecipitationMm[2] != 3.4 {
		t.Fatalf("unexpected precipitation: %v", got.PrecipitationMm)
	}
}

func TestGetDailyForecast_MissingDailyBlock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"latitude":35.77}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, time.Second)
	_, err := c.GetDailyForecast(context.Background(), 35.77, 140.32, 3)
	if !errors.Is(err, derr.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestGetDailyForecast_NullMaximumIsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"daily":{
			"time":["2026-10-19","2026-10-20","2026-10-21"],
			"temperature_2m_max":[28.0,null,30.0]
		}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, time.Second)
	_, err := c.GetDailyForecast(context.Background(), 35.77, 140.32, 3)
	if !errors.Is(err, derr.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestGetDailyForecast_BadRequestCarriesReason(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":true,"reason":"Latitude must be in range of -90 to 90°."}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, time.Second)
	_, err := c.GetDailyForecast(context.Background(), 135, 0, 3)
	if !errors.Is(err, derr.ErrUpstreamRejected) {
		t.Fatalf("expected ErrUpstreamRejected, got %v", err)
	}
	if !strings.Contains(err.Error(), "Latitude must be in range") {
		t.Fatalf("expected upstream reason in error, got %v", err)
	}
}
