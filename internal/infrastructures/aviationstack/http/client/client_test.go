package aviationstack

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	derr "github.com/TeongTat/travelagentic/internal/domain/errors"
	"github.com/TeongTat/travelagentic/internal/domain/ports"
)

func TestGetFlights_SendsQueryAndMapsRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/flights" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("access_key") != "key" || q.Get("dep_iata") != "KUL" || q.Get("arr_iata") != "NRT" || q.Get("limit") != "3" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data":[
				{
					"airline":{"name":"Malaysia Airlines"},
					"flight":{"iata":"MH88"},
					"departure":{"airport":"Kuala Lumpur International","scheduled":"2026-10-20T23:30:00+00:00"},
					"arrival":{"airport":"Narita International","scheduled":"2026-10-21T07:35:00+00:00"}
				},
				{"airline":null,"flight":{"iata":null},"departure":{},"arrival":null}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", time.Second)
	got, err := c.GetFlights(context.Background(), ports.FlightSearch{DepartureIATA: "kul", ArrivalIATA: " nrt ", Limit: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected records count: %d", len(got))
	}
	if got[0].Airline != "Malaysia Airlines" || got[0].FlightNumber != "MH88" {
		t.Fatalf("unexpected first record: %+v", got[0])
	}
	if got[1].Airline != "Unknown Airline" || got[1].FlightNumber != "N/A" || got[1].ArrivalAirport != "Unknown" {
		t.Fatalf("unexpected placeholder record: %+v", got[1])
	}
}

func TestGetFlights_EmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", time.Second)
	got, err := c.GetFlights(context.Background(), ports.FlightSearch{DepartureIATA: "KUL", ArrivalIATA: "NRT"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no records, got %v", got)
	}
}

func TestGetFlights_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", time.Second)
	_, err := c.GetFlights(context.Background(), ports.FlightSearch{DepartureIATA: "KUL", ArrivalIATA: "NRT"})
	if !errors.Is(err, derr.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestGetFlights_UpstreamErrorObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"code":"invalid_access_key","message":"You have not supplied a valid API Access Key."}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad", time.Second)
	_, err := c.GetFlights(context.Background(), ports.FlightSearch{DepartureIATA: "KUL", ArrivalIATA: "NRT"})
	if !errors.Is(err, derr.ErrUpstreamRejected) {
		t.Fatalf("expected ErrUpstreamRejected, got %v", err)
	}
	if !strings.Contains(err.Error(), "invalid_access_key") {
		t.Fatalf("error should carry upstream code: %v", err)
	}
}

func TestGetFlights_ServerErrorMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", time.Second)
	_, err := c.GetFlights(context.Background(), ports.FlightSearch{DepartureIATA: "KUL", ArrivalIATA: "NRT"})
	if !errors.Is(err, derr.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestGetFlights_EmptyKey(t *testing.T) {
	c := NewClient("http://api.aviationstack.com", "", time.Second)
	_, err := c.GetFlights(context.Background(), ports.FlightSearch{DepartureIATA: "KUL", ArrivalIATA: "NRT"})
	if !errors.Is(err, derr.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}
