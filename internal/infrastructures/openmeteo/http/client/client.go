package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	derr "github.com/TeongTat/travelagentic/internal/domain/errors"
	"github.com/TeongTat/travelagentic/internal/domain/models"
	"github.com/TeongTat/travelagentic/internal/infrastructures/openmeteo/dto"
	"github.com/TeongTat/travelagentic/internal/infrastructures/openmeteo/mappers"
)

const dailyMetrics = "temperature_2m_max,temperature_2m_min,precipitation_sum"

type Client struct {
	geocodingURL string
	forecastURL  string
	httpClient   *http.Client
}

func NewClient(geocodingURL, forecastURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(geocodingURL) == "" {
		geocodingURL = "https://geocoding-api.open-meteo.com"
	}
	if strings.TrimSpace(forecastURL) == "" {
		forecastURL = "https://api.open-meteo.com"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		geocodingURL: strings.TrimRight(geocodingURL, "/"),
		forecastURL:  strings.TrimRight(forecastURL, "/"),
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// Geocode resolves name to its first match.
func (c *Client) Geocode(ctx context.Context, name string) (models.Location, error) {
	u, err := url.Parse(c.geocodingURL + "/v1/search")
	if err != nil {
		return models.Location{}, fmt.Errorf("parse geocoding base url: %w", err)
	}
	q := u.Query()
	q.Set("name", strings.TrimSpace(name))
	u.RawQuery = q.Encode()

	var payload dto.GeocodingResponse
	if err := c.getJSON(ctx, u.String(), &payload); err != nil {
		return models.Location{}, fmt.Errorf("geocode %q: %w", name, err)
	}

	if len(payload.Results) == 0 {
		return models.Location{}, derr.ErrLocationNotFound
	}

	return mappers.ToLocation(payload.Results[0]), nil
}

func (c *Client) GetDailyForecast(ctx context.Context, latitude, longitude float64, days int) (models.DailyForecast, error) {
	if days <= 0 {
		days = models.ForecastDays
	}

	u, err := url.Parse(c.forecastURL + "/v1/forecast")
	if err != nil {
		return models.DailyForecast{}, fmt.Errorf("parse forecast base url: %w", err)
	}
	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("daily", dailyMetrics)
	q.Set("forecast_days", strconv.Itoa(days))
	u.RawQuery = q.Encode()

	var payload dto.ForecastResponse
	if err := c.getJSON(ctx, u.String(), &payload); err != nil {
		return models.DailyForecast{}, fmt.Errorf("forecast: %w", err)
	}

	if payload.Daily == nil {
		return models.DailyForecast{}, fmt.Errorf("%w: forecast response has no daily block", derr.ErrMalformedResponse)
	}

	forecast, err := mappers.ToDailyForecast(*payload.Daily)
	if err != nil {
		return models.DailyForecast{}, fmt.Errorf("forecast: %w", err)
	}

	return forecast, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: open-meteo request: %v", derr.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("%w: open-meteo status: %s", derr.ErrSourceUnavailable, resp.Status)
		}
		return fmt.Errorf("%w: open-meteo status: %s%s", derr.ErrUpstreamRejected, resp.Status, readReason(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode open-meteo response: %v", derr.ErrMalformedResponse, err)
	}

	return nil
}

func readReason(body io.Reader) string {
	var payload dto.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, 4096)).Decode(&payload); err != nil || payload.Reason == "" {
		return ""
	}
	return ": " + payload.Reason
}
