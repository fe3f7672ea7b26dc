package aviationstack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	derr "github.com/TeongTat/travelagentic/internal/domain/errors"
	"github.com/TeongTat/travelagentic/internal/domain/models"
	"github.com/TeongTat/travelagentic/internal/domain/ports"
	"github.com/TeongTat/travelagentic/internal/infrastructures/aviationstack/dto"
	"github.com/TeongTat/travelagentic/internal/infrastructures/aviationstack/mappers"
)

type Client struct {
	baseURL    string
	accessKey  string
	httpClient *http.Client
}

func NewClient(baseURL, accessKey string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "http://api.aviationstack.com"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		accessKey:  strings.TrimSpace(accessKey),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) GetFlights(ctx context.Context, search ports.FlightSearch) ([]models.FlightRecord, error) {
	if c.accessKey == "" {
		return nil, fmt.Errorf("aviationstack access key: %w", derr.ErrMissingAPIKey)
	}

	reqURL, err := c.buildURL(search)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: aviationstack request: %v", derr.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: aviationstack status: %s", derr.ErrSourceUnavailable, resp.Status)
		}
		return nil, fmt.Errorf("%w: aviationstack status: %s", derr.ErrUpstreamRejected, resp.Status)
	}

	var payload dto.FlightsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode aviationstack response: %v", derr.ErrMalformedResponse, err)
	}

	if payload.Error != nil {
		return nil, fmt.Errorf("%w: aviationstack error %s: %s", derr.ErrUpstreamRejected, payload.Error.Code, payload.Error.Message)
	}

	return mappers.ToFlightRecords(payload.Data, c.limit(search)), nil
}

func (c *Client) buildURL(search ports.FlightSearch) (string, error) {
	u, err := url.Parse(c.baseURL + "/v1/flights")
	if err != nil {
		return "", fmt.Errorf("parse aviationstack base url: %w", err)
	}

	q := u.Query()
	q.Set("access_key", c.accessKey)
	q.Set("dep_iata", strings.ToUpper(strings.TrimSpace(search.DepartureIATA)))
	q.Set("arr_iata", strings.ToUpper(strings.TrimSpace(search.ArrivalIATA)))
	q.Set("limit", strconv.Itoa(c.limit(search)))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) limit(search ports.FlightSearch) int {
	if search.Limit <= 0 {
		return models.MaxFlights
	}
	return search.Limit
}
